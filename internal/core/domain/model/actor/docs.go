// Package actor models the people involved in a delivery.
//
// An Actor carries the fields every role shares (id, name, phone, email, role)
// plus exactly one Profile variant selected by the role:
//   - CourierProfile for COURIER: vehicle and optional zone
//   - AddressProfile for SENDER and RECIPIENT: postal address
//   - StaffProfile for ADMINISTRATOR and MANAGER: no extra data
//
// Principal is the authenticated caller (id + role) threaded explicitly through the
// access guard and the lifecycle commands.
package actor
