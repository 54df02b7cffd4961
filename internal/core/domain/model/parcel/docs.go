// Package parcel provides the Parcel aggregate and its value objects.
//
// The package includes:
//   - Parcel: the aggregate root holding sender, recipient, courier, zone, line items and status
//   - Status: the lifecycle CREATED -> COLLECTED -> IN_WAREHOUSE -> IN_TRANSIT -> DELIVERED
//   - Priority: LOW, NORMAL, HIGH, URGENT
//   - LineItem: a product reference with quantity and the unit weight captured at creation
//   - HistoryRecord: one immutable entry of the status audit trail
//
// Key business rules:
//   - A parcel always starts in CREATED and has at least one line item
//   - Its weight is the sum of unit weight times quantity, in line item order
//   - Every status write moves statusChangedAt strictly forward
//   - Who may change the status is decided by the transition policy in the services package
package parcel
