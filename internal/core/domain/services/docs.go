// Package services holds domain logic that does not belong to a single aggregate.
//
// The package includes:
//   - TransitionPolicy: decides whether a role may move a parcel from one status to another
package services
