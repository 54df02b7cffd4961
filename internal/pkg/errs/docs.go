// Package errs provides the error taxonomy shared by the domain, the application
// layer and the HTTP adapter.
//
// Every error type follows the same shape:
//   - a sentinel variable used with errors.Is (ErrObjectNotFound, ErrValueIsInvalid, ...)
//   - a struct carrying the details
//   - New* constructors, with and without a cause where a cause makes sense
//   - Unwrap returning the sentinel
//
// The HTTP adapter classifies by sentinel only:
//   - ErrObjectNotFound: the referenced parcel, actor, product or zone does not exist
//   - ErrValueIsInvalid, ErrValueIsRequired, ErrValueIsOutOfRange: the request breaks a rule;
//     RuleViolationError carries a reason suitable for direct display
//   - ErrVersionIsInvalid: the aggregate changed concurrently
//   - ErrUnsupportedOperation: the operation is deliberately not implemented
//   - ErrAccessDenied: the caller is authenticated but not allowed
package errs
