// Package errs provides the typed errors shared by the ride-booking core and
// its adapters.
//
// Every kind follows the same shape: a sentinel (ErrForbidden, ErrConflict, ...),
// a struct carrying the details, constructors with and without a cause, and
// Unwrap so callers classify with errors.Is and inspect with errors.As.
//
// Kinds and how the HTTP adapter renders them:
//   - ValidationError (wrapping ValueIsRequiredError / ValueIsInvalidError): 400
//   - UnauthenticatedError: 401
//   - ForbiddenError: 403
//   - ObjectNotFoundError: 404
//   - ConflictError: 409
//   - UnavailableError: 503
package errs
