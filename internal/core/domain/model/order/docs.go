// Package order implements the Order aggregate and its lifecycle.
//
// Rules enforced here:
//   - rider and trip are required and never change
//   - the driver is unset until Accept and never changes afterwards
//   - status moves Pending -> OnGoing -> Finished or Pending -> Canceled, nothing else
//
// Illegal transitions return errs.ConflictError values (ErrOrderNotAvailable,
// ErrOrderAlreadyCanceled, ErrOrderNotCancelable, ErrOrderNotFinishable) whose
// reasons are the messages shown to API clients. Who may call which transition
// is decided outside the aggregate, in services.OrderPolicy.
package order
