// Package services holds the domain rules that sit between callers and orders:
//   - OrderPolicy: per-operation authorization predicates
//   - ViewPolicy: the role-keyed view used by the order list (driver pool or rider history)
package services
