// Package ports defines the contracts between the ride-booking core and its
// adapters: repositories and the unit of work for persistence, token and
// password ports for identity, and the order event publisher.
package ports
