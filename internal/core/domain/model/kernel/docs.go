// Package kernel holds the primitives shared by the user, trip and order models:
// the UUID identifier, the two fixed user roles and the resolved Caller identity.
package kernel
