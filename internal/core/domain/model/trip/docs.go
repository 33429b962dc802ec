// Package trip holds the Trip Catalog entity. One trip is created per order,
// priced by a PricingPolicy; FixedPricing is the only policy in use.
package trip
