package trip

// DefaultPrice is charged for every trip.
const DefaultPrice int64 = 250000

// PricingPolicy decides the price of a new trip.
type PricingPolicy interface {
	Price(origin, destination string) int64
}

// FixedPricing charges the same amount regardless of the route.
type FixedPricing struct {
	Amount int64
}

// NewFixedPricing returns the policy charging DefaultPrice.
func NewFixedPricing() FixedPricing {
	return FixedPricing{Amount: DefaultPrice}
}

func (p FixedPricing) Price(_, _ string) int64 {
	return p.Amount
}
