package cart

// Pricing constants used at checkout.
const (
	TaxRate     = 0.10
	DeliveryFee = 5.00
)

// Totals is the checkout price breakdown for a given fulfillment
// channel. Tax applies to the subtotal only; the delivery fee is
// charged for delivery and waived for collection.
type Totals struct {
	Subtotal    float64 `json:"subtotal"`
	Tax         float64 `json:"tax"`
	DeliveryFee float64 `json:"deliveryFee"`
	Total       float64 `json:"total"`
}

// Quote prices the current cart for the given delivery type
// ("delivery" or "collection").
func (s *Store) Quote(deliveryType string) Totals {
	subtotal := s.Subtotal()
	tax := subtotal * TaxRate
	fee := 0.0
	if deliveryType == "delivery" {
		fee = DeliveryFee
	}
	return Totals{
		Subtotal:    subtotal,
		Tax:         tax,
		DeliveryFee: fee,
		Total:       subtotal + tax + fee,
	}
}
