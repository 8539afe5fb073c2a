package order

import "thegriller/internal/cart"

// Fulfillment channels.
const (
	TypeDelivery   = "delivery"
	TypeCollection = "collection"
)

// Order statuses. Delivery orders pass through all five; collection
// orders skip the delivery leg.
const (
	StatusOrdered        = "Ordered"
	StatusPreparing      = "Preparing"
	StatusReady          = "Ready"
	StatusOutForDelivery = "Out for delivery"
	StatusCompleted      = "Completed"
)

var (
	deliverySequence   = []string{StatusOrdered, StatusPreparing, StatusReady, StatusOutForDelivery, StatusCompleted}
	collectionSequence = []string{StatusOrdered, StatusPreparing, StatusReady, StatusCompleted}
)

// Sequence returns the status progression for a delivery type.
func Sequence(deliveryType string) []string {
	if deliveryType == TypeCollection {
		return collectionSequence
	}
	return deliverySequence
}

// Next returns the status following the given one in the sequence for
// the delivery type, or "" when the order is already terminal. This is
// presentation guidance for the staff screens; status updates
// themselves are not gated by it.
func Next(status, deliveryType string) string {
	seq := Sequence(deliveryType)
	for i, s := range seq {
		if s == status && i+1 < len(seq) {
			return seq[i+1]
		}
	}
	return ""
}

// Known reports whether the string is one of the order statuses.
func Known(status string) bool {
	for _, s := range deliverySequence {
		if s == status {
			return true
		}
	}
	return false
}

// Order is a placed order. Items are a snapshot of the cart at
// checkout time; Total is computed once and never recomputed.
type Order struct {
	ID              string      `json:"id"`
	Items           []cart.Line `json:"items"`
	Total           float64     `json:"total"`
	Status          string      `json:"status"`
	CustomerName    string      `json:"customerName"`
	CustomerPhone   string      `json:"customerPhone"`
	DeliveryAddress string      `json:"deliveryAddress,omitempty"`
	DeliveryType    string      `json:"deliveryType"`
	CreatedAt       string      `json:"createdAt"`
	EstimatedTime   string      `json:"estimatedTime"`
}

// Draft is an order before the store assigns id and creation time.
type Draft struct {
	Items           []cart.Line
	Total           float64
	Status          string
	CustomerName    string
	CustomerPhone   string
	DeliveryAddress string
	DeliveryType    string
	EstimatedTime   string
}
