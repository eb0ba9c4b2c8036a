// Package warehouse holds the destination-side fixture types: the fulfilment
// system's view of the same orders.
package warehouse

import (
	"time"
)

// Order is the fulfilment system's record of a purchase.
type Order struct {
	Number   string
	Status   OrderStatus
	History  []OrderStatus
	PlacedAt time.Time
}

// Payment is the billing record attached to an order.
type Payment struct {
	Reference string
	Method    PaymentMethod
}
