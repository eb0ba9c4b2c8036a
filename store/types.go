// Package store holds the source-side fixture types for the enum mapping
// demonstration: the shop front's view of an order.
package store

import (
	"time"
)

// Order is the shop front's record of a purchase.
type Order struct {
	Number string
	Status OrderStatus
	// History keeps every status the order went through, oldest first.
	History  []OrderStatus
	PlacedAt time.Time
}

// Payment records how an order was paid.
type Payment struct {
	Reference string
	Method    PaymentMethod
}
