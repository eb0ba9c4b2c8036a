package warehouse

//go:generate go tool stringer -type=OrderStatus -output=orderstatus_string.go

// OrderStatus mirrors store.OrderStatus member for member, but the constants
// were declared in a different order, so the underlying values disagree.
type OrderStatus int

const (
	StatusShipped OrderStatus = iota
	StatusCancelled
	StatusPending
	StatusPaid
)

//go:generate go tool stringer -type=PaymentMethod -output=paymentmethod_string.go

// PaymentMethod lacks a crypto member on purpose; billing never got one.
type PaymentMethod int

const (
	MethodCard PaymentMethod = iota
	MethodCash
	MethodWire
)
