package store

//go:generate go tool stringer -type=OrderStatus -output=orderstatus_string.go

// OrderStatus is the shop front's order lifecycle.
type OrderStatus int

const (
	StatusPending OrderStatus = iota
	StatusPaid
	StatusShipped
	StatusCancelled
)

//go:generate go tool stringer -type=PaymentMethod -output=paymentmethod_string.go

// PaymentMethod lists what the shop front accepts. The warehouse billing
// system does not know about crypto; that divergence is deliberate.
type PaymentMethod int

const (
	MethodCard PaymentMethod = iota
	MethodCash
	MethodWire
	MethodCrypto
)
