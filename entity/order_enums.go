package entity

// Order lifecycle. The next-step suggestion lives in services.NextStatus;
// the store enforces transitions with a compare-and-swap update.
const (
	StatusPending        = "pending"
	StatusPreparing      = "preparing"
	StatusReady          = "ready"
	StatusOutForDelivery = "out_for_delivery"
	StatusCompleted      = "completed"
	StatusCancelled      = "cancelled"
)

const (
	OrderTypeDelivery = "delivery"
	OrderTypePickup   = "pickup"
)

// Order source affects the status machine: kiosk orders settle face-to-face
// at the cashier and skip the preparation display.
const (
	SourceOnline = "online"
	SourceKiosk  = "kiosk"
	SourcePOS    = "pos"
)

// Payment methods are labels only; settlement happens out of band.
const (
	PaymentCash = "cash"
	PaymentCard = "card"
)
