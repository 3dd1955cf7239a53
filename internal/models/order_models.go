package models

import "time"

// OrderStatus is the kitchen display state of an order.
type OrderStatus string

const (
	StatusIncoming  OrderStatus = "INCOMING"
	StatusPreparing OrderStatus = "PREPARING"
	StatusReady     OrderStatus = "READY"
	StatusPickedUp  OrderStatus = "PICKED_UP"
	StatusCancelled OrderStatus = "CANCELLED"
)

// Terminal reports whether no further transition may leave this status.
func (s OrderStatus) Terminal() bool {
	return s == StatusPickedUp || s == StatusCancelled
}

// PaymentMethod tags how an order was (or will be) settled. PENDING marks
// orders not yet paid; those are excluded from shift cash expectations.
type PaymentMethod string

const (
	PaymentCash       PaymentMethod = "CASH"
	PaymentUPI        PaymentMethod = "UPI"
	PaymentCard       PaymentMethod = "CARD"
	PaymentRoomCharge PaymentMethod = "ROOM_CHARGE"
	PaymentPending    PaymentMethod = "PENDING"
)

// ValidPaymentMethod reports whether m is a known payment tag.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentCash, PaymentUPI, PaymentCard, PaymentRoomCharge, PaymentPending:
		return true
	default:
		return false
	}
}

// FulfillmentPolicy decides which lifecycle states a unit's orders pass
// through. Kitchen-routed orders start INCOMING and walk the full machine;
// direct-service orders (the bar counter) are recorded READY immediately.
type FulfillmentPolicy string

const (
	FulfillmentKitchen FulfillmentPolicy = "KITCHEN"
	FulfillmentDirect  FulfillmentPolicy = "DIRECT"
)

// PolicyFor returns the fulfillment policy of a business unit.
func PolicyFor(unit BusinessUnit) FulfillmentPolicy {
	if unit == UnitBar {
		return FulfillmentDirect
	}
	return FulfillmentKitchen
}

// Order is an immutable snapshot of a submitted cart. Only Status and
// Payment may change after creation; lines and total never do, even when
// catalog prices move later.
type Order struct {
	ID          string        `json:"id"`
	SourceID    string        `json:"source_id"`
	Unit        BusinessUnit  `json:"bu"`
	Lines       []CartLine    `json:"items"`
	Status      OrderStatus   `json:"status"`
	Payment     PaymentMethod `json:"payment_method"`
	TotalAmount float64       `json:"total_amount"`
	CreatedAt   time.Time     `json:"created_at"`
}

// OrderView is an Order plus display derivations recomputed on every read.
type OrderView struct {
	Order
	ElapsedSeconds int64 `json:"elapsed_seconds"`
	IsLate         bool  `json:"is_late"`
}

// CloneOrder deep-copies an order for read snapshots.
func CloneOrder(o Order) Order {
	out := o
	out.Lines = make([]CartLine, len(o.Lines))
	for i, l := range o.Lines {
		out.Lines[i] = l
		if l.Variant != nil {
			v := *l.Variant
			out.Lines[i].Variant = &v
		}
	}
	return out
}
