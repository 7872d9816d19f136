package model

// Closed enumerations shared across the POS domain. Every value set is
// final: consumers switch exhaustively and treat anything else as a
// validation failure. The symbolic names round-trip through the
// database unchanged.

// PaymentMethod identifies how a sale or order was paid.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "CASH"
	PaymentCard PaymentMethod = "CARD"
	PaymentNFC  PaymentMethod = "NFC"
	PaymentQR   PaymentMethod = "QR"
)

// PaymentMethods lists every known method, in reporting order.
var PaymentMethods = []PaymentMethod{PaymentCash, PaymentCard, PaymentNFC, PaymentQR}

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentNFC, PaymentQR:
		return true
	}
	return false
}

// TransactionStatus is the lifecycle state of a completed-sale record.
type TransactionStatus string

const (
	TxCompleted TransactionStatus = "COMPLETED"
	TxRefunded  TransactionStatus = "REFUNDED"
	TxVoided    TransactionStatus = "VOIDED"
)

func (s TransactionStatus) Valid() bool {
	switch s {
	case TxCompleted, TxRefunded, TxVoided:
		return true
	}
	return false
}

// StaffRole is the closed set of staff roles.
type StaffRole string

const (
	RoleCashier StaffRole = "CASHIER"
	RoleManager StaffRole = "MANAGER"
	RoleAdmin   StaffRole = "ADMIN"
)

func (r StaffRole) Valid() bool {
	switch r {
	case RoleCashier, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// OrderStatus is the customer-order state machine:
// PENDING → CONFIRMED → PREPARING → READY → COMPLETED, with CANCELLED
// reachable only from PENDING or CONFIRMED.
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderConfirmed OrderStatus = "CONFIRMED"
	OrderPreparing OrderStatus = "PREPARING"
	OrderReady     OrderStatus = "READY"
	OrderCompleted OrderStatus = "COMPLETED"
	OrderCancelled OrderStatus = "CANCELLED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderPreparing, OrderReady, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status machine allows moving from
// s to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderPending:
		return next == OrderConfirmed || next == OrderCancelled
	case OrderConfirmed:
		return next == OrderPreparing || next == OrderCancelled
	case OrderPreparing:
		return next == OrderReady
	case OrderReady:
		return next == OrderCompleted
	case OrderCompleted, OrderCancelled:
		return false
	}
	return false
}

// IsTerminal reports whether no further transitions are possible.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderCompleted || s == OrderCancelled
}

// OrderType distinguishes pickup from delivery orders.
type OrderType string

const (
	OrderPickup   OrderType = "PICKUP"
	OrderDelivery OrderType = "DELIVERY"
)

func (t OrderType) Valid() bool {
	switch t {
	case OrderPickup, OrderDelivery:
		return true
	}
	return false
}

// PaymentStatus tracks payment progress on a customer order.
type PaymentStatus string

const (
	PayPending   PaymentStatus = "PENDING"
	PayCompleted PaymentStatus = "COMPLETED"
	PayFailed    PaymentStatus = "FAILED"
	PayRefunded  PaymentStatus = "REFUNDED"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PayPending, PayCompleted, PayFailed, PayRefunded:
		return true
	}
	return false
}
