package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/robertsn808/alii/internal/money"
)

// Order is a pending customer order, structurally parallel to
// Transaction but representing work not yet completed. It exclusively
// owns its Items.
type Order struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderNumber   string    `gorm:"uniqueIndex;not null"`
	CustomerName  string    `gorm:"not null"`
	CustomerEmail *string
	CustomerPhone string      `gorm:"not null"`
	Status        OrderStatus `gorm:"type:varchar(20);not null;default:'PENDING'"`
	OrderType     OrderType   `gorm:"type:varchar(20);not null"`

	ScheduledTime      *time.Time
	EstimatedReadyTime *time.Time

	Subtotal    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TaxAmount   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ServiceFee  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	PaymentMethod        *PaymentMethod `gorm:"type:varchar(20)"`
	PaymentStatus        PaymentStatus  `gorm:"type:varchar(20);not null;default:'PENDING'"`
	PaymentTransactionID *string
	UppPaymentID         *string

	SpecialInstructions *string
	StaffNotes          *string
	AssignedStaffID     *uuid.UUID `gorm:"type:uuid"`

	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time

	Items []OrderItem `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// CanBeCancelled: orders already in preparation (or later) cannot be
// cancelled.
func (o *Order) CanBeCancelled() bool {
	return o.Status == OrderPending || o.Status == OrderConfirmed
}

func (o *Order) IsReadyForPickup() bool {
	return o.Status == OrderReady
}

// EstimatedWaitMinutes returns whole minutes until the estimated ready
// time, floored at zero.
func (o *Order) EstimatedWaitMinutes(now time.Time) int {
	if o.EstimatedReadyTime == nil || o.EstimatedReadyTime.Before(now) {
		return 0
	}
	return int(o.EstimatedReadyTime.Sub(now).Minutes())
}

// OrderItem is one ordered line. UnitPrice is the menu price captured
// at order time so later menu edits do not change history; Subtotal is
// derived from it once, the same way TransactionItem derives LineTotal.
type OrderItem struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderID    uuid.UUID       `gorm:"type:uuid;index;not null"`
	MenuItemID uuid.UUID       `gorm:"type:uuid;index;not null"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Subtotal   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	// Customizations are stored comma-joined; the list is small and
	// free-form ("no onions", "extra rice").
	Customizations      *string
	SpecialInstructions *string

	MenuItem *MenuItem `gorm:"foreignKey:MenuItemID"`
}

// NewOrderItem builds a line for the given menu item at its current
// price.
func NewOrderItem(item *MenuItem, quantity int) OrderItem {
	return OrderItem{
		MenuItemID: item.ID,
		Quantity:   quantity,
		UnitPrice:  item.Price,
		Subtotal:   money.LineTotal(item.Price, quantity),
	}
}
