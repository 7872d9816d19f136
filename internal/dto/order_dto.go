package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type OrderItemRequest struct {
	MenuItemID          string   `json:"menu_item_id" validate:"required,uuid"`
	Quantity            int      `json:"quantity"     validate:"required,min=1"`
	Customizations      []string `json:"customizations"`
	SpecialInstructions *string  `json:"special_instructions"`
}

type CreateOrderRequest struct {
	CustomerName  string             `json:"customer_name"  validate:"required"`
	CustomerEmail *string            `json:"customer_email" validate:"omitempty,email"`
	CustomerPhone string             `json:"customer_phone" validate:"required"`
	OrderType     string             `json:"order_type"     validate:"required,oneof=PICKUP DELIVERY"`
	Items         []OrderItemRequest `json:"items"          validate:"required,min=1,dive"`
	TaxAmount     decimal.Decimal    `json:"tax_amount"     validate:"min=0"`
	ServiceFee    decimal.Decimal    `json:"service_fee"    validate:"min=0"`
	// ScheduledTime, when set, becomes the estimated ready time.
	ScheduledTime       *time.Time `json:"scheduled_time"`
	SpecialInstructions *string    `json:"special_instructions"`
}

type UpdateOrderStatusRequest struct {
	Status     string  `json:"status" validate:"required,oneof=PENDING CONFIRMED PREPARING READY COMPLETED CANCELLED"`
	StaffNotes *string `json:"staff_notes"`
}

// MarkOrderPaidRequest records the outcome of an external payment.
type MarkOrderPaidRequest struct {
	PaymentMethod        string  `json:"payment_method" validate:"required,oneof=CASH CARD NFC QR"`
	PaymentTransactionID *string `json:"payment_transaction_id"`
	UppPaymentID         *string `json:"upp_payment_id"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type OrderItemResponse struct {
	MenuItemID string          `json:"menu_item_id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

type OrderResponse struct {
	ID                 string              `json:"id"`
	OrderNumber        string              `json:"order_number"`
	CustomerName       string              `json:"customer_name"`
	CustomerPhone      string              `json:"customer_phone"`
	Status             string              `json:"status"`
	OrderType          string              `json:"order_type"`
	Items              []OrderItemResponse `json:"items"`
	Subtotal           decimal.Decimal     `json:"subtotal"`
	TaxAmount          decimal.Decimal     `json:"tax_amount"`
	ServiceFee         decimal.Decimal     `json:"service_fee"`
	TotalAmount        decimal.Decimal     `json:"total_amount"`
	PaymentMethod      *string             `json:"payment_method,omitempty"`
	PaymentStatus      string              `json:"payment_status"`
	EstimatedReadyTime *time.Time          `json:"estimated_ready_time,omitempty"`
	EstimatedWaitMins  int                 `json:"estimated_wait_minutes"`
	CreatedAt          string              `json:"created_at"`
}
