package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type TransactionItemRequest struct {
	ItemName  string          `json:"item_name"  validate:"required,max=255"`
	ItemPrice decimal.Decimal `json:"item_price" validate:"min=0"`
	Quantity  int             `json:"quantity"   validate:"required,min=1"`
}

type CreateTransactionRequest struct {
	TransactionID   string                   `json:"transaction_id"    validate:"required,max=100"`
	ReceiptNumber   string                   `json:"receipt_number"    validate:"required,max=20"`
	StaffEmployeeID string                   `json:"staff_employee_id" validate:"required"`
	PaymentMethod   string                   `json:"payment_method"    validate:"required,oneof=CASH CARD NFC QR"`
	Subtotal        decimal.Decimal          `json:"subtotal"          validate:"gt=0"`
	TaxAmount       decimal.Decimal          `json:"tax_amount"        validate:"min=0"`
	TotalAmount     decimal.Decimal          `json:"total_amount"      validate:"gt=0"`
	// CashReceived is required when payment_method is CASH and ignored otherwise.
	CashReceived *decimal.Decimal         `json:"cash_received" validate:"omitempty,min=0"`
	Items        []TransactionItemRequest `json:"items"         validate:"required,min=1,dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type TransactionItemResponse struct {
	ItemName  string          `json:"item_name"`
	ItemPrice decimal.Decimal `json:"item_price"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type TransactionResponse struct {
	ID              string                    `json:"id"`
	TransactionID   string                    `json:"transaction_id"`
	ReceiptNumber   string                    `json:"receipt_number"`
	StaffEmployeeID string                    `json:"staff_employee_id"`
	StaffName       string                    `json:"staff_name"`
	PaymentMethod   string                    `json:"payment_method"`
	Subtotal        decimal.Decimal           `json:"subtotal"`
	TaxAmount       decimal.Decimal           `json:"tax_amount"`
	TotalAmount     decimal.Decimal           `json:"total_amount"`
	CashReceived    *decimal.Decimal          `json:"cash_received,omitempty"`
	ChangeGiven     *decimal.Decimal          `json:"change_given,omitempty"`
	Status          string                    `json:"status"`
	TransactionDate string                    `json:"transaction_date"`
	Items           []TransactionItemResponse `json:"items"`
	CreatedAt       string                    `json:"created_at"`
}
