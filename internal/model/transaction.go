package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/robertsn808/alii/internal/money"
)

// Transaction is one completed sale in the ledger. It exclusively owns
// its Items: they are written with the parent in a single atomic
// operation and removed with it.
//
// CashReceived/ChangeGiven are only meaningful for CASH payments and
// stay nil otherwise. TransactionDate is the calendar date the sale
// belongs to, distinct from the CreatedAt timestamp.
type Transaction struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TransactionID   string            `gorm:"uniqueIndex;not null;size:100"`
	ReceiptNumber   string            `gorm:"uniqueIndex;not null;size:20"`
	StaffID         uuid.UUID         `gorm:"type:uuid;index;not null"`
	PaymentMethod   PaymentMethod     `gorm:"type:varchar(20);not null"`
	Subtotal        decimal.Decimal   `gorm:"type:decimal(10,2);not null"`
	TaxAmount       decimal.Decimal   `gorm:"type:decimal(10,2);not null"`
	TotalAmount     decimal.Decimal   `gorm:"type:decimal(10,2);not null"`
	CashReceived    *decimal.Decimal  `gorm:"type:decimal(10,2)"`
	ChangeGiven     *decimal.Decimal  `gorm:"type:decimal(10,2)"`
	Status          TransactionStatus `gorm:"type:varchar(20);not null;default:'COMPLETED'"`
	TransactionDate time.Time         `gorm:"type:date;index;not null"`
	CreatedAt       time.Time         `gorm:"index"`
	UpdatedAt       time.Time

	Staff *Staff            `gorm:"foreignKey:StaffID"`
	Items []TransactionItem `gorm:"foreignKey:TransactionID;references:ID;constraint:OnDelete:CASCADE"`
}

// TransactionItem is one sold line. LineTotal is derived once at
// construction (and on explicit updates), never as a setter side
// effect.
type TransactionItem struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TransactionID uuid.UUID       `gorm:"type:uuid;index;not null"`
	ItemName      string          `gorm:"not null;size:255"`
	ItemPrice     decimal.Decimal `gorm:"type:decimal(8,2);not null"`
	Quantity      int             `gorm:"not null"`
	LineTotal     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt     time.Time
}

// NewTransactionItem builds a line with its total computed from the
// unit price and quantity.
func NewTransactionItem(name string, unitPrice decimal.Decimal, quantity int) TransactionItem {
	return TransactionItem{
		ItemName:  name,
		ItemPrice: unitPrice,
		Quantity:  quantity,
		LineTotal: money.LineTotal(unitPrice, quantity),
	}
}
