package dto

import "github.com/shopspring/decimal"

// Reporting output shapes. Every monetary field defaults to zero, never
// absent: a day or staff member with no completed transactions reports
// 0.00 across the board.

// DailySummary is the single-date dashboard row.
type DailySummary struct {
	Date             string          `json:"date"`
	TransactionCount int64           `json:"transaction_count"`
	TotalSales       decimal.Decimal `json:"total_sales"`
	CashSales        decimal.Decimal `json:"cash_sales"`
	CardSales        decimal.Decimal `json:"card_sales"`
	NFCSales         decimal.Decimal `json:"nfc_sales"`
	QRSales          decimal.Decimal `json:"qr_sales"`
}

// StaffPerformance is one staff member's figures for a single date.
type StaffPerformance struct {
	EmployeeID       string          `json:"employee_id"`
	StaffName        string          `json:"staff_name"`
	Date             string          `json:"date"`
	TransactionCount int64           `json:"transaction_count"`
	TotalSales       decimal.Decimal `json:"total_sales"`
}

// DailySalesRow is one calendar date within a range summary.
type DailySalesRow struct {
	Date             string          `json:"date"`
	TransactionCount int64           `json:"transaction_count"`
	TotalSales       decimal.Decimal `json:"total_sales"`
	CashSales        decimal.Decimal `json:"cash_sales"`
	CardSales        decimal.Decimal `json:"card_sales"`
	NFCSales         decimal.Decimal `json:"nfc_sales"`
	QRSales          decimal.Decimal `json:"qr_sales"`
	TotalTax         decimal.Decimal `json:"total_tax"`
}

// StaffPerformanceRow is one staff member within a range summary,
// ordered by TotalSales descending.
type StaffPerformanceRow struct {
	EmployeeID       string          `json:"employee_id"`
	StaffName        string          `json:"staff_name"`
	TransactionCount int64           `json:"transaction_count"`
	TotalSales       decimal.Decimal `json:"total_sales"`
	AvgTransaction   decimal.Decimal `json:"avg_transaction_amount"`
	CashHandled      decimal.Decimal `json:"cash_handled"`
}
