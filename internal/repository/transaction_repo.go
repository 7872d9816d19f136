package repository

import (
	"context"
	"time"

	"github.com/robertsn808/alii/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DailySalesRow is the raw per-date aggregate scanned from the grouped
// dashboard query. Conditional sums use COALESCE so an empty group is
// zero, never NULL.
type DailySalesRow struct {
	Date             time.Time
	TransactionCount int64
	TotalSales       decimal.Decimal
	CashSales        decimal.Decimal
	CardSales        decimal.Decimal
	NFCSales         decimal.Decimal
	QRSales          decimal.Decimal
	TotalTax         decimal.Decimal
}

// StaffPerformanceRow is the raw per-staff aggregate for a date range.
type StaffPerformanceRow struct {
	EmployeeID       string
	StaffName        string
	TransactionCount int64
	TotalSales       decimal.Decimal
	AvgTransaction   decimal.Decimal
	CashHandled      decimal.Decimal
}

type TransactionRepository interface {
	// Create writes the transaction and its items inside tx as one unit.
	Create(ctx context.Context, tx *gorm.DB, t *model.Transaction) error
	FindByTransactionID(ctx context.Context, transactionID string) (*model.Transaction, error)
	FindByReceiptNumber(ctx context.Context, receiptNumber string) (*model.Transaction, error)
	FindByDate(ctx context.Context, date time.Time) ([]model.Transaction, error)
	FindByDateRange(ctx context.Context, start, end time.Time) ([]model.Transaction, error)
	FindByStaffAndDate(ctx context.Context, staffID uuid.UUID, date time.Time) ([]model.Transaction, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.TransactionStatus) error

	// Scalar aggregates — COMPLETED transactions only, zero when no rows match.
	TotalSalesByDate(ctx context.Context, date time.Time) (decimal.Decimal, error)
	CountByDate(ctx context.Context, date time.Time) (int64, error)
	TotalSalesByStaffAndDate(ctx context.Context, staffID uuid.UUID, date time.Time) (decimal.Decimal, error)
	CountByStaffAndDate(ctx context.Context, staffID uuid.UUID, date time.Time) (int64, error)
	TotalSalesByMethodAndDate(ctx context.Context, method model.PaymentMethod, date time.Time) (decimal.Decimal, error)

	// Grouped aggregates over an inclusive date range, COMPLETED only.
	DailySalesSummary(ctx context.Context, start, end time.Time) ([]DailySalesRow, error)
	StaffPerformanceSummary(ctx context.Context, start, end time.Time) ([]StaffPerformanceRow, error)

	DB() *gorm.DB // exposes the DB for transaction creation in the service layer
}

type transactionRepo struct{ db *gorm.DB }

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) DB() *gorm.DB { return r.db }

func (r *transactionRepo) Create(ctx context.Context, tx *gorm.DB, t *model.Transaction) error {
	// Items are written with the parent via the association; the caller
	// supplies tx so the whole aggregate commits or rolls back together.
	return tx.WithContext(ctx).Create(t).Error
}

func (r *transactionRepo) FindByTransactionID(ctx context.Context, transactionID string) (*model.Transaction, error) {
	var t model.Transaction
	err := r.db.WithContext(ctx).
		Preload("Items").Preload("Staff").
		Where("transaction_id = ?", transactionID).
		First(&t).Error
	return &t, err
}

func (r *transactionRepo) FindByReceiptNumber(ctx context.Context, receiptNumber string) (*model.Transaction, error) {
	var t model.Transaction
	err := r.db.WithContext(ctx).
		Preload("Items").Preload("Staff").
		Where("receipt_number = ?", receiptNumber).
		First(&t).Error
	return &t, err
}

func (r *transactionRepo) FindByDate(ctx context.Context, date time.Time) ([]model.Transaction, error) {
	var txs []model.Transaction
	err := r.db.WithContext(ctx).
		Preload("Items").Preload("Staff").
		Where("transaction_date = ?", dateOnly(date)).
		Order("created_at DESC").
		Find(&txs).Error
	return txs, err
}

func (r *transactionRepo) FindByDateRange(ctx context.Context, start, end time.Time) ([]model.Transaction, error) {
	var txs []model.Transaction
	err := r.db.WithContext(ctx).
		Preload("Items").Preload("Staff").
		Where("transaction_date BETWEEN ? AND ?", dateOnly(start), dateOnly(end)).
		Order("created_at DESC").
		Find(&txs).Error
	return txs, err
}

func (r *transactionRepo) FindByStaffAndDate(ctx context.Context, staffID uuid.UUID, date time.Time) ([]model.Transaction, error) {
	var txs []model.Transaction
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("staff_id = ? AND transaction_date = ?", staffID, dateOnly(date)).
		Order("created_at DESC").
		Find(&txs).Error
	return txs, err
}

func (r *transactionRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status model.TransactionStatus) error {
	return r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *transactionRepo) TotalSalesByDate(ctx context.Context, date time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total_amount), 0)
		FROM transactions
		WHERE transaction_date = ? AND status = 'COMPLETED'`, dateOnly(date)).
		Scan(&total).Error
	return total, err
}

func (r *transactionRepo) CountByDate(ctx context.Context, date time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("transaction_date = ? AND status = 'COMPLETED'", dateOnly(date)).
		Count(&count).Error
	return count, err
}

func (r *transactionRepo) TotalSalesByStaffAndDate(ctx context.Context, staffID uuid.UUID, date time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total_amount), 0)
		FROM transactions
		WHERE staff_id = ? AND transaction_date = ? AND status = 'COMPLETED'`,
		staffID, dateOnly(date)).
		Scan(&total).Error
	return total, err
}

func (r *transactionRepo) CountByStaffAndDate(ctx context.Context, staffID uuid.UUID, date time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("staff_id = ? AND transaction_date = ? AND status = 'COMPLETED'", staffID, dateOnly(date)).
		Count(&count).Error
	return count, err
}

func (r *transactionRepo) TotalSalesByMethodAndDate(ctx context.Context, method model.PaymentMethod, date time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total_amount), 0)
		FROM transactions
		WHERE payment_method = ? AND transaction_date = ? AND status = 'COMPLETED'`,
		method, dateOnly(date)).
		Scan(&total).Error
	return total, err
}

func (r *transactionRepo) DailySalesSummary(ctx context.Context, start, end time.Time) ([]DailySalesRow, error) {
	var rows []DailySalesRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			transaction_date                                                        AS date,
			COUNT(*)                                                                AS transaction_count,
			COALESCE(SUM(total_amount), 0)                                          AS total_sales,
			COALESCE(SUM(CASE WHEN payment_method = 'CASH' THEN total_amount ELSE 0 END), 0) AS cash_sales,
			COALESCE(SUM(CASE WHEN payment_method = 'CARD' THEN total_amount ELSE 0 END), 0) AS card_sales,
			COALESCE(SUM(CASE WHEN payment_method = 'NFC'  THEN total_amount ELSE 0 END), 0) AS nfc_sales,
			COALESCE(SUM(CASE WHEN payment_method = 'QR'   THEN total_amount ELSE 0 END), 0) AS qr_sales,
			COALESCE(SUM(tax_amount), 0)                                            AS total_tax
		FROM transactions
		WHERE transaction_date BETWEEN ? AND ? AND status = 'COMPLETED'
		GROUP BY transaction_date
		ORDER BY transaction_date DESC`,
		dateOnly(start), dateOnly(end)).
		Scan(&rows).Error
	return rows, err
}

func (r *transactionRepo) StaffPerformanceSummary(ctx context.Context, start, end time.Time) ([]StaffPerformanceRow, error) {
	var rows []StaffPerformanceRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			s.employee_id                               AS employee_id,
			s.first_name || ' ' || s.last_name          AS staff_name,
			COUNT(*)                                    AS transaction_count,
			COALESCE(SUM(t.total_amount), 0)            AS total_sales,
			COALESCE(AVG(t.total_amount), 0)            AS avg_transaction,
			COALESCE(SUM(CASE WHEN t.payment_method = 'CASH' THEN t.total_amount ELSE 0 END), 0) AS cash_handled
		FROM transactions t
		JOIN staff s ON s.id = t.staff_id
		WHERE t.transaction_date BETWEEN ? AND ? AND t.status = 'COMPLETED'
		GROUP BY s.id, s.employee_id, s.first_name, s.last_name
		ORDER BY SUM(t.total_amount) DESC`,
		dateOnly(start), dateOnly(end)).
		Scan(&rows).Error
	return rows, err
}

// dateOnly truncates a timestamp to its calendar date for comparisons
// against the DATE-typed transaction_date column.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
