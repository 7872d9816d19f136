package service

import (
	"context"
	"time"

	"github.com/robertsn808/alii/internal/dto"
	"github.com/robertsn808/alii/internal/model"
	"github.com/robertsn808/alii/internal/money"
	"github.com/robertsn808/alii/internal/poserr"
	"github.com/robertsn808/alii/internal/repository"
	"github.com/robertsn808/alii/internal/worker"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type TransactionService interface {
	Create(ctx context.Context, req dto.CreateTransactionRequest) (*dto.TransactionResponse, error)
	FindByTransactionID(ctx context.Context, transactionID string) (*dto.TransactionResponse, error)
	FindByReceiptNumber(ctx context.Context, receiptNumber string) (*dto.TransactionResponse, error)
	TodaysTransactions(ctx context.Context) ([]dto.TransactionResponse, error)
	TransactionsByDateRange(ctx context.Context, start, end time.Time) ([]dto.TransactionResponse, error)
	StaffTransactionsForDate(ctx context.Context, employeeID string, date time.Time) ([]dto.TransactionResponse, error)
	Refund(ctx context.Context, transactionID string) error
	Void(ctx context.Context, transactionID string) error
}

type transactionService struct {
	repo       repository.TransactionRepository
	staffRepo  repository.StaffRepository
	dispatcher *worker.Dispatcher
}

func NewTransactionService(
	repo repository.TransactionRepository,
	staffRepo repository.StaffRepository,
	dispatcher *worker.Dispatcher,
) TransactionService {
	return &transactionService{repo: repo, staffRepo: staffRepo, dispatcher: dispatcher}
}

// ── Create ────────────────────────────────────────────────────────────────────
// Ledger write path:
//   1. Validate the request (tag validation + monetary consistency)
//   2. Resolve staff by employee id
//   3. Build the transaction with derived line totals and cash change
//   4. BEGIN TX: create transaction + items as one unit
//   5. COMMIT
// Uniqueness of transaction_id / receipt_number is enforced by the
// storage layer; a constraint violation surfaces as a persistence
// failure with nothing written.

func (s *transactionService) Create(ctx context.Context, req dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	method := model.PaymentMethod(req.PaymentMethod)
	if !method.Valid() {
		return nil, poserr.NewFieldValidation("payment_method", "unknown payment method")
	}

	// The stored total must agree with its parts; a drifted caller total
	// would corrupt every aggregate downstream.
	if !money.Sum(req.Subtotal, req.TaxAmount).Equal(req.TotalAmount) {
		return nil, poserr.NewFieldValidation("total_amount", "must equal subtotal + tax_amount")
	}

	if method == model.PaymentCash && req.CashReceived == nil {
		return nil, poserr.NewFieldValidation("cash_received", "required for CASH payments")
	}

	// 2. Resolve staff
	staff, err := s.staffRepo.FindByEmployeeID(ctx, req.StaffEmployeeID)
	if err != nil {
		return nil, lookupError(err, "staff", req.StaffEmployeeID)
	}

	// 3. Build the aggregate
	txn := model.Transaction{
		TransactionID:   req.TransactionID,
		ReceiptNumber:   req.ReceiptNumber,
		StaffID:         staff.ID,
		PaymentMethod:   method,
		Subtotal:        req.Subtotal,
		TaxAmount:       req.TaxAmount,
		TotalAmount:     req.TotalAmount,
		Status:          model.TxCompleted,
		TransactionDate: time.Now(),
	}

	for _, item := range req.Items {
		txn.Items = append(txn.Items, model.NewTransactionItem(item.ItemName, item.ItemPrice, item.Quantity))
	}

	// Change is only ever derived for cash; CARD/NFC/QR leave both
	// fields nil. Underpayment is flagged, not rejected — the register
	// may legitimately record an IOU-style shortfall for review.
	if method == model.PaymentCash {
		change := money.Change(*req.CashReceived, req.TotalAmount)
		txn.CashReceived = req.CashReceived
		txn.ChangeGiven = &change
		if change.IsNegative() {
			log.Warn().
				Str("transaction_id", req.TransactionID).
				Str("cash_received", req.CashReceived.String()).
				Str("total_amount", req.TotalAmount.String()).
				Msg("cash received is less than total — negative change recorded")
		}
	}

	// 4. Atomic write: transaction + all items, or nothing
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.Create(ctx, tx, &txn)
	})
	if txErr != nil {
		perr := poserr.NewPersistence("transaction create", txErr)
		s.reportError(ctx, perr, "createTransaction", req.TransactionID)
		return nil, perr
	}

	txn.Staff = staff
	return transactionToResponse(&txn), nil
}

func (s *transactionService) FindByTransactionID(ctx context.Context, transactionID string) (*dto.TransactionResponse, error) {
	txn, err := s.repo.FindByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, lookupError(err, "transaction", transactionID)
	}
	return transactionToResponse(txn), nil
}

func (s *transactionService) FindByReceiptNumber(ctx context.Context, receiptNumber string) (*dto.TransactionResponse, error) {
	txn, err := s.repo.FindByReceiptNumber(ctx, receiptNumber)
	if err != nil {
		return nil, lookupError(err, "transaction", receiptNumber)
	}
	return transactionToResponse(txn), nil
}

func (s *transactionService) TodaysTransactions(ctx context.Context) ([]dto.TransactionResponse, error) {
	txs, err := s.repo.FindByDate(ctx, time.Now())
	if err != nil {
		return nil, poserr.NewPersistence("todays transactions", err)
	}
	return transactionsToResponses(txs), nil
}

func (s *transactionService) TransactionsByDateRange(ctx context.Context, start, end time.Time) ([]dto.TransactionResponse, error) {
	txs, err := s.repo.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, poserr.NewPersistence("transactions by date range", err)
	}
	return transactionsToResponses(txs), nil
}

func (s *transactionService) StaffTransactionsForDate(ctx context.Context, employeeID string, date time.Time) ([]dto.TransactionResponse, error) {
	staff, err := s.staffRepo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, lookupError(err, "staff", employeeID)
	}
	txs, err := s.repo.FindByStaffAndDate(ctx, staff.ID, date)
	if err != nil {
		return nil, poserr.NewPersistence("staff transactions", err)
	}
	// The per-staff query does not join staff; the rows all belong to
	// the member just resolved.
	for i := range txs {
		txs[i].Staff = staff
	}
	return transactionsToResponses(txs), nil
}

// Refund marks a completed transaction as refunded. Only COMPLETED
// transactions can change state.
func (s *transactionService) Refund(ctx context.Context, transactionID string) error {
	return s.updateStatus(ctx, transactionID, model.TxRefunded)
}

// Void marks a completed transaction as voided.
func (s *transactionService) Void(ctx context.Context, transactionID string) error {
	return s.updateStatus(ctx, transactionID, model.TxVoided)
}

func (s *transactionService) updateStatus(ctx context.Context, transactionID string, status model.TransactionStatus) error {
	txn, err := s.repo.FindByTransactionID(ctx, transactionID)
	if err != nil {
		return lookupError(err, "transaction", transactionID)
	}
	if txn.Status != model.TxCompleted {
		return poserr.NewFieldValidation("status", "only COMPLETED transactions can be "+string(status))
	}
	if err := s.repo.UpdateStatus(ctx, txn.ID, status); err != nil {
		return poserr.NewPersistence("transaction status update", err)
	}
	return nil
}

// reportError forwards a failure to the external monitor, best-effort.
// A reporting failure never changes the service outcome.
func (s *transactionService) reportError(ctx context.Context, err error, operation, ref string) {
	if s.dispatcher == nil {
		return
	}
	report := worker.ErrorReport{
		Kind:      worker.ReportDatabase,
		Message:   err.Error(),
		Operation: operation,
		Reference: ref,
	}
	if enqErr := s.dispatcher.EnqueueErrorReport(ctx, report); enqErr != nil {
		log.Warn().Err(enqErr).Msg("failed to enqueue error report")
	}
}

// ── Mappers ───────────────────────────────────────────────────────────────────

func transactionToResponse(t *model.Transaction) *dto.TransactionResponse {
	items := make([]dto.TransactionItemResponse, 0, len(t.Items))
	for _, item := range t.Items {
		items = append(items, dto.TransactionItemResponse{
			ItemName:  item.ItemName,
			ItemPrice: item.ItemPrice,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal,
		})
	}
	employeeID, staffName := "", ""
	if t.Staff != nil {
		employeeID = t.Staff.EmployeeID
		staffName = t.Staff.FullName()
	}
	return &dto.TransactionResponse{
		ID:              t.ID.String(),
		TransactionID:   t.TransactionID,
		ReceiptNumber:   t.ReceiptNumber,
		StaffEmployeeID: employeeID,
		StaffName:       staffName,
		PaymentMethod:   string(t.PaymentMethod),
		Subtotal:        t.Subtotal,
		TaxAmount:       t.TaxAmount,
		TotalAmount:     t.TotalAmount,
		CashReceived:    t.CashReceived,
		ChangeGiven:     t.ChangeGiven,
		Status:          string(t.Status),
		TransactionDate: t.TransactionDate.Format("2006-01-02"),
		Items:           items,
		CreatedAt:       t.CreatedAt.Format(time.RFC3339),
	}
}

func transactionsToResponses(txs []model.Transaction) []dto.TransactionResponse {
	out := make([]dto.TransactionResponse, 0, len(txs))
	for i := range txs {
		out = append(out, *transactionToResponse(&txs[i]))
	}
	return out
}
