package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/robertsn808/alii/internal/dto"
	"github.com/robertsn808/alii/internal/model"
	"github.com/robertsn808/alii/internal/poserr"
	"github.com/robertsn808/alii/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTransactionSvc() (service.TransactionService, *stubTransactionRepo, *stubStaffRepo) {
	txRepo := newStubTransactionRepo()
	staffRepo := newStubStaffRepo()
	svc := service.NewTransactionService(txRepo, staffRepo, nil)
	return svc, txRepo, staffRepo
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func cashSale(staffID string) dto.CreateTransactionRequest {
	cash := dec("30.00")
	return dto.CreateTransactionRequest{
		TransactionID:   "TXN-1",
		ReceiptNumber:   "R-0001",
		StaffEmployeeID: staffID,
		PaymentMethod:   "CASH",
		Subtotal:        dec("26.50"),
		TaxAmount:       dec("0.00"),
		TotalAmount:     dec("26.50"),
		CashReceived:    &cash,
		Items: []dto.TransactionItemRequest{
			{ItemName: "Ahi Poke", ItemPrice: dec("12.00"), Quantity: 2},
			{ItemName: "Soda", ItemPrice: dec("2.50"), Quantity: 1},
		},
	}
}

func TestCreateTransaction_CashWithChange(t *testing.T) {
	svc, txRepo, staffRepo := buildTransactionSvc()
	seedStaff(staffRepo, "E100", "Jane", "Doe")

	resp, err := svc.Create(context.Background(), cashSale("E100"))
	require.NoError(t, err)

	assert.Equal(t, "TXN-1", resp.TransactionID)
	assert.Equal(t, "Jane Doe", resp.StaffName)
	assert.Equal(t, "COMPLETED", resp.Status)

	// Line totals derived from unit price × quantity
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "24", resp.Items[0].LineTotal.String())
	assert.Equal(t, "2.5", resp.Items[1].LineTotal.String())

	// Cash change: 30.00 − 26.50 = 3.50
	require.NotNil(t, resp.ChangeGiven)
	assert.True(t, resp.ChangeGiven.Equal(dec("3.50")))

	// Written through to the ledger
	stored, err := txRepo.FindByTransactionID(context.Background(), "TXN-1")
	require.NoError(t, err)
	assert.Len(t, stored.Items, 2)
	assert.True(t, stored.TotalAmount.Equal(dec("26.50")))
}

func TestCreateTransaction_UnknownStaff(t *testing.T) {
	svc, txRepo, _ := buildTransactionSvc()

	_, err := svc.Create(context.Background(), cashSale("GHOST"))
	require.Error(t, err)
	assert.True(t, poserr.IsNotFound(err))

	// Nothing written
	_, err = txRepo.FindByTransactionID(context.Background(), "TXN-1")
	assert.Error(t, err)
}

func TestCreateTransaction_CardNeverRecordsChange(t *testing.T) {
	svc, txRepo, staffRepo := buildTransactionSvc()
	seedStaff(staffRepo, "E100", "Jane", "Doe")

	req := cashSale("E100")
	req.PaymentMethod = "CARD"
	req.CashReceived = nil

	resp, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, resp.CashReceived)
	assert.Nil(t, resp.ChangeGiven)

	stored, _ := txRepo.FindByTransactionID(context.Background(), "TXN-1")
	assert.Nil(t, stored.ChangeGiven)
}

func TestCreateTransaction_CashRequiresCashReceived(t *testing.T) {
	svc, _, staffRepo := buildTransactionSvc()
	seedStaff(staffRepo, "E100", "Jane", "Doe")

	req := cashSale("E100")
	req.CashReceived = nil

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.True(t, poserr.IsValidation(err))
}

func TestCreateTransaction_NegativeChangeRecorded(t *testing.T) {
	svc, _, staffRepo := buildTransactionSvc()
	seedStaff(staffRepo, "E100", "Jane", "Doe")

	req := cashSale("E100")
	short := dec("20.00")
	req.CashReceived = &short

	// Underpayment is recorded, not rejected
	resp, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp.ChangeGiven)
	assert.True(t, resp.ChangeGiven.Equal(dec("-6.50")))
}

func TestCreateTransaction_TotalMustEqualParts(t *testing.T) {
	svc, _, staffRepo := buildTransactionSvc()
	seedStaff(staffRepo, "E100", "Jane", "Doe")

	req := cashSale("E100")
	req.TotalAmount = dec("99.99")

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.True(t, poserr.IsValidation(err))
}

func TestCreateTransaction_RejectsEmptyItems(t *testing.T) {
	svc, _, staffRepo := buildTransactionSvc()
	seedStaff(staffRepo, "E100", "Jane", "Doe")

	req := cashSale("E100")
	req.Items = nil

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.True(t, poserr.IsValidation(err))
}

func TestCreateTransaction_RejectsUnknownPaymentMethod(t *testing.T) {
	svc, _, staffRepo := buildTransactionSvc()
	seedStaff(staffRepo, "E100", "Jane", "Doe")

	req := cashSale("E100")
	req.PaymentMethod = "BARTER"

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.True(t, poserr.IsValidation(err))
}

func TestCreateTransaction_StaffLookupOutageIsNotNotFound(t *testing.T) {
	svc, _, staffRepo := buildTransactionSvc()
	seedStaff(staffRepo, "E100", "Jane", "Doe")
	staffRepo.findErr = errors.New("connection refused")

	// A storage outage during staff resolution must not tell the
	// caller the employee does not exist.
	_, err := svc.Create(context.Background(), cashSale("E100"))
	require.Error(t, err)
	assert.True(t, poserr.IsPersistence(err))
	assert.False(t, poserr.IsNotFound(err))
}

func TestCreateTransaction_StorageFailureSurfacesAsPersistence(t *testing.T) {
	svc, txRepo, staffRepo := buildTransactionSvc()
	seedStaff(staffRepo, "E100", "Jane", "Doe")
	txRepo.createErr = errors.New("connection refused")

	_, err := svc.Create(context.Background(), cashSale("E100"))
	require.Error(t, err)
	assert.True(t, poserr.IsPersistence(err))
}

func TestFindTransaction_ByTransactionIDAndReceipt(t *testing.T) {
	svc, _, staffRepo := buildTransactionSvc()
	seedStaff(staffRepo, "E100", "Jane", "Doe")

	_, err := svc.Create(context.Background(), cashSale("E100"))
	require.NoError(t, err)

	byID, err := svc.FindByTransactionID(context.Background(), "TXN-1")
	require.NoError(t, err)
	byReceipt, err := svc.FindByReceiptNumber(context.Background(), "R-0001")
	require.NoError(t, err)
	assert.Equal(t, byID.ID, byReceipt.ID)

	_, err = svc.FindByTransactionID(context.Background(), "missing")
	assert.True(t, poserr.IsNotFound(err))
}

func TestStaffTransactionsForDate_CarriesStaffIdentity(t *testing.T) {
	svc, _, staffRepo := buildTransactionSvc()
	seedStaff(staffRepo, "E100", "Jane", "Doe")
	_, err := svc.Create(context.Background(), cashSale("E100"))
	require.NoError(t, err)

	txs, err := svc.StaffTransactionsForDate(context.Background(), "E100", time.Now())
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "E100", txs[0].StaffEmployeeID)
	assert.Equal(t, "Jane Doe", txs[0].StaffName)
}

func TestRefund_OnlyFromCompleted(t *testing.T) {
	svc, txRepo, staffRepo := buildTransactionSvc()
	seedStaff(staffRepo, "E100", "Jane", "Doe")
	_, err := svc.Create(context.Background(), cashSale("E100"))
	require.NoError(t, err)

	require.NoError(t, svc.Refund(context.Background(), "TXN-1"))
	stored, _ := txRepo.FindByTransactionID(context.Background(), "TXN-1")
	assert.Equal(t, model.TxRefunded, stored.Status)

	// A refunded transaction cannot be voided afterwards
	err = svc.Void(context.Background(), "TXN-1")
	require.Error(t, err)
	assert.True(t, poserr.IsValidation(err))
}

func TestVoid_UnknownTransaction(t *testing.T) {
	svc, _, _ := buildTransactionSvc()
	err := svc.Void(context.Background(), "TXN-404")
	assert.True(t, poserr.IsNotFound(err))
}
