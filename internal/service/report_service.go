package service

import (
	"context"
	"time"

	"github.com/robertsn808/alii/internal/dto"
	"github.com/robertsn808/alii/internal/model"
	"github.com/robertsn808/alii/internal/poserr"
	"github.com/robertsn808/alii/internal/repository"
)

// ReportService folds ledger rows into dashboard summaries. All reads
// are computed fresh from the transaction ledger on every call; nothing
// is cached or materialized.
type ReportService interface {
	DailySummary(ctx context.Context, date time.Time) (*dto.DailySummary, error)
	StaffPerformance(ctx context.Context, employeeID string, date time.Time) (*dto.StaffPerformance, error)
	DailySalesSummary(ctx context.Context, start, end time.Time) ([]dto.DailySalesRow, error)
	StaffPerformanceSummary(ctx context.Context, start, end time.Time) ([]dto.StaffPerformanceRow, error)
}

type reportService struct {
	txRepo    repository.TransactionRepository
	staffRepo repository.StaffRepository
}

func NewReportService(txRepo repository.TransactionRepository, staffRepo repository.StaffRepository) ReportService {
	return &reportService{txRepo: txRepo, staffRepo: staffRepo}
}

// DailySummary totals one date's completed sales, split by payment
// method. A date with no sales yields zeros everywhere, never nulls,
// and the four method figures always add up to the overall total.
func (s *reportService) DailySummary(ctx context.Context, date time.Time) (*dto.DailySummary, error) {
	totalSales, err := s.txRepo.TotalSalesByDate(ctx, date)
	if err != nil {
		return nil, poserr.NewPersistence("daily summary", err)
	}
	count, err := s.txRepo.CountByDate(ctx, date)
	if err != nil {
		return nil, poserr.NewPersistence("daily summary", err)
	}

	summary := &dto.DailySummary{
		Date:             date.Format("2006-01-02"),
		TransactionCount: count,
		TotalSales:       totalSales,
	}

	for _, method := range model.PaymentMethods {
		sales, err := s.txRepo.TotalSalesByMethodAndDate(ctx, method, date)
		if err != nil {
			return nil, poserr.NewPersistence("daily summary", err)
		}
		switch method {
		case model.PaymentCash:
			summary.CashSales = sales
		case model.PaymentCard:
			summary.CardSales = sales
		case model.PaymentNFC:
			summary.NFCSales = sales
		case model.PaymentQR:
			summary.QRSales = sales
		}
	}
	return summary, nil
}

func (s *reportService) StaffPerformance(ctx context.Context, employeeID string, date time.Time) (*dto.StaffPerformance, error) {
	staff, err := s.staffRepo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, lookupError(err, "staff", employeeID)
	}

	totalSales, err := s.txRepo.TotalSalesByStaffAndDate(ctx, staff.ID, date)
	if err != nil {
		return nil, poserr.NewPersistence("staff performance", err)
	}
	count, err := s.txRepo.CountByStaffAndDate(ctx, staff.ID, date)
	if err != nil {
		return nil, poserr.NewPersistence("staff performance", err)
	}

	return &dto.StaffPerformance{
		EmployeeID:       staff.EmployeeID,
		StaffName:        staff.FullName(),
		Date:             date.Format("2006-01-02"),
		TransactionCount: count,
		TotalSales:       totalSales,
	}, nil
}

func (s *reportService) DailySalesSummary(ctx context.Context, start, end time.Time) ([]dto.DailySalesRow, error) {
	rows, err := s.txRepo.DailySalesSummary(ctx, start, end)
	if err != nil {
		return nil, poserr.NewPersistence("daily sales summary", err)
	}
	out := make([]dto.DailySalesRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.DailySalesRow{
			Date:             r.Date.Format("2006-01-02"),
			TransactionCount: r.TransactionCount,
			TotalSales:       r.TotalSales,
			CashSales:        r.CashSales,
			CardSales:        r.CardSales,
			NFCSales:         r.NFCSales,
			QRSales:          r.QRSales,
			TotalTax:         r.TotalTax,
		})
	}
	return out, nil
}

func (s *reportService) StaffPerformanceSummary(ctx context.Context, start, end time.Time) ([]dto.StaffPerformanceRow, error) {
	rows, err := s.txRepo.StaffPerformanceSummary(ctx, start, end)
	if err != nil {
		return nil, poserr.NewPersistence("staff performance summary", err)
	}
	out := make([]dto.StaffPerformanceRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.StaffPerformanceRow{
			EmployeeID:       r.EmployeeID,
			StaffName:        r.StaffName,
			TransactionCount: r.TransactionCount,
			TotalSales:       r.TotalSales,
			AvgTransaction:   r.AvgTransaction,
			CashHandled:      r.CashHandled,
		})
	}
	return out, nil
}
