package service_test

import (
	"context"
	"errors"
	"time"

	"github.com/robertsn808/alii/internal/model"
	"github.com/robertsn808/alii/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubStaffRepo is an in-memory StaffRepository for testing. findErr,
// when set, simulates a storage outage on lookups.
type stubStaffRepo struct {
	staff   map[string]*model.Staff // keyed by employee id
	findErr error
}

func newStubStaffRepo() *stubStaffRepo {
	return &stubStaffRepo{staff: make(map[string]*model.Staff)}
}

func (r *stubStaffRepo) Create(_ context.Context, s *model.Staff) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.staff[s.EmployeeID] = s
	return nil
}

func (r *stubStaffRepo) Update(_ context.Context, s *model.Staff) error {
	r.staff[s.EmployeeID] = s
	return nil
}

func (r *stubStaffRepo) FindByEmployeeID(_ context.Context, employeeID string) (*model.Staff, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	s, ok := r.staff[employeeID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *stubStaffRepo) FindByEmail(_ context.Context, email string) (*model.Staff, error) {
	for _, s := range r.staff {
		if s.Email != nil && *s.Email == email {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubStaffRepo) FindByRole(_ context.Context, role model.StaffRole) ([]model.Staff, error) {
	var out []model.Staff
	for _, s := range r.staff {
		if s.Role == role {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *stubStaffRepo) FindAllActiveOrderByName(_ context.Context) ([]model.Staff, error) {
	var out []model.Staff
	for _, s := range r.staff {
		if s.IsActive {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *stubStaffRepo) ExistsByEmployeeID(_ context.Context, employeeID string) (bool, error) {
	_, ok := r.staff[employeeID]
	return ok, nil
}

var _ repository.StaffRepository = (*stubStaffRepo)(nil)

// stubTransactionRepo stores transactions in memory and lets tests
// force failures and pin aggregate results.
type stubTransactionRepo struct {
	byTxID    map[string]*model.Transaction
	byReceipt map[string]*model.Transaction
	createErr error

	totalSales    decimal.Decimal
	count         int64
	salesByMethod map[model.PaymentMethod]decimal.Decimal
	dailyRows     []repository.DailySalesRow
	staffRows     []repository.StaffPerformanceRow
}

func newStubTransactionRepo() *stubTransactionRepo {
	return &stubTransactionRepo{
		byTxID:        make(map[string]*model.Transaction),
		byReceipt:     make(map[string]*model.Transaction),
		totalSales:    decimal.Zero,
		salesByMethod: make(map[model.PaymentMethod]decimal.Decimal),
	}
}

func (r *stubTransactionRepo) Create(_ context.Context, _ *gorm.DB, t *model.Transaction) error {
	if r.createErr != nil {
		return r.createErr
	}
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if _, dup := r.byTxID[t.TransactionID]; dup {
		return errors.New("duplicate key value violates unique constraint")
	}
	r.byTxID[t.TransactionID] = t
	r.byReceipt[t.ReceiptNumber] = t
	return nil
}

func (r *stubTransactionRepo) FindByTransactionID(_ context.Context, transactionID string) (*model.Transaction, error) {
	t, ok := r.byTxID[transactionID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

func (r *stubTransactionRepo) FindByReceiptNumber(_ context.Context, receiptNumber string) (*model.Transaction, error) {
	t, ok := r.byReceipt[receiptNumber]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

func (r *stubTransactionRepo) FindByDate(_ context.Context, _ time.Time) ([]model.Transaction, error) {
	var out []model.Transaction
	for _, t := range r.byTxID {
		out = append(out, *t)
	}
	return out, nil
}

func (r *stubTransactionRepo) FindByDateRange(_ context.Context, _, _ time.Time) ([]model.Transaction, error) {
	return r.FindByDate(context.Background(), time.Time{})
}

func (r *stubTransactionRepo) FindByStaffAndDate(_ context.Context, staffID uuid.UUID, _ time.Time) ([]model.Transaction, error) {
	var out []model.Transaction
	for _, t := range r.byTxID {
		if t.StaffID == staffID {
			// The real query does not join staff
			cp := *t
			cp.Staff = nil
			out = append(out, cp)
		}
	}
	return out, nil
}

func (r *stubTransactionRepo) UpdateStatus(_ context.Context, id uuid.UUID, status model.TransactionStatus) error {
	for _, t := range r.byTxID {
		if t.ID == id {
			t.Status = status
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubTransactionRepo) TotalSalesByDate(_ context.Context, _ time.Time) (decimal.Decimal, error) {
	return r.totalSales, nil
}

func (r *stubTransactionRepo) CountByDate(_ context.Context, _ time.Time) (int64, error) {
	return r.count, nil
}

func (r *stubTransactionRepo) TotalSalesByStaffAndDate(_ context.Context, _ uuid.UUID, _ time.Time) (decimal.Decimal, error) {
	return r.totalSales, nil
}

func (r *stubTransactionRepo) CountByStaffAndDate(_ context.Context, _ uuid.UUID, _ time.Time) (int64, error) {
	return r.count, nil
}

func (r *stubTransactionRepo) TotalSalesByMethodAndDate(_ context.Context, method model.PaymentMethod, _ time.Time) (decimal.Decimal, error) {
	if v, ok := r.salesByMethod[method]; ok {
		return v, nil
	}
	return decimal.Zero, nil
}

func (r *stubTransactionRepo) DailySalesSummary(_ context.Context, _, _ time.Time) ([]repository.DailySalesRow, error) {
	return r.dailyRows, nil
}

func (r *stubTransactionRepo) StaffPerformanceSummary(_ context.Context, _, _ time.Time) ([]repository.StaffPerformanceRow, error) {
	return r.staffRows, nil
}

func (r *stubTransactionRepo) DB() *gorm.DB { return nil }

var _ repository.TransactionRepository = (*stubTransactionRepo)(nil)

// stubMenuRepo is an in-memory MenuItemRepository.
type stubMenuRepo struct {
	items   map[uuid.UUID]*model.MenuItem
	findErr error
}

func newStubMenuRepo() *stubMenuRepo {
	return &stubMenuRepo{items: make(map[uuid.UUID]*model.MenuItem)}
}

func (r *stubMenuRepo) Create(_ context.Context, m *model.MenuItem) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.items[m.ID] = m
	return nil
}

func (r *stubMenuRepo) Update(_ context.Context, m *model.MenuItem) error {
	r.items[m.ID] = m
	return nil
}

func (r *stubMenuRepo) FindByID(_ context.Context, id uuid.UUID) (*model.MenuItem, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	m, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (r *stubMenuRepo) FindAvailable(_ context.Context) ([]model.MenuItem, error) {
	var out []model.MenuItem
	for _, m := range r.items {
		if m.Available {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *stubMenuRepo) FindByCategory(_ context.Context, category string) ([]model.MenuItem, error) {
	var out []model.MenuItem
	for _, m := range r.items {
		if m.Category == category {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *stubMenuRepo) FindLowStock(_ context.Context) ([]model.MenuItem, error) {
	var out []model.MenuItem
	for _, m := range r.items {
		if m.IsLowStock() {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *stubMenuRepo) AdjustStock(_ context.Context, id uuid.UUID, delta int) error {
	m, ok := r.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	m.CurrentStock += delta
	if m.CurrentStock < 0 {
		m.CurrentStock = 0
	}
	return nil
}

var _ repository.MenuItemRepository = (*stubMenuRepo)(nil)

// stubOrderRepo is an in-memory OrderRepository.
type stubOrderRepo struct {
	orders map[string]*model.Order // keyed by order number
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[string]*model.Order)}
}

func (r *stubOrderRepo) Create(_ context.Context, _ *gorm.DB, o *model.Order) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	r.orders[o.OrderNumber] = o
	return nil
}

func (r *stubOrderRepo) Update(_ context.Context, o *model.Order) error {
	r.orders[o.OrderNumber] = o
	return nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubOrderRepo) FindByOrderNumber(_ context.Context, orderNumber string) (*model.Order, error) {
	o, ok := r.orders[orderNumber]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return o, nil
}

func (r *stubOrderRepo) FindActive(_ context.Context) ([]model.Order, error) {
	var out []model.Order
	for _, o := range r.orders {
		if !o.Status.IsTerminal() {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) FindByStatus(_ context.Context, status model.OrderStatus) ([]model.Order, error) {
	var out []model.Order
	for _, o := range r.orders {
		if o.Status == status {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) DB() *gorm.DB { return nil }

var _ repository.OrderRepository = (*stubOrderRepo)(nil)

// ── Seed helpers ──────────────────────────────────────────────────────────────

func seedStaff(repo *stubStaffRepo, employeeID, first, last string) *model.Staff {
	s := &model.Staff{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		FirstName:  first,
		LastName:   last,
		Role:       model.RoleCashier,
		HireDate:   time.Now().AddDate(-1, 0, 0),
		IsActive:   true,
	}
	repo.staff[employeeID] = s
	return s
}

func seedMenuItem(repo *stubMenuRepo, name string, price float64) *model.MenuItem {
	m := &model.MenuItem{
		ID:          uuid.New(),
		Name:        name,
		Price:       decimal.NewFromFloat(price),
		Category:    "mains",
		Available:   true,
		PrepMinutes: 15,
	}
	repo.items[m.ID] = m
	return m
}
