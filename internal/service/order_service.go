package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/robertsn808/alii/internal/dto"
	"github.com/robertsn808/alii/internal/model"
	"github.com/robertsn808/alii/internal/money"
	"github.com/robertsn808/alii/internal/poserr"
	"github.com/robertsn808/alii/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderService interface {
	Create(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (*dto.OrderResponse, error)
	ListActive(ctx context.Context) ([]dto.OrderResponse, error)
	ListByStatus(ctx context.Context, status string) ([]dto.OrderResponse, error)
	UpdateStatus(ctx context.Context, orderNumber string, req dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error)
	Cancel(ctx context.Context, orderNumber string) error
	MarkPaid(ctx context.Context, orderNumber string, req dto.MarkOrderPaidRequest) error
}

type orderService struct {
	repo        repository.OrderRepository
	menuRepo    repository.MenuItemRepository
	prepMinutes int
}

// NewOrderService builds the ordering service. defaultPrepMinutes is
// the lead time applied when an order has no scheduled time.
func NewOrderService(repo repository.OrderRepository, menuRepo repository.MenuItemRepository, defaultPrepMinutes int) OrderService {
	if defaultPrepMinutes <= 0 {
		defaultPrepMinutes = 15
	}
	return &orderService{repo: repo, menuRepo: menuRepo, prepMinutes: defaultPrepMinutes}
}

// newOrderNumber generates a unique human-readable order number,
// e.g. "ALI1735689600000-A3F9".
func newOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:4])
	return fmt.Sprintf("ALI%d-%s", now.UnixMilli(), suffix)
}

// ── Create ────────────────────────────────────────────────────────────────────
// Order intake:
//   1. Validate request shape
//   2. Resolve each menu item; unavailable items reject the order
//   3. Capture unit prices at order time, derive line subtotals
//   4. Derive order totals and the estimated ready time
//   5. BEGIN TX: create order + items as one unit; COMMIT

func (s *orderService) Create(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	now := time.Now()

	subtotal := decimal.Zero
	items := make([]model.OrderItem, 0, len(req.Items))
	for _, ir := range req.Items {
		mid, err := uuid.Parse(ir.MenuItemID)
		if err != nil {
			return nil, poserr.NewFieldValidation("menu_item_id", "not a valid id")
		}
		menuItem, err := s.menuRepo.FindByID(ctx, mid)
		if err != nil {
			return nil, lookupError(err, "menu item", ir.MenuItemID)
		}
		if !menuItem.Available {
			return nil, poserr.NewFieldValidation("menu_item_id", menuItem.Name+" is not available")
		}

		item := model.NewOrderItem(menuItem, ir.Quantity)
		item.MenuItem = menuItem
		if len(ir.Customizations) > 0 {
			joined := strings.Join(ir.Customizations, ", ")
			item.Customizations = &joined
		}
		item.SpecialInstructions = ir.SpecialInstructions
		items = append(items, item)
		subtotal = subtotal.Add(item.Subtotal)
	}

	total := money.Sum(subtotal, req.TaxAmount, req.ServiceFee)

	// Estimated ready time: the scheduled time when given, otherwise
	// now plus the default lead time.
	ready := now.Add(time.Duration(s.prepMinutes) * time.Minute)
	if req.ScheduledTime != nil {
		ready = *req.ScheduledTime
	}

	order := model.Order{
		OrderNumber:         newOrderNumber(now),
		CustomerName:        req.CustomerName,
		CustomerEmail:       req.CustomerEmail,
		CustomerPhone:       req.CustomerPhone,
		Status:              model.OrderPending,
		OrderType:           model.OrderType(req.OrderType),
		ScheduledTime:       req.ScheduledTime,
		EstimatedReadyTime:  &ready,
		Subtotal:            subtotal,
		TaxAmount:           req.TaxAmount,
		ServiceFee:          req.ServiceFee,
		TotalAmount:         total,
		PaymentStatus:       model.PayPending,
		SpecialInstructions: req.SpecialInstructions,
		Items:               items,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.Create(ctx, tx, &order)
	})
	if txErr != nil {
		return nil, poserr.NewPersistence("order create", txErr)
	}

	return orderToResponse(&order, now), nil
}

func (s *orderService) GetByOrderNumber(ctx context.Context, orderNumber string) (*dto.OrderResponse, error) {
	order, err := s.repo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, lookupError(err, "order", orderNumber)
	}
	return orderToResponse(order, time.Now()), nil
}

func (s *orderService) ListActive(ctx context.Context) ([]dto.OrderResponse, error) {
	orders, err := s.repo.FindActive(ctx)
	if err != nil {
		return nil, poserr.NewPersistence("active orders", err)
	}
	return ordersToResponses(orders), nil
}

func (s *orderService) ListByStatus(ctx context.Context, status string) ([]dto.OrderResponse, error) {
	st := model.OrderStatus(status)
	if !st.Valid() {
		return nil, poserr.NewFieldValidation("status", "unknown order status")
	}
	orders, err := s.repo.FindByStatus(ctx, st)
	if err != nil {
		return nil, poserr.NewPersistence("orders by status", err)
	}
	return ordersToResponses(orders), nil
}

// UpdateStatus advances the order along its status machine. Illegal
// jumps (e.g. PENDING → READY) are rejected.
func (s *orderService) UpdateStatus(ctx context.Context, orderNumber string, req dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	order, err := s.repo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, lookupError(err, "order", orderNumber)
	}

	next := model.OrderStatus(req.Status)
	if !order.Status.CanTransitionTo(next) {
		return nil, poserr.NewFieldValidation("status",
			fmt.Sprintf("cannot transition from %s to %s", order.Status, next))
	}

	order.Status = next
	if req.StaffNotes != nil {
		order.StaffNotes = req.StaffNotes
	}
	if next == model.OrderCompleted && order.CompletedAt == nil {
		now := time.Now()
		order.CompletedAt = &now
	}

	if err := s.repo.Update(ctx, order); err != nil {
		return nil, poserr.NewPersistence("order status update", err)
	}
	return orderToResponse(order, time.Now()), nil
}

// Cancel is only possible before preparation starts.
func (s *orderService) Cancel(ctx context.Context, orderNumber string) error {
	order, err := s.repo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return lookupError(err, "order", orderNumber)
	}
	if !order.CanBeCancelled() {
		return poserr.NewFieldValidation("status", "order can no longer be cancelled")
	}
	order.Status = model.OrderCancelled
	if err := s.repo.Update(ctx, order); err != nil {
		return poserr.NewPersistence("order cancel", err)
	}
	return nil
}

// MarkPaid records a completed external payment against the order.
func (s *orderService) MarkPaid(ctx context.Context, orderNumber string, req dto.MarkOrderPaidRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}
	order, err := s.repo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return lookupError(err, "order", orderNumber)
	}

	method := model.PaymentMethod(req.PaymentMethod)
	order.PaymentMethod = &method
	order.PaymentStatus = model.PayCompleted
	order.PaymentTransactionID = req.PaymentTransactionID
	order.UppPaymentID = req.UppPaymentID

	if err := s.repo.Update(ctx, order); err != nil {
		return poserr.NewPersistence("order payment update", err)
	}
	return nil
}

// ── Mappers ───────────────────────────────────────────────────────────────────

func orderToResponse(o *model.Order, now time.Time) *dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		name := ""
		if item.MenuItem != nil {
			name = item.MenuItem.Name
		}
		items = append(items, dto.OrderItemResponse{
			MenuItemID: item.MenuItemID.String(),
			Name:       name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			Subtotal:   item.Subtotal,
		})
	}
	var method *string
	if o.PaymentMethod != nil {
		m := string(*o.PaymentMethod)
		method = &m
	}
	return &dto.OrderResponse{
		ID:                 o.ID.String(),
		OrderNumber:        o.OrderNumber,
		CustomerName:       o.CustomerName,
		CustomerPhone:      o.CustomerPhone,
		Status:             string(o.Status),
		OrderType:          string(o.OrderType),
		Items:              items,
		Subtotal:           o.Subtotal,
		TaxAmount:          o.TaxAmount,
		ServiceFee:         o.ServiceFee,
		TotalAmount:        o.TotalAmount,
		PaymentMethod:      method,
		PaymentStatus:      string(o.PaymentStatus),
		EstimatedReadyTime: o.EstimatedReadyTime,
		EstimatedWaitMins:  o.EstimatedWaitMinutes(now),
		CreatedAt:          o.CreatedAt.Format(time.RFC3339),
	}
}

func ordersToResponses(orders []model.Order) []dto.OrderResponse {
	now := time.Now()
	out := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, *orderToResponse(&orders[i], now))
	}
	return out
}
