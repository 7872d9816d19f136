package repository

import (
	"context"

	"github.com/robertsn808/alii/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderRepository interface {
	// Create writes the order and its items inside tx as one unit.
	Create(ctx context.Context, tx *gorm.DB, o *model.Order) error
	Update(ctx context.Context, o *model.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (*model.Order, error)
	FindActive(ctx context.Context) ([]model.Order, error)
	FindByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error)
	DB() *gorm.DB
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepository(db *gorm.DB) OrderRepository { return &orderRepo{db: db} }

func (r *orderRepo) DB() *gorm.DB { return r.db }

func (r *orderRepo) Create(ctx context.Context, tx *gorm.DB, o *model.Order) error {
	return tx.WithContext(ctx).Create(o).Error
}

func (r *orderRepo) Update(ctx context.Context, o *model.Order) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *orderRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).
		Preload("Items.MenuItem").
		First(&o, id).Error
	return &o, err
}

func (r *orderRepo) FindByOrderNumber(ctx context.Context, orderNumber string) (*model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).
		Preload("Items.MenuItem").
		Where("order_number = ?", orderNumber).
		First(&o).Error
	return &o, err
}

// FindActive lists orders still in flight (not completed or cancelled),
// oldest first — the kitchen works the queue front to back.
func (r *orderRepo) FindActive(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Preload("Items.MenuItem").
		Where("status NOT IN ?", []model.OrderStatus{model.OrderCompleted, model.OrderCancelled}).
		Order("created_at ASC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepo) FindByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Preload("Items.MenuItem").
		Where("status = ?", status).
		Order("created_at ASC").
		Find(&orders).Error
	return orders, err
}
