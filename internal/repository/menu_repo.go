package repository

import (
	"context"

	"github.com/robertsn808/alii/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MenuItemRepository interface {
	Create(ctx context.Context, m *model.MenuItem) error
	Update(ctx context.Context, m *model.MenuItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.MenuItem, error)
	FindAvailable(ctx context.Context) ([]model.MenuItem, error)
	FindByCategory(ctx context.Context, category string) ([]model.MenuItem, error)
	FindLowStock(ctx context.Context) ([]model.MenuItem, error)
	AdjustStock(ctx context.Context, id uuid.UUID, delta int) error
}

type menuItemRepo struct{ db *gorm.DB }

func NewMenuItemRepository(db *gorm.DB) MenuItemRepository { return &menuItemRepo{db: db} }

func (r *menuItemRepo) Create(ctx context.Context, m *model.MenuItem) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *menuItemRepo) Update(ctx context.Context, m *model.MenuItem) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *menuItemRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.MenuItem, error) {
	var m model.MenuItem
	err := r.db.WithContext(ctx).First(&m, id).Error
	return &m, err
}

func (r *menuItemRepo) FindAvailable(ctx context.Context) ([]model.MenuItem, error) {
	var items []model.MenuItem
	err := r.db.WithContext(ctx).
		Where("available = true").
		Order("category, name").
		Find(&items).Error
	return items, err
}

func (r *menuItemRepo) FindByCategory(ctx context.Context, category string) ([]model.MenuItem, error) {
	var items []model.MenuItem
	err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("name").
		Find(&items).Error
	return items, err
}

func (r *menuItemRepo) FindLowStock(ctx context.Context) ([]model.MenuItem, error) {
	var items []model.MenuItem
	err := r.db.WithContext(ctx).
		Where("track_stock = true AND current_stock <= minimum_stock").
		Order("current_stock").
		Find(&items).Error
	return items, err
}

// AdjustStock applies a signed stock delta, flooring at zero.
func (r *menuItemRepo) AdjustStock(ctx context.Context, id uuid.UUID, delta int) error {
	return r.db.WithContext(ctx).Model(&model.MenuItem{}).
		Where("id = ?", id).
		Update("current_stock", gorm.Expr("GREATEST(current_stock + ?, 0)", delta)).Error
}
