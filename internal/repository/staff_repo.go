package repository

import (
	"context"

	"github.com/robertsn808/alii/internal/model"

	"gorm.io/gorm"
)

type StaffRepository interface {
	Create(ctx context.Context, s *model.Staff) error
	Update(ctx context.Context, s *model.Staff) error
	FindByEmployeeID(ctx context.Context, employeeID string) (*model.Staff, error)
	FindByEmail(ctx context.Context, email string) (*model.Staff, error)
	FindByRole(ctx context.Context, role model.StaffRole) ([]model.Staff, error)
	FindAllActiveOrderByName(ctx context.Context) ([]model.Staff, error)
	ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error)
}

type staffRepo struct{ db *gorm.DB }

func NewStaffRepository(db *gorm.DB) StaffRepository { return &staffRepo{db: db} }

func (r *staffRepo) Create(ctx context.Context, s *model.Staff) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *staffRepo) Update(ctx context.Context, s *model.Staff) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *staffRepo) FindByEmployeeID(ctx context.Context, employeeID string) (*model.Staff, error) {
	var s model.Staff
	err := r.db.WithContext(ctx).Where("employee_id = ?", employeeID).First(&s).Error
	return &s, err
}

func (r *staffRepo) FindByEmail(ctx context.Context, email string) (*model.Staff, error) {
	var s model.Staff
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&s).Error
	return &s, err
}

func (r *staffRepo) FindByRole(ctx context.Context, role model.StaffRole) ([]model.Staff, error) {
	var staff []model.Staff
	err := r.db.WithContext(ctx).Where("role = ?", role).Find(&staff).Error
	return staff, err
}

// FindAllActiveOrderByName lists active staff alphabetically, first
// name then last name.
func (r *staffRepo) FindAllActiveOrderByName(ctx context.Context) ([]model.Staff, error) {
	var staff []model.Staff
	err := r.db.WithContext(ctx).
		Where("is_active = true").
		Order("first_name, last_name").
		Find(&staff).Error
	return staff, err
}

func (r *staffRepo) ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Staff{}).
		Where("employee_id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}
