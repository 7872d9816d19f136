package service

import (
	"context"
	"time"

	"github.com/robertsn808/alii/internal/dto"
	"github.com/robertsn808/alii/internal/model"
	"github.com/robertsn808/alii/internal/poserr"
	"github.com/robertsn808/alii/internal/repository"
)

type StaffService interface {
	Create(ctx context.Context, req dto.CreateStaffRequest) (*dto.StaffResponse, error)
	FindByEmployeeID(ctx context.Context, employeeID string) (*dto.StaffResponse, error)
	ListByRole(ctx context.Context, role string) ([]dto.StaffResponse, error)
	ListActive(ctx context.Context) ([]dto.StaffResponse, error)
	Deactivate(ctx context.Context, employeeID string) error
}

type staffService struct {
	repo repository.StaffRepository
}

func NewStaffService(repo repository.StaffRepository) StaffService {
	return &staffService{repo: repo}
}

func (s *staffService) Create(ctx context.Context, req dto.CreateStaffRequest) (*dto.StaffResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return nil, poserr.NewPersistence("staff lookup", err)
	}
	if exists {
		return nil, poserr.NewFieldValidation("employee_id", "already in use")
	}

	staff := model.Staff{
		EmployeeID: req.EmployeeID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		Role:       model.StaffRole(req.Role),
		HireDate:   time.Now(),
		IsActive:   true,
	}
	if err := s.repo.Create(ctx, &staff); err != nil {
		return nil, poserr.NewPersistence("staff create", err)
	}
	return staffToResponse(&staff), nil
}

func (s *staffService) FindByEmployeeID(ctx context.Context, employeeID string) (*dto.StaffResponse, error) {
	staff, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, lookupError(err, "staff", employeeID)
	}
	return staffToResponse(staff), nil
}

func (s *staffService) ListByRole(ctx context.Context, role string) ([]dto.StaffResponse, error) {
	r := model.StaffRole(role)
	if !r.Valid() {
		return nil, poserr.NewFieldValidation("role", "unknown role")
	}
	staff, err := s.repo.FindByRole(ctx, r)
	if err != nil {
		return nil, poserr.NewPersistence("staff by role", err)
	}
	return staffToResponses(staff), nil
}

func (s *staffService) ListActive(ctx context.Context) ([]dto.StaffResponse, error) {
	staff, err := s.repo.FindAllActiveOrderByName(ctx)
	if err != nil {
		return nil, poserr.NewPersistence("active staff", err)
	}
	return staffToResponses(staff), nil
}

// Deactivate soft-disables a staff member. Records are never deleted:
// historical transactions keep their owning staff reference.
func (s *staffService) Deactivate(ctx context.Context, employeeID string) error {
	staff, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return lookupError(err, "staff", employeeID)
	}
	if !staff.IsActive {
		return nil // already inactive
	}
	staff.IsActive = false
	if err := s.repo.Update(ctx, staff); err != nil {
		return poserr.NewPersistence("staff deactivate", err)
	}
	return nil
}

func staffToResponse(st *model.Staff) *dto.StaffResponse {
	return &dto.StaffResponse{
		ID:         st.ID.String(),
		EmployeeID: st.EmployeeID,
		FirstName:  st.FirstName,
		LastName:   st.LastName,
		FullName:   st.FullName(),
		Role:       string(st.Role),
		HireDate:   st.HireDate.Format("2006-01-02"),
		IsActive:   st.IsActive,
	}
}

func staffToResponses(staff []model.Staff) []dto.StaffResponse {
	out := make([]dto.StaffResponse, 0, len(staff))
	for i := range staff {
		out = append(out, *staffToResponse(&staff[i]))
	}
	return out
}
