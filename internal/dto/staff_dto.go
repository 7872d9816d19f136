package dto

type CreateStaffRequest struct {
	EmployeeID string  `json:"employee_id" validate:"required,max=50"`
	FirstName  string  `json:"first_name"  validate:"required,max=100"`
	LastName   string  `json:"last_name"   validate:"required,max=100"`
	Email      *string `json:"email"       validate:"omitempty,email"`
	Phone      *string `json:"phone"       validate:"omitempty,max=20"`
	Role       string  `json:"role"        validate:"required,oneof=CASHIER MANAGER ADMIN"`
}

type StaffResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	FullName   string `json:"full_name"`
	Role       string `json:"role"`
	HireDate   string `json:"hire_date"`
	IsActive   bool   `json:"is_active"`
}
