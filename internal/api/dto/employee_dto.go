package dto

import "github.com/spec-kit/directory-service/internal/domain"

// EmployeeCreateRequest payload.
type EmployeeCreateRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// EmployeeUpdateRequest uses pointers so omitted fields stay untouched.
type EmployeeUpdateRequest struct {
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	Active   *bool   `json:"active"`
	Password *string `json:"password"`
}

// EmployeeResponse wraps a single sanitized record.
type EmployeeResponse struct {
	Employee domain.PublicEmployee `json:"employee"`
}

// EmployeeListResponse wraps the sanitized directory.
type EmployeeListResponse struct {
	Employees []domain.PublicEmployee `json:"employees"`
}
