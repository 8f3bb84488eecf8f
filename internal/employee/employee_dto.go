package employee

type CreateEmployeeRequest struct {
	Code         string `json:"code" binding:"required"`
	FirstName    string `json:"first_name" binding:"required"`
	LastName     string `json:"last_name" binding:"required"`
	Email        string `json:"email" binding:"required"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Position     string `json:"position"`
	DateOfBirth  string `json:"date_of_birth" binding:"required"`
	HireDate     string `json:"hire_date" binding:"required"`
	BaseSalary   int64  `json:"base_salary" binding:"required"`
	DepartmentID string `json:"department_id" binding:"required,uuid"`
}

// UpdateEmployeeRequest carries no code field: the employee code is immutable
// after creation.
type UpdateEmployeeRequest struct {
	FirstName    string `json:"first_name" binding:"required"`
	LastName     string `json:"last_name" binding:"required"`
	Email        string `json:"email" binding:"required"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Position     string `json:"position"`
	DateOfBirth  string `json:"date_of_birth" binding:"required"`
	HireDate     string `json:"hire_date" binding:"required"`
	BaseSalary   int64  `json:"base_salary" binding:"required"`
	DepartmentID string `json:"department_id" binding:"required,uuid"`
	Status       string `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE TERMINATED ON_LEAVE"`
}

type EmployeeResponse struct {
	ID           string `json:"id"`
	Code         string `json:"code"`
	Number       string `json:"number"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
	Position     string `json:"position,omitempty"`
	DateOfBirth  string `json:"date_of_birth"`
	HireDate     string `json:"hire_date"`
	BaseSalary   int64  `json:"base_salary"`
	Status       string `json:"status"`
	DepartmentID string `json:"department_id"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}
