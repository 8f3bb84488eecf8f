package payroll

type PayrollItemRequest struct {
	ItemTypeID  string `json:"item_type_id" binding:"required,uuid"`
	Description string `json:"description" binding:"required"`
	Amount      int64  `json:"amount"`
	IsDeduction bool   `json:"is_deduction"`
}

type CreatePayrollRequest struct {
	EmployeeID   string               `json:"employee_id" binding:"required,uuid"`
	PeriodMonth  int                  `json:"period_month" binding:"required"`
	PeriodYear   int                  `json:"period_year" binding:"required"`
	BaseSalary   int64                `json:"base_salary"`
	Overtime     int64                `json:"overtime"`
	Bonus        int64                `json:"bonus"`
	Allowances   int64                `json:"allowances"`
	Deductions   int64                `json:"deductions"`
	TaxDeduction int64                `json:"tax_deduction"`
	Notes        string               `json:"notes"`
	Items        []PayrollItemRequest `json:"items" binding:"dive"`
}

// UpdatePayrollRequest has no employee or period fields: both are immutable
// after creation. The item list replaces the existing set wholesale.
// Monetary fields are plain int64s; zero is a legal amount, the validator
// owns the ranges.
type UpdatePayrollRequest struct {
	BaseSalary   int64                `json:"base_salary"`
	Overtime     int64                `json:"overtime"`
	Bonus        int64                `json:"bonus"`
	Allowances   int64                `json:"allowances"`
	Deductions   int64                `json:"deductions"`
	TaxDeduction int64                `json:"tax_deduction"`
	Notes        string               `json:"notes"`
	Items        []PayrollItemRequest `json:"items" binding:"dive"`
}

type GeneratePayrollsRequest struct {
	PeriodMonth int `json:"period_month" binding:"required"`
	PeriodYear  int `json:"period_year" binding:"required"`
}

type PayrollItemResponse struct {
	ID          string `json:"id"`
	ItemTypeID  string `json:"item_type_id"`
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
	IsDeduction bool   `json:"is_deduction"`
}

type PayrollResponse struct {
	ID           string                `json:"id"`
	EmployeeID   string                `json:"employee_id"`
	PeriodMonth  int                   `json:"period_month"`
	PeriodYear   int                   `json:"period_year"`
	BaseSalary   int64                 `json:"base_salary"`
	Overtime     int64                 `json:"overtime"`
	Bonus        int64                 `json:"bonus"`
	Allowances   int64                 `json:"allowances"`
	Deductions   int64                 `json:"deductions"`
	TaxDeduction int64                 `json:"tax_deduction"`
	GrossPay     int64                 `json:"gross_pay"`
	NetPay       int64                 `json:"net_pay"`
	Status       string                `json:"status"`
	ProcessedAt  *string               `json:"processed_at,omitempty"`
	PaidAt       *string               `json:"paid_at,omitempty"`
	Notes        string                `json:"notes,omitempty"`
	Items        []PayrollItemResponse `json:"items"`
	CreatedAt    string                `json:"created_at"`
	UpdatedAt    string                `json:"updated_at"`
}

// GenerationReport summarizes one bulk run. Employees who already had a
// payroll for the period count as skipped, not failed.
type GenerationReport struct {
	PeriodMonth int      `json:"period_month"`
	PeriodYear  int      `json:"period_year"`
	Created     int      `json:"created"`
	Skipped     int      `json:"skipped"`
	Failures    []string `json:"failures"`
}

type PeriodSummaryResponse struct {
	PeriodMonth int              `json:"period_month"`
	PeriodYear  int              `json:"period_year"`
	TotalNetPay int64            `json:"total_net_pay"`
	ByStatus    map[string]int64 `json:"by_status"`
}
