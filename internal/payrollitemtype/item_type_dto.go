package payrollitemtype

type ItemTypeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
	IsEarning   bool   `json:"is_earning"`
	IsDeduction bool   `json:"is_deduction"`
	Active      bool   `json:"active"`
}
