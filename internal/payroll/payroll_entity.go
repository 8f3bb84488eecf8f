package payroll

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	StatusDraft     = "DRAFT"
	StatusProcessed = "PROCESSED"
	StatusPaid      = "PAID"
	// Cancelled is a valid terminal state for decoding and display; no API
	// transition targets it.
	StatusCancelled = "CANCELLED"
)

var ErrInvalidState = errors.New("payroll is not in a state that allows this transition")

type Payroll struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_employee_period"`

	PeriodMonth int `gorm:"not null;uniqueIndex:uq_payroll_employee_period"`
	PeriodYear  int `gorm:"not null;uniqueIndex:uq_payroll_employee_period"`

	// Financials are stored in minor units (cents) so the arithmetic stays
	// exact.
	BaseSalary   int64 `gorm:"type:bigint;not null;default:0"`
	Overtime     int64 `gorm:"type:bigint;not null;default:0"`
	Bonus        int64 `gorm:"type:bigint;not null;default:0"`
	Allowances   int64 `gorm:"type:bigint;not null;default:0"`
	Deductions   int64 `gorm:"type:bigint;not null;default:0"`
	TaxDeduction int64 `gorm:"type:bigint;not null;default:0"`
	GrossPay     int64 `gorm:"type:bigint;not null;default:0"`
	NetPay       int64 `gorm:"type:bigint;not null;default:0"`

	Status      string     `gorm:"size:20;not null;default:'DRAFT';index"`
	ProcessedAt *time.Time `gorm:"index"`
	PaidAt      *time.Time `gorm:"index"`
	Notes       string     `gorm:"size:500"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Items []PayrollItem `gorm:"foreignKey:PayrollID"`
}

func (Payroll) TableName() string { return "payrolls" }

type PayrollItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	PayrollID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemTypeID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Description string    `gorm:"size:255;not null"`
	Amount      int64     `gorm:"type:bigint;not null;default:0"`
	IsDeduction bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
}

func (PayrollItem) TableName() string { return "payroll_items" }

// ComputeGrossPay assigns gross = base + overtime + bonus + allowances.
func (p *Payroll) ComputeGrossPay() {
	p.GrossPay = p.BaseSalary + p.Overtime + p.Bonus + p.Allowances
}

// ComputeNetPay assigns net = gross - deductions - tax. Call ComputeGrossPay
// first after mutating any financial field; the two are not auto-synchronized.
func (p *Payroll) ComputeNetPay() {
	p.NetPay = p.GrossPay - p.Deductions - p.TaxDeduction
}

// Process moves a draft payroll to PROCESSED, recomputing the totals and
// stamping the transition. Any other starting state is an invalid-state error,
// never a silent recompute.
func (p *Payroll) Process(now time.Time) error {
	if p.Status != StatusDraft {
		return ErrInvalidState
	}

	p.ComputeGrossPay()
	p.ComputeNetPay()
	p.Status = StatusProcessed
	p.ProcessedAt = &now
	p.UpdatedAt = now
	return nil
}

// MarkPaid stamps the PAID transition. The PROCESSED precondition is checked
// by the workflow validator before this is called.
func (p *Payroll) MarkPaid(now time.Time) {
	p.Status = StatusPaid
	p.PaidAt = &now
	p.UpdatedAt = now
}
