package payroll

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-payroll/internal/shared/clock"
	"go-payroll/internal/shared/validation"

	"gorm.io/gorm"
)

const (
	minPeriodYear = 2000
	maxPeriodYear = 3000

	maxDescriptionLen = 255

	// Minor units. Base salary and bonus top out at 10,000,000.00 in
	// currency; overtime, allowances and item amounts at 1,000,000.00.
	maxBaseSalary int64 = 1_000_000_000
	maxBonus      int64 = 1_000_000_000
	maxOvertime   int64 = 100_000_000
	maxAllowances int64 = 100_000_000
	maxItemAmount int64 = 100_000_000
)

// Validator gates every payroll mutation. Rules run without short-circuiting
// and the full violation list comes back ordered; the injected clock keeps
// the period-horizon rule testable.
type Validator struct {
	repo Repository
	clk  clock.Clock
}

func NewValidator(repo Repository, clk clock.Clock) *Validator {
	return &Validator{repo: repo, clk: clk}
}

func (v *Validator) ValidateCreate(ctx context.Context, req CreatePayrollRequest) (validation.Result, error) {
	var res validation.Result

	v.checkPeriod(&res, req.PeriodMonth, req.PeriodYear)
	checkMoney(&res, moneyFields{
		baseSalary:   req.BaseSalary,
		overtime:     req.Overtime,
		bonus:        req.Bonus,
		allowances:   req.Allowances,
		deductions:   req.Deductions,
		taxDeduction: req.TaxDeduction,
	})

	emp, err := v.findEmployee(ctx, req.EmployeeID)
	if err != nil {
		return res, err
	}
	switch {
	case emp == nil:
		res.Add("Employee not found")
	case emp.Status != "ACTIVE":
		res.Add("Employee is not active")
	}

	if emp != nil && monthInRange(req.PeriodMonth) && yearInRange(req.PeriodYear) {
		exists, err := v.repo.ExistsForPeriod(ctx, req.EmployeeID, req.PeriodMonth, req.PeriodYear)
		if err != nil {
			return res, err
		}
		if exists {
			res.Addf("A payroll already exists for this employee in period %d/%d", req.PeriodMonth, req.PeriodYear)
		}
	}

	if err := v.checkItems(ctx, &res, req.Items); err != nil {
		return res, err
	}

	return res, nil
}

func (v *Validator) ValidateUpdate(ctx context.Context, current *Payroll, req UpdatePayrollRequest) (validation.Result, error) {
	var res validation.Result

	if current == nil {
		res.Add("Payroll not found")
		return res, nil
	}

	// Paid payrolls are fully frozen; nothing else is worth reporting.
	if current.Status == StatusPaid {
		res.Add("Paid payrolls cannot be modified")
		return res, nil
	}

	checkMoney(&res, moneyFields{
		baseSalary:   req.BaseSalary,
		overtime:     req.Overtime,
		bonus:        req.Bonus,
		allowances:   req.Allowances,
		deductions:   req.Deductions,
		taxDeduction: req.TaxDeduction,
	})

	if err := v.checkItems(ctx, &res, req.Items); err != nil {
		return res, err
	}

	return res, nil
}

func (v *Validator) ValidateDelete(current *Payroll) validation.Result {
	var res validation.Result

	if current == nil {
		res.Add("Payroll not found")
		return res
	}

	if current.Status == StatusProcessed || current.Status == StatusPaid {
		res.Add("Processed or paid payrolls cannot be deleted")
	}

	return res
}

func (v *Validator) ValidateProcess(ctx context.Context, current *Payroll) (validation.Result, error) {
	var res validation.Result

	if current == nil {
		res.Add("Payroll not found")
		return res, nil
	}

	if current.Status != StatusDraft {
		res.Addf("Only draft payrolls can be processed; current status is %s", current.Status)
	}

	emp, err := v.findEmployee(ctx, current.EmployeeID.String())
	if err != nil {
		return res, err
	}
	switch {
	case emp == nil:
		res.Add("Employee not found")
	case emp.Status != "ACTIVE":
		res.Add("Employee is not active")
	}

	return res, nil
}

func (v *Validator) ValidateMarkPaid(current *Payroll) validation.Result {
	var res validation.Result

	if current == nil {
		res.Add("Payroll not found")
		return res
	}

	if current.Status != StatusProcessed {
		res.Addf("Only processed payrolls can be marked paid; current status is %s", current.Status)
	}

	return res
}

// ValidatePeriod gates the bulk-generation run; it shares the period rules
// with create.
func (v *Validator) ValidatePeriod(month, year int) validation.Result {
	var res validation.Result
	v.checkPeriod(&res, month, year)
	return res
}

func (v *Validator) checkPeriod(res *validation.Result, month, year int) {
	if !monthInRange(month) {
		res.Add("Period month must be between 1 and 12")
	}
	if !yearInRange(year) {
		res.Addf("Period year must be between %d and %d", minPeriodYear, maxPeriodYear)
	}
	if !monthInRange(month) || !yearInRange(year) {
		return
	}

	// The pay period may start at most one calendar month after the current
	// one; both sides compare as first-of-month.
	now := v.clk.Now()
	currentFirst := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	periodFirst := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	horizon := currentFirst.AddDate(0, 1, 0)

	if periodFirst.After(horizon) {
		res.Add("Pay period cannot be more than one month ahead of the current month")
	}
}

type moneyFields struct {
	baseSalary   int64
	overtime     int64
	bonus        int64
	allowances   int64
	deductions   int64
	taxDeduction int64
}

func checkMoney(res *validation.Result, f moneyFields) {
	if f.baseSalary < 0 {
		res.Add("Base salary cannot be negative")
	} else if f.baseSalary > maxBaseSalary {
		res.Add("Base salary exceeds the allowed maximum")
	}

	if f.overtime < 0 {
		res.Add("Overtime cannot be negative")
	} else if f.overtime > maxOvertime {
		res.Add("Overtime exceeds the allowed maximum")
	}

	if f.bonus < 0 {
		res.Add("Bonus cannot be negative")
	} else if f.bonus > maxBonus {
		res.Add("Bonus exceeds the allowed maximum")
	}

	if f.allowances < 0 {
		res.Add("Allowances cannot be negative")
	} else if f.allowances > maxAllowances {
		res.Add("Allowances exceed the allowed maximum")
	}

	if f.deductions < 0 {
		res.Add("Deductions cannot be negative")
	}
	if f.taxDeduction < 0 {
		res.Add("Tax deduction cannot be negative")
	}

	if f.deductions >= 0 && f.taxDeduction >= 0 {
		gross := f.baseSalary + f.overtime + f.bonus + f.allowances
		if f.deductions+f.taxDeduction > gross {
			res.Add("Total deductions exceed gross pay")
		}
	}
}

func (v *Validator) checkItems(ctx context.Context, res *validation.Result, items []PayrollItemRequest) error {
	for i, item := range items {
		if strings.TrimSpace(item.Description) == "" {
			res.Addf("Item %d: description is required", i+1)
		} else if len(item.Description) > maxDescriptionLen {
			res.Addf("Item %d: description must not exceed %d characters", i+1, maxDescriptionLen)
		}

		if item.Amount < 0 {
			res.Addf("Item %d: amount cannot be negative", i+1)
		} else if item.Amount > maxItemAmount {
			res.Addf("Item %d: amount exceeds the allowed maximum", i+1)
		}

		itemType, err := v.repo.FindItemType(ctx, item.ItemTypeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				res.Addf("Item %d: payroll item type not found", i+1)
				continue
			}
			return err
		}
		if !itemType.Active {
			res.Addf("Item %d: payroll item type is not active", i+1)
		}
	}
	return nil
}

func (v *Validator) findEmployee(ctx context.Context, id string) (*PayrollEmployee, error) {
	emp, err := v.repo.FindEmployee(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return emp, nil
}

func monthInRange(month int) bool { return month >= 1 && month <= 12 }

func yearInRange(year int) bool { return year >= minPeriodYear && year <= maxPeriodYear }
