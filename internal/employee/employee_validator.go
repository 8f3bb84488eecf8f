package employee

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"go-payroll/internal/shared/clock"
	"go-payroll/internal/shared/validation"

	"gorm.io/gorm"
)

const (
	maxCodeLen    = 20
	maxNameLen    = 100
	maxEmailLen   = 255
	maxAddressLen = 500

	minHireAgeYears = 16
	maxAgeYears     = 100

	// Minor units: 10,000,000.00 in currency.
	maxBaseSalary int64 = 1_000_000_000
)

var emailPattern = regexp.MustCompile(`(?i)^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}$`)

// Validator gates employee mutations. All applicable rules run and every
// violation is collected; the clock is injected so the age and hire-date
// rules hold still under test.
type Validator struct {
	repo Repository
	clk  clock.Clock
}

func NewValidator(repo Repository, clk clock.Clock) *Validator {
	return &Validator{repo: repo, clk: clk}
}

func (v *Validator) ValidateCreate(ctx context.Context, req CreateEmployeeRequest) (validation.Result, error) {
	var res validation.Result

	code := strings.TrimSpace(req.Code)
	if code == "" {
		res.Add("Employee code is required")
	} else if len(code) > maxCodeLen {
		res.Addf("Employee code must not exceed %d characters", maxCodeLen)
	} else {
		taken, err := v.repo.ExistsByCode(ctx, code)
		if err != nil {
			return res, err
		}
		if taken {
			res.Addf("Employee code '%s' is already in use", code)
		}
	}

	v.checkPerson(&res, personFields{
		firstName:   req.FirstName,
		lastName:    req.LastName,
		email:       req.Email,
		phone:       req.Phone,
		address:     req.Address,
		dateOfBirth: req.DateOfBirth,
		hireDate:    req.HireDate,
		baseSalary:  req.BaseSalary,
	})

	if err := v.checkEmailUnique(ctx, &res, req.Email, nil); err != nil {
		return res, err
	}

	if err := v.checkDepartment(ctx, &res, req.DepartmentID); err != nil {
		return res, err
	}

	return res, nil
}

func (v *Validator) ValidateUpdate(ctx context.Context, current *Employee, req UpdateEmployeeRequest) (validation.Result, error) {
	var res validation.Result

	if current == nil {
		res.Add("Employee not found")
		return res, nil
	}

	v.checkPerson(&res, personFields{
		firstName:   req.FirstName,
		lastName:    req.LastName,
		email:       req.Email,
		phone:       req.Phone,
		address:     req.Address,
		dateOfBirth: req.DateOfBirth,
		hireDate:    req.HireDate,
		baseSalary:  req.BaseSalary,
	})

	id := current.ID.String()
	if err := v.checkEmailUnique(ctx, &res, req.Email, &id); err != nil {
		return res, err
	}

	if err := v.checkDepartment(ctx, &res, req.DepartmentID); err != nil {
		return res, err
	}

	return res, nil
}

func (v *Validator) ValidateDelete(ctx context.Context, current *Employee) (validation.Result, error) {
	var res validation.Result

	if current == nil {
		res.Add("Employee not found")
		return res, nil
	}

	locked, err := v.repo.HasPayrollWithStatus(ctx, current.ID.String(), "PROCESSED", "PAID")
	if err != nil {
		return res, err
	}
	if locked {
		res.Add("Employee has processed or paid payrolls and cannot be deleted; deactivate instead")
	}

	return res, nil
}

type personFields struct {
	firstName   string
	lastName    string
	email       string
	phone       string
	address     string
	dateOfBirth string
	hireDate    string
	baseSalary  int64
}

func (v *Validator) checkPerson(res *validation.Result, f personFields) {
	if strings.TrimSpace(f.firstName) == "" {
		res.Add("First name is required")
	} else if len(f.firstName) > maxNameLen {
		res.Addf("First name must not exceed %d characters", maxNameLen)
	}

	if strings.TrimSpace(f.lastName) == "" {
		res.Add("Last name is required")
	} else if len(f.lastName) > maxNameLen {
		res.Addf("Last name must not exceed %d characters", maxNameLen)
	}

	email := strings.TrimSpace(f.email)
	if email == "" {
		res.Add("Email is required")
	} else if len(email) > maxEmailLen {
		res.Addf("Email must not exceed %d characters", maxEmailLen)
	} else if !emailPattern.MatchString(email) {
		res.Add("Email format is invalid")
	}

	if f.phone != "" && !validPhone(f.phone) {
		res.Add("Phone format is invalid")
	}

	if len(f.address) > maxAddressLen {
		res.Addf("Address must not exceed %d characters", maxAddressLen)
	}

	now := v.clk.Now()

	dob, dobErr := parseDate(f.dateOfBirth)
	if dobErr != nil {
		res.Add("Date of birth is required and must be formatted YYYY-MM-DD")
	} else {
		if dob.After(now.AddDate(-minHireAgeYears, 0, 0)) {
			res.Addf("Employee must be at least %d years old", minHireAgeYears)
		}
		if dob.Before(now.AddDate(-maxAgeYears, 0, 0)) {
			res.Addf("Date of birth cannot be more than %d years ago", maxAgeYears)
		}
	}

	hire, hireErr := parseDate(f.hireDate)
	if hireErr != nil {
		res.Add("Hire date is required and must be formatted YYYY-MM-DD")
	} else {
		if hire.After(now) {
			res.Add("Hire date cannot be in the future")
		}
		if dobErr == nil && hire.Before(dob) {
			res.Add("Hire date cannot be before date of birth")
		}
	}

	if f.baseSalary <= 0 {
		res.Add("Base salary must be greater than zero")
	} else if f.baseSalary > maxBaseSalary {
		res.Add("Base salary exceeds the allowed maximum")
	}
}

func (v *Validator) checkEmailUnique(ctx context.Context, res *validation.Result, email string, excludeID *string) error {
	email = strings.TrimSpace(email)
	if email == "" || !emailPattern.MatchString(email) {
		return nil
	}

	taken, err := v.repo.ExistsByEmail(ctx, email, excludeID)
	if err != nil {
		return err
	}
	if taken {
		res.Addf("Email '%s' is already in use", email)
	}
	return nil
}

func (v *Validator) checkDepartment(ctx context.Context, res *validation.Result, departmentID string) error {
	dept, err := v.repo.FindDepartment(ctx, departmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			res.Add("Department not found")
			return nil
		}
		return err
	}
	if !dept.Active {
		res.Add("Department is not active")
	}
	return nil
}

// validPhone accepts an optional leading + and digits once spaces, dashes and
// parentheses are stripped.
func validPhone(phone string) bool {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')':
			return -1
		}
		return r
	}, phone)

	cleaned = strings.TrimPrefix(cleaned, "+")
	if len(cleaned) < 7 || len(cleaned) > 15 {
		return false
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func parseDate(v string) (time.Time, error) {
	return time.Parse("2006-01-02", v)
}
