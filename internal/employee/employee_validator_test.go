package employee_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-payroll/internal/employee"
	"go-payroll/internal/shared/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeRepository struct {
	withTxFn               func(tx *sql.Tx) employee.Repository
	createFn               func(ctx context.Context, emp *employee.Employee) error
	findAllFn              func(ctx context.Context) ([]employee.Employee, error)
	findByIDFn             func(ctx context.Context, id string) (*employee.Employee, error)
	updateFn               func(ctx context.Context, emp *employee.Employee) error
	deleteFn               func(ctx context.Context, id string) error
	existsByCodeFn         func(ctx context.Context, code string) (bool, error)
	existsByEmailFn        func(ctx context.Context, email string, excludeID *string) (bool, error)
	findDepartmentFn       func(ctx context.Context, id string) (*employee.EmployeeDepartment, error)
	hasPayrollWithStatusFn func(ctx context.Context, employeeID string, statuses ...string) (bool, error)
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeEmployeeRepository) Create(ctx context.Context, emp *employee.Employee) error {
	if f.createFn != nil {
		return f.createFn(ctx, emp)
	}
	return nil
}

func (f *fakeEmployeeRepository) FindAll(ctx context.Context) ([]employee.Employee, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, emp *employee.Employee) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, emp)
	}
	return nil
}

func (f *fakeEmployeeRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeEmployeeRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	if f.existsByCodeFn != nil {
		return f.existsByCodeFn(ctx, code)
	}
	return false, nil
}

func (f *fakeEmployeeRepository) ExistsByEmail(ctx context.Context, email string, excludeID *string) (bool, error) {
	if f.existsByEmailFn != nil {
		return f.existsByEmailFn(ctx, email, excludeID)
	}
	return false, nil
}

func (f *fakeEmployeeRepository) FindDepartment(ctx context.Context, id string) (*employee.EmployeeDepartment, error) {
	if f.findDepartmentFn != nil {
		return f.findDepartmentFn(ctx, id)
	}
	return &employee.EmployeeDepartment{ID: id, Active: true}, nil
}

func (f *fakeEmployeeRepository) HasPayrollWithStatus(ctx context.Context, employeeID string, statuses ...string) (bool, error) {
	if f.hasPayrollWithStatusFn != nil {
		return f.hasPayrollWithStatusFn(ctx, employeeID, statuses...)
	}
	return false, nil
}

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		Code:         "ENG-042",
		FirstName:    "Alice",
		LastName:     "Smith",
		Email:        "alice.smith@example.com",
		Phone:        "+1 (555) 123-4567",
		DateOfBirth:  "1990-06-15",
		HireDate:     "2020-01-02",
		BaseSalary:   500_000_00,
		DepartmentID: uuid.New().String(),
	}
}

func TestEmployeeValidator_Create_Valid(t *testing.T) {
	ctx := context.Background()
	v := employee.NewValidator(&fakeEmployeeRepository{}, clock.Fixed(testNow))

	res, err := v.ValidateCreate(ctx, validCreateRequest())

	assert.NoError(t, err)
	assert.True(t, res.OK(), "violations: %v", res.Violations())
}

func TestEmployeeValidator_Create_AgeBoundary(t *testing.T) {
	ctx := context.Background()
	v := employee.NewValidator(&fakeEmployeeRepository{}, clock.Fixed(testNow))

	t.Run("exactly sixteen passes", func(t *testing.T) {
		req := validCreateRequest()
		req.DateOfBirth = "2010-03-10"
		req.HireDate = "2026-03-01"

		res, err := v.ValidateCreate(ctx, req)

		assert.NoError(t, err)
		assert.True(t, res.OK(), "violations: %v", res.Violations())
	})

	t.Run("one day younger fails", func(t *testing.T) {
		req := validCreateRequest()
		req.DateOfBirth = "2010-03-11"
		req.HireDate = "2026-03-01"

		res, err := v.ValidateCreate(ctx, req)

		assert.NoError(t, err)
		assert.Contains(t, res.Violations(), "Employee must be at least 16 years old")
	})

	t.Run("over a hundred years fails", func(t *testing.T) {
		req := validCreateRequest()
		req.DateOfBirth = "1920-01-01"
		req.HireDate = "2020-01-02"

		res, err := v.ValidateCreate(ctx, req)

		assert.NoError(t, err)
		assert.Contains(t, res.Violations(), "Date of birth cannot be more than 100 years ago")
	})
}

func TestEmployeeValidator_Create_CollectsAllViolations(t *testing.T) {
	ctx := context.Background()
	repo := &fakeEmployeeRepository{
		existsByCodeFn: func(ctx context.Context, code string) (bool, error) {
			return true, nil
		},
	}
	v := employee.NewValidator(repo, clock.Fixed(testNow))

	req := validCreateRequest()
	req.Email = "not-an-email"
	req.Phone = "abc"
	req.HireDate = "2027-01-01"
	req.BaseSalary = 0

	res, err := v.ValidateCreate(ctx, req)

	assert.NoError(t, err)
	violations := res.Violations()
	assert.Contains(t, violations, "Employee code 'ENG-042' is already in use")
	assert.Contains(t, violations, "Email format is invalid")
	assert.Contains(t, violations, "Phone format is invalid")
	assert.Contains(t, violations, "Hire date cannot be in the future")
	assert.Contains(t, violations, "Base salary must be greater than zero")
}

func TestEmployeeValidator_Create_InactiveDepartment(t *testing.T) {
	ctx := context.Background()
	repo := &fakeEmployeeRepository{
		findDepartmentFn: func(ctx context.Context, id string) (*employee.EmployeeDepartment, error) {
			return &employee.EmployeeDepartment{ID: id, Active: false}, nil
		},
	}
	v := employee.NewValidator(repo, clock.Fixed(testNow))

	res, err := v.ValidateCreate(ctx, validCreateRequest())

	assert.NoError(t, err)
	assert.Contains(t, res.Violations(), "Department is not active")
}

func TestEmployeeValidator_Delete_LockedByPayrolls(t *testing.T) {
	ctx := context.Background()
	repo := &fakeEmployeeRepository{
		hasPayrollWithStatusFn: func(ctx context.Context, employeeID string, statuses ...string) (bool, error) {
			assert.ElementsMatch(t, []string{"PROCESSED", "PAID"}, statuses)
			return true, nil
		},
	}
	v := employee.NewValidator(repo, clock.Fixed(testNow))

	res, err := v.ValidateDelete(ctx, &employee.Employee{ID: uuid.New()})

	assert.NoError(t, err)
	assert.Contains(t, res.Violations(), "Employee has processed or paid payrolls and cannot be deleted; deactivate instead")
}
