package department_test

import (
	"context"
	"database/sql"
	"testing"

	"go-payroll/internal/department"
	departmenterrors "go-payroll/internal/department/errors"
	"go-payroll/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeDepartmentRepository struct {
	withTxFn             func(tx *sql.Tx) department.Repository
	createFn             func(ctx context.Context, dept *department.Department) error
	findAllFn            func(ctx context.Context) ([]department.Department, error)
	findByIDFn           func(ctx context.Context, id string) (*department.Department, error)
	updateFn             func(ctx context.Context, dept *department.Department) error
	deleteFn             func(ctx context.Context, id string) error
	existsByNameFn       func(ctx context.Context, name string, excludeID *string) (bool, error)
	existsByCodeFn       func(ctx context.Context, code string, excludeID *string) (bool, error)
	hasActiveEmployeesFn func(ctx context.Context, id string) (bool, error)
}

func (f *fakeDepartmentRepository) WithTx(tx *sql.Tx) department.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeDepartmentRepository) Create(ctx context.Context, dept *department.Department) error {
	if f.createFn != nil {
		return f.createFn(ctx, dept)
	}
	return nil
}

func (f *fakeDepartmentRepository) FindAll(ctx context.Context) ([]department.Department, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeDepartmentRepository) FindByID(ctx context.Context, id string) (*department.Department, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeDepartmentRepository) Update(ctx context.Context, dept *department.Department) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, dept)
	}
	return nil
}

func (f *fakeDepartmentRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeDepartmentRepository) ExistsByName(ctx context.Context, name string, excludeID *string) (bool, error) {
	if f.existsByNameFn != nil {
		return f.existsByNameFn(ctx, name, excludeID)
	}
	return false, nil
}

func (f *fakeDepartmentRepository) ExistsByCode(ctx context.Context, code string, excludeID *string) (bool, error) {
	if f.existsByCodeFn != nil {
		return f.existsByCodeFn(ctx, code, excludeID)
	}
	return false, nil
}

func (f *fakeDepartmentRepository) HasActiveEmployees(ctx context.Context, id string) (bool, error) {
	if f.hasActiveEmployeesFn != nil {
		return f.hasActiveEmployeesFn(ctx, id)
	}
	return false, nil
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func violationsOf(t *testing.T, err error) []string {
	t.Helper()

	var appErr *apperror.AppError
	if !assert.ErrorAs(t, err, &appErr) {
		return nil
	}
	assert.Equal(t, apperror.CodeValidation, appErr.Code)

	violations, ok := appErr.Details.([]string)
	assert.True(t, ok, "details should carry the violation list")
	return violations
}

func TestDepartmentService_Create(t *testing.T) {
	ctx := context.Background()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := &fakeDepartmentRepository{}
	svc := department.NewService(db, repo)

	expectTx(t, sqlMock, true)
	repo.createFn = func(ctx context.Context, dept *department.Department) error {
		assert.Equal(t, "Engineering", dept.Name)
		assert.True(t, dept.Active)
		return nil
	}

	resp, err := svc.Create(ctx, department.CreateDepartmentRequest{
		Name: "Engineering",
		Code: "ENG",
	})

	assert.NoError(t, err)
	assert.Equal(t, "ENG", resp.Code)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestDepartmentService_Create_DuplicateNameAndCode(t *testing.T) {
	ctx := context.Background()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := &fakeDepartmentRepository{
		existsByNameFn: func(ctx context.Context, name string, excludeID *string) (bool, error) {
			return true, nil
		},
		existsByCodeFn: func(ctx context.Context, code string, excludeID *string) (bool, error) {
			return true, nil
		},
	}
	svc := department.NewService(db, repo)

	expectTx(t, sqlMock, false)
	_, err = svc.Create(ctx, department.CreateDepartmentRequest{
		Name: "Engineering",
		Code: "ENG",
	})

	violations := violationsOf(t, err)
	assert.Contains(t, violations, "Department name 'Engineering' is already in use")
	assert.Contains(t, violations, "Department code 'ENG' is already in use")
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestDepartmentService_Create_DuplicateRaceHitsConstraint(t *testing.T) {
	ctx := context.Background()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	// Both pre-checks pass, then a concurrent insert wins; the unique index
	// rejects ours and the hit must surface as a conflict.
	repo := &fakeDepartmentRepository{
		createFn: func(ctx context.Context, dept *department.Department) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_department_name"}
		},
	}
	svc := department.NewService(db, repo)

	expectTx(t, sqlMock, false)
	_, err = svc.Create(ctx, department.CreateDepartmentRequest{
		Name: "Engineering",
		Code: "ENG",
	})

	assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNameTaken)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestDepartmentService_Delete(t *testing.T) {
	ctx := context.Background()
	deptID := uuid.New()

	t.Run("blocked by active employees", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := &fakeDepartmentRepository{
			findByIDFn: func(ctx context.Context, id string) (*department.Department, error) {
				return &department.Department{ID: deptID, Name: "Engineering", Code: "ENG"}, nil
			},
			hasActiveEmployeesFn: func(ctx context.Context, id string) (bool, error) {
				return true, nil
			},
		}
		svc := department.NewService(db, repo)

		expectTx(t, sqlMock, false)
		err = svc.Delete(ctx, deptID.String())

		violations := violationsOf(t, err)
		assert.Contains(t, violations, "Department cannot be deleted while it has active employees")
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("missing department is a violation", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		svc := department.NewService(db, &fakeDepartmentRepository{})

		expectTx(t, sqlMock, false)
		err = svc.Delete(ctx, uuid.New().String())

		violations := violationsOf(t, err)
		assert.Contains(t, violations, "Department not found")
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("empty department deletes", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := &fakeDepartmentRepository{
			findByIDFn: func(ctx context.Context, id string) (*department.Department, error) {
				return &department.Department{ID: deptID, Name: "Engineering", Code: "ENG"}, nil
			},
		}
		svc := department.NewService(db, repo)

		expectTx(t, sqlMock, true)
		err = svc.Delete(ctx, deptID.String())

		assert.NoError(t, err)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}
