package payroll_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/payroll"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/clock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakePayrollRepository struct {
	withTxFn                 func(tx *sql.Tx) payroll.Repository
	createFn                 func(ctx context.Context, p *payroll.Payroll) error
	findAllFn                func(ctx context.Context) ([]payroll.Payroll, error)
	findByIDFn               func(ctx context.Context, id string) (*payroll.Payroll, error)
	updateFn                 func(ctx context.Context, p *payroll.Payroll) error
	deleteFn                 func(ctx context.Context, id string) error
	replaceItemsFn           func(ctx context.Context, payrollID string, items []payroll.PayrollItem) error
	existsForPeriodFn        func(ctx context.Context, employeeID string, month, year int) (bool, error)
	findEmployeeFn           func(ctx context.Context, id string) (*payroll.PayrollEmployee, error)
	activeEmployeesFn        func(ctx context.Context) ([]payroll.PayrollEmployee, error)
	employeeIDsWithPayrollFn func(ctx context.Context, month, year int) (map[string]struct{}, error)
	findItemTypeFn           func(ctx context.Context, id string) (*payroll.PayrollItemTypeRef, error)
	totalNetForPeriodFn      func(ctx context.Context, month, year int, statuses ...string) (int64, error)
	countByStatusFn          func(ctx context.Context, month, year int) (map[string]int64, error)
}

func (f *fakePayrollRepository) WithTx(tx *sql.Tx) payroll.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakePayrollRepository) Create(ctx context.Context, p *payroll.Payroll) error {
	if f.createFn != nil {
		return f.createFn(ctx, p)
	}
	return nil
}

func (f *fakePayrollRepository) FindAll(ctx context.Context) ([]payroll.Payroll, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakePayrollRepository) FindByID(ctx context.Context, id string) (*payroll.Payroll, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePayrollRepository) Update(ctx context.Context, p *payroll.Payroll) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, p)
	}
	return nil
}

func (f *fakePayrollRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakePayrollRepository) ReplaceItems(ctx context.Context, payrollID string, items []payroll.PayrollItem) error {
	if f.replaceItemsFn != nil {
		return f.replaceItemsFn(ctx, payrollID, items)
	}
	return nil
}

func (f *fakePayrollRepository) ExistsForPeriod(ctx context.Context, employeeID string, month, year int) (bool, error) {
	if f.existsForPeriodFn != nil {
		return f.existsForPeriodFn(ctx, employeeID, month, year)
	}
	return false, nil
}

func (f *fakePayrollRepository) FindEmployee(ctx context.Context, id string) (*payroll.PayrollEmployee, error) {
	if f.findEmployeeFn != nil {
		return f.findEmployeeFn(ctx, id)
	}
	return &payroll.PayrollEmployee{ID: id, Status: "ACTIVE", BaseSalary: 500_000_00}, nil
}

func (f *fakePayrollRepository) ActiveEmployees(ctx context.Context) ([]payroll.PayrollEmployee, error) {
	if f.activeEmployeesFn != nil {
		return f.activeEmployeesFn(ctx)
	}
	return nil, nil
}

func (f *fakePayrollRepository) EmployeeIDsWithPayroll(ctx context.Context, month, year int) (map[string]struct{}, error) {
	if f.employeeIDsWithPayrollFn != nil {
		return f.employeeIDsWithPayrollFn(ctx, month, year)
	}
	return map[string]struct{}{}, nil
}

func (f *fakePayrollRepository) FindItemType(ctx context.Context, id string) (*payroll.PayrollItemTypeRef, error) {
	if f.findItemTypeFn != nil {
		return f.findItemTypeFn(ctx, id)
	}
	return &payroll.PayrollItemTypeRef{ID: id, Active: true}, nil
}

func (f *fakePayrollRepository) TotalNetForPeriod(ctx context.Context, month, year int, statuses ...string) (int64, error) {
	if f.totalNetForPeriodFn != nil {
		return f.totalNetForPeriodFn(ctx, month, year, statuses...)
	}
	return 0, nil
}

func (f *fakePayrollRepository) CountByStatusForPeriod(ctx context.Context, month, year int) (map[string]int64, error) {
	if f.countByStatusFn != nil {
		return f.countByStatusFn(ctx, month, year)
	}
	return map[string]int64{}, nil
}

type fakeOutboxRepository struct {
	withTxFn func(tx *sql.Tx) kafka.OutboxRepository
	createFn func(ctx context.Context, event kafka.OutboxEvent) error
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error {
	return nil
}

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

type payrollServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service payroll.Service
	repo    *fakePayrollRepository
}

func setupPayrollServiceTest(t *testing.T) *payrollServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakePayrollRepository{}
	svc := payroll.NewService(db, repo, clock.Fixed(testNow))

	return &payrollServiceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo}
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

func assertViolations(t *testing.T, err error, messages ...string) {
	t.Helper()

	var appErr *apperror.AppError
	if !assert.ErrorAs(t, err, &appErr) {
		return
	}
	assert.Equal(t, apperror.CodeValidation, appErr.Code)

	violations, ok := appErr.Details.([]string)
	if !assert.True(t, ok, "details should carry the violation list") {
		return
	}
	for _, msg := range messages {
		assert.Contains(t, violations, msg)
	}
}

func TestPayrollService_Create(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)
	req := payroll.CreatePayrollRequest{
		EmployeeID:   employeeID,
		PeriodMonth:  3,
		PeriodYear:   2026,
		BaseSalary:   500_000_00,
		Overtime:     25_000_00,
		Bonus:        50_000_00,
		Allowances:   10_000_00,
		Deductions:   15_000_00,
		TaxDeduction: 120_000_00,
		Items: []payroll.PayrollItemRequest{
			{ItemTypeID: uuid.New().String(), Description: "Transport allowance", Amount: 10_000_00},
		},
	}

	deps.repo.createFn = func(ctx context.Context, p *payroll.Payroll) error {
		assert.Equal(t, int64(585_000_00), p.GrossPay)
		assert.Equal(t, int64(450_000_00), p.NetPay)
		assert.Equal(t, payroll.StatusDraft, p.Status)
		assert.Len(t, p.Items, 1)
		assert.Equal(t, p.ID, p.Items[0].PayrollID)
		return nil
	}

	resp, err := deps.service.Create(ctx, req)

	assert.NoError(t, err)
	assert.Equal(t, payroll.StatusDraft, resp.Status)
	assert.Equal(t, int64(450_000_00), resp.NetPay)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_Create_CollectsAllViolations(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, false)
	deps.repo.existsForPeriodFn = func(ctx context.Context, eid string, month, year int) (bool, error) {
		return true, nil
	}

	_, err := deps.service.Create(ctx, payroll.CreatePayrollRequest{
		EmployeeID:   employeeID,
		PeriodMonth:  3,
		PeriodYear:   2026,
		BaseSalary:   100_00,
		Deductions:   500_00,
		TaxDeduction: 100_00,
	})

	assertViolations(t, err,
		"Total deductions exceed gross pay",
		"A payroll already exists for this employee in period 3/2026",
	)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_Create_DuplicateRaceHitsConstraint(t *testing.T) {
	ctx := context.Background()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	// A concurrent insert slips past the pre-check; the composite unique
	// index rejects it and the hit must surface as a conflict.
	expectTx(t, deps.sqlMock, false)
	deps.repo.createFn = func(ctx context.Context, p *payroll.Payroll) error {
		return &pgconn.PgError{Code: "23505", ConstraintName: "uq_payroll_employee_period"}
	}

	_, err := deps.service.Create(ctx, payroll.CreatePayrollRequest{
		EmployeeID:  uuid.New().String(),
		PeriodMonth: 3,
		PeriodYear:  2026,
		BaseSalary:  100_000_00,
	})

	assert.ErrorIs(t, err, payrollerrors.ErrPayrollPeriodTaken)
	var appErr *apperror.AppError
	if assert.ErrorAs(t, err, &appErr) {
		assert.Equal(t, apperror.CodeConflict, appErr.Code)
	}
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_Create_UnrelatedStoreFaultPassesThrough(t *testing.T) {
	ctx := context.Background()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, false)
	storeErr := errors.New("connection reset by peer")
	deps.repo.createFn = func(ctx context.Context, p *payroll.Payroll) error {
		return storeErr
	}

	_, err := deps.service.Create(ctx, payroll.CreatePayrollRequest{
		EmployeeID:  uuid.New().String(),
		PeriodMonth: 3,
		PeriodYear:  2026,
		BaseSalary:  100_000_00,
	})

	assert.ErrorIs(t, err, storeErr)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_Create_PeriodTooFarAhead(t *testing.T) {
	ctx := context.Background()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, false)

	// Clock is fixed at 2026-03-10; April is the horizon, May is past it.
	_, err := deps.service.Create(ctx, payroll.CreatePayrollRequest{
		EmployeeID:  uuid.New().String(),
		PeriodMonth: 5,
		PeriodYear:  2026,
		BaseSalary:  100_000_00,
	})

	assertViolations(t, err, "Pay period cannot be more than one month ahead of the current month")
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_Update_PaidIsFrozen(t *testing.T) {
	ctx := context.Background()
	payrollID := uuid.New()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, false)
	deps.repo.findByIDFn = func(ctx context.Context, id string) (*payroll.Payroll, error) {
		return &payroll.Payroll{ID: payrollID, Status: payroll.StatusPaid}, nil
	}

	_, err := deps.service.Update(ctx, payrollID.String(), payroll.UpdatePayrollRequest{
		BaseSalary: 100_000_00,
	})

	assertViolations(t, err, "Paid payrolls cannot be modified")
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_Update_ReplacesItemsWholesale(t *testing.T) {
	ctx := context.Background()
	payrollID := uuid.New()
	itemTypeID := uuid.New().String()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)
	deps.repo.findByIDFn = func(ctx context.Context, id string) (*payroll.Payroll, error) {
		return &payroll.Payroll{
			ID:     payrollID,
			Status: payroll.StatusDraft,
			Items: []payroll.PayrollItem{
				{ID: uuid.New(), PayrollID: payrollID, Description: "Old item", Amount: 1_000_00},
			},
		}, nil
	}

	var replaced []payroll.PayrollItem
	deps.repo.replaceItemsFn = func(ctx context.Context, id string, items []payroll.PayrollItem) error {
		replaced = items
		return nil
	}

	resp, err := deps.service.Update(ctx, payrollID.String(), payroll.UpdatePayrollRequest{
		BaseSalary: 200_000_00,
		Items: []payroll.PayrollItemRequest{
			{ItemTypeID: itemTypeID, Description: "Meal allowance", Amount: 5_000_00},
			{ItemTypeID: itemTypeID, Description: "Union fee", Amount: 2_000_00, IsDeduction: true},
		},
	})

	assert.NoError(t, err)
	assert.Len(t, replaced, 2)
	assert.Equal(t, "Meal allowance", replaced[0].Description)
	assert.Len(t, resp.Items, 2)
	assert.Equal(t, int64(200_000_00), resp.NetPay)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_Delete_OnlyDraft(t *testing.T) {
	ctx := context.Background()
	payrollID := uuid.New()

	t.Run("processed is rejected", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*payroll.Payroll, error) {
			return &payroll.Payroll{ID: payrollID, Status: payroll.StatusProcessed}, nil
		}

		err := deps.service.Delete(ctx, payrollID.String())

		assertViolations(t, err, "Processed or paid payrolls cannot be deleted")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("draft succeeds", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*payroll.Payroll, error) {
			return &payroll.Payroll{ID: payrollID, Status: payroll.StatusDraft}, nil
		}

		err := deps.service.Delete(ctx, payrollID.String())

		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestPayrollService_Process(t *testing.T) {
	ctx := context.Background()
	payrollID := uuid.New()
	employeeID := uuid.New()

	t.Run("draft is processed and totals stamped", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*payroll.Payroll, error) {
			return &payroll.Payroll{
				ID:         payrollID,
				EmployeeID: employeeID,
				BaseSalary: 400_000_00,
				Deductions: 40_000_00,
				Status:     payroll.StatusDraft,
			}, nil
		}

		resp, err := deps.service.Process(ctx, payrollID.String())

		assert.NoError(t, err)
		assert.Equal(t, payroll.StatusProcessed, resp.Status)
		assert.Equal(t, int64(360_000_00), resp.NetPay)
		assert.NotNil(t, resp.ProcessedAt)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("paid cannot be reprocessed", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*payroll.Payroll, error) {
			return &payroll.Payroll{ID: payrollID, EmployeeID: employeeID, Status: payroll.StatusPaid}, nil
		}

		_, err := deps.service.Process(ctx, payrollID.String())

		assertViolations(t, err, "Only draft payrolls can be processed; current status is PAID")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestPayrollService_Process_QueuesOutboxEvent(t *testing.T) {
	ctx := context.Background()
	payrollID := uuid.New()
	employeeID := uuid.New()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := &fakePayrollRepository{
		findByIDFn: func(ctx context.Context, id string) (*payroll.Payroll, error) {
			return &payroll.Payroll{
				ID:          payrollID,
				EmployeeID:  employeeID,
				PeriodMonth: 3,
				PeriodYear:  2026,
				BaseSalary:  300_000_00,
				Status:      payroll.StatusDraft,
			}, nil
		},
	}
	outbox := &fakeOutboxRepository{
		createFn: func(ctx context.Context, event kafka.OutboxEvent) error {
			assert.Equal(t, events.PayrollProcessedTopic, event.Topic)
			var payload events.PayrollProcessedEvent
			err := json.Unmarshal(event.Payload, &payload)
			assert.NoError(t, err)
			assert.Equal(t, payrollID.String(), payload.PayrollID)
			assert.Equal(t, int64(300_000_00), payload.NetPay)
			return nil
		},
	}
	svc := payroll.NewServiceWithOutbox(db, repo, outbox, clock.Fixed(testNow))

	expectTx(t, sqlMock, true)
	_, err = svc.Process(ctx, payrollID.String())
	assert.NoError(t, err)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestPayrollService_MarkPaid(t *testing.T) {
	ctx := context.Background()
	payrollID := uuid.New()

	t.Run("processed becomes paid", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*payroll.Payroll, error) {
			return &payroll.Payroll{ID: payrollID, Status: payroll.StatusProcessed}, nil
		}

		resp, err := deps.service.MarkPaid(ctx, payrollID.String())

		assert.NoError(t, err)
		assert.Equal(t, payroll.StatusPaid, resp.Status)
		assert.NotNil(t, resp.PaidAt)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("draft cannot skip processing", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*payroll.Payroll, error) {
			return &payroll.Payroll{ID: payrollID, Status: payroll.StatusDraft}, nil
		}

		_, err := deps.service.MarkPaid(ctx, payrollID.String())

		assertViolations(t, err, "Only processed payrolls can be marked paid; current status is DRAFT")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestPayrollService_GeneratePeriod(t *testing.T) {
	ctx := context.Background()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	alice := payroll.PayrollEmployee{ID: uuid.New().String(), FirstName: "Alice", LastName: "Smith", Status: "ACTIVE", BaseSalary: 500_000_00}
	bob := payroll.PayrollEmployee{ID: uuid.New().String(), FirstName: "Bob", LastName: "Jones", Status: "ACTIVE", BaseSalary: 450_000_00}
	carol := payroll.PayrollEmployee{ID: uuid.New().String(), FirstName: "Carol", LastName: "White", Status: "ACTIVE", BaseSalary: 0}

	expectTx(t, deps.sqlMock, true)
	deps.repo.activeEmployeesFn = func(ctx context.Context) ([]payroll.PayrollEmployee, error) {
		return []payroll.PayrollEmployee{alice, bob, carol}, nil
	}
	deps.repo.employeeIDsWithPayrollFn = func(ctx context.Context, month, year int) (map[string]struct{}, error) {
		return map[string]struct{}{bob.ID: {}}, nil
	}

	var created []*payroll.Payroll
	deps.repo.createFn = func(ctx context.Context, p *payroll.Payroll) error {
		created = append(created, p)
		return nil
	}

	report, err := deps.service.GeneratePeriod(ctx, payroll.GeneratePayrollsRequest{
		PeriodMonth: 3,
		PeriodYear:  2026,
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, report.Created)
	assert.Equal(t, 1, report.Skipped)
	if assert.Len(t, report.Failures, 1) {
		assert.Contains(t, report.Failures[0], "Carol White")
	}

	if assert.Len(t, created, 1) {
		assert.Equal(t, alice.ID, created[0].EmployeeID.String())
		assert.Equal(t, payroll.StatusDraft, created[0].Status)
		assert.Equal(t, int64(500_000_00), created[0].NetPay)
	}
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_GeneratePeriod_CommitFailureSurfaces(t *testing.T) {
	ctx := context.Background()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit().WillReturnError(errors.New("server closed the connection unexpectedly"))

	deps.repo.activeEmployeesFn = func(ctx context.Context) ([]payroll.PayrollEmployee, error) {
		return []payroll.PayrollEmployee{
			{ID: uuid.New().String(), FirstName: "Alice", LastName: "Smith", Status: "ACTIVE", BaseSalary: 500_000_00},
		}, nil
	}

	_, err := deps.service.GeneratePeriod(ctx, payroll.GeneratePayrollsRequest{
		PeriodMonth: 3,
		PeriodYear:  2026,
	})

	// The batch lives and dies with the single transaction: a failed commit
	// must propagate, never report a partial success.
	assert.Error(t, err)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_GeneratePeriod_BadPeriod(t *testing.T) {
	ctx := context.Background()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	_, err := deps.service.GeneratePeriod(ctx, payroll.GeneratePayrollsRequest{
		PeriodMonth: 13,
		PeriodYear:  2026,
	})

	assertViolations(t, err, "Period month must be between 1 and 12")
}

func TestPayrollService_PeriodSummary(t *testing.T) {
	ctx := context.Background()

	deps := setupPayrollServiceTest(t)
	defer deps.db.Close()

	deps.repo.totalNetForPeriodFn = func(ctx context.Context, month, year int, statuses ...string) (int64, error) {
		assert.ElementsMatch(t, []string{payroll.StatusProcessed, payroll.StatusPaid}, statuses)
		return 950_000_00, nil
	}
	deps.repo.countByStatusFn = func(ctx context.Context, month, year int) (map[string]int64, error) {
		return map[string]int64{
			payroll.StatusDraft:     2,
			payroll.StatusProcessed: 1,
			payroll.StatusPaid:      1,
		}, nil
	}

	resp, err := deps.service.PeriodSummary(ctx, 3, 2026)

	assert.NoError(t, err)
	assert.Equal(t, int64(950_000_00), resp.TotalNetPay)
	assert.Equal(t, int64(2), resp.ByStatus[payroll.StatusDraft])
}
