package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/clock"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreatePayrollRequest) (PayrollResponse, error)
	GetAll(ctx context.Context) ([]PayrollResponse, error)
	GetByID(ctx context.Context, id string) (PayrollResponse, error)
	Update(ctx context.Context, id string, req UpdatePayrollRequest) (PayrollResponse, error)
	Delete(ctx context.Context, id string) error
	Process(ctx context.Context, id string) (PayrollResponse, error)
	MarkPaid(ctx context.Context, id string) (PayrollResponse, error)
	GeneratePeriod(ctx context.Context, req GeneratePayrollsRequest) (GenerationReport, error)
	PeriodSummary(ctx context.Context, month, year int) (PeriodSummaryResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	outbox    kafka.OutboxRepository
	clk       clock.Clock
	validator *Validator
	summaries singleflight.Group
}

func NewService(db *sql.DB, repo Repository, clk clock.Clock) Service {
	return &service{
		db:        db,
		repo:      repo,
		clk:       clk,
		validator: NewValidator(repo, clk),
	}
}

// NewServiceWithOutbox also records a payroll.processed event in the same
// transaction as the PROCESSED transition; the relay worker publishes it.
func NewServiceWithOutbox(db *sql.DB, repo Repository, outbox kafka.OutboxRepository, clk clock.Clock) Service {
	s := NewService(db, repo, clk).(*service)
	s.outbox = outbox
	return s
}

func (s *service) Create(ctx context.Context, req CreatePayrollRequest) (PayrollResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	res, err := s.validator.ValidateCreate(ctx, req)
	if err != nil {
		return PayrollResponse{}, err
	}
	if !res.OK() {
		return PayrollResponse{}, apperror.NewValidation(res.Violations())
	}

	id := uuid.New()
	payroll := &Payroll{
		ID:           id,
		EmployeeID:   uuid.MustParse(req.EmployeeID),
		PeriodMonth:  req.PeriodMonth,
		PeriodYear:   req.PeriodYear,
		BaseSalary:   req.BaseSalary,
		Overtime:     req.Overtime,
		Bonus:        req.Bonus,
		Allowances:   req.Allowances,
		Deductions:   req.Deductions,
		TaxDeduction: req.TaxDeduction,
		Status:       StatusDraft,
		Notes:        req.Notes,
		Items:        buildItems(id, req.Items),
	}
	payroll.ComputeGrossPay()
	payroll.ComputeNetPay()

	if err := qtx.Create(ctx, payroll); err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}

	return mapToResponse(*payroll), nil
}

func (s *service) GetAll(ctx context.Context) ([]PayrollResponse, error) {
	payrolls, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(payrolls), nil
}

func (s *service) GetByID(ctx context.Context, id string) (PayrollResponse, error) {
	payroll, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*payroll), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdatePayrollRequest) (PayrollResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	current, err := s.findForGate(ctx, id)
	if err != nil {
		return PayrollResponse{}, err
	}

	res, err := s.validator.ValidateUpdate(ctx, current, req)
	if err != nil {
		return PayrollResponse{}, err
	}
	if !res.OK() {
		return PayrollResponse{}, apperror.NewValidation(res.Violations())
	}

	current.BaseSalary = req.BaseSalary
	current.Overtime = req.Overtime
	current.Bonus = req.Bonus
	current.Allowances = req.Allowances
	current.Deductions = req.Deductions
	current.TaxDeduction = req.TaxDeduction
	current.Notes = req.Notes
	current.ComputeGrossPay()
	current.ComputeNetPay()

	if err := qtx.Update(ctx, current); err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	items := buildItems(current.ID, req.Items)
	if err := qtx.ReplaceItems(ctx, id, items); err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}
	current.Items = items

	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}

	return mapToResponse(*current), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	current, err := s.findForGate(ctx, id)
	if err != nil {
		return err
	}

	if res := s.validator.ValidateDelete(current); !res.OK() {
		return apperror.NewValidation(res.Violations())
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

func (s *service) Process(ctx context.Context, id string) (PayrollResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	current, err := s.findForGate(ctx, id)
	if err != nil {
		return PayrollResponse{}, err
	}

	res, err := s.validator.ValidateProcess(ctx, current)
	if err != nil {
		return PayrollResponse{}, err
	}
	if !res.OK() {
		return PayrollResponse{}, apperror.NewValidation(res.Violations())
	}

	if err := current.Process(s.clk.Now()); err != nil {
		return PayrollResponse{}, err
	}

	if err := qtx.Update(ctx, current); err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		if err := s.recordProcessedEvent(ctx, tx, current); err != nil {
			return PayrollResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}

	return mapToResponse(*current), nil
}

func (s *service) MarkPaid(ctx context.Context, id string) (PayrollResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	current, err := s.findForGate(ctx, id)
	if err != nil {
		return PayrollResponse{}, err
	}

	if res := s.validator.ValidateMarkPaid(current); !res.OK() {
		return PayrollResponse{}, apperror.NewValidation(res.Violations())
	}

	current.MarkPaid(s.clk.Now())

	if err := qtx.Update(ctx, current); err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}

	return mapToResponse(*current), nil
}

// GeneratePeriod creates a draft payroll for every active employee who does
// not have one for the period yet. The whole run is a single transaction:
// employees whose draft would break a rule are reported as failures and the
// rest still commit together; an infrastructure fault rolls everything back.
func (s *service) GeneratePeriod(ctx context.Context, req GeneratePayrollsRequest) (GenerationReport, error) {
	report := GenerationReport{
		PeriodMonth: req.PeriodMonth,
		PeriodYear:  req.PeriodYear,
		Failures:    []string{},
	}

	if res := s.validator.ValidatePeriod(req.PeriodMonth, req.PeriodYear); !res.OK() {
		return report, apperror.NewValidation(res.Violations())
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return report, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	employees, err := qtx.ActiveEmployees(ctx)
	if err != nil {
		return report, err
	}

	existing, err := qtx.EmployeeIDsWithPayroll(ctx, req.PeriodMonth, req.PeriodYear)
	if err != nil {
		return report, err
	}

	for _, emp := range employees {
		if _, ok := existing[emp.ID]; ok {
			report.Skipped++
			continue
		}

		if emp.BaseSalary <= 0 || emp.BaseSalary > maxBaseSalary {
			report.Failures = append(report.Failures,
				fmt.Sprintf("%s %s: base salary is outside the allowed range", emp.FirstName, emp.LastName))
			continue
		}

		payroll := &Payroll{
			ID:          uuid.New(),
			EmployeeID:  uuid.MustParse(emp.ID),
			PeriodMonth: req.PeriodMonth,
			PeriodYear:  req.PeriodYear,
			BaseSalary:  emp.BaseSalary,
			Status:      StatusDraft,
		}
		payroll.ComputeGrossPay()
		payroll.ComputeNetPay()

		if err := qtx.Create(ctx, payroll); err != nil {
			return report, mapRepositoryError(err)
		}
		report.Created++
	}

	if err := tx.Commit(); err != nil {
		return report, err
	}

	return report, nil
}

// PeriodSummary totals net pay across processed and paid payrolls for the
// period. Concurrent identical requests collapse into one query round-trip.
func (s *service) PeriodSummary(ctx context.Context, month, year int) (PeriodSummaryResponse, error) {
	if res := s.validator.ValidatePeriod(month, year); !res.OK() {
		return PeriodSummaryResponse{}, apperror.NewValidation(res.Violations())
	}

	key := fmt.Sprintf("%d-%d", year, month)
	v, err, _ := s.summaries.Do(key, func() (any, error) {
		total, err := s.repo.TotalNetForPeriod(ctx, month, year, StatusProcessed, StatusPaid)
		if err != nil {
			return nil, err
		}

		counts, err := s.repo.CountByStatusForPeriod(ctx, month, year)
		if err != nil {
			return nil, err
		}

		return PeriodSummaryResponse{
			PeriodMonth: month,
			PeriodYear:  year,
			TotalNetPay: total,
			ByStatus:    counts,
		}, nil
	})
	if err != nil {
		return PeriodSummaryResponse{}, err
	}

	return v.(PeriodSummaryResponse), nil
}

func (s *service) findForGate(ctx context.Context, id string) (*Payroll, error) {
	payroll, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return payroll, nil
}

func (s *service) recordProcessedEvent(ctx context.Context, tx *sql.Tx, payroll *Payroll) error {
	event := events.PayrollProcessedEvent{
		EventType:   "payroll.processed",
		PayrollID:   payroll.ID.String(),
		EmployeeID:  payroll.EmployeeID.String(),
		PeriodMonth: payroll.PeriodMonth,
		PeriodYear:  payroll.PeriodYear,
		NetPay:      payroll.NetPay,
		OccurredAt:  s.clk.Now(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "payroll",
		AggregateID:   payroll.ID.String(),
		EventType:     event.EventType,
		Topic:         events.PayrollProcessedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func buildItems(payrollID uuid.UUID, reqs []PayrollItemRequest) []PayrollItem {
	items := make([]PayrollItem, len(reqs))
	for i, r := range reqs {
		items[i] = PayrollItem{
			ID:          uuid.New(),
			PayrollID:   payrollID,
			ItemTypeID:  uuid.MustParse(r.ItemTypeID),
			Description: r.Description,
			Amount:      r.Amount,
			IsDeduction: r.IsDeduction,
		}
	}
	return items
}

func mapToResponse(payroll Payroll) PayrollResponse {
	resp := PayrollResponse{
		ID:           payroll.ID.String(),
		EmployeeID:   payroll.EmployeeID.String(),
		PeriodMonth:  payroll.PeriodMonth,
		PeriodYear:   payroll.PeriodYear,
		BaseSalary:   payroll.BaseSalary,
		Overtime:     payroll.Overtime,
		Bonus:        payroll.Bonus,
		Allowances:   payroll.Allowances,
		Deductions:   payroll.Deductions,
		TaxDeduction: payroll.TaxDeduction,
		GrossPay:     payroll.GrossPay,
		NetPay:       payroll.NetPay,
		Status:       payroll.Status,
		Notes:        payroll.Notes,
		Items:        make([]PayrollItemResponse, len(payroll.Items)),
		CreatedAt:    payroll.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    payroll.UpdatedAt.Format(time.RFC3339),
	}

	for i, item := range payroll.Items {
		resp.Items[i] = PayrollItemResponse{
			ID:          item.ID.String(),
			ItemTypeID:  item.ItemTypeID.String(),
			Description: item.Description,
			Amount:      item.Amount,
			IsDeduction: item.IsDeduction,
		}
	}

	if payroll.ProcessedAt != nil {
		v := payroll.ProcessedAt.Format(time.RFC3339)
		resp.ProcessedAt = &v
	}
	if payroll.PaidAt != nil {
		v := payroll.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &v
	}

	return resp
}

func mapToListResponse(payrolls []Payroll) []PayrollResponse {
	resp := make([]PayrollResponse, len(payrolls))
	for i, payroll := range payrolls {
		resp[i] = mapToResponse(payroll)
	}
	return resp
}
