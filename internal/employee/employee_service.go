package employee

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
	"go-payroll/internal/shared/counter"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	Deactivate(ctx context.Context, id string) (EmployeeResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	counters  counter.Repository
	outbox    kafka.OutboxRepository
	clk       clock.Clock
	validator *Validator
}

func NewService(db *sql.DB, repo Repository, counters counter.Repository, clk clock.Clock) Service {
	return &service{
		db:        db,
		repo:      repo,
		counters:  counters,
		clk:       clk,
		validator: NewValidator(repo, clk),
	}
}

// NewServiceWithOutbox also records an employee.created event in the same
// transaction as the insert; the relay worker publishes it.
func NewServiceWithOutbox(db *sql.DB, repo Repository, counters counter.Repository, outbox kafka.OutboxRepository, clk clock.Clock) Service {
	s := NewService(db, repo, counters, clk).(*service)
	s.outbox = outbox
	return s
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	res, err := s.validator.ValidateCreate(ctx, req)
	if err != nil {
		return EmployeeResponse{}, err
	}
	if !res.OK() {
		return EmployeeResponse{}, apperror.NewValidation(res.Violations())
	}

	seq, err := s.counters.GetNextValue(ctx, counter.TypeEmployeeNumber)
	if err != nil {
		return EmployeeResponse{}, err
	}

	dob, _ := parseDate(req.DateOfBirth)
	hire, _ := parseDate(req.HireDate)

	emp := &Employee{
		ID:           uuid.New(),
		Code:         req.Code,
		Number:       fmt.Sprintf("EMP-%06d", seq),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		Position:     req.Position,
		DateOfBirth:  dob,
		HireDate:     hire,
		BaseSalary:   req.BaseSalary,
		Status:       StatusActive,
		DepartmentID: uuid.MustParse(req.DepartmentID),
	}

	if err := qtx.Create(ctx, emp); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		if err := s.recordCreatedEvent(ctx, tx, emp); err != nil {
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	return mapToResponse(*emp), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	emps, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(emps), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*emp), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	current, err := s.findForGate(ctx, id)
	if err != nil {
		return EmployeeResponse{}, err
	}

	res, err := s.validator.ValidateUpdate(ctx, current, req)
	if err != nil {
		return EmployeeResponse{}, err
	}
	if !res.OK() {
		return EmployeeResponse{}, apperror.NewValidation(res.Violations())
	}

	dob, _ := parseDate(req.DateOfBirth)
	hire, _ := parseDate(req.HireDate)

	current.FirstName = req.FirstName
	current.LastName = req.LastName
	current.Email = req.Email
	current.Phone = req.Phone
	current.Address = req.Address
	current.Position = req.Position
	current.DateOfBirth = dob
	current.HireDate = hire
	current.BaseSalary = req.BaseSalary
	current.DepartmentID = uuid.MustParse(req.DepartmentID)
	if req.Status != "" {
		current.Status = req.Status
	}

	if err := qtx.Update(ctx, current); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
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

	res, err := s.validator.ValidateDelete(ctx, current)
	if err != nil {
		return err
	}
	if !res.OK() {
		return apperror.NewValidation(res.Violations())
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

func (s *service) Deactivate(ctx context.Context, id string) (EmployeeResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	current, err := s.findForGate(ctx, id)
	if err != nil {
		return EmployeeResponse{}, err
	}
	if current == nil {
		return EmployeeResponse{}, apperror.NewValidation([]string{"Employee not found"})
	}

	current.Status = StatusInactive

	if err := qtx.Update(ctx, current); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	return mapToResponse(*current), nil
}

func (s *service) findForGate(ctx context.Context, id string) (*Employee, error) {
	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return emp, nil
}

func (s *service) recordCreatedEvent(ctx context.Context, tx *sql.Tx, emp *Employee) error {
	event := events.EmployeeCreatedEvent{
		EventType:  "employee.created",
		EmployeeID: emp.ID.String(),
		Number:     emp.Number,
		OccurredAt: s.clk.Now(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "employee",
		AggregateID:   emp.ID.String(),
		EventType:     event.EventType,
		Topic:         events.EmployeeCreatedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func mapToResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           emp.ID.String(),
		Code:         emp.Code,
		Number:       emp.Number,
		FirstName:    emp.FirstName,
		LastName:     emp.LastName,
		Email:        emp.Email,
		Phone:        emp.Phone,
		Address:      emp.Address,
		Position:     emp.Position,
		DateOfBirth:  emp.DateOfBirth.Format("2006-01-02"),
		HireDate:     emp.HireDate.Format("2006-01-02"),
		BaseSalary:   emp.BaseSalary,
		Status:       emp.Status,
		DepartmentID: emp.DepartmentID.String(),
		CreatedAt:    emp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    emp.UpdatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(emps []Employee) []EmployeeResponse {
	resp := make([]EmployeeResponse, len(emps))
	for i, emp := range emps {
		resp[i] = mapToResponse(emp)
	}
	return resp
}
