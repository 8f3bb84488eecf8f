package department

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-payroll/internal/shared/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	GetAll(ctx context.Context) ([]DepartmentResponse, error)
	GetByID(ctx context.Context, id string) (DepartmentResponse, error)
	Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db        *sql.DB
	repo      Repository
	validator *Validator
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{
		db:        db,
		repo:      repo,
		validator: NewValidator(repo),
	}
}

func (s *service) Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DepartmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	res, err := s.validator.ValidateCreate(ctx, req)
	if err != nil {
		return DepartmentResponse{}, err
	}
	if !res.OK() {
		return DepartmentResponse{}, apperror.NewValidation(res.Violations())
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	dept := &Department{
		ID:          uuid.New(),
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		Active:      active,
	}

	if err := qtx.Create(ctx, dept); err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return DepartmentResponse{}, err
	}

	return mapToResponse(*dept), nil
}

func (s *service) GetAll(ctx context.Context) ([]DepartmentResponse, error) {
	depts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(depts), nil
}

func (s *service) GetByID(ctx context.Context, id string) (DepartmentResponse, error) {
	dept, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*dept), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DepartmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	current, err := s.findForGate(ctx, id)
	if err != nil {
		return DepartmentResponse{}, err
	}

	res, err := s.validator.ValidateUpdate(ctx, current, req)
	if err != nil {
		return DepartmentResponse{}, err
	}
	if !res.OK() {
		return DepartmentResponse{}, apperror.NewValidation(res.Violations())
	}

	current.Name = req.Name
	current.Code = req.Code
	current.Description = req.Description
	if req.Active != nil {
		current.Active = *req.Active
	}
	current.UpdatedAt = time.Now()

	if err := qtx.Update(ctx, current); err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return DepartmentResponse{}, err
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

// findForGate loads the record gating a mutation; a missing row comes back as
// nil so the validator reports "Department not found" as a violation rather
// than an infrastructure fault.
func (s *service) findForGate(ctx context.Context, id string) (*Department, error) {
	dept, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return dept, nil
}

func mapToResponse(dept Department) DepartmentResponse {
	return DepartmentResponse{
		ID:          dept.ID.String(),
		Name:        dept.Name,
		Code:        dept.Code,
		Description: dept.Description,
		Active:      dept.Active,
		CreatedAt:   dept.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   dept.UpdatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(depts []Department) []DepartmentResponse {
	resp := make([]DepartmentResponse, len(depts))
	for i, dept := range depts {
		resp[i] = mapToResponse(dept)
	}
	return resp
}
