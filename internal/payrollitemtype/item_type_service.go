package payrollitemtype

import (
	"context"
	"errors"
	"net/http"

	"go-payroll/internal/shared/apperror"

	"gorm.io/gorm"
)

var errItemTypeNotFound = apperror.New(
	apperror.CodeNotFound,
	"Payroll item type not found",
	http.StatusNotFound,
)

type Service interface {
	GetAll(ctx context.Context) ([]ItemTypeResponse, error)
	GetByID(ctx context.Context, id string) (ItemTypeResponse, error)
	SetActive(ctx context.Context, id string, active bool) (ItemTypeResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetAll(ctx context.Context) ([]ItemTypeResponse, error) {
	types, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]ItemTypeResponse, len(types))
	for i, t := range types {
		resp[i] = mapToResponse(t)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (ItemTypeResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ItemTypeResponse{}, errItemTypeNotFound
		}
		return ItemTypeResponse{}, err
	}

	return mapToResponse(*t), nil
}

func (s *service) SetActive(ctx context.Context, id string, active bool) (ItemTypeResponse, error) {
	if err := s.repo.SetActive(ctx, id, active); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ItemTypeResponse{}, errItemTypeNotFound
		}
		return ItemTypeResponse{}, err
	}

	return s.GetByID(ctx, id)
}

func mapToResponse(t PayrollItemType) ItemTypeResponse {
	return ItemTypeResponse{
		ID:          t.ID.String(),
		Name:        t.Name,
		Code:        t.Code,
		Description: t.Description,
		IsEarning:   t.IsEarning,
		IsDeduction: t.IsDeduction,
		Active:      t.Active,
	}
}
