package payrollitemtype

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindAll(ctx context.Context) ([]PayrollItemType, error)
	FindByID(ctx context.Context, id string) (*PayrollItemType, error)
	SetActive(ctx context.Context, id string, active bool) error
	CountAll(ctx context.Context) (int64, error)
	CreateAll(ctx context.Context, types []PayrollItemType) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context) ([]PayrollItemType, error) {
	var types []PayrollItemType
	err := r.db.WithContext(ctx).
		Order("code ASC").
		Find(&types).Error
	return types, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*PayrollItemType, error) {
	var t PayrollItemType
	err := r.db.WithContext(ctx).
		First(&t, "id = ?", id).Error
	return &t, err
}

func (r *repository) SetActive(ctx context.Context, id string, active bool) error {
	result := r.db.WithContext(ctx).
		Model(&PayrollItemType{}).
		Where("id = ?", id).
		Update("active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&PayrollItemType{}).
		Count(&count).Error
	return count, err
}

func (r *repository) CreateAll(ctx context.Context, types []PayrollItemType) error {
	return r.db.WithContext(ctx).Create(&types).Error
}
