package department

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, dept *Department) error
	FindAll(ctx context.Context) ([]Department, error)
	FindByID(ctx context.Context, id string) (*Department, error)
	Update(ctx context.Context, dept *Department) error
	Delete(ctx context.Context, id string) error
	ExistsByName(ctx context.Context, name string, excludeID *string) (bool, error)
	ExistsByCode(ctx context.Context, code string, excludeID *string) (bool, error)
	HasActiveEmployees(ctx context.Context, id string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx rebinds the repository to the caller's transaction connection, so
// every statement it issues commits or rolls back with that tx.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	session := r.db.Session(&gorm.Session{NewDB: true})
	session.Statement.ConnPool = tx
	return &repository{db: session}
}

func (r *repository) Create(ctx context.Context, dept *Department) error {
	return r.db.WithContext(ctx).Create(dept).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Department, error) {
	var depts []Department
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&depts).Error
	return depts, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Department, error) {
	var dept Department
	err := r.db.WithContext(ctx).
		First(&dept, "id = ?", id).Error
	return &dept, err
}

func (r *repository) Update(ctx context.Context, dept *Department) error {
	return r.db.WithContext(ctx).Save(dept).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&Department{}, "id = ?", id).Error
}

func (r *repository) ExistsByName(ctx context.Context, name string, excludeID *string) (bool, error) {
	db := r.db.WithContext(ctx).
		Model(&Department{}).
		Where("lower(name) = lower(?)", name)

	if excludeID != nil && *excludeID != "" {
		db = db.Where("id <> ?", *excludeID)
	}

	var count int64
	err := db.Count(&count).Error
	return count > 0, err
}

func (r *repository) ExistsByCode(ctx context.Context, code string, excludeID *string) (bool, error) {
	db := r.db.WithContext(ctx).
		Model(&Department{}).
		Where("lower(code) = lower(?)", code)

	if excludeID != nil && *excludeID != "" {
		db = db.Where("id <> ?", *excludeID)
	}

	var count int64
	err := db.Count(&count).Error
	return count > 0, err
}

// departmentEmployee is a narrow view of the employees table so the delete
// guard can check ownership without importing the employee package.
type departmentEmployee struct {
	ID     string
	Status string
}

func (departmentEmployee) TableName() string { return "employees" }

func (r *repository) HasActiveEmployees(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&departmentEmployee{}).
		Where("department_id = ?", id).
		Where("status = ?", "ACTIVE").
		Count(&count).Error
	return count > 0, err
}
