package employee

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, emp *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	Update(ctx context.Context, emp *Employee) error
	Delete(ctx context.Context, id string) error
	ExistsByCode(ctx context.Context, code string) (bool, error)
	ExistsByEmail(ctx context.Context, email string, excludeID *string) (bool, error)
	FindDepartment(ctx context.Context, id string) (*EmployeeDepartment, error)
	HasPayrollWithStatus(ctx context.Context, employeeID string, statuses ...string) (bool, error)
}

// EmployeeDepartment is a narrow view of the departments table for the
// referential gate; the employee package never owns department rows.
type EmployeeDepartment struct {
	ID     string
	Active bool
}

func (EmployeeDepartment) TableName() string { return "departments" }

type employeePayroll struct {
	ID     string
	Status string
}

func (employeePayroll) TableName() string { return "payrolls" }

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

func (r *repository) Create(ctx context.Context, emp *Employee) error {
	return r.db.WithContext(ctx).Create(emp).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var emps []Employee
	err := r.db.WithContext(ctx).
		Order("number ASC").
		Find(&emps).Error
	return emps, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var emp Employee
	err := r.db.WithContext(ctx).
		First(&emp, "id = ?", id).Error
	return &emp, err
}

func (r *repository) Update(ctx context.Context, emp *Employee) error {
	return r.db.WithContext(ctx).Save(emp).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&Employee{}, "id = ?", id).Error
}

func (r *repository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("lower(code) = lower(?)", code).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) ExistsByEmail(ctx context.Context, email string, excludeID *string) (bool, error) {
	db := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("lower(email) = lower(?)", email)

	if excludeID != nil && *excludeID != "" {
		db = db.Where("id <> ?", *excludeID)
	}

	var count int64
	err := db.Count(&count).Error
	return count > 0, err
}

func (r *repository) FindDepartment(ctx context.Context, id string) (*EmployeeDepartment, error) {
	var dept EmployeeDepartment
	err := r.db.WithContext(ctx).
		First(&dept, "id = ?", id).Error
	return &dept, err
}

func (r *repository) HasPayrollWithStatus(ctx context.Context, employeeID string, statuses ...string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&employeePayroll{}).
		Where("employee_id = ?", employeeID).
		Where("status IN ?", statuses).
		Count(&count).Error
	return count > 0, err
}
