package payroll

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, payroll *Payroll) error
	FindAll(ctx context.Context) ([]Payroll, error)
	FindByID(ctx context.Context, id string) (*Payroll, error)
	Update(ctx context.Context, payroll *Payroll) error
	Delete(ctx context.Context, id string) error
	ReplaceItems(ctx context.Context, payrollID string, items []PayrollItem) error
	ExistsForPeriod(ctx context.Context, employeeID string, month, year int) (bool, error)
	FindEmployee(ctx context.Context, id string) (*PayrollEmployee, error)
	ActiveEmployees(ctx context.Context) ([]PayrollEmployee, error)
	EmployeeIDsWithPayroll(ctx context.Context, month, year int) (map[string]struct{}, error)
	FindItemType(ctx context.Context, id string) (*PayrollItemTypeRef, error)
	TotalNetForPeriod(ctx context.Context, month, year int, statuses ...string) (int64, error)
	CountByStatusForPeriod(ctx context.Context, month, year int) (map[string]int64, error)
}

// PayrollEmployee is the slice of the employees table this module needs for
// its referential gates; ownership stays with the employee package.
type PayrollEmployee struct {
	ID         string
	FirstName  string
	LastName   string
	Status     string
	BaseSalary int64
}

func (PayrollEmployee) TableName() string { return "employees" }

type PayrollItemTypeRef struct {
	ID     string
	Active bool
}

func (PayrollItemTypeRef) TableName() string { return "payroll_item_types" }

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

func (r *repository) Create(ctx context.Context, payroll *Payroll) error {
	return r.db.WithContext(ctx).Create(payroll).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Payroll, error) {
	var payrolls []Payroll
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("period_year DESC, period_month DESC").
		Find(&payrolls).Error
	return payrolls, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Payroll, error) {
	var payroll Payroll
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&payroll, "id = ?", id).Error
	return &payroll, err
}

func (r *repository) Update(ctx context.Context, payroll *Payroll) error {
	return r.db.WithContext(ctx).
		Omit("Items").
		Save(payroll).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).
		Delete(&PayrollItem{}, "payroll_id = ?", id).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Delete(&Payroll{}, "id = ?", id).Error
}

// ReplaceItems drops the existing line items and inserts the replacement set;
// there is no partial item diffing.
func (r *repository) ReplaceItems(ctx context.Context, payrollID string, items []PayrollItem) error {
	if err := r.db.WithContext(ctx).
		Delete(&PayrollItem{}, "payroll_id = ?", payrollID).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *repository) ExistsForPeriod(ctx context.Context, employeeID string, month, year int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Payroll{}).
		Where("employee_id = ?", employeeID).
		Where("period_month = ? AND period_year = ?", month, year).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindEmployee(ctx context.Context, id string) (*PayrollEmployee, error) {
	var emp PayrollEmployee
	err := r.db.WithContext(ctx).
		First(&emp, "id = ?", id).Error
	return &emp, err
}

func (r *repository) ActiveEmployees(ctx context.Context) ([]PayrollEmployee, error) {
	var emps []PayrollEmployee
	err := r.db.WithContext(ctx).
		Where("status = ?", "ACTIVE").
		Order("number ASC").
		Find(&emps).Error
	return emps, err
}

func (r *repository) EmployeeIDsWithPayroll(ctx context.Context, month, year int) (map[string]struct{}, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&Payroll{}).
		Where("period_month = ? AND period_year = ?", month, year).
		Pluck("employee_id", &ids).Error
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

func (r *repository) FindItemType(ctx context.Context, id string) (*PayrollItemTypeRef, error) {
	var t PayrollItemTypeRef
	err := r.db.WithContext(ctx).
		First(&t, "id = ?", id).Error
	return &t, err
}

func (r *repository) TotalNetForPeriod(ctx context.Context, month, year int, statuses ...string) (int64, error) {
	var total sql.NullInt64
	err := r.db.WithContext(ctx).
		Model(&Payroll{}).
		Select("SUM(net_pay)").
		Where("period_month = ? AND period_year = ?", month, year).
		Where("status IN ?", statuses).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total.Int64, nil
}

func (r *repository) CountByStatusForPeriod(ctx context.Context, month, year int) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Model(&Payroll{}).
		Select("status, COUNT(*) AS count").
		Where("period_month = ? AND period_year = ?", month, year).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
