package department

import (
	"errors"

	departmenterrors "go-payroll/internal/department/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError translates store faults. A 23505 here means a duplicate
// slipped past the pre-check race; it surfaces as a conflict, never silently.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return departmenterrors.ErrDepartmentNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "uq_department_name":
				return departmenterrors.ErrDepartmentNameTaken
			case "uq_department_code":
				return departmenterrors.ErrDepartmentCodeTaken
			}
		}
	}

	return err
}
