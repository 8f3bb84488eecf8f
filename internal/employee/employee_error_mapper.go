package employee

import (
	"errors"

	employeeerrors "go-payroll/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError translates store faults into app errors. Unique-index
// hits here are the storage backstop for the check-then-insert race; they
// surface as conflicts and are never swallowed.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "uq_employee_code":
				return employeeerrors.ErrEmployeeCodeTaken
			case "uq_employee_number":
				return employeeerrors.ErrEmployeeNumberTaken
			case "uq_employee_email":
				return employeeerrors.ErrEmployeeEmailTaken
			}
		}
	}

	return err
}
