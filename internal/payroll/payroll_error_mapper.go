package payroll

import (
	"errors"

	payrollerrors "go-payroll/internal/payroll/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError translates store faults into app errors. The composite
// unique index on (employee, month, year) is the storage backstop for the
// check-then-insert race; hits surface as conflicts and are never swallowed.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollerrors.ErrPayrollNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_payroll_employee_period" {
			return payrollerrors.ErrPayrollPeriodTaken
		}
	}

	return err
}
