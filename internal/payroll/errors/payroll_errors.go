package payrollerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrPayrollNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payroll not found",
		http.StatusNotFound,
	)
	ErrPayrollPeriodTaken = apperror.New(
		apperror.CodeConflict,
		"A payroll already exists for this employee and period",
		http.StatusConflict,
	)
	ErrPayrollInvalidState = apperror.New(
		apperror.CodeConflict,
		"Payroll is not in a state that allows this transition",
		http.StatusConflict,
	)
)
