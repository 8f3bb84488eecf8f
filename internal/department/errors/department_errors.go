package departmenterrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Department not found",
		http.StatusNotFound,
	)
	ErrDepartmentNameTaken = apperror.New(
		apperror.CodeConflict,
		"Department name is already in use",
		http.StatusConflict,
	)
	ErrDepartmentCodeTaken = apperror.New(
		apperror.CodeConflict,
		"Department code is already in use",
		http.StatusConflict,
	)
)
