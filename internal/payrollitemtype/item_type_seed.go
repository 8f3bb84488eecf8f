package payrollitemtype

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Seed installs the default reference rows once; an already-populated table
// is left untouched.
func Seed(ctx context.Context, repo Repository) error {
	count, err := repo.CountAll(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []PayrollItemType{
		{ID: uuid.New(), Name: "Overtime Pay", Code: "OT", Description: "Hours worked beyond the contract", IsEarning: true, Active: true},
		{ID: uuid.New(), Name: "Performance Bonus", Code: "BONUS", Description: "Discretionary performance bonus", IsEarning: true, Active: true},
		{ID: uuid.New(), Name: "Transport Allowance", Code: "TRANSPORT", IsEarning: true, Active: true},
		{ID: uuid.New(), Name: "Meal Allowance", Code: "MEAL", IsEarning: true, Active: true},
		{ID: uuid.New(), Name: "Health Insurance", Code: "HEALTH", IsDeduction: true, Active: true},
		{ID: uuid.New(), Name: "Pension Contribution", Code: "PENSION", IsDeduction: true, Active: true},
		{ID: uuid.New(), Name: "Income Tax", Code: "TAX", IsDeduction: true, Active: true},
		{ID: uuid.New(), Name: "Unpaid Leave", Code: "UNPAID", IsDeduction: true, Active: true},
	}

	if err := repo.CreateAll(ctx, defaults); err != nil {
		return err
	}

	zap.L().Info("payroll item types seeded", zap.Int("count", len(defaults)))
	return nil
}
