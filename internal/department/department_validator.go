package department

import (
	"context"
	"strings"

	"go-payroll/internal/shared/validation"
)

const (
	maxNameLen        = 100
	maxCodeLen        = 20
	maxDescriptionLen = 500
)

// Validator runs every applicable rule and collects all violations before
// returning; uniqueness checks go to the store, everything else is local.
type Validator struct {
	repo Repository
}

func NewValidator(repo Repository) *Validator {
	return &Validator{repo: repo}
}

func (v *Validator) ValidateCreate(ctx context.Context, req CreateDepartmentRequest) (validation.Result, error) {
	var res validation.Result

	v.checkFields(&res, req.Name, req.Code, req.Description)

	if req.Name != "" {
		taken, err := v.repo.ExistsByName(ctx, req.Name, nil)
		if err != nil {
			return res, err
		}
		if taken {
			res.Addf("Department name '%s' is already in use", req.Name)
		}
	}

	if req.Code != "" {
		taken, err := v.repo.ExistsByCode(ctx, req.Code, nil)
		if err != nil {
			return res, err
		}
		if taken {
			res.Addf("Department code '%s' is already in use", req.Code)
		}
	}

	return res, nil
}

func (v *Validator) ValidateUpdate(ctx context.Context, current *Department, req UpdateDepartmentRequest) (validation.Result, error) {
	var res validation.Result

	if current == nil {
		res.Add("Department not found")
		return res, nil
	}

	v.checkFields(&res, req.Name, req.Code, req.Description)

	id := current.ID.String()

	if req.Name != "" {
		taken, err := v.repo.ExistsByName(ctx, req.Name, &id)
		if err != nil {
			return res, err
		}
		if taken {
			res.Addf("Department name '%s' is already in use", req.Name)
		}
	}

	if req.Code != "" {
		taken, err := v.repo.ExistsByCode(ctx, req.Code, &id)
		if err != nil {
			return res, err
		}
		if taken {
			res.Addf("Department code '%s' is already in use", req.Code)
		}
	}

	return res, nil
}

func (v *Validator) ValidateDelete(ctx context.Context, current *Department) (validation.Result, error) {
	var res validation.Result

	if current == nil {
		res.Add("Department not found")
		return res, nil
	}

	hasActive, err := v.repo.HasActiveEmployees(ctx, current.ID.String())
	if err != nil {
		return res, err
	}
	if hasActive {
		res.Add("Department cannot be deleted while it has active employees")
	}

	return res, nil
}

func (v *Validator) checkFields(res *validation.Result, name, code, description string) {
	name = strings.TrimSpace(name)
	code = strings.TrimSpace(code)

	if name == "" {
		res.Add("Department name is required")
	} else if len(name) > maxNameLen {
		res.Addf("Department name must not exceed %d characters", maxNameLen)
	}

	if code == "" {
		res.Add("Department code is required")
	} else if len(code) > maxCodeLen {
		res.Addf("Department code must not exceed %d characters", maxCodeLen)
	}

	if len(description) > maxDescriptionLen {
		res.Addf("Description must not exceed %d characters", maxDescriptionLen)
	}
}
