package rbac

import (
	"sync"

	"github.com/casbin/casbin/v2"
)

const (
	RoleAdmin  = "admin"
	RoleHR     = "hr"
	RoleViewer = "viewer"
)

type EnforceRequest struct {
	Role     string
	Resource string
	Action   string
}

type Service interface {
	Enforce(req EnforceRequest) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.Mutex
}

func NewService(enforcer *casbin.Enforcer) (Service, error) {
	s := &service{enforcer: enforcer}
	if err := s.seedPolicies(); err != nil {
		return nil, err
	}
	return s, nil
}

// seedPolicies installs the static role grants. Roles are reference data in
// this deployment; there is no per-request policy reload.
func (s *service) seedPolicies() error {
	policies := [][]string{
		{RoleHR, "department", "read"},
		{RoleHR, "department", "create"},
		{RoleHR, "department", "update"},
		{RoleHR, "department", "delete"},
		{RoleHR, "employee", "read"},
		{RoleHR, "employee", "create"},
		{RoleHR, "employee", "update"},
		{RoleHR, "employee", "delete"},
		{RoleHR, "employee", "deactivate"},
		{RoleHR, "payroll", "read"},
		{RoleHR, "payroll", "create"},
		{RoleHR, "payroll", "update"},
		{RoleHR, "payroll", "delete"},
		{RoleHR, "payroll", "process"},
		{RoleHR, "payroll", "generate"},
		{RoleHR, "payroll_item_type", "read"},

		{RoleAdmin, "payroll", "pay"},
		{RoleAdmin, "payroll_item_type", "update"},

		{RoleViewer, "department", "read"},
		{RoleViewer, "employee", "read"},
		{RoleViewer, "payroll", "read"},
		{RoleViewer, "payroll_item_type", "read"},
	}

	for _, p := range policies {
		if _, err := s.enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return err
		}
	}

	// admin inherits every hr grant on top of its own.
	if _, err := s.enforcer.AddGroupingPolicy(RoleAdmin, RoleHR); err != nil {
		return err
	}

	return nil
}

func (s *service) Enforce(req EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.enforcer.Enforce(req.Role, req.Resource, req.Action)
}
