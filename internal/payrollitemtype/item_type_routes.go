package payrollitemtype

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService rbac.Service,
) {
	types := r.Group("/payroll-item-types")

	types.Use(middleware.AuthMiddleware())

	{
		types.GET("", rbac.Authorize(rbacService, "payroll_item_type", "read"), h.GetAll)
		types.GET("/:id", rbac.Authorize(rbacService, "payroll_item_type", "read"), h.GetById)
		types.POST("/:id/activate", rbac.Authorize(rbacService, "payroll_item_type", "update"), h.Activate)
		types.POST("/:id/deactivate", rbac.Authorize(rbacService, "payroll_item_type", "update"), h.Deactivate)
	}
}
