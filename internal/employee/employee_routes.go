package employee

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
	employees := r.Group("/employees")

	employees.Use(middleware.AuthMiddleware())

	{
		employees.GET("", rbac.Authorize(rbacService, "employee", "read"), h.GetAll)
		employees.POST("", rbac.Authorize(rbacService, "employee", "create"), h.Create)
		employees.GET("/:id", rbac.Authorize(rbacService, "employee", "read"), h.GetById)
		employees.PUT("/:id", rbac.Authorize(rbacService, "employee", "update"), h.Update)
		employees.DELETE("/:id", rbac.Authorize(rbacService, "employee", "delete"), h.Delete)
		employees.POST("/:id/deactivate", rbac.Authorize(rbacService, "employee", "deactivate"), h.Deactivate)
	}
}
