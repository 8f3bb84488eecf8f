package payroll

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
) {
	payrolls := r.Group("/payrolls")

	payrolls.Use(middleware.AuthMiddleware())
	if rdb != nil {
		payrolls.Use(middleware.Idempotency(rdb))
	}

	{
		payrolls.GET("", rbac.Authorize(rbacService, "payroll", "read"), h.GetAll)
		payrolls.POST("", rbac.Authorize(rbacService, "payroll", "create"), h.Create)
		payrolls.GET("/summary", rbac.Authorize(rbacService, "payroll", "read"), h.Summary)
		payrolls.POST("/generate", rbac.Authorize(rbacService, "payroll", "generate"), h.Generate)
		payrolls.GET("/:id", rbac.Authorize(rbacService, "payroll", "read"), h.GetById)
		payrolls.PUT("/:id", rbac.Authorize(rbacService, "payroll", "update"), h.Update)
		payrolls.DELETE("/:id", rbac.Authorize(rbacService, "payroll", "delete"), h.Delete)
		payrolls.POST("/:id/process", rbac.Authorize(rbacService, "payroll", "process"), h.Process)
		payrolls.POST("/:id/mark-paid", rbac.Authorize(rbacService, "payroll", "pay"), h.MarkPaid)
	}
}
