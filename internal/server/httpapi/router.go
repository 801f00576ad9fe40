// Package httpapi exposes the PrintFlow REST API: the auth endpoints plus the
// business resources, with bearer-token authentication and role checks.
package httpapi

import (
	"github.com/gin-gonic/gin"

	"github.com/printflow/printflow/internal/logging"
	"github.com/printflow/printflow/internal/server/models"
	"github.com/printflow/printflow/internal/server/services"
)

// API holds the services the handlers delegate to.
type API struct {
	logger    logging.Logger
	users     *services.UserService
	inventory *services.InventoryService
	orders    *services.OrderService
	suppliers *services.SupplierService
	activity  *services.ActivityService
	reports   *services.ReportService
}

func NewAPI(
	logger logging.Logger,
	users *services.UserService,
	inventory *services.InventoryService,
	orders *services.OrderService,
	suppliers *services.SupplierService,
	activity *services.ActivityService,
	reports *services.ReportService,
) *API {
	return &API{
		logger:    logger,
		users:     users,
		inventory: inventory,
		orders:    orders,
		suppliers: suppliers,
		activity:  activity,
		reports:   reports,
	}
}

// Router builds the gin engine with all routes registered.
func (a *API) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/api/health", a.health)
	r.POST("/api/auth/login", a.login)

	authed := r.Group("/api")
	authed.Use(a.Auth())
	{
		authed.POST("/auth/register", a.RequireRoles(models.RoleAdmin), a.register)

		authed.GET("/inventory", a.listInventory)
		authed.POST("/inventory", a.createInventory)
		authed.PUT("/inventory/:id", a.updateInventory)
		authed.DELETE("/inventory/:id", a.deleteInventory)

		authed.GET("/orders", a.listOrders)
		authed.POST("/orders", a.createOrder)
		authed.GET("/orders/:id", a.getOrder)
		authed.PATCH("/orders/:id/status", a.setOrderStatus)
		authed.DELETE("/orders/:id", a.deleteOrder)

		managers := authed.Group("", a.RequireRoles(models.RoleAdmin, models.RoleManager))
		{
			managers.GET("/suppliers", a.listSuppliers)
			managers.POST("/suppliers", a.createSupplier)
			managers.PUT("/suppliers/:id", a.updateSupplier)
			managers.DELETE("/suppliers/:id", a.deleteSupplier)

			managers.GET("/reports/dashboard", a.dashboard)
		}

		admins := authed.Group("", a.RequireRoles(models.RoleAdmin))
		{
			admins.GET("/users", a.listUsers)
			admins.GET("/activity", a.listActivity)
		}
	}

	return r
}
