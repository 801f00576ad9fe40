package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/printflow/printflow/internal/server/models"
)

func (a *API) listOrders(c *gin.Context) {
	orders, err := a.orders.List(c.Request.Context())
	if err != nil {
		a.serverError(c, "list orders", err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (a *API) getOrder(c *gin.Context) {
	order, err := a.orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		a.writeError(c, "get order", err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (a *API) createOrder(c *gin.Context) {
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	created, err := a.orders.Create(c.Request.Context(), &order)
	if err != nil {
		a.writeError(c, "create order", err)
		return
	}

	_ = a.activity.Record(c.Request.Context(), currentUserID(c), "order.create",
		"created order "+created.OrderNumber+" for "+created.CustomerName, c.ClientIP())

	c.JSON(http.StatusCreated, created)
}

type orderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

func (a *API) setOrderStatus(c *gin.Context) {
	var req orderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Status is required"})
		return
	}

	id := c.Param("id")
	if err := a.orders.SetStatus(c.Request.Context(), id, req.Status); err != nil {
		a.writeError(c, "update order status", err)
		return
	}

	_ = a.activity.Record(c.Request.Context(), currentUserID(c), "order.status",
		fmt.Sprintf("order %s moved to %s", id, req.Status), c.ClientIP())

	c.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
}

func (a *API) deleteOrder(c *gin.Context) {
	id := c.Param("id")
	if err := a.orders.Delete(c.Request.Context(), id); err != nil {
		a.writeError(c, "delete order", err)
		return
	}

	_ = a.activity.Record(c.Request.Context(), currentUserID(c), "order.delete",
		fmt.Sprintf("deleted order %s", id), c.ClientIP())

	c.JSON(http.StatusOK, gin.H{"message": "Order removed"})
}
