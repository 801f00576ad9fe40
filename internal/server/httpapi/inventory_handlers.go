package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/printflow/printflow/internal/common"
	"github.com/printflow/printflow/internal/server/models"
)

func (a *API) listInventory(c *gin.Context) {
	items, err := a.inventory.List(c.Request.Context())
	if err != nil {
		a.serverError(c, "list inventory", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (a *API) createInventory(c *gin.Context) {
	var item models.InventoryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	created, err := a.inventory.Create(c.Request.Context(), &item)
	if err != nil {
		a.writeError(c, "create inventory item", err)
		return
	}

	_ = a.activity.Record(c.Request.Context(), currentUserID(c), "inventory.create",
		"added "+created.Name, c.ClientIP())

	c.JSON(http.StatusCreated, created)
}

func (a *API) updateInventory(c *gin.Context) {
	var item models.InventoryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	item.ID = c.Param("id")

	if err := a.inventory.Update(c.Request.Context(), &item); err != nil {
		a.writeError(c, "update inventory item", err)
		return
	}

	_ = a.activity.Record(c.Request.Context(), currentUserID(c), "inventory.update",
		"updated "+item.Name, c.ClientIP())

	c.JSON(http.StatusOK, item)
}

func (a *API) deleteInventory(c *gin.Context) {
	id := c.Param("id")
	if err := a.inventory.Delete(c.Request.Context(), id); err != nil {
		a.writeError(c, "delete inventory item", err)
		return
	}

	_ = a.activity.Record(c.Request.Context(), currentUserID(c), "inventory.delete",
		fmt.Sprintf("removed item %s", id), c.ClientIP())

	c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
}

// writeError maps service errors to the wire. Unknown errors are logged with
// detail and reported as a generic 500.
func (a *API) writeError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, common.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, common.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	case errors.Is(err, common.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"message": "Already exists"})
	default:
		a.serverError(c, op, err)
	}
}

func (a *API) serverError(c *gin.Context, op string, err error) {
	a.logger.Error(c.Request.Context(), op+" failed", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
}
