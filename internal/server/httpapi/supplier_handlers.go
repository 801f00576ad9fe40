package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/printflow/printflow/internal/server/models"
)

func (a *API) listSuppliers(c *gin.Context) {
	suppliers, err := a.suppliers.List(c.Request.Context())
	if err != nil {
		a.serverError(c, "list suppliers", err)
		return
	}
	c.JSON(http.StatusOK, suppliers)
}

func (a *API) createSupplier(c *gin.Context) {
	var sup models.Supplier
	if err := c.ShouldBindJSON(&sup); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	created, err := a.suppliers.Create(c.Request.Context(), &sup)
	if err != nil {
		a.writeError(c, "create supplier", err)
		return
	}

	_ = a.activity.Record(c.Request.Context(), currentUserID(c), "supplier.create",
		"added supplier "+created.Name, c.ClientIP())

	c.JSON(http.StatusCreated, created)
}

func (a *API) updateSupplier(c *gin.Context) {
	var sup models.Supplier
	if err := c.ShouldBindJSON(&sup); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	sup.ID = c.Param("id")

	if err := a.suppliers.Update(c.Request.Context(), &sup); err != nil {
		a.writeError(c, "update supplier", err)
		return
	}

	_ = a.activity.Record(c.Request.Context(), currentUserID(c), "supplier.update",
		"updated supplier "+sup.Name, c.ClientIP())

	c.JSON(http.StatusOK, sup)
}

func (a *API) deleteSupplier(c *gin.Context) {
	id := c.Param("id")
	if err := a.suppliers.Delete(c.Request.Context(), id); err != nil {
		a.writeError(c, "delete supplier", err)
		return
	}

	_ = a.activity.Record(c.Request.Context(), currentUserID(c), "supplier.delete",
		fmt.Sprintf("removed supplier %s", id), c.ClientIP())

	c.JSON(http.StatusOK, gin.H{"message": "Supplier removed"})
}
