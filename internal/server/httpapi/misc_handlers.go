package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (a *API) dashboard(c *gin.Context) {
	stats, err := a.reports.Dashboard(c.Request.Context())
	if err != nil {
		a.serverError(c, "dashboard", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (a *API) listUsers(c *gin.Context) {
	users, err := a.users.List(c.Request.Context())
	if err != nil {
		a.serverError(c, "list users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (a *API) listActivity(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	entries, err := a.activity.Recent(c.Request.Context(), limit)
	if err != nil {
		a.serverError(c, "list activity", err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
