// Package handler maps HTTP requests onto the service layer. Handlers bind
// and validate payloads, read the active tenant set by the middleware
// pipeline, and emit the uniform response envelope.
package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/classora/classora-backend/internal/model"
)

// pathID parses the :id path parameter. Returns false on non-numeric input.
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// listOptions reads the shared paging/sort/visibility query parameters.
func listOptions(c *gin.Context) model.ListOptions {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	return model.ListOptions{
		Page:            page,
		Limit:           limit,
		SortBy:          c.Query("sort_by"),
		SortAsc:         c.Query("sort_order") == "asc",
		IncludeInactive: c.Query("include_inactive") == "true",
	}
}

// listPayload is the uniform shape for paginated collections.
func listPayload(items interface{}, pagination model.Pagination) gin.H {
	return gin.H{"items": items, "pagination": pagination}
}
