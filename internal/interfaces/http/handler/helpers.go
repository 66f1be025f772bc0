package handler

import (
	"github.com/gin-gonic/gin"
	diningapp "github.com/menuboard/backend/internal/application/dining"
)

// listQuery mirrors the query parameters accepted by list endpoints
type listQuery struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	Search   string `form:"search"`
	SortBy   string `form:"sort_by"`
	SortDesc bool   `form:"sort_desc"`
}

// bindListFilter binds pagination query parameters with defaults applied.
// Returns false after writing the error response when binding fails.
func bindListFilter(h BaseHandler, c *gin.Context) (diningapp.ListFilter, bool) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, err.Error())
		return diningapp.ListFilter{}, false
	}

	if q.Page == 0 {
		q.Page = 1
	}
	if q.PageSize == 0 {
		q.PageSize = 20
	}

	return diningapp.ListFilter{
		Page:     q.Page,
		PageSize: q.PageSize,
		Search:   q.Search,
		SortBy:   q.SortBy,
		SortDesc: q.SortDesc,
	}, true
}
