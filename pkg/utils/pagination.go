package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// Pagination carries page/limit through repository calls.
type Pagination struct {
	Page  int
	Limit int
}

// Offset returns the number of records to skip for the current page.
func (p *Pagination) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// GetPagination extracts pagination parameters from the request, with
// sane defaults and an upper bound on page size.
func GetPagination(c echo.Context) *Pagination {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	if page <= 0 {
		page = 1
	}

	if limit <= 0 || limit > 100 {
		limit = 20
	}

	return &Pagination{
		Page:  page,
		Limit: limit,
	}
}
