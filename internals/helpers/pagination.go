package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Pagination is the metadata block attached to list responses.
type Pagination struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
}

// Paging is the resolved ?page=&limit= pair for a list query.
type Paging struct {
	Page  int
	Limit int
}

func (p Paging) Offset() int { return (p.Page - 1) * p.Limit }

// ResolvePaging reads ?page= and ?limit= and normalizes them. Anything
// missing or invalid falls back to the defaults (page 1, limit 10).
func ResolvePaging(c *fiber.Ctx) Paging {
	page, _ := strconv.Atoi(strings.TrimSpace(c.Query("page", strconv.Itoa(DefaultPage))))
	if page < 1 {
		page = DefaultPage
	}

	limit, _ := strconv.Atoi(strings.TrimSpace(c.Query("limit", strconv.Itoa(DefaultLimit))))
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Paging{Page: page, Limit: limit}
}

// BuildPagination computes pages = ceil(total/limit).
func BuildPagination(total int64, p Paging) Pagination {
	pages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	return Pagination{
		Current: p.Page,
		Pages:   pages,
		Total:   total,
	}
}
