// Package pagination implements the optional page/pageSize query parameters
// accepted by every list endpoint. Lists stay plain JSON arrays; the total
// row count travels in the X-Total-Count header.
package pagination

import (
	"gorm.io/gorm"
)

// TotalCountHeader carries the unpaginated row count of a list response.
const TotalCountHeader = "X-Total-Count"

// MaxPageSize bounds a single page.
const MaxPageSize = 500

// PageRequest holds pagination parameters parsed from query strings.
// The zero value means "no pagination".
type PageRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"pageSize" binding:"omitempty,min=1,max=500"`
}

// Enabled reports whether the caller asked for a page.
func (p PageRequest) Enabled() bool {
	return p.Page > 0 || p.PageSize > 0
}

// Normalize fills in defaults once pagination is requested.
func (p PageRequest) Normalize() PageRequest {
	if !p.Enabled() {
		return p
	}
	if p.Page == 0 {
		p.Page = 1
	}
	if p.PageSize == 0 {
		p.PageSize = 50
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Offset returns the SQL OFFSET for the current page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Paginate returns a GORM scope that applies OFFSET and LIMIT when pagination
// is requested and leaves the query untouched otherwise.
func Paginate(req PageRequest) func(db *gorm.DB) *gorm.DB {
	req = req.Normalize()
	return func(db *gorm.DB) *gorm.DB {
		if !req.Enabled() {
			return db
		}
		return db.Offset(req.Offset()).Limit(req.PageSize)
	}
}

// Page is a slice of rows plus the total number of matching rows.
type Page[T any] struct {
	Items []T
	Total int64
}

// NewPage wraps rows, never returning a nil slice so lists encode as [].
func NewPage[T any](items []T, total int64) *Page[T] {
	if items == nil {
		items = []T{}
	}
	return &Page[T]{Items: items, Total: total}
}
