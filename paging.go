package nina

import "math"

const (
	// DefaultPageSize is used when the caller does not ask for one.
	DefaultPageSize = 10
	// MaxPageSize caps how many records a single page may return.
	MaxPageSize = 30
)

// Pagination is the sanitized windowing input: page is at least 1 and
// pageSize is clamped to [1, MaxPageSize].
type Pagination struct {
	Page     int
	PageSize int
}

// NewPagination clamps raw query values into a valid window.
func NewPagination(page, pageSize int) Pagination {
	if page < 1 {
		page = 1
	}

	if pageSize < 1 {
		pageSize = 1
	} else if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return Pagination{Page: page, PageSize: pageSize}
}

// PagedList is one window of a larger result set plus the metadata a client
// needs to walk it. Immutable after construction.
type PagedList[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
	TotalPages int `json:"total_pages"`
}

// NewPagedList builds a page from a query result and its total count.
func NewPagedList[T any](items []T, page, pageSize, count int) *PagedList[T] {
	return &PagedList[T]{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: count,
		TotalPages: int(math.Ceil(float64(count) / float64(pageSize))),
	}
}

// HasPrevious reports whether a previous page exists.
func (p *PagedList[T]) HasPrevious() bool {
	return p.Page > 1
}

// HasNext reports whether a following page exists.
func (p *PagedList[T]) HasNext() bool {
	return p.Page < p.TotalPages
}
