package dto

// DefaultLimit is the default number of items per page.
const DefaultLimit = 10

// MaxLimit is the maximum allowed items per page.
const MaxLimit = 50

// PaginationRequest represents page-number pagination parameters.
// Search results are filtered in memory per request, so simple page
// numbers are stable enough; no cursor machinery is needed.
type PaginationRequest struct {
	// Page is the 1-based page number (default 1).
	Page int `form:"page" validate:"omitempty,gte=1"`

	// Limit is the maximum number of items to return (1-50, default 10).
	Limit int `form:"limit" validate:"omitempty,gte=1,lte=50"`
}

// GetPage returns the page number with defaults applied.
func (p *PaginationRequest) GetPage() int {
	if p.Page < 1 {
		return 1
	}

	return p.Page
}

// GetLimit returns the limit with defaults applied.
func (p *PaginationRequest) GetLimit() int {
	if p.Limit <= 0 {
		return DefaultLimit
	}

	if p.Limit > MaxLimit {
		return MaxLimit
	}

	return p.Limit
}

// PaginatedResponse is a generic page-numbered response structure.
type PaginatedResponse[T any] struct {
	// Items is the array of items for this page.
	Items []T `json:"items"`

	// TotalCount is the number of items across all pages.
	TotalCount int `json:"totalCount"`

	// Page is the 1-based page number this response represents.
	Page int `json:"page"`

	// TotalPages is the number of pages available.
	TotalPages int `json:"totalPages"`
}

// NewPaginatedResponse creates a paginated response for one page of items.
func NewPaginatedResponse[T any](items []T, totalCount, page, totalPages int) *PaginatedResponse[T] {
	if items == nil {
		items = []T{}
	}

	return &PaginatedResponse[T]{
		Items:      items,
		TotalCount: totalCount,
		Page:       page,
		TotalPages: totalPages,
	}
}
