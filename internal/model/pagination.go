package model

// ListOptions are the shared paging and soft-delete visibility knobs.
type ListOptions struct {
	Page            int
	Limit           int
	SortBy          string
	SortAsc         bool
	IncludeInactive bool
}

// Normalize clamps paging values into sane bounds.
func (o *ListOptions) Normalize() {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.Limit < 1 {
		o.Limit = 20
	}
	if o.Limit > 100 {
		o.Limit = 100
	}
}

// Offset returns the row offset for the current page.
func (o ListOptions) Offset() int {
	return (o.Page - 1) * o.Limit
}

// Pagination is the paging metadata returned beside list items.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// NewPagination derives paging metadata from a total row count.
func NewPagination(page, limit, total int) Pagination {
	totalPages := (total + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
