package request

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// PaginatedRequest is a 1-based page request. Out-of-range values fall back to defaults.
type PaginatedRequest struct {
	Page    int `json:"page" validate:"min=1"`
	PerPage int `json:"per_page" validate:"min=1,max=100"`
}

func (p PaginatedRequest) CurrentPage() int {
	if p.Page < 1 {
		return 1
	}
	return p.Page
}

func (p PaginatedRequest) Limit() int {
	switch {
	case p.PerPage < 1:
		return DefaultPerPage
	case p.PerPage > MaxPerPage:
		return MaxPerPage
	default:
		return p.PerPage
	}
}

func (p PaginatedRequest) Offset() int {
	return (p.CurrentPage() - 1) * p.Limit()
}
