package request

// Catalogue listings (movies, reviewers) are paged by id.
const (
	DefaultPerPage = 20
	MaxPerPage     = 50
)

type ListRequest struct {
	Page    int
	PerPage int
}

// NewListRequest clamps page and perPage into the listing bounds.
func NewListRequest(page, perPage int) ListRequest {
	if page < 1 {
		page = 1
	}
	switch {
	case perPage < 1:
		perPage = DefaultPerPage
	case perPage > MaxPerPage:
		perPage = MaxPerPage
	}
	return ListRequest{Page: page, PerPage: perPage}
}

func (l ListRequest) Offset() int {
	return (l.Page - 1) * l.PerPage
}
