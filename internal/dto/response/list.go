package response

// ListResponse is one page of a catalogue listing.
type ListResponse[T any] struct {
	Items   []T   `json:"items"`
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	HasMore bool  `json:"has_more"`
}

func NewListResponse[T any](items []T, page, perPage int, total int64) *ListResponse[T] {
	if items == nil {
		items = []T{}
	}

	return &ListResponse[T]{
		Items:   items,
		Page:    page,
		PerPage: perPage,
		Total:   total,
		HasMore: int64(page)*int64(perPage) < total,
	}
}
