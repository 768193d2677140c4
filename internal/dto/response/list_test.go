package response

import "testing"

func TestNewListResponse(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name    string
		items   []int
		page    int
		perPage int
		total   int64
		hasMore bool
	}{
		{name: "empty catalogue", page: 1, perPage: 20},
		{name: "more to come", items: []int{1, 2}, page: 1, perPage: 2, total: 3, hasMore: true},
		{name: "last page", items: []int{3}, page: 2, perPage: 2, total: 3},
		{name: "exact fit", items: []int{1, 2}, page: 1, perPage: 2, total: 2},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			resp := NewListResponse(tc.items, tc.page, tc.perPage, tc.total)
			if resp.Items == nil {
				t.Fatal("items must encode as [] rather than null")
			}
			if resp.HasMore != tc.hasMore {
				t.Errorf("has_more = %v, want %v", resp.HasMore, tc.hasMore)
			}
		})
	}
}
