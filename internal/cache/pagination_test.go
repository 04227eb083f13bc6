package cache

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		total      int64
		totalPages int
		prev       *int
		next       *int
	}{
		{name: "first of three pages", page: 1, limit: 8, total: 20, totalPages: 3, next: intPtr(2)},
		{name: "middle page", page: 2, limit: 8, total: 20, totalPages: 3, prev: intPtr(1), next: intPtr(3)},
		{name: "last page", page: 3, limit: 8, total: 20, totalPages: 3, prev: intPtr(2)},
		{name: "exact multiple", page: 1, limit: 10, total: 20, totalPages: 2, next: intPtr(2)},
		{name: "single page", page: 1, limit: 8, total: 5, totalPages: 1},
		{name: "empty collection", page: 1, limit: 8, total: 0, totalPages: 0},
		{name: "page beyond the end has no next", page: 9, limit: 8, total: 20, totalPages: 3, prev: intPtr(8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(TagProducts, tt.page, tt.limit, tt.total)
			assert.Equal(t, tt.page, p.CurrentPage)
			assert.Equal(t, tt.totalPages, p.TotalPages)
			assert.Equal(t, tt.prev, p.PrevPage)
			assert.Equal(t, tt.next, p.NextPage)
		})
	}
}

func TestPaginationMarshalJSON(t *testing.T) {
	p := NewPagination(TagProducts, 2, 8, 20)

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))

	assert.Equal(t, float64(2), out["current_page"])
	assert.Equal(t, float64(8), out["limit"])
	assert.Equal(t, float64(3), out["total_pages"])
	assert.Equal(t, float64(20), out["total_products"])
	assert.Equal(t, float64(1), out["prev_page"])
	assert.Equal(t, float64(3), out["next_page"])
}

func TestPaginationMarshalJSON_OmitsAbsentNeighbors(t *testing.T) {
	p := NewPagination(TagOrders, 1, 8, 5)

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))

	assert.NotContains(t, out, "prev_page")
	assert.NotContains(t, out, "next_page")
	assert.Equal(t, float64(5), out["total_orders"])
}

func TestPaginationLinks(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		total int64
		self  string
		prev  string
		next  string
	}{
		{name: "middle page links both ways", page: 2, total: 20,
			self: "/products?page=2&limit=5", prev: "/products?page=1&limit=5", next: "/products?page=3&limit=5"},
		{name: "first page has no prev", page: 1, total: 20,
			self: "/products?page=1&limit=5", next: "/products?page=2&limit=5"},
		{name: "last page has no next", page: 4, total: 20,
			self: "/products?page=4&limit=5", prev: "/products?page=3&limit=5"},
		{name: "single page stands alone", page: 1, total: 3,
			self: "/products?page=1&limit=5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			links := NewPagination(TagProducts, tt.page, 5, tt.total).Links()
			assert.Equal(t, tt.self, links.Self)
			assert.Equal(t, tt.prev, links.Prev)
			assert.Equal(t, tt.next, links.Next)
		})
	}
}

func TestPaginationLinks_JSONOmitsAbsentNeighbors(t *testing.T) {
	raw, err := json.Marshal(NewPagination(TagOrders, 1, 8, 5).Links())
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))

	assert.Equal(t, "/orders?page=1&limit=8", out["self"])
	assert.NotContains(t, out, "prev")
	assert.NotContains(t, out, "next")
}

func intPtr(v int) *int { return &v }
