package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryNormalize(t *testing.T) {
	tests := []struct {
		name     string
		in       Query
		expected Query
	}{
		{
			name:     "zero query gets defaults",
			in:       Query{},
			expected: Query{Page: 1, Limit: 8, Skip: 0, SortType: SortAsc},
		},
		{
			name:     "negative page clamps to one",
			in:       Query{Page: -3, Limit: 10},
			expected: Query{Page: 1, Limit: 10, Skip: 0, SortType: SortAsc},
		},
		{
			name:     "skip derives from page and limit",
			in:       Query{Page: 4, Limit: 10},
			expected: Query{Page: 4, Limit: 10, Skip: 30, SortType: SortAsc},
		},
		{
			name:     "descending sort survives",
			in:       Query{Page: 1, Limit: 8, SortType: SortDsc},
			expected: Query{Page: 1, Limit: 8, Skip: 0, SortType: SortDsc},
		},
		{
			name:     "unknown sort falls back to ascending",
			in:       Query{Page: 1, Limit: 8, SortType: "sideways"},
			expected: Query{Page: 1, Limit: 8, Skip: 0, SortType: SortAsc},
		},
		{
			name:     "search term and status pass through",
			in:       Query{Page: 2, Limit: 5, SearchBy: "mug", Status: StatusActive},
			expected: Query{Page: 2, Limit: 5, Skip: 5, SortType: SortAsc, SearchBy: "mug", Status: StatusActive},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.in.normalize(8))
		})
	}
}

// "page absent" and "page=1" must build the same cache key.
func TestQueryNormalize_KeyStability(t *testing.T) {
	implicit := Query{}.normalize(8)
	explicit := Query{Page: 1, Limit: 8}.normalize(8)
	assert.Equal(t, CollectionKey(TagOrders, implicit), CollectionKey(TagOrders, explicit))
}
