package cache

// Sort directions accepted by collection queries.
const (
	SortAsc = "asc"
	SortDsc = "dsc"
)

// Query carries the normalized dimensions of a paginated collection read.
// Two logically identical queries always normalize to the same Query and
// therefore to the same cache key.
type Query struct {
	Page     int
	Limit    int
	Skip     int
	SortType string
	SearchBy string
	// Status is empty for queries that do not partition on status.
	Status Status
}

// normalize applies canonical defaults (page 1, the engine's default limit,
// ascending sort) and derives Skip. Defaults are applied here rather than in
// handlers so that "page absent" and "page=1" build the same key.
func (q Query) normalize(defaultLimit int) Query {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultLimit
	}
	if q.SortType != SortDsc {
		q.SortType = SortAsc
	}
	q.Skip = (q.Page - 1) * q.Limit
	return q
}
