package cache

import (
	"encoding/json"
	"fmt"
	"math"
)

// Pagination is recomputed from a live count on every request, cache hit or
// miss, so totals never drift from the store. Prev/next are pointers so the
// JSON representation can distinguish "no previous page" from page zero.
type Pagination struct {
	CurrentPage int   `json:"current_page"`
	Limit       int   `json:"limit"`
	TotalPages  int   `json:"total_pages"`
	TotalItems  int64 `json:"-"`
	PrevPage    *int  `json:"prev_page,omitempty"`
	NextPage    *int  `json:"next_page,omitempty"`

	tag Tag
}

// NewPagination derives the full pagination block for a collection response.
func NewPagination(tag Tag, page, limit int, totalItems int64) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(limit)))
	}

	p := Pagination{
		CurrentPage: page,
		Limit:       limit,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		tag:         tag,
	}
	if page > 1 {
		prev := page - 1
		p.PrevPage = &prev
	}
	if page < totalPages {
		next := page + 1
		p.NextPage = &next
	}
	return p
}

// PageLinks are the navigation links emitted next to the pagination block.
// Prev and next are present only when the corresponding page exists.
type PageLinks struct {
	Self string `json:"self"`
	Prev string `json:"prev,omitempty"`
	Next string `json:"next,omitempty"`
}

// Links derives navigation links for the collection the pagination block
// describes.
func (p Pagination) Links() PageLinks {
	pageLink := func(page int) string {
		return fmt.Sprintf("/%s?page=%d&limit=%d", p.tag, page, p.Limit)
	}

	links := PageLinks{Self: pageLink(p.CurrentPage)}
	if p.PrevPage != nil {
		links.Prev = pageLink(*p.PrevPage)
	}
	if p.NextPage != nil {
		links.Next = pageLink(*p.NextPage)
	}
	return links
}

// MarshalJSON emits the total count under a per-collection field name
// (total_products, total_categories, ...) to match the API contract.
func (p Pagination) MarshalJSON() ([]byte, error) {
	out := map[string]interface{}{
		"current_page":          p.CurrentPage,
		"limit":                 p.Limit,
		"total_pages":           p.TotalPages,
		"total_" + string(p.tag): p.TotalItems,
	}
	if p.PrevPage != nil {
		out["prev_page"] = *p.PrevPage
	}
	if p.NextPage != nil {
		out["next_page"] = *p.NextPage
	}
	return json.Marshal(out)
}
