// Package cache implements the read-through/write-invalidate caching layer
// that sits between the HTTP handlers and MongoDB. Keys are deterministic
// encodings of query dimensions, invalidation is tag-scoped, and every cache
// failure degrades to a miss so the cache is never a correctness dependency.
package cache

import (
	"fmt"
	"net/url"
	"strings"
)

// Kind identifies a single-document namespace.
type Kind string

// Document kinds.
const (
	KindStaff    Kind = "staff"
	KindUser     Kind = "user"
	KindCategory Kind = "category"
	KindProduct  Kind = "product"
	KindOrder    Kind = "order"
	KindReview   Kind = "review"
)

// Tag identifies a collection namespace. Every collection key carries its
// tag as the segment right after the schema version, which is what
// tag-scoped invalidation matches against.
type Tag string

// Collection tags.
const (
	TagStaffs     Tag = "staffs"
	TagUsers      Tag = "users"
	TagCategories Tag = "categories"
	TagProducts   Tag = "products"
	TagOrders     Tag = "orders"
	TagReviews    Tag = "reviews"
)

// Status partitions a collection query by document status.
type Status string

// Status filter values.
const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusAll      Status = "all"
)

const (
	// schemaVersion prefixes every key. Bump it whenever a cached
	// projection changes shape; stale-version entries age out via TTL.
	schemaVersion = "v1"

	// delimiter separates key segments. Embedded values are escaped so no
	// request parameter can reproduce it.
	delimiter = "::"
)

// DocumentKey returns the cache key for a single document.
// The id is embedded as-is; identifier shape validation is the caller's job.
func DocumentKey(kind Kind, id string) string {
	return schemaVersion + delimiter + string(kind) + delimiter + id
}

// CollectionKey returns the cache key for a paginated collection query.
// The search term segment is appended only when a term is present, so an
// unfiltered query and an empty-filter query never collide.
func CollectionKey(tag Tag, q Query) string {
	key := fmt.Sprintf("%s%s%s%spage(%d)%slimit(%d)%sskip(%d)%ssort_type(%s)",
		schemaVersion, delimiter, tag, delimiter,
		q.Page, delimiter, q.Limit, delimiter, q.Skip, delimiter, q.SortType)
	if q.SearchBy != "" {
		key += delimiter + "search_by(" + escapeTerm(q.SearchBy) + ")"
	}
	return key
}

// StatusCollectionKey is CollectionKey with a trailing status segment, used
// by queries that additionally partition on active/inactive.
func StatusCollectionKey(tag Tag, q Query, status Status) string {
	return CollectionKey(tag, q) + delimiter + "status(" + string(status) + ")"
}

// escapeTerm percent-escapes a free-form search term so it cannot contain
// the segment delimiter.
func escapeTerm(term string) string {
	return url.QueryEscape(term)
}

// keyNamespace returns the kind or tag segment of a key, or "" when the key
// does not carry the current schema version. Invalidation compares this
// segment for equality rather than substring-matching the whole key, so
// sibling namespaces like "category" and "categories" can never bleed into
// each other.
func keyNamespace(key string) string {
	parts := strings.SplitN(key, delimiter, 3)
	if len(parts) < 3 || parts[0] != schemaVersion {
		return ""
	}
	return parts[1]
}
