// Package projection turns a fetched collection into the slice a list
// screen renders: filtered by a search query, optionally excluding
// rows, sorted by a named field and paginated. The whole collection is
// held in memory; upstream list endpoints do not page.
package projection

import (
	"sort"
	"strconv"
	"strings"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// State is the URL-borne list state. The URL is the single source of
// truth, so rendering the same State twice over the same collection
// yields the same page.
type State struct {
	Query           string
	Sort            string
	Order           SortOrder
	Page            int
	IncludeExcluded bool
}

// StateFromQuery decodes a State from query parameter values, applying
// the given defaults for the sort field.
func StateFromQuery(get func(string) string, defaultSort string) State {
	st := State{
		Query:           strings.TrimSpace(get("q")),
		Sort:            get("sort"),
		Order:           SortAsc,
		Page:            1,
		IncludeExcluded: get("admins") == "1",
	}
	if st.Sort == "" {
		st.Sort = defaultSort
	}
	if get("order") == string(SortDesc) {
		st.Order = SortDesc
	}
	if p, err := strconv.Atoi(get("page")); err == nil && p > 0 {
		st.Page = p
	}
	return st
}

// Toggle flips the sort order when the field is already active,
// otherwise switches to the field ascending. Either way the page
// resets to 1.
func (s State) Toggle(field string) State {
	next := s
	next.Page = 1
	if s.Sort == field {
		if s.Order == SortAsc {
			next.Order = SortDesc
		} else {
			next.Order = SortAsc
		}
		return next
	}
	next.Sort = field
	next.Order = SortAsc
	return next
}

// Encode renders the state back into query parameters, omitting
// defaults so URLs stay short.
func (s State) Encode(set func(key, value string)) {
	if s.Query != "" {
		set("q", s.Query)
	}
	if s.Sort != "" {
		set("sort", s.Sort)
	}
	if s.Order == SortDesc {
		set("order", string(SortDesc))
	}
	if s.Page > 1 {
		set("page", strconv.Itoa(s.Page))
	}
	if s.IncludeExcluded {
		set("admins", "1")
	}
}

// Spec describes how a collection of T projects onto a list screen.
type Spec[T any] struct {
	// SearchFields are matched case-insensitively against the query.
	SearchFields []func(T) string
	// Exclude drops rows unless State.IncludeExcluded is set.
	Exclude func(T) bool
	// SortKeys maps a sort field name to a key extractor. The second
	// return reports whether the row has a value; rows without one
	// sort after all rows that do, in either order.
	SortKeys map[string]func(T) (string, bool)
	PerPage  int
}

type Result[T any] struct {
	Items      []T
	Total      int
	Page       int
	TotalPages int
}

// Project applies filter, sort and pagination in that order. The input
// slice is not mutated.
func (spec Spec[T]) Project(items []T, st State) Result[T] {
	filtered := make([]T, 0, len(items))
	query := strings.ToLower(strings.TrimSpace(st.Query))
	for _, item := range items {
		if spec.Exclude != nil && !st.IncludeExcluded && spec.Exclude(item) {
			continue
		}
		if query != "" && !spec.matches(item, query) {
			continue
		}
		filtered = append(filtered, item)
	}

	if key, ok := spec.SortKeys[st.Sort]; ok {
		desc := st.Order == SortDesc
		sort.SliceStable(filtered, func(i, j int) bool {
			a, aOK := key(filtered[i])
			b, bOK := key(filtered[j])
			if aOK != bOK {
				// Missing values always sink to the bottom.
				return aOK
			}
			if !aOK {
				return false
			}
			cmp := strings.Compare(strings.ToLower(a), strings.ToLower(b))
			if desc {
				return cmp > 0
			}
			return cmp < 0
		})
	}

	perPage := spec.PerPage
	if perPage <= 0 {
		perPage = 10
	}
	total := len(filtered)
	totalPages := (total + perPage - 1) / perPage

	page := st.Page
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}
	if totalPages == 0 {
		page = 1
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Result[T]{
		Items:      filtered[start:end],
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}
}

func (spec Spec[T]) matches(item T, query string) bool {
	for _, field := range spec.SearchFields {
		if strings.Contains(strings.ToLower(field(item)), query) {
			return true
		}
	}
	return false
}
