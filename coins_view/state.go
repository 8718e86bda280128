package coins_view

import (
	"net/url"
	"slices"
	"strconv"
	"strings"
)

const DefaultLimit = 10

// AllowedLimits are the list sizes the dashboard offers
var AllowedLimits = []int{5, 10, 20, 50, 100}

// ListViewState is the user's list configuration. It is a value type:
// the With* methods return a modified copy.
type ListViewState struct {
	limit   int
	filter  string
	sortKey SortKey
}

func NewListViewState() ListViewState {
	return ListViewState{
		limit:   DefaultLimit,
		sortKey: SortMarketCapDesc,
	}
}

func (s ListViewState) Limit() int       { return s.limit }
func (s ListViewState) Filter() string   { return s.filter }
func (s ListViewState) SortKey() SortKey { return s.sortKey }

// WithLimit sets the limit; values outside AllowedLimits become DefaultLimit.
func (s ListViewState) WithLimit(limit int) ListViewState {
	if !slices.Contains(AllowedLimits, limit) {
		limit = DefaultLimit
	}
	s.limit = limit
	return s
}

func (s ListViewState) WithFilter(filter string) ListViewState {
	s.filter = filter
	return s
}

func (s ListViewState) WithSortKey(key SortKey) ListViewState {
	s.sortKey = key
	return s
}

// ParseLimit converts a query value to an allowed limit, else DefaultLimit.
func ParseLimit(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || !slices.Contains(AllowedLimits, n) {
		return DefaultLimit
	}
	return n
}

// StateFromQuery reads limit, filter and sort from a list page URL.
func StateFromQuery(q url.Values) ListViewState {
	state := NewListViewState().
		WithLimit(ParseLimit(q.Get("limit"))).
		WithFilter(q.Get("filter"))
	if q.Has("sort") {
		state = state.WithSortKey(ParseSortKey(q.Get("sort")))
	}
	return state
}

// Query encodes the state for links back to the list page.
func (s ListViewState) Query() url.Values {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(s.limit))
	if s.filter != "" {
		q.Set("filter", s.filter)
	}
	q.Set("sort", string(s.sortKey))
	return q
}
