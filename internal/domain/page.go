package domain

// Paging bounds. PerPage is clamped to MaxPerPage so a single list call can
// never return an unbounded result set.
const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// SortDir is a list sort direction.
type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

// PageQuery is the raw, partially specified listing input as it arrives from
// a caller. Zero values mean "unset".
type PageQuery struct {
	Page    int    `json:"page,omitempty"`
	PerPage int    `json:"per_page,omitempty"`
	Sort    string `json:"sort,omitempty"`
	SortDir string `json:"sort_dir,omitempty" enum:"asc,desc"`
	Filter  string `json:"filter,omitempty"`
}

// PageInput is the canonical paging request consumed by every store's List.
// Sort is an opaque field name; empty means the collection's natural order
// (created_at descending, id as tie-break). Filter is passed through
// verbatim to the store.
type PageInput struct {
	Page    int
	PerPage int
	Sort    string
	SortDir SortDir
	Filter  string
}

// Offset returns the row offset for the requested page.
func (p PageInput) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// PageBounds carries the workspace's paging settings. Zero fields fall back
// to the package constants.
type PageBounds struct {
	PerPage    int
	MaxPerPage int
}

func (b PageBounds) perPage() int {
	if b.PerPage > 0 {
		return b.PerPage
	}
	return DefaultPerPage
}

func (b PageBounds) maxPerPage() int {
	if b.MaxPerPage > 0 {
		return b.MaxPerPage
	}
	return MaxPerPage
}

// NormalizePage turns a raw query into a valid PageInput using the default
// paging bounds.
func NormalizePage(q PageQuery) PageInput {
	return NormalizePageWith(q, PageBounds{})
}

// NormalizePageWith turns a raw query into a valid PageInput under the given
// bounds. It never fails: out-of-range or unknown values fall back to the
// bounds' defaults, per_page is clamped to the ceiling and any sort_dir
// other than asc/desc becomes asc.
func NormalizePageWith(q PageQuery, b PageBounds) PageInput {
	in := PageInput{
		Page:    q.Page,
		PerPage: q.PerPage,
		Sort:    q.Sort,
		SortDir: SortAsc,
		Filter:  q.Filter,
	}
	if in.Page < 1 {
		in.Page = 1
	}
	if in.PerPage < 1 {
		in.PerPage = b.perPage()
	}
	if in.PerPage > b.maxPerPage() {
		in.PerPage = b.maxPerPage()
	}
	if d := SortDir(q.SortDir); d == SortAsc || d == SortDesc {
		in.SortDir = d
	}
	return in
}

// Page is one page of a filtered collection. Total counts every record
// matching the filter regardless of the page window, so callers can compute
// page counts.
type Page[T any] struct {
	Total int `json:"total"`
	Items []T `json:"items"`
}
