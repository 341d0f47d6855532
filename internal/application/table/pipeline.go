// Package table implements the shared tabular data pipeline: a pure
// derivation from a fetched record list plus view state to the final page of
// rows for display. The same parametrized pipeline serves every listing page.
package table

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// NoRecordsMessage is the explicit indicator rendered for an empty result set
const NoRecordsMessage = "No records found."

// DefaultPageSize matches the default rows-per-page of the listing pages
const DefaultPageSize = 5

// SortScope selects which record set the sort comparator runs over
type SortScope int

const (
	// SortPage sorts only the current page window, after slicing. This is
	// the behavior the listing pages historically exhibited.
	SortPage SortScope = iota
	// SortGlobal sorts the whole filtered set before pagination
	SortGlobal
)

// Column describes one displayable column of a listing
type Column[T any] struct {
	Key      string
	Name     string
	Sortable bool

	// Value extracts the raw field used for sorting and as the display
	// fallback when no Render is set
	Value func(T) any

	// Render maps the row to its display value for this column
	Render func(T) string
}

// Pipeline turns a raw record list plus view state into a page of rows.
// Apply is a pure function of its inputs; nothing is mutated.
type Pipeline[T any] struct {
	Columns []Column[T]

	// Search reports whether a record matches a search term. A nil Search
	// disables filtering.
	Search func(T, string) bool

	// Scope selects page-window or global sorting
	Scope SortScope
}

// Page is the derived view of one listing page
type Page[T any] struct {
	Rows          []T
	Current       int
	TotalPages    int
	TotalRecords  int
	FilteredCount int
}

// Empty reports whether the page has no rows to display
func (p Page[T]) Empty() bool {
	return len(p.Rows) == 0
}

// Apply runs the pipeline: filter, count pages, clamp, slice, sort
func (p *Pipeline[T]) Apply(records []T, view ViewState) Page[T] {
	pageSize := view.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	filtered := p.filter(records, view.FilterText)

	totalPages := TotalPages(len(filtered), pageSize)
	current := clampPage(view.Page, totalPages)

	if p.Scope == SortGlobal {
		filtered = p.sorted(filtered, view.SortKey, view.SortDir)
	}

	window := slice(filtered, current, pageSize)

	if p.Scope == SortPage {
		window = p.sorted(window, view.SortKey, view.SortDir)
	}

	return Page[T]{
		Rows:          window,
		Current:       current,
		TotalPages:    totalPages,
		TotalRecords:  len(records),
		FilteredCount: len(filtered),
	}
}

// RenderCell maps a row and column key to its display value. Columns without
// a Render fall back to the raw field value.
func (p *Pipeline[T]) RenderCell(row T, key string) string {
	for _, col := range p.Columns {
		if col.Key != key {
			continue
		}
		if col.Render != nil {
			return col.Render(row)
		}
		if col.Value != nil {
			return formatValue(col.Value(row))
		}
		return ""
	}
	return ""
}

// RenderRow renders every column of one row in declaration order
func (p *Pipeline[T]) RenderRow(row T) []string {
	cells := make([]string, len(p.Columns))
	for i, col := range p.Columns {
		cells[i] = p.RenderCell(row, col.Key)
	}
	return cells
}

// Header returns the column display names in declaration order
func (p *Pipeline[T]) Header() []string {
	names := make([]string, len(p.Columns))
	for i, col := range p.Columns {
		names[i] = col.Name
	}
	return names
}

// TotalPages computes ceil(count/pageSize) with a minimum of one page even
// for an empty set
func TotalPages(count, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	pages := (count + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// filter keeps records matching the term. An empty term is a passthrough of
// the original list, unchanged in order and content.
func (p *Pipeline[T]) filter(records []T, term string) []T {
	if term == "" || p.Search == nil {
		return records
	}
	filtered := make([]T, 0, len(records))
	for _, r := range records {
		if p.Search(r, term) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// sorted returns a sorted copy of the rows by the named column. Ties keep
// their prior order; an unknown or empty sort key leaves the order alone.
func (p *Pipeline[T]) sorted(rows []T, sortKey string, dir Direction) []T {
	if sortKey == "" {
		return rows
	}
	var value func(T) any
	for _, col := range p.Columns {
		if col.Key == sortKey && col.Value != nil {
			value = col.Value
			break
		}
	}
	if value == nil {
		return rows
	}

	out := make([]T, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		cmp := compareValues(value(out[i]), value(out[j]))
		if dir == Descending {
			cmp = -cmp
		}
		return cmp < 0
	})
	return out
}

// slice cuts the page window out of the filtered set, clipped to its length
func slice[T any](filtered []T, page, pageSize int) []T {
	start := (page - 1) * pageSize
	if start >= len(filtered) {
		return nil
	}
	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

func clampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// compareValues orders two raw field values naturally, returning -1, 0 or 1
func compareValues(a, b any) int {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		if !ok {
			break
		}
		return strings.Compare(strings.ToLower(av), strings.ToLower(bv))
	case int:
		if bv, ok := b.(int); ok {
			return compareOrdered(av, bv)
		}
	case int64:
		if bv, ok := b.(int64); ok {
			return compareOrdered(av, bv)
		}
	case float64:
		if bv, ok := b.(float64); ok {
			return compareOrdered(av, bv)
		}
	case decimal.Decimal:
		if bv, ok := b.(decimal.Decimal); ok {
			return av.Cmp(bv)
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv)
		}
	case bool:
		if bv, ok := b.(bool); ok {
			if av == bv {
				return 0
			}
			if !av {
				return -1
			}
			return 1
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func compareOrdered[T int | int64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// formatValue renders a raw field value for display
func formatValue(v any) string {
	switch tv := v.(type) {
	case string:
		return tv
	case time.Time:
		return tv.Format("2006-01-02")
	case decimal.Decimal:
		return tv.String()
	default:
		return fmt.Sprint(v)
	}
}
