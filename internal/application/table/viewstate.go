package table

// Direction is the sort direction of a listing
type Direction string

const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

// ViewState holds the filter, pagination and sort parameters of one listing
// page. Page-change operations clamp at the boundaries so the current page
// never under- or overflows.
type ViewState struct {
	FilterText string
	PageSize   int
	Page       int
	SortKey    string
	SortDir    Direction
}

// NewViewState returns the initial view of a listing
func NewViewState() ViewState {
	return ViewState{
		PageSize: DefaultPageSize,
		Page:     1,
		SortDir:  Ascending,
	}
}

// SetFilter applies a search term and returns to the first page
func (v *ViewState) SetFilter(term string) {
	v.FilterText = term
	v.Page = 1
}

// ClearFilter removes the search term and returns to the first page
func (v *ViewState) ClearFilter() {
	v.FilterText = ""
	v.Page = 1
}

// SetPageSize changes the rows per page and returns to the first page
func (v *ViewState) SetPageSize(size int) {
	if size <= 0 {
		size = DefaultPageSize
	}
	v.PageSize = size
	v.Page = 1
}

// Next advances one page; a no-op at the last page
func (v *ViewState) Next(totalPages int) {
	if v.Page < totalPages {
		v.Page++
	}
}

// Previous goes back one page; a no-op at page 1
func (v *ViewState) Previous() {
	if v.Page > 1 {
		v.Page--
	}
}

// SetPage jumps to a page, clamped to the valid range
func (v *ViewState) SetPage(page, totalPages int) {
	v.Page = clampPage(page, totalPages)
}

// SortBy sets the sort column, toggling direction when the column repeats
func (v *ViewState) SortBy(key string) {
	if v.SortKey == key {
		if v.SortDir == Ascending {
			v.SortDir = Descending
		} else {
			v.SortDir = Ascending
		}
		return
	}
	v.SortKey = key
	v.SortDir = Ascending
}
