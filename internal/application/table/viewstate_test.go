package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewState_NextClampsAtLastPage(t *testing.T) {
	v := NewViewState()
	v.Next(3)
	v.Next(3)
	assert.Equal(t, 3, v.Page)

	v.Next(3)
	assert.Equal(t, 3, v.Page, "next at the last page is a no-op")
}

func TestViewState_PreviousClampsAtFirstPage(t *testing.T) {
	v := NewViewState()
	v.Previous()
	assert.Equal(t, 1, v.Page, "previous at page 1 is a no-op")

	v.Next(2)
	v.Previous()
	assert.Equal(t, 1, v.Page)
}

func TestViewState_SetFilterResetsPage(t *testing.T) {
	v := NewViewState()
	v.Next(5)
	v.SetFilter("abc")

	assert.Equal(t, "abc", v.FilterText)
	assert.Equal(t, 1, v.Page)
}

func TestViewState_ClearFilterResetsPage(t *testing.T) {
	v := NewViewState()
	v.SetFilter("abc")
	v.Next(5)
	v.ClearFilter()

	assert.Equal(t, "", v.FilterText)
	assert.Equal(t, 1, v.Page)
}

func TestViewState_SetPageSizeResetsPage(t *testing.T) {
	v := NewViewState()
	v.Next(5)
	v.SetPageSize(10)

	assert.Equal(t, 10, v.PageSize)
	assert.Equal(t, 1, v.Page)

	v.SetPageSize(0)
	assert.Equal(t, DefaultPageSize, v.PageSize)
}

func TestViewState_SetPageClamps(t *testing.T) {
	v := NewViewState()
	v.SetPage(7, 3)
	assert.Equal(t, 3, v.Page)

	v.SetPage(-1, 3)
	assert.Equal(t, 1, v.Page)
}

func TestViewState_SortByTogglesDirection(t *testing.T) {
	v := NewViewState()
	v.SortBy("name")
	assert.Equal(t, "name", v.SortKey)
	assert.Equal(t, Ascending, v.SortDir)

	v.SortBy("name")
	assert.Equal(t, Descending, v.SortDir)

	v.SortBy("id")
	assert.Equal(t, "id", v.SortKey)
	assert.Equal(t, Ascending, v.SortDir, "new column starts ascending")
}
