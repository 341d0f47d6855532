package pages

import (
	"context"

	"github.com/erp/console/internal/application/table"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Listing is the shared controller for one tabular page: it owns the fetched
// records, the view state and the pipeline deriving the displayed page.
type Listing[T any] struct {
	name     string
	fetch    func(context.Context) ([]T, error)
	pipeline *table.Pipeline[T]
	view     table.ViewState
	records  []T

	// generation identifies the most recent fetch; a response from a
	// superseded fetch is dropped instead of overwriting newer state
	generation uuid.UUID

	logger *zap.Logger
	notify Notifier
}

// NewListing creates a listing controller over a fetch function and pipeline
func NewListing[T any](name string, fetch func(context.Context) ([]T, error), pipeline *table.Pipeline[T], logger *zap.Logger, notify Notifier) *Listing[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	if notify == nil {
		notify = NopNotifier{}
	}
	return &Listing[T]{
		name:     name,
		fetch:    fetch,
		pipeline: pipeline,
		view:     table.NewViewState(),
		logger:   logger,
		notify:   notify,
	}
}

// Refresh fetches the record list. Failures are logged and surfaced as a
// notice; the previous records stay on screen.
func (l *Listing[T]) Refresh(ctx context.Context) error {
	gen := uuid.New()
	l.generation = gen

	records, err := l.fetch(ctx)
	if err != nil {
		l.logger.Error("failed to fetch "+l.name, zap.Error(err))
		l.notify.Error("Could not load " + l.name + ".")
		return err
	}
	if l.generation != gen {
		// A newer fetch started while this one was in flight
		l.logger.Debug("dropping superseded fetch result", zap.String("listing", l.name))
		return nil
	}

	l.records = records
	return nil
}

// Page derives the current page of rows from the records and view state
func (l *Listing[T]) Page() table.Page[T] {
	return l.pipeline.Apply(l.records, l.view)
}

// Pipeline exposes the column configuration for rendering
func (l *Listing[T]) Pipeline() *table.Pipeline[T] {
	return l.pipeline
}

// Records returns the raw fetched records
func (l *Listing[T]) Records() []T {
	return l.records
}

// View returns the current view state
func (l *Listing[T]) View() table.ViewState {
	return l.view
}

// SetFilter applies a search term
func (l *Listing[T]) SetFilter(term string) {
	l.view.SetFilter(term)
}

// ClearFilter removes the search term
func (l *Listing[T]) ClearFilter() {
	l.view.ClearFilter()
}

// SetPageSize changes the rows per page
func (l *Listing[T]) SetPageSize(size int) {
	l.view.SetPageSize(size)
}

// SetPage jumps to a page, clamped to the valid range
func (l *Listing[T]) SetPage(page int) {
	l.view.SetPage(page, l.Page().TotalPages)
}

// NextPage advances one page, clamped at the last page
func (l *Listing[T]) NextPage() {
	l.view.Next(l.Page().TotalPages)
}

// PreviousPage goes back one page, clamped at page 1
func (l *Listing[T]) PreviousPage() {
	l.view.Previous()
}

// SortBy sets or toggles the sort column
func (l *Listing[T]) SortBy(key string) {
	l.view.SortBy(key)
}
