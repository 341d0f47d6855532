// Package pages implements the page controllers behind each route: fetching
// data, driving the tabular pipeline, validating forms and submitting them.
// Controllers hold no terminal I/O; the console front-end renders their state.
package pages

// Notifier is the single user-visible notification surface. Every CRUD
// failure path reports through it, so feedback stays consistent across pages.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// NopNotifier discards notices, useful in tests
type NopNotifier struct{}

// Success implements Notifier
func (NopNotifier) Success(string) {}

// Error implements Notifier
func (NopNotifier) Error(string) {}
