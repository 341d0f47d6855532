package console

import (
	"fmt"
	"io"
)

// Notices prints user-visible feedback to the terminal. It is the single
// notification surface all page controllers report through.
type Notices struct {
	out io.Writer
}

// NewNotices creates a terminal notifier
func NewNotices(out io.Writer) *Notices {
	return &Notices{out: out}
}

// Success implements pages.Notifier
func (n *Notices) Success(message string) {
	fmt.Fprintf(n.out, "[ok] %s\n", message)
}

// Error implements pages.Notifier
func (n *Notices) Error(message string) {
	fmt.Fprintf(n.out, "[error] %s\n", message)
}
