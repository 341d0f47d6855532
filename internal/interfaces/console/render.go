package console

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/erp/console/internal/application/pages"
	"github.com/erp/console/internal/application/table"
)

// renderListing prints one page of a listing: header, rows, and the
// pagination footer. An empty page shows the no-records indicator instead of
// a bare table.
func renderListing[T any](w io.Writer, l *pages.Listing[T]) {
	page := l.Page()
	pipeline := l.Pipeline()

	if page.Empty() {
		fmt.Fprintln(w, table.NoRecordsMessage)
	} else {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, strings.Join(pipeline.Header(), "\t"))
		for _, row := range page.Rows {
			fmt.Fprintln(tw, strings.Join(pipeline.RenderRow(row), "\t"))
		}
		tw.Flush()
	}

	fmt.Fprintf(w, "page %d/%d | %d of %d records\n",
		page.Current, page.TotalPages, page.FilteredCount, page.TotalRecords)
}
