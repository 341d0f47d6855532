package pages

import (
	"strings"

	"github.com/erp/console/internal/application/table"
	"github.com/erp/console/internal/domain/trade"
	"github.com/erp/console/internal/infrastructure/api"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// reportColumns defines the sales report listing
func reportColumns() []table.Column[trade.Sale] {
	return []table.Column[trade.Sale]{
		{Key: "date", Name: "Date", Sortable: true,
			Value:  func(s trade.Sale) any { return s.Date },
			Render: func(s trade.Sale) string { return s.Date.Format("2006-01-02") }},
		{Key: "customer", Name: "Customer", Value: func(s trade.Sale) any { return s.Customer }},
		{Key: "total", Name: "Total", Sortable: true,
			Value:  func(s trade.Sale) any { return s.Total },
			Render: func(s trade.Sale) string { return "$" + s.Total.StringFixed(2) }},
	}
}

// ReportsPage lists past sales with a derived grand total
type ReportsPage struct {
	*Listing[trade.Sale]
}

// NewReportsPage creates the sales report controller
func NewReportsPage(client *api.Client, notify Notifier, logger *zap.Logger) *ReportsPage {
	if notify == nil {
		notify = NopNotifier{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	pipeline := &table.Pipeline[trade.Sale]{
		Columns: reportColumns(),
		Search: func(s trade.Sale, term string) bool {
			return strings.Contains(strings.ToLower(s.Customer), strings.ToLower(term))
		},
	}
	return &ReportsPage{
		Listing: NewListing("sales", client.ListSales, pipeline, logger, notify),
	}
}

// GrandTotal sums the totals of the currently filtered sales
func (p *ReportsPage) GrandTotal() decimal.Decimal {
	view := p.View()
	total := decimal.Zero
	for _, sale := range p.Records() {
		if view.FilterText != "" &&
			!strings.Contains(strings.ToLower(sale.Customer), strings.ToLower(view.FilterText)) {
			continue
		}
		total = total.Add(sale.Total)
	}
	return total
}
