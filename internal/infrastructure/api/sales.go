package api

import (
	"context"

	"github.com/erp/console/internal/domain/trade"
)

// ListSales fetches all sales for reporting
func (c *Client) ListSales(ctx context.Context) ([]trade.Sale, error) {
	var sales []trade.Sale
	if err := c.get(ctx, "/sales", &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

// CreateSale submits a new sale with its line items
func (c *Client) CreateSale(ctx context.Context, sale *trade.Sale) error {
	return c.post(ctx, "/sales", sale, nil)
}
