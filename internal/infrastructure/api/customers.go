package api

import (
	"context"
	"fmt"

	"github.com/erp/console/internal/domain/partner"
)

// ListCustomers fetches all customers
func (c *Client) ListCustomers(ctx context.Context) ([]partner.Customer, error) {
	var customers []partner.Customer
	if err := c.get(ctx, "/customers", &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// CreateCustomer creates a new customer record
func (c *Client) CreateCustomer(ctx context.Context, form partner.CustomerForm) error {
	return c.post(ctx, "/customers", form, nil)
}

// UpdateCustomer updates an existing customer record
func (c *Client) UpdateCustomer(ctx context.Context, form partner.CustomerForm) error {
	return c.put(ctx, fmt.Sprintf("/customers/%d", form.ID), form, nil)
}
