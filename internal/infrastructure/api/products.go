package api

import (
	"context"
	"fmt"

	"github.com/erp/console/internal/domain/catalog"
)

// ListProducts fetches all products
func (c *Client) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := c.get(ctx, "/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// CreateProduct creates a new product record
func (c *Client) CreateProduct(ctx context.Context, form catalog.ProductForm) error {
	return c.post(ctx, "/products", form, nil)
}

// UpdateProduct updates an existing product record
func (c *Client) UpdateProduct(ctx context.Context, form catalog.ProductForm) error {
	return c.put(ctx, fmt.Sprintf("/products/%d", form.ID), form, nil)
}
