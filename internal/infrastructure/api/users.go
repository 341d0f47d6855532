package api

import (
	"context"
	"fmt"

	"github.com/erp/console/internal/domain/identity"
)

// ListUsers fetches all application users
func (c *Client) ListUsers(ctx context.Context) ([]identity.User, error) {
	var users []identity.User
	if err := c.get(ctx, "/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser creates a new user record
func (c *Client) CreateUser(ctx context.Context, form identity.UserForm) error {
	return c.post(ctx, "/users", form, nil)
}

// UpdateUser updates an existing user record
func (c *Client) UpdateUser(ctx context.Context, form identity.UserForm) error {
	return c.put(ctx, fmt.Sprintf("/users/%d", form.ID), form, nil)
}
