package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/erp/console/internal/domain/identity"
	"github.com/erp/console/internal/domain/shared"
)

// Login authenticates against the remote API. Only a 200 response counts as
// success; any rejection maps to the authentication failure error so callers
// can surface a single user-visible notice.
func (c *Client) Login(ctx context.Context, creds identity.Credentials) error {
	err := c.post(ctx, "/Auth/login", creds, nil)
	if err == nil {
		return nil
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode != http.StatusOK {
		return shared.ErrAuthenticationFail
	}
	return err
}
