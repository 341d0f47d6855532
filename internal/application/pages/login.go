package pages

import (
	"context"

	"github.com/erp/console/internal/domain/identity"
	"github.com/erp/console/internal/infrastructure/api"
	"github.com/erp/console/internal/infrastructure/session"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// LoginPage handles authentication: it prepares a token, submits the
// credentials and establishes the session on success
type LoginPage struct {
	client   *api.Client
	manager  *session.Manager
	validate *validator.Validate
	notify   Notifier
	logger   *zap.Logger
}

// NewLoginPage creates the login controller
func NewLoginPage(client *api.Client, manager *session.Manager, notify Notifier, logger *zap.Logger) *LoginPage {
	if notify == nil {
		notify = NopNotifier{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoginPage{
		client:   client,
		manager:  manager,
		validate: validator.New(),
		notify:   notify,
		logger:   logger,
	}
}

// Submit runs the login flow and reports whether a session was established.
// Any failure surfaces as a single notice; nothing propagates past here.
func (p *LoginPage) Submit(ctx context.Context, email, password string) bool {
	creds := identity.Credentials{Email: email, Password: password}
	if err := p.validate.Struct(creds); err != nil {
		p.notify.Error("Enter a valid email and password.")
		return false
	}

	if err := p.manager.EnsureToken(ctx); err != nil {
		p.logger.Error("token preparation failed", zap.Error(err))
		p.notify.Error("Wrong user or password.")
		return false
	}

	if err := p.client.Login(ctx, creds); err != nil {
		p.logger.Warn("login rejected", zap.String("email", email), zap.Error(err))
		p.notify.Error("Wrong user or password.")
		return false
	}

	p.manager.Store().SetIdentity(email)
	return true
}

// Logout clears the credential and session together
func (p *LoginPage) Logout() {
	p.manager.Clear()
}
