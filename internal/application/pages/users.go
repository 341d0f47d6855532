package pages

import (
	"context"

	"github.com/erp/console/internal/application/table"
	"github.com/erp/console/internal/domain/identity"
	"github.com/erp/console/internal/infrastructure/api"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// userColumns defines the user listing
func userColumns() []table.Column[identity.User] {
	return []table.Column[identity.User]{
		{Key: "id", Name: "ID", Sortable: true, Value: func(u identity.User) any { return u.ID }},
		{Key: "identification", Name: "Identification", Value: func(u identity.User) any { return u.Identification }},
		{Key: "name", Name: "Name", Sortable: true, Value: func(u identity.User) any { return u.Name }},
		{Key: "email", Name: "Email", Value: func(u identity.User) any { return u.Email }},
		{Key: "isActive", Name: "Status",
			Value:  func(u identity.User) any { return u.IsActive },
			Render: identity.User.StatusLabel},
	}
}

// UsersPage lists application users and saves user forms
type UsersPage struct {
	*Listing[identity.User]
	client   *api.Client
	validate *validator.Validate
	notify   Notifier
	logger   *zap.Logger
}

// NewUsersPage creates the users controller
func NewUsersPage(client *api.Client, notify Notifier, logger *zap.Logger) *UsersPage {
	if notify == nil {
		notify = NopNotifier{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	pipeline := &table.Pipeline[identity.User]{
		Columns: userColumns(),
		Search:  identity.User.Matches,
	}
	return &UsersPage{
		Listing:  NewListing("users", client.ListUsers, pipeline, logger, notify),
		client:   client,
		validate: validator.New(),
		notify:   notify,
		logger:   logger,
	}
}

// Save creates or updates a user and reloads the listing
func (p *UsersPage) Save(ctx context.Context, form identity.UserForm) error {
	if err := p.validate.Struct(form); err != nil {
		p.notify.Error("Identification, name and a valid email are required.")
		return err
	}

	var err error
	if form.IsEditing() {
		err = p.client.UpdateUser(ctx, form)
	} else {
		err = p.client.CreateUser(ctx, form)
	}
	if err != nil {
		p.logger.Error("failed to save user", zap.Error(err))
		p.notify.Error("Could not save the user.")
		return err
	}

	p.notify.Success("User saved.")
	return p.Refresh(ctx)
}
