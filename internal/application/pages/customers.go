package pages

import (
	"context"

	"github.com/erp/console/internal/application/table"
	"github.com/erp/console/internal/domain/partner"
	"github.com/erp/console/internal/infrastructure/api"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// customerColumns defines the customer listing
func customerColumns() []table.Column[partner.Customer] {
	return []table.Column[partner.Customer]{
		{Key: "id", Name: "ID", Sortable: true, Value: func(c partner.Customer) any { return c.ID }},
		{Key: "identification", Name: "Identification", Value: func(c partner.Customer) any { return c.Identification }},
		{Key: "name", Name: "Name", Sortable: true,
			Value:  func(c partner.Customer) any { return c.Name },
			Render: partner.Customer.FullName},
		{Key: "phone", Name: "Phone", Value: func(c partner.Customer) any { return c.Phone }},
		{Key: "email", Name: "Email", Value: func(c partner.Customer) any { return c.Email }},
		{Key: "address", Name: "Address", Value: func(c partner.Customer) any { return c.Address }},
		{Key: "isActive", Name: "Status",
			Value:  func(c partner.Customer) any { return c.IsActive },
			Render: partner.Customer.StatusLabel},
	}
}

// CustomersPage lists customers and saves customer forms
type CustomersPage struct {
	*Listing[partner.Customer]
	client   *api.Client
	validate *validator.Validate
	notify   Notifier
	logger   *zap.Logger
}

// NewCustomersPage creates the customers controller
func NewCustomersPage(client *api.Client, notify Notifier, logger *zap.Logger) *CustomersPage {
	if notify == nil {
		notify = NopNotifier{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	pipeline := &table.Pipeline[partner.Customer]{
		Columns: customerColumns(),
		Search:  partner.Customer.Matches,
	}
	return &CustomersPage{
		Listing:  NewListing("customers", client.ListCustomers, pipeline, logger, notify),
		client:   client,
		validate: validator.New(),
		notify:   notify,
		logger:   logger,
	}
}

// Save creates or updates a customer and reloads the listing. Failures are
// logged and surfaced as a notice.
func (p *CustomersPage) Save(ctx context.Context, form partner.CustomerForm) error {
	if err := p.validate.Struct(form); err != nil {
		p.notify.Error("Identification and name are required.")
		return err
	}

	var err error
	if form.IsEditing() {
		err = p.client.UpdateCustomer(ctx, form)
	} else {
		err = p.client.CreateCustomer(ctx, form)
	}
	if err != nil {
		p.logger.Error("failed to save customer", zap.Error(err))
		p.notify.Error("Could not save the customer.")
		return err
	}

	p.notify.Success("Customer saved.")
	return p.Refresh(ctx)
}
