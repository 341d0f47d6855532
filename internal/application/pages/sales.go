package pages

import (
	"context"

	"github.com/erp/console/internal/domain/catalog"
	"github.com/erp/console/internal/domain/partner"
	"github.com/erp/console/internal/domain/trade"
	"github.com/erp/console/internal/infrastructure/api"
	"go.uber.org/zap"
)

// SalesPage is the new-sale form: it holds the sale under construction plus
// the customer and product lists the form selects from
type SalesPage struct {
	client *api.Client
	notify Notifier
	logger *zap.Logger

	sale      *trade.Sale
	customers []partner.Customer
	products  []catalog.Product
}

// NewSalesPage creates the sale entry controller
func NewSalesPage(client *api.Client, notify Notifier, logger *zap.Logger) *SalesPage {
	if notify == nil {
		notify = NopNotifier{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SalesPage{
		client: client,
		notify: notify,
		logger: logger,
		sale:   trade.NewSale(),
	}
}

// Load fetches the customers and products the form selects from
func (p *SalesPage) Load(ctx context.Context) error {
	customers, err := p.client.ListCustomers(ctx)
	if err != nil {
		p.logger.Error("failed to fetch customers", zap.Error(err))
		p.notify.Error("Could not load customers.")
		return err
	}
	products, err := p.client.ListProducts(ctx)
	if err != nil {
		p.logger.Error("failed to fetch products", zap.Error(err))
		p.notify.Error("Could not load products.")
		return err
	}

	p.customers = customers
	p.products = products
	return nil
}

// Sale returns the sale under construction
func (p *SalesPage) Sale() *trade.Sale {
	return p.sale
}

// Customers returns the selectable customers
func (p *SalesPage) Customers() []partner.Customer {
	return p.customers
}

// Products returns the selectable products
func (p *SalesPage) Products() []catalog.Product {
	return p.products
}

// SelectProduct assigns a product to a line by product id, auto-populating
// the line's unit value from the product price
func (p *SalesPage) SelectProduct(line, productID int) error {
	for _, product := range p.products {
		if product.ID == productID {
			return p.sale.SelectProduct(line, product)
		}
	}
	p.notify.Error("Unknown product.")
	return nil
}

// Submit posts the sale and starts a fresh one on success
func (p *SalesPage) Submit(ctx context.Context) error {
	if err := p.sale.Validate(); err != nil {
		p.notify.Error(err.Error())
		return err
	}

	if err := p.client.CreateSale(ctx, p.sale); err != nil {
		p.logger.Error("failed to save sale", zap.Error(err))
		p.notify.Error("Could not save the sale.")
		return err
	}

	p.notify.Success("Sale saved.")
	p.sale = trade.NewSale()
	return nil
}
