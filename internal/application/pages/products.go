package pages

import (
	"context"

	"github.com/erp/console/internal/application/table"
	"github.com/erp/console/internal/domain/catalog"
	"github.com/erp/console/internal/infrastructure/api"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// productColumns defines the product listing
func productColumns() []table.Column[catalog.Product] {
	return []table.Column[catalog.Product]{
		{Key: "id", Name: "ID", Sortable: true, Value: func(p catalog.Product) any { return p.ID }},
		{Key: "sku", Name: "SKU", Value: func(p catalog.Product) any { return p.SKU }},
		{Key: "name", Name: "Name", Sortable: true, Value: func(p catalog.Product) any { return p.Name }},
		{Key: "price", Name: "Price", Sortable: true,
			Value:  func(p catalog.Product) any { return p.Price },
			Render: func(p catalog.Product) string { return "$" + p.Price.StringFixed(2) }},
		{Key: "stock", Name: "Stock", Sortable: true, Value: func(p catalog.Product) any { return p.Stock }},
		{Key: "isActive", Name: "Status",
			Value:  func(p catalog.Product) any { return p.IsActive },
			Render: catalog.Product.StatusLabel},
	}
}

// ProductsPage lists products and saves product forms
type ProductsPage struct {
	*Listing[catalog.Product]
	client   *api.Client
	validate *validator.Validate
	notify   Notifier
	logger   *zap.Logger
}

// NewProductsPage creates the products controller
func NewProductsPage(client *api.Client, notify Notifier, logger *zap.Logger) *ProductsPage {
	if notify == nil {
		notify = NopNotifier{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	pipeline := &table.Pipeline[catalog.Product]{
		Columns: productColumns(),
		Search:  catalog.Product.Matches,
	}
	return &ProductsPage{
		Listing:  NewListing("products", client.ListProducts, pipeline, logger, notify),
		client:   client,
		validate: validator.New(),
		notify:   notify,
		logger:   logger,
	}
}

// Save creates or updates a product and reloads the listing
func (p *ProductsPage) Save(ctx context.Context, form catalog.ProductForm) error {
	if err := p.validate.Struct(form); err != nil {
		p.notify.Error("SKU and name are required, stock cannot be negative.")
		return err
	}

	var err error
	if form.IsEditing() {
		err = p.client.UpdateProduct(ctx, form)
	} else {
		err = p.client.CreateProduct(ctx, form)
	}
	if err != nil {
		p.logger.Error("failed to save product", zap.Error(err))
		p.notify.Error("Could not save the product.")
		return err
	}

	p.notify.Success("Product saved.")
	return p.Refresh(ctx)
}
