package console

import (
	"context"
	"fmt"
	"strconv"

	"github.com/erp/console/internal/domain/catalog"
	"github.com/erp/console/internal/domain/identity"
	"github.com/erp/console/internal/domain/partner"
	"github.com/shopspring/decimal"
)

// runCustomers drives the customers listing with its new/edit commands
func (a *App) runCustomers(ctx context.Context) string {
	return runListing(a, ctx, "CUSTOMERS", a.customers.Listing, nil, func(fields []string) bool {
		switch fields[0] {
		case "new":
			a.customerForm(ctx, partner.CustomerForm{IsActive: true})
			return true
		case "edit":
			if len(fields) < 2 {
				return false
			}
			id, err := strconv.Atoi(fields[1])
			if err != nil {
				return false
			}
			for _, c := range a.customers.Records() {
				if c.ID == id {
					a.customerForm(ctx, partner.CustomerForm{
						ID:             c.ID,
						Identification: c.Identification,
						Name:           c.Name,
						LastName:       c.LastName,
						Phone:          c.Phone,
						Email:          c.Email,
						Address:        c.Address,
						IsActive:       c.IsActive,
					})
					return true
				}
			}
			fmt.Fprintln(a.out, "No customer with that id.")
			return true
		}
		return false
	})
}

// customerForm prompts every customer field and saves the form
func (a *App) customerForm(ctx context.Context, form partner.CustomerForm) {
	form.Identification = a.promptDefault("Identification", form.Identification)
	form.Name = a.promptDefault("Name", form.Name)
	form.LastName = a.promptDefault("Last name", form.LastName)
	form.Phone = a.promptDefault("Phone", form.Phone)
	form.Email = a.promptDefault("Email", form.Email)
	form.Address = a.promptDefault("Address", form.Address)
	form.IsActive = a.promptBool("Active", form.IsActive)
	_ = a.customers.Save(ctx, form)
}

// runProducts drives the products listing with its new/edit commands
func (a *App) runProducts(ctx context.Context) string {
	return runListing(a, ctx, "PRODUCTS", a.products.Listing, nil, func(fields []string) bool {
		switch fields[0] {
		case "new":
			a.productForm(ctx, catalog.ProductForm{IsActive: true})
			return true
		case "edit":
			if len(fields) < 2 {
				return false
			}
			id, err := strconv.Atoi(fields[1])
			if err != nil {
				return false
			}
			for _, p := range a.products.Records() {
				if p.ID == id {
					a.productForm(ctx, catalog.ProductForm{
						ID:          p.ID,
						SKU:         p.SKU,
						Name:        p.Name,
						Description: p.Description,
						Price:       p.Price,
						Stock:       p.Stock,
						IsActive:    p.IsActive,
					})
					return true
				}
			}
			fmt.Fprintln(a.out, "No product with that id.")
			return true
		}
		return false
	})
}

// productForm prompts every product field and saves the form
func (a *App) productForm(ctx context.Context, form catalog.ProductForm) {
	form.SKU = a.promptDefault("SKU", form.SKU)
	form.Name = a.promptDefault("Name", form.Name)
	form.Description = a.promptDefault("Description", form.Description)
	if raw := a.promptDefault("Price", form.Price.String()); raw != "" {
		if price, err := decimal.NewFromString(raw); err == nil {
			form.Price = price
		}
	}
	if raw := a.promptDefault("Stock", strconv.Itoa(form.Stock)); raw != "" {
		if stock, err := strconv.Atoi(raw); err == nil {
			form.Stock = stock
		}
	}
	form.IsActive = a.promptBool("Active", form.IsActive)
	_ = a.products.Save(ctx, form)
}

// runUsers drives the users listing with its new/edit commands
func (a *App) runUsers(ctx context.Context) string {
	return runListing(a, ctx, "USERS", a.users.Listing, nil, func(fields []string) bool {
		switch fields[0] {
		case "new":
			a.userForm(ctx, identity.UserForm{IsActive: true})
			return true
		case "edit":
			if len(fields) < 2 {
				return false
			}
			id, err := strconv.Atoi(fields[1])
			if err != nil {
				return false
			}
			for _, u := range a.users.Records() {
				if u.ID == id {
					a.userForm(ctx, identity.UserForm{
						ID:             u.ID,
						Identification: u.Identification,
						Name:           u.Name,
						Email:          u.Email,
						IsActive:       u.IsActive,
					})
					return true
				}
			}
			fmt.Fprintln(a.out, "No user with that id.")
			return true
		}
		return false
	})
}

// userForm prompts every user field and saves the form
func (a *App) userForm(ctx context.Context, form identity.UserForm) {
	form.Identification = a.promptDefault("Identification", form.Identification)
	form.Name = a.promptDefault("Name", form.Name)
	form.Email = a.promptDefault("Email", form.Email)
	if pw, err := promptPassword(a.reader, a.out, "Password (blank keeps current): "); err == nil && pw != "" {
		form.Password = pw
	}
	form.IsActive = a.promptBool("Active", form.IsActive)
	_ = a.users.Save(ctx, form)
}

// runReports drives the sales report listing with its grand-total footer
func (a *App) runReports(ctx context.Context) string {
	footer := func() {
		fmt.Fprintf(a.out, "grand total: $%s\n", a.reports.GrandTotal().StringFixed(2))
	}
	return runListing(a, ctx, "SALES REPORT", a.reports.Listing, footer, func([]string) bool {
		return false
	})
}

// promptDefault prompts for a value, keeping the current one on empty input
func (a *App) promptDefault(label, current string) string {
	prompt := label + ": "
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]: ", label, current)
	}
	value, err := promptLine(a.reader, a.out, prompt)
	if err != nil || value == "" {
		return current
	}
	return value
}

// promptBool prompts for a yes/no value, keeping the current one otherwise
func (a *App) promptBool(label string, current bool) bool {
	state := "n"
	if current {
		state = "y"
	}
	value, err := promptLine(a.reader, a.out, fmt.Sprintf("%s (y/n) [%s]: ", label, state))
	if err != nil {
		return current
	}
	switch value {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	default:
		return current
	}
}
