package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/erp/console/internal/application/pages"
)

// runSales drives the new-sale form
func (a *App) runSales(ctx context.Context) string {
	if err := a.sales.Load(ctx); err != nil {
		return pages.RouteHome
	}

	for {
		a.renderSale()

		line, err := promptLine(a.reader, a.out, "sale> ")
		if err != nil {
			return routeExit
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		sale := a.sales.Sale()
		switch fields[0] {
		case "customer":
			if id, ok := atoiArg(fields, 1); ok {
				sale.SetCustomer(id)
			}
		case "date":
			if len(fields) > 1 {
				if date, err := time.Parse("2006-01-02", fields[1]); err == nil {
					sale.SetDate(date)
				} else {
					fmt.Fprintln(a.out, "Use the YYYY-MM-DD format.")
				}
			}
		case "note":
			sale.SetNote(strings.Join(fields[1:], " "))
		case "add":
			sale.AddLine()
		case "del":
			if n, ok := atoiArg(fields, 1); ok {
				if err := sale.RemoveLine(n); err != nil {
					fmt.Fprintln(a.out, err.Error())
				}
			}
		case "product":
			if n, ok := atoiArg(fields, 1); ok {
				if id, ok := atoiArg(fields, 2); ok {
					if err := a.sales.SelectProduct(n, id); err != nil {
						fmt.Fprintln(a.out, err.Error())
					}
				}
			}
		case "qty":
			if n, ok := atoiArg(fields, 1); ok && len(fields) > 2 {
				if err := sale.SetLineQuantity(n, fields[2]); err != nil {
					fmt.Fprintln(a.out, err.Error())
				}
			}
		case "value":
			if n, ok := atoiArg(fields, 1); ok && len(fields) > 2 {
				if err := sale.SetLineValue(n, fields[2]); err != nil {
					fmt.Fprintln(a.out, err.Error())
				}
			}
		case "save":
			_ = a.sales.Submit(ctx)
		case "back", "home":
			return pages.RouteHome
		case "logout":
			a.login.Logout()
			return pages.RouteLogin
		case "exit", "quit":
			return routeExit
		default:
			fmt.Fprintln(a.out, "Commands: customer <id> | date <yyyy-mm-dd> | note <text> | add | del <line> | product <line> <id> | qty <line> <n> | value <line> <n> | save | back")
		}
	}
}

// renderSale prints the sale under construction
func (a *App) renderSale() {
	sale := a.sales.Sale()

	fmt.Fprintln(a.out, "== NEW SALE ==")
	customer := "-"
	for _, c := range a.sales.Customers() {
		if c.ID == sale.CustomerID {
			customer = c.FullName()
			break
		}
	}
	fmt.Fprintf(a.out, "customer: %s | date: %s | note: %s\n",
		customer, sale.Date.Format("2006-01-02"), sale.Note)

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tProduct\tQty\tValue\tSubtotal")
	for i, d := range sale.Details {
		product := "-"
		for _, p := range a.sales.Products() {
			if p.ID == d.ProductID {
				product = p.Name
				break
			}
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			i, product, d.Quantity.String(), d.Value.StringFixed(2), d.Subtotal().StringFixed(2))
	}
	tw.Flush()
	fmt.Fprintf(a.out, "total: $%s\n", sale.Total.StringFixed(2))
}

// atoiArg parses the i-th field as an int
func atoiArg(fields []string, i int) (int, bool) {
	if len(fields) <= i {
		return 0, false
	}
	n, err := strconv.Atoi(fields[i])
	if err != nil {
		return 0, false
	}
	return n, true
}
