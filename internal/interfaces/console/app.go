// Package console is the terminal front-end: it navigates between pages,
// reads commands and renders the controllers' state. All business behavior
// lives in the page controllers; the loop here is I/O only.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/erp/console/internal/application/pages"
	"github.com/erp/console/internal/infrastructure/session"
	"go.uber.org/zap"
)

// routeExit is the internal marker for leaving the program
const routeExit = "exit"

// App wires the page controllers to the terminal
type App struct {
	router    *pages.Router
	login     *pages.LoginPage
	customers *pages.CustomersPage
	products  *pages.ProductsPage
	sales     *pages.SalesPage
	reports   *pages.ReportsPage
	users     *pages.UsersPage

	store  *session.Store
	reader *bufio.Reader
	out    io.Writer
	logger *zap.Logger
}

// Deps bundles everything the app needs
type Deps struct {
	Router    *pages.Router
	Login     *pages.LoginPage
	Customers *pages.CustomersPage
	Products  *pages.ProductsPage
	Sales     *pages.SalesPage
	Reports   *pages.ReportsPage
	Users     *pages.UsersPage
	Store     *session.Store
	In        io.Reader
	Out       io.Writer
	Logger    *zap.Logger
}

// NewApp creates the terminal application
func NewApp(d Deps) *App {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	return &App{
		router:    d.Router,
		login:     d.Login,
		customers: d.Customers,
		products:  d.Products,
		sales:     d.Sales,
		reports:   d.Reports,
		users:     d.Users,
		store:     d.Store,
		reader:    bufio.NewReader(d.In),
		out:       d.Out,
		logger:    d.Logger,
	}
}

// Run drives the navigation loop until the user exits
func (a *App) Run(ctx context.Context) {
	for {
		var next string
		switch a.router.Current() {
		case pages.RouteLogin:
			next = a.runLogin(ctx)
		case pages.RouteHome:
			next = a.runHome()
		case pages.RouteCustomers:
			next = a.runCustomers(ctx)
		case pages.RouteProducts:
			next = a.runProducts(ctx)
		case pages.RouteSales:
			next = a.runSales(ctx)
		case pages.RouteReports:
			next = a.runReports(ctx)
		case pages.RouteUsers:
			next = a.runUsers(ctx)
		default:
			next = pages.RouteLogin
		}

		if next == routeExit {
			return
		}
		a.router.Navigate(next)
	}
}

// runLogin prompts for credentials until a session is established
func (a *App) runLogin(ctx context.Context) string {
	fmt.Fprintln(a.out, "== Inventory Management ==")
	if a.store.Authenticated() {
		return pages.RouteHome
	}

	email, err := promptLine(a.reader, a.out, "Email: ")
	if err != nil {
		return routeExit
	}
	if email == routeExit || email == "quit" {
		return routeExit
	}
	password, err := promptPassword(a.reader, a.out, "Password: ")
	if err != nil {
		return routeExit
	}

	if a.login.Submit(ctx, email, password) {
		fmt.Fprintf(a.out, "Welcome, %s\n", a.store.Identity())
		return pages.RouteHome
	}
	return pages.RouteLogin
}

// runHome shows the navigation menu
func (a *App) runHome() string {
	fmt.Fprintln(a.out, "-- Home: products | customers | sales | reports | users | logout | exit")
	cmd, err := promptLine(a.reader, a.out, "> ")
	if err != nil {
		return routeExit
	}

	switch cmd {
	case "products":
		return pages.RouteProducts
	case "customers":
		return pages.RouteCustomers
	case "sales":
		return pages.RouteSales
	case "reports":
		return pages.RouteReports
	case "users":
		return pages.RouteUsers
	case "logout":
		a.login.Logout()
		fmt.Fprintln(a.out, "Logged out.")
		return pages.RouteLogin
	case "exit", "quit":
		return routeExit
	case "", "help":
		return pages.RouteHome
	default:
		fmt.Fprintln(a.out, "Unknown command.")
		return pages.RouteHome
	}
}

// runListing drives one listing page: shared view-state commands plus any
// page-specific ones handled by onCommand
func runListing[T any](a *App, ctx context.Context, title string, l *pages.Listing[T], footer func(), onCommand func(fields []string) bool) string {
	if err := l.Refresh(ctx); err != nil {
		return pages.RouteHome
	}

	for {
		fmt.Fprintf(a.out, "== %s ==\n", title)
		renderListing(a.out, l)
		if footer != nil {
			footer()
		}

		line, err := promptLine(a.reader, a.out, "> ")
		if err != nil {
			return routeExit
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "filter":
			l.SetFilter(strings.Join(fields[1:], " "))
		case "clear":
			l.ClearFilter()
		case "next":
			l.NextPage()
		case "prev":
			l.PreviousPage()
		case "page":
			if len(fields) > 1 {
				if n, err := strconv.Atoi(fields[1]); err == nil {
					l.SetPage(n)
				}
			}
		case "size":
			if len(fields) > 1 {
				if n, err := strconv.Atoi(fields[1]); err == nil {
					l.SetPageSize(n)
				}
			}
		case "sort":
			if len(fields) > 1 {
				l.SortBy(fields[1])
			}
		case "reload":
			if err := l.Refresh(ctx); err != nil {
				return pages.RouteHome
			}
		case "back", "home":
			return pages.RouteHome
		case "logout":
			a.login.Logout()
			return pages.RouteLogin
		case "exit", "quit":
			return routeExit
		default:
			if !onCommand(fields) {
				fmt.Fprintln(a.out, "Commands: filter <term> | clear | next | prev | page <n> | size <n> | sort <key> | reload | back | logout | exit")
			}
		}
	}
}
