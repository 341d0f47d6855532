package pages

import "github.com/erp/console/internal/infrastructure/session"

// Route paths
const (
	RouteLogin     = "/"
	RouteHome      = "/home"
	RouteProducts  = "/products"
	RouteCustomers = "/customers"
	RouteSales     = "/sales"
	RouteReports   = "/reports"
	RouteUsers     = "/users"
)

// guardedRoutes require an active session
var guardedRoutes = map[string]bool{
	RouteHome:      true,
	RouteProducts:  true,
	RouteCustomers: true,
	RouteSales:     true,
	RouteReports:   true,
	RouteUsers:     true,
}

// Router reproduces the client-side route guard: navigating to a guarded
// route without a session redirects to the login route. This is UX behavior
// only; the remote API remains the authority on access control.
type Router struct {
	store   *session.Store
	current string
}

// NewRouter creates a router starting at the login route
func NewRouter(store *session.Store) *Router {
	return &Router{store: store, current: RouteLogin}
}

// Current returns the route the user is on
func (r *Router) Current() string {
	return r.current
}

// Navigate moves to the requested route, applying the session guard, and
// returns the route actually reached
func (r *Router) Navigate(path string) string {
	if guardedRoutes[path] && !r.store.Authenticated() {
		r.current = RouteLogin
		return r.current
	}
	if !guardedRoutes[path] && path != RouteLogin {
		// Unknown paths land on login as well
		r.current = RouteLogin
		return r.current
	}
	r.current = path
	return r.current
}
