// Package router maps CLI commands onto named routes and decides, before a
// command runs, whether the user should be sent somewhere else based on
// whether they hold an auth token.
package router

import "strings"

type Name string

const (
	Landing   Name = "landing"
	Login     Name = "login"
	Register  Name = "register"
	VerifyOTP Name = "verify-otp"
	Dashboard Name = "dashboard"
	Documents Name = "documents"
	Upload    Name = "upload"
	Folders   Name = "folders"
)

type Meta struct {
	RequiresAuth bool
}

// Route is a named destination. Child routes inherit nothing directly; the
// guard looks at every route on the matched chain.
type Route struct {
	Name     Name
	Path     string
	Meta     Meta
	Children []*Route

	parent *Route
}

// Matched returns the chain of routes from the root down to r.
func (r *Route) Matched() []*Route {
	var chain []*Route
	for route := r; route != nil; route = route.parent {
		chain = append([]*Route{route}, chain...)
	}

	return chain
}

// RequiresAuth reports whether r or any of its ancestors requires auth.
func (r *Route) RequiresAuth() bool {
	for _, route := range r.Matched() {
		if route.Meta.RequiresAuth {
			return true
		}
	}

	return false
}

func (r *Route) child(name string) *Route {
	for _, c := range r.Children {
		if string(c.Name) == name || strings.TrimPrefix(c.Path, "/") == name {
			return c
		}
	}

	return nil
}

type Router struct {
	routes []*Route
	byName map[Name]*Route
}

func New(routes ...*Route) *Router {
	r := &Router{routes: routes, byName: map[Name]*Route{}}
	var link func(parent *Route, children []*Route)
	link = func(parent *Route, children []*Route) {
		for _, route := range children {
			route.parent = parent
			if parent == nil {
				r.byName[route.Name] = route
			}
			link(route, route.Children)
		}
	}

	link(nil, routes)
	return r
}

// Lookup returns the top-level route with the given name.
func (r *Router) Lookup(name Name) (*Route, bool) {
	route, ok := r.byName[name]
	return route, ok
}

// Resolve walks path segments ("documents", "list") down the route tree and
// returns the deepest match. Segments past the last match are ignored.
func (r *Router) Resolve(segments ...string) (*Route, bool) {
	if len(segments) == 0 {
		return r.Lookup(Landing)
	}

	route, ok := r.byName[Name(segments[0])]
	if !ok {
		return nil, false
	}

	for _, segment := range segments[1:] {
		next := route.child(segment)
		if next == nil {
			break
		}
		route = next
	}

	return route, true
}

// Action is the outcome of running the guard for a navigation.
type Action int

const (
	Proceed Action = iota
	Redirect
)

type Decision struct {
	Action Action
	To     Name
}

// Guard decides what happens when navigating to a route:
//   - a protected route without a token redirects to login
//   - login or register with a token redirects to the dashboard
//   - anything else proceeds
func Guard(to *Route, hasToken bool) Decision {
	if to.RequiresAuth() && !hasToken {
		return Decision{Action: Redirect, To: Login}
	} else if isAuthRoute(to.Name) && hasToken {
		return Decision{Action: Redirect, To: Dashboard}
	}

	return Decision{Action: Proceed}
}

func isAuthRoute(name Name) bool {
	return name == Login || name == Register
}
