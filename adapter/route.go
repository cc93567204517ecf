// Package adapter wires the patricia tree into a fasthttp-based HTTP
// server: method-keyed trees, route groups, middleware chaining, and a
// pooled per-request Context. It is the router's only opinion about
// HTTP; the tree itself knows nothing of methods, headers, or bodies.
package adapter

import (
	"fmt"
	"net/url"
	"strings"
)

// Route represents a route definition: its path, name, and belonging
// group. Handlers are not stored on the Route; each registration passes
// them to the per-method tree.
type Route struct {
	group *Group
	name  string
	path  string
}

// newRoute creates a new Route instance associated with the given group and path.
// It registers the route in the global Zeno routes map under its full path.
func newRoute(path string, group *Group) *Route {
	path = group.prefix + path
	route := &Route{group: group, name: path, path: path}
	route.group.zeno.routes[path] = route
	return route
}

// Name sets a custom name for the route and registers it using that name.
//
// Example:
//
//	r := newRoute("/user/:id", group).Name("user.show")
func (r *Route) Name(name string) *Route {
	r.name = name
	r.group.zeno.routes[name] = r
	return r
}

// Get registers handlers for the GET HTTP method.
func (r *Route) Get(handlers ...Handler) *Route {
	return r.add(MethodGet, handlers)
}

// Post registers handlers for the POST HTTP method.
func (r *Route) Post(handlers ...Handler) *Route {
	return r.add(MethodPost, handlers)
}

// Put registers handlers for the PUT HTTP method.
func (r *Route) Put(handlers ...Handler) *Route {
	return r.add(MethodPut, handlers)
}

// Patch registers handlers for the PATCH HTTP method.
func (r *Route) Patch(handlers ...Handler) *Route {
	return r.add(MethodPatch, handlers)
}

// Delete registers handlers for the DELETE HTTP method.
func (r *Route) Delete(handlers ...Handler) *Route {
	return r.add(MethodDelete, handlers)
}

// Connect registers handlers for the CONNECT HTTP method.
func (r *Route) Connect(handlers ...Handler) *Route {
	return r.add(MethodConnect, handlers)
}

// Head registers handlers for the HEAD HTTP method.
func (r *Route) Head(handlers ...Handler) *Route {
	return r.add(MethodHead, handlers)
}

// Options registers handlers for the OPTIONS HTTP method.
func (r *Route) Options(handlers ...Handler) *Route {
	return r.add(MethodOptions, handlers)
}

// Trace registers handlers for the TRACE HTTP method.
func (r *Route) Trace(handlers ...Handler) *Route {
	return r.add(MethodTrace, handlers)
}

// To registers the same handlers for multiple comma-separated HTTP methods.
//
// Example:
//
//	r.To("GET,POST", handler)
func (r *Route) To(methods string, handlers ...Handler) *Route {
	for method := range strings.SplitSeq(methods, ",") {
		r.add(strings.TrimSpace(method), handlers)
	}
	return r
}

// add registers handlers for a single HTTP method and attaches route/middleware chain.
func (r *Route) add(method string, handlers []Handler) *Route {
	hh := combineHandlers(r.group.handlers, handlers)
	r.group.zeno.add(method, r.path, hh)
	return r
}

// URL generates a concrete path from the route's pattern by substituting
// each ":name"/"*name" placeholder with the corresponding value from
// pairs, given as alternating name/value arguments.
//
// Example:
//
//	r := newRoute("/users/:id", group).Name("user.show")
//	url := r.URL("id", 42) // => "/users/42"
func (r *Route) URL(pairs ...any) (s string) {
	s = r.path
	for i := 0; i+1 < len(pairs); i += 2 {
		value := url.QueryEscape(fmt.Sprint(pairs[i+1]))
		s = strings.Replace(s, ":"+fmt.Sprint(pairs[i]), value, 1)
		s = strings.Replace(s, "*"+fmt.Sprint(pairs[i]), value, 1)
	}
	return
}

// combineHandlers merges group-level handlers with route-level handlers.
//
// The result is a flat handler chain with group handlers executed first.
func combineHandlers(h1 []Handler, h2 []Handler) []Handler {
	hh := make([]Handler, len(h1)+len(h2))
	copy(hh, h1)
	copy(hh[len(h1):], h2)
	return hh
}
