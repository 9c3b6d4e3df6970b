package routes

import (
	"strings"

	"github.com/bankpilot/bankpilot/internal/models"
)

// Catalog is the merged, ordered route table. Built once at startup and
// immutable afterwards.
type Catalog struct {
	routes []Route
	byPath map[string]int
}

// Load builds the catalog from the two bundled lists. Pure function of the
// static config, no I/O.
func Load() *Catalog {
	return merge(staticRoutes(), intentRouteConfigs())
}

// LoadWithRemote builds the catalog from the static list plus backend-supplied
// route configs, used when the profile opts into remote hydration.
func LoadWithRemote(configs []models.RouteConfig) *Catalog {
	return merge(staticRoutes(), configs)
}

// merge inserts static routes in declared order, then intent routes in
// declared order. Map insertion semantics make an intent route override a
// same-path static route while keeping the original position, so
// navigation-menu order is insertion order of first occurrence. An overriding
// entry inherits the overridden route's legacy intent string so back-compat
// substring matching keeps working.
func merge(static []Route, configs []models.RouteConfig) *Catalog {
	c := &Catalog{byPath: make(map[string]int)}
	for _, r := range static {
		c.insert(r)
	}
	for _, cfg := range configs {
		c.insert(buildIntentRoute(cfg))
	}
	for i := range c.routes {
		c.routes[i].finalize()
	}
	return c
}

func (c *Catalog) insert(r Route) {
	if i, ok := c.byPath[r.Path]; ok {
		prev := c.routes[i]
		if prev.Intent != "" && !strings.Contains(r.Intent, prev.Intent) {
			r.Intent = strings.TrimSpace(prev.Intent + " " + r.Intent)
		}
		if r.NavigationLabel == "" {
			r.NavigationLabel = prev.NavigationLabel
		}
		r.ShowInNavigation = prev.ShowInNavigation
		if r.Breadcrumb == "" {
			r.Breadcrumb = prev.Breadcrumb
		}
		c.routes[i] = r
		return
	}
	c.byPath[r.Path] = len(c.routes)
	c.routes = append(c.routes, r)
}

// All returns the table in navigation-menu order.
func (c *Catalog) All() []Route {
	out := make([]Route, len(c.routes))
	copy(out, c.routes)
	return out
}

// Find returns the route matching path, exactly or by placeholder pattern.
func (c *Catalog) Find(path string) (Route, bool) {
	if i, ok := c.byPath[path]; ok {
		return c.routes[i], true
	}
	for _, r := range c.routes {
		if r.Matches(path) {
			return r, true
		}
	}
	return Route{}, false
}

func (c *Catalog) IsValidRoute(path string) bool {
	_, ok := c.Find(path)
	return ok
}

// ByIntentID returns the routes whose IntentID equals id, in table order.
func (c *Catalog) ByIntentID(id string) []Route {
	var out []Route
	for _, r := range c.routes {
		if r.IntentID != "" && r.IntentID == id {
			out = append(out, r)
		}
	}
	return out
}

// ByLegacyIntent is the back-compat path: routes whose legacy intent string
// contains id as a substring.
func (c *Catalog) ByLegacyIntent(id string) []Route {
	if id == "" {
		return nil
	}
	var out []Route
	for _, r := range c.routes {
		if r.Intent != "" && strings.Contains(r.Intent, id) {
			out = append(out, r)
		}
	}
	return out
}

// InNavigation returns the menu entries for one tab, in declared order.
func (c *Catalog) InNavigation(tab models.Tab) []Route {
	var out []Route
	for _, r := range c.routes {
		if r.ShowInNavigation && r.Tab == tab {
			out = append(out, r)
		}
	}
	return out
}

// DefaultPath resolves the "/" entry: follow its redirect when declared, else
// render the first route directly.
func (c *Catalog) DefaultPath() string {
	if r, ok := c.Find("/"); ok && r.RedirectTo != "" {
		return r.RedirectTo
	}
	if len(c.routes) > 0 {
		return c.routes[0].Path
	}
	return "/"
}
