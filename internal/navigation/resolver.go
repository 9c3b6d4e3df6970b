package navigation

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/bankpilot/bankpilot/internal/models"
	"github.com/bankpilot/bankpilot/internal/routes"
)

// Target is the transient outcome of one navigation request; it is computed
// per request and never persisted.
type Target struct {
	Route            routes.Route
	Path             string
	Params           map[string]string
	Title            string
	Description      string
	RequiresEntities bool
}

// Result is the structured soft-failure shape handed to callers: they show a
// toast on failure and navigate on success, nothing ever panics or throws.
type Result struct {
	Success   bool
	Path      string
	Component string
	Title     string
	Params    map[string]string
	Error     string
}

type Resolver struct {
	catalog *routes.Catalog
	logger  *zap.Logger
}

func NewResolver(catalog *routes.Catalog, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{catalog: catalog, logger: logger}
}

// CanNavigate gates navigation-by-intent to the main banking view. Chat and
// transaction assistance always use the non-navigating strategy, whatever the
// intent is.
func (r *Resolver) CanNavigate(intentID string, uiContext models.Tab) bool {
	if uiContext != models.TabBanking {
		r.logger.Debug("navigation suppressed outside banking view",
			zap.String("intent", intentID), zap.String("ui_context", string(uiContext)))
		return false
	}
	return true
}

// MapIntentToNavigation resolves an intent id plus extracted entities to a
// navigation target. Returns nil when no route claims the intent.
func (r *Resolver) MapIntentToNavigation(intentID string, entities map[string]models.Entity) *Target {
	matches := r.catalog.ByIntentID(intentID)
	if len(matches) == 0 {
		matches = r.catalog.ByLegacyIntent(intentID)
	}
	if len(matches) == 0 {
		return nil
	}

	// Prefer a parameterized variant when the entity bag can fill it.
	if len(entities) > 0 {
		for _, rt := range matches {
			if !rt.HasParameters {
				continue
			}
			path, params, resolved := routes.ResolveParams(rt, entities)
			if resolved {
				return &Target{
					Route:            rt,
					Path:             path,
					Params:           params,
					Title:            dynamicTitle(rt, entities),
					Description:      rt.Description,
					RequiresEntities: true,
				}
			}
		}
	}

	chosen := r.fallbackRoute(matches)
	path, params, _ := routes.ResolveParams(chosen, entities)
	title := chosen.Title
	if title == "" {
		title = chosen.Breadcrumb
	}
	return &Target{
		Route:       chosen,
		Path:        path,
		Params:      params,
		Title:       title,
		Description: chosen.Description,
	}
}

// fallbackRoute picks the first non-parameterized match, honoring a declared
// parameter fallback when only parameterized variants exist, else the first
// match overall.
func (r *Resolver) fallbackRoute(matches []routes.Route) routes.Route {
	for _, rt := range matches {
		if !rt.HasParameters {
			return rt
		}
	}
	first := matches[0]
	if first.ParameterFallback != "" {
		if rt, ok := r.catalog.Find(first.ParameterFallback); ok {
			return rt
		}
	}
	return first
}

// dynamicTitle applies the account title rule; anything else keeps the
// route's declared breadcrumb.
func dynamicTitle(rt routes.Route, entities map[string]models.Entity) string {
	_, hasID := entityValue(entities, "account_id", "accountId")
	accountType, hasType := entityValue(entities, "account_type", "accountType")
	switch {
	case hasID && hasType:
		return fmt.Sprintf("%s Account Details", capitalize(accountType))
	case hasID:
		return "Account Details"
	}
	if rt.Title != "" {
		return rt.Title
	}
	return rt.Breadcrumb
}

func entityValue(entities map[string]models.Entity, keys ...string) (string, bool) {
	for _, k := range keys {
		if e, ok := entities[k]; ok && e.Value != "" {
			return e.Value, true
		}
	}
	return "", false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// Navigate combines the context gate, intent resolution and route validity
// into the structured result callers act on. An explicit routePath from the
// backend wins over intent lookup when it names a valid route.
func (r *Resolver) Navigate(intentID, routePath string, entities map[string]models.Entity, uiContext models.Tab) Result {
	if !r.CanNavigate(intentID, uiContext) {
		return Result{Success: false, Error: "navigation is only available from the banking view"}
	}

	if routePath != "" && !routes.HasUnresolvedParams(routePath) {
		if rt, ok := r.catalog.Find(routePath); ok {
			title := rt.Title
			if title == "" {
				title = rt.Breadcrumb
			}
			return Result{Success: true, Path: routePath, Component: rt.Component, Title: title, Params: extractParams(rt, routePath)}
		}
		return Result{Success: false, Error: fmt.Sprintf("unknown route %q", routePath)}
	}

	target := r.MapIntentToNavigation(intentID, entities)
	if target == nil {
		return Result{Success: false, Error: fmt.Sprintf("no route handles intent %q", intentID)}
	}
	if routes.HasUnresolvedParams(target.Path) || !r.catalog.IsValidRoute(target.Path) {
		return Result{Success: false, Error: fmt.Sprintf("cannot resolve a destination for intent %q", intentID)}
	}
	return Result{
		Success:   true,
		Path:      target.Path,
		Component: target.Route.Component,
		Title:     target.Title,
		Params:    target.Params,
	}
}

// extractParams recovers placeholder values from a concrete path matched
// against a parameterized route.
func extractParams(rt routes.Route, path string) map[string]string {
	if !rt.HasParameters {
		return nil
	}
	patSegs := strings.Split(rt.Path, "/")
	gotSegs := strings.Split(path, "/")
	if len(patSegs) != len(gotSegs) {
		return nil
	}
	params := make(map[string]string)
	for i, seg := range patSegs {
		if strings.HasPrefix(seg, ":") {
			params[seg[1:]] = gotSegs[i]
		}
	}
	return params
}
