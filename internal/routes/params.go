package routes

import (
	"strings"

	"github.com/bankpilot/bankpilot/internal/models"
)

// ResolveParams substitutes the route's placeholders from the entity bag.
// Each spec tries its declared slot key first, then the placeholder name
// itself and its snake/camel variants. Missing slots never fail hard: the
// returned path keeps the literal :name and resolved reports false, leaving
// the caller to treat it as a navigation failure through route-validity
// checks.
func ResolveParams(r Route, entities map[string]models.Entity) (string, map[string]string, bool) {
	if !r.HasParameters || len(r.Params) == 0 {
		return r.Path, nil, true
	}
	path := r.Path
	params := make(map[string]string, len(r.Params))
	resolved := true
	for _, spec := range r.Params {
		value, ok := lookupEntity(entities, spec)
		if !ok || value == "" {
			resolved = false
			continue
		}
		path = strings.ReplaceAll(path, ":"+spec.Name, value)
		params[spec.Name] = value
	}
	return path, params, resolved
}

func lookupEntity(entities map[string]models.Entity, spec ParamSpec) (string, bool) {
	for _, key := range []string{spec.ExtractFrom, spec.Name, camelToSnake(spec.Name), snakeToCamel(spec.ExtractFrom)} {
		if e, ok := entities[key]; ok {
			return e.Value, true
		}
	}
	return "", false
}

// HasUnresolvedParams reports whether path still contains a :name segment.
func HasUnresolvedParams(path string) bool {
	for _, seg := range strings.Split(path, "/") {
		if strings.HasPrefix(seg, ":") {
			return true
		}
	}
	return false
}
