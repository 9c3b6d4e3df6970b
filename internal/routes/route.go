package routes

import (
	"regexp"
	"strings"

	"github.com/bankpilot/bankpilot/internal/models"
)

// Route is one entry in the merged navigation table. Identity is Path; the
// table never holds two routes with the same path.
type Route struct {
	Path             string
	Component        string
	Breadcrumb       string
	Tab              models.Tab
	NavigationLabel  string
	ShowInNavigation bool
	Group            string
	// Intent is the legacy space-separated intent list kept for back-compat
	// substring matching. New routes carry IntentID instead.
	Intent            string
	RedirectTo        string
	IntentID          string
	HasParameters     bool
	ParameterFallback string
	Params            []ParamSpec
	Title             string
	Description       string

	pattern *regexp.Regexp
}

// ParamSpec binds one :name placeholder to the entity slot it fills from.
// Specs are decoded once when the table is built, so lookups never construct
// patterns on the fly.
type ParamSpec struct {
	Name        string
	ExtractFrom string
}

// Matches reports whether path hits this route, either exactly or through the
// compiled placeholder pattern.
func (r *Route) Matches(path string) bool {
	if r.Path == path {
		return true
	}
	return r.pattern != nil && r.pattern.MatchString(path)
}

// finalize compiles the placeholder pattern and derives missing param specs.
func (r *Route) finalize() {
	names := placeholderNames(r.Path)
	if len(names) > 0 {
		r.HasParameters = true
		if len(r.Params) == 0 {
			for _, name := range names {
				r.Params = append(r.Params, ParamSpec{Name: name, ExtractFrom: camelToSnake(name)})
			}
		}
		r.pattern = compilePattern(r.Path)
	}
}

func placeholderNames(path string) []string {
	var names []string
	for _, seg := range strings.Split(path, "/") {
		if strings.HasPrefix(seg, ":") && len(seg) > 1 {
			names = append(names, seg[1:])
		}
	}
	return names
}

func compilePattern(path string) *regexp.Regexp {
	segs := strings.Split(path, "/")
	for i, seg := range segs {
		if strings.HasPrefix(seg, ":") {
			segs[i] = "[^/]+"
		} else {
			segs[i] = regexp.QuoteMeta(seg)
		}
	}
	return regexp.MustCompile("^" + strings.Join(segs, "/") + "$")
}

func camelToSnake(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func snakeToCamel(name string) string {
	parts := strings.Split(name, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}
