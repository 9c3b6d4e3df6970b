package routes

import (
	"strings"

	"github.com/bankpilot/bankpilot/internal/models"
)

// intentRouteConfigs mirror the backend's route catalog. They are merged into
// the table after the static list, so a config sharing a path with a static
// route replaces it.
func intentRouteConfigs() []models.RouteConfig {
	return []models.RouteConfig{
		{
			BaseRoute:   "/banking/accounts",
			IntentID:    "accounts.balance.check",
			Title:       "Accounts",
			Description: "Overview of all accounts",
		},
		{
			BaseRoute:         "/banking/accounts/:accountId",
			IntentID:          "accounts.balance.check",
			HasParameters:     true,
			ParameterFallback: "/banking/accounts",
			Title:             "Account Details",
			Description:       "Balance and activity for one account",
			Params:            []models.RouteParam{{Name: "accountId", ExtractFrom: "account_id"}},
		},
		{
			BaseRoute:   "/banking/transfers",
			IntentID:    "transfers.internal.execute",
			Title:       "Transfers",
			Description: "Move money between accounts",
		},
		{
			BaseRoute:   "/banking/transfers/wire",
			IntentID:    "transfers.wire.initiate",
			Title:       "Wire Transfer",
			Description: "Send a wire transfer",
		},
		{
			BaseRoute:   "/banking/payments/bills",
			IntentID:    "payments.bill.pay",
			Title:       "Bill Pay",
			Description: "Pay and schedule bills",
		},
	}
}

// navigationIntentByPath names the synthesized navigation intent for known
// paths; anything else falls back to slugified path segments.
var navigationIntentByPath = map[string]string{
	"/banking/accounts":       "navigation.accounts.overview",
	"/banking/transfers":      "navigation.transfers.hub",
	"/banking/transfers/wire": "navigation.transfers.wire",
	"/banking/payments/bills": "navigation.payments.bills",
}

func navigationIntentFor(path string, hasParams bool) string {
	base := strings.TrimSuffix(path, "/")
	if hasParams {
		if i := strings.Index(base, "/:"); i >= 0 {
			base = base[:i]
		}
	}
	intent, ok := navigationIntentByPath[base]
	if !ok {
		var segs []string
		for _, seg := range strings.Split(strings.Trim(base, "/"), "/") {
			if seg != "" && !strings.HasPrefix(seg, ":") {
				segs = append(segs, strings.ToLower(seg))
			}
		}
		intent = "navigation." + strings.Join(segs, ".")
	}
	if hasParams {
		intent += ".details"
	}
	return intent
}

func deriveTab(path string) models.Tab {
	switch {
	case strings.HasPrefix(path, "/banking"):
		return models.TabBanking
	case strings.HasPrefix(path, "/transaction"):
		return models.TabTransaction
	case strings.HasPrefix(path, "/chat"):
		return models.TabChat
	default:
		return models.TabBanking
	}
}

func deriveGroup(path string) string {
	if strings.HasPrefix(path, "/banking") {
		return "Banking"
	}
	return ""
}

// inferComponent guesses a screen for intent routes that declare none.
// The checks are ordered: more specific prefixes win.
func inferComponent(path string) string {
	switch {
	case strings.Contains(path, "/accounts") && strings.Contains(path, ":"):
		return "AccountDetails"
	case strings.Contains(path, "/accounts"):
		return "AccountsOverview"
	case strings.Contains(path, "/transfers/wire"):
		return "WireTransferForm"
	case strings.Contains(path, "/transfers"):
		return "TransfersHub"
	case strings.Contains(path, "/payments/bills"):
		return "BillPayHub"
	default:
		return "GenericScreen"
	}
}

// buildIntentRoute turns one config into a table entry. A declared component
// is trusted verbatim; inference only fills the gap.
func buildIntentRoute(cfg models.RouteConfig) Route {
	r := Route{
		Path:              cfg.BaseRoute,
		Component:         cfg.Component,
		Breadcrumb:        cfg.Title,
		Tab:               deriveTab(cfg.BaseRoute),
		Group:             deriveGroup(cfg.BaseRoute),
		IntentID:          cfg.IntentID,
		HasParameters:     cfg.HasParameters,
		ParameterFallback: cfg.ParameterFallback,
		Title:             cfg.Title,
		Description:       cfg.Description,
	}
	if r.Component == "" {
		r.Component = inferComponent(cfg.BaseRoute)
	}
	for _, p := range cfg.Params {
		r.Params = append(r.Params, ParamSpec{Name: p.Name, ExtractFrom: p.ExtractFrom})
	}
	r.Intent = navigationIntentFor(cfg.BaseRoute, cfg.HasParameters || len(placeholderNames(cfg.BaseRoute)) > 0)
	return r
}
