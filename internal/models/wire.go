package models

// ProcessResponse is the classification service's reply to a submitted query.
// The same shape arrives over HTTP and inside socket push frames, so both
// paths funnel into the same handling.
type ProcessResponse struct {
	Status       string         `json:"status"`
	Intent       string         `json:"intent,omitempty"`
	Confidence   float64        `json:"confidence,omitempty"`
	Entities     map[string]any `json:"entities,omitempty"`
	Message      string         `json:"message,omitempty"`
	UIAssistance *UIAssistance  `json:"ui_assistance,omitempty"`
}

// UIAssistance tells the front end to navigate or render a form.
// Type is "navigation" or "transaction_form".
type UIAssistance struct {
	Type          string             `json:"type"`
	RoutePath     string             `json:"route_path,omitempty"`
	ComponentName string             `json:"component_name,omitempty"`
	Title         string             `json:"title,omitempty"`
	FormConfig    *DynamicFormConfig `json:"form_config,omitempty"`
}

type DynamicFormConfig struct {
	FormID string      `json:"form_id"`
	Title  string      `json:"title"`
	Fields []FormField `json:"fields"`
}

type FormField struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Kind        string `json:"kind"`
	Placeholder string `json:"placeholder,omitempty"`
	Value       string `json:"value,omitempty"`
	Required    bool   `json:"required,omitempty"`
}

// RouteParam binds a path placeholder to the entity slot that fills it.
type RouteParam struct {
	Name        string `json:"name"`
	ExtractFrom string `json:"extract_from"`
}

// RouteConfig is one backend-supplied route definition (GET /api/routes),
// used when the profile opts into remote route hydration.
type RouteConfig struct {
	BaseRoute         string       `json:"base_route"`
	Component         string       `json:"component,omitempty"`
	Title             string       `json:"title,omitempty"`
	Description       string       `json:"description,omitempty"`
	IntentID          string       `json:"intent_id"`
	HasParameters     bool         `json:"has_parameters,omitempty"`
	ParameterFallback string       `json:"parameter_fallback,omitempty"`
	Params            []RouteParam `json:"params,omitempty"`
}
