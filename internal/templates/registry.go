// Package templates holds the fixed built-in email templates. The registry
// is assembled once at package init and is read-only afterwards.
package templates

// Info describes a built-in template for listing endpoints.
type Info struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Description      string            `json:"description"`
	VariableDefaults map[string]string `json:"variableDefaults"`
}

// RenderFunc produces a full HTML document from a variables mapping.
// Missing variables fall back to the template's defaults.
type RenderFunc func(vars map[string]string) string

type builtin struct {
	info   Info
	render RenderFunc
}

var (
	registry map[string]builtin
	order    []string
)

func init() {
	registry = make(map[string]builtin)
	for _, b := range buildTemplates() {
		registry[b.info.ID] = b
		order = append(order, b.info.ID)
	}
}

// List returns the built-in templates in declaration order.
func List() []Info {
	out := make([]Info, 0, len(order))
	for _, id := range order {
		out = append(out, registry[id].info)
	}
	return out
}

// Get returns the render function for a template id.
func Get(id string) (RenderFunc, bool) {
	b, ok := registry[id]
	if !ok {
		return nil, false
	}
	return b.render, true
}

// GetInfo returns the descriptor for a template id.
func GetInfo(id string) (Info, bool) {
	b, ok := registry[id]
	return b.info, ok
}

// merge overlays explicit variables onto the template defaults.
func merge(defaults, vars map[string]string) map[string]string {
	out := make(map[string]string, len(defaults)+len(vars))
	for k, v := range defaults {
		out[k] = v
	}
	for k, v := range vars {
		out[k] = v
	}
	return out
}
