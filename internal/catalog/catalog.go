// Package catalog defines the static component catalog the visual builder
// places elements from. The catalog is built once at process start and is
// never mutated afterwards.
package catalog

// PropType enumerates the editor control used for a component property.
type PropType string

const (
	PropText     PropType = "text"
	PropNumber   PropType = "number"
	PropColor    PropType = "color"
	PropSelect   PropType = "select"
	PropBoolean  PropType = "boolean"
	PropTextarea PropType = "textarea"
	PropURL      PropType = "url"
	PropSpacing  PropType = "spacing"
)

// PropSpec describes one editable property of a catalog entry.
type PropSpec struct {
	Name    string   `json:"name"`
	Type    PropType `json:"type"`
	Default string   `json:"default"`
	Options []string `json:"options,omitempty"`
}

// Entry is one component definition. Template strings contain {prop}
// placeholders and structural pseudo-tags that the render package lowers
// to plain HTML.
type Entry struct {
	ID       string     `json:"id"`
	Category string     `json:"category"`
	Template string     `json:"template"`
	Props    []PropSpec `json:"props"`
}

// Defaults returns the entry's default property values as a map.
func (e Entry) Defaults() map[string]string {
	out := make(map[string]string, len(e.Props))
	for _, p := range e.Props {
		out[p.Name] = p.Default
	}
	return out
}

var (
	entries []Entry
	byID    map[string]Entry
)

func init() {
	entries = buildEntries()
	byID = make(map[string]Entry, len(entries))
	for _, e := range entries {
		byID[e.ID] = e
	}
}

// Get looks up an entry by id.
func Get(id string) (Entry, bool) {
	e, ok := byID[id]
	return e, ok
}

// List returns all entries in their declaration order.
// The returned slice is a copy; the catalog itself cannot be modified.
func List() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// ListCategory returns all entries in the given category.
func ListCategory(category string) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}
