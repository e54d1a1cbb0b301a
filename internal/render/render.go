// Package render turns an ordered sequence of placed builder elements into a
// single self-contained HTML email document. Rendering is a pure function of
// its input: identical elements always produce byte-identical output.
package render

import (
	"sort"
	"strings"

	"github.com/knightandthey/knightshade-email-service/internal/catalog"
	"github.com/knightandthey/knightshade-email-service/internal/markup"
)

// Element is one component instance placed on the builder canvas.
type Element struct {
	ID       string            `json:"id"`
	Type     string            `json:"type"`
	Props    map[string]string `json:"props,omitempty"`
	Children []Element         `json:"children,omitempty"`
}

// braceEscaper neutralizes brace characters in literal prop values.
// A raw "}" in a value substituted into a pseudo-tag style block would
// terminate the block early and turn the rest of the value into live tag
// attributes; as entities the characters stay inert data.
var braceEscaper = strings.NewReplacer("{", "&#123;", "}", "&#125;")

// richKeys designates property names whose values are converted through the
// markup subset instead of being escaped as literals. Title-like keys use
// span wrapping so they can live inside heading pseudo-tags without block
// nesting; the rest use paragraph wrapping.
var richKeys = map[string]markup.WrapMode{
	"children":    markup.WrapParagraph,
	"content":     markup.WrapParagraph,
	"description": markup.WrapParagraph,
	"title":       markup.WrapSpan,
	"subtitle":    markup.WrapSpan,
}

// Render produces a complete HTML document for the given elements.
func Render(elements []Element) string {
	return Document(Body(elements))
}

// Body renders and concatenates the elements in input order without the
// outer document shell.
func Body(elements []Element) string {
	var b strings.Builder
	for _, el := range elements {
		b.WriteString(renderElement(el))
	}
	return b.String()
}

func renderElement(el Element) string {
	entry, ok := catalog.Get(el.Type)
	if !ok {
		return `<div style="padding: 16px; border: 1px dashed #cbd5e0; color: #718096;">Unknown component: ` +
			markup.Escape(el.Type) + `</div>`
	}

	effective := entry.Defaults()
	for k, v := range el.Props {
		effective[k] = v
	}

	// Nested elements take over the children slot; the rendered child HTML
	// is substituted raw, not escaped or markup-converted.
	childHTML := ""
	if len(el.Children) > 0 {
		childHTML = Body(el.Children)
	}

	// Substitution order is fixed so output stays deterministic even when a
	// substituted value happens to contain another placeholder.
	keys := make([]string, 0, len(effective))
	for k := range effective {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := entry.Template
	for _, key := range keys {
		var val string
		switch {
		case key == "children" && childHTML != "":
			val = childHTML
		default:
			if mode, rich := richKeys[key]; rich {
				val = markup.ToHTML(effective[key], mode)
			} else {
				val = braceEscaper.Replace(markup.Escape(effective[key]))
			}
		}
		out = strings.ReplaceAll(out, "{"+key+"}", val)
	}

	// Placeholders for keys absent from the property set are left as
	// literal {key} text rather than dropped.
	return lower(out)
}
