package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/knightandthey/knightshade-email-service/internal/markup"
	"github.com/knightandthey/knightshade-email-service/internal/render"
	"github.com/knightandthey/knightshade-email-service/internal/store"
)

// substitute replaces {name} placeholders with variable values. Keys are
// processed in sorted order so output is deterministic; placeholders without
// a matching variable are left as literal text.
func substitute(content string, vars map[string]string, escape bool) string {
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := vars[k]
		if escape {
			v = markup.Escape(v)
		}
		content = strings.ReplaceAll(content, "{"+k+"}", v)
	}
	return content
}

// renderCustom turns freeform content of a given mode into an HTML body and
// an optional plain-text body. react and javascript modes are rejected:
// they would require executing user-supplied code.
func renderCustom(mode store.TemplateType, content string, vars map[string]string) (html, text string, err error) {
	if !store.ValidTemplateType(mode) {
		return "", "", fmt.Errorf("%w: unknown template type %q", ErrInvalidRequest, mode)
	}

	switch mode {
	case store.TypeReact, store.TypeJavaScript:
		return "", "", fmt.Errorf("%w: %s templates cannot be rendered server-side", ErrCodeExecutionDisabled, mode)

	case store.TypeHTML:
		body := substitute(content, vars, true)
		// Content that is already a full document is passed through as-is.
		if strings.Contains(strings.ToLower(body), "<html") {
			return body, "", nil
		}
		return render.Document(body), "", nil

	case store.TypePlaintext:
		raw := substitute(content, vars, false)
		return render.Document(markup.ToHTML(raw, markup.WrapSpan)), raw, nil

	case store.TypeCSS:
		// CSS content styles the document shell; the body comes from the
		// reserved "content" variable.
		css := substitute(content, vars, false)
		body := markup.ToHTML(vars["content"], markup.WrapParagraph)
		return render.DocumentWithStyle(body, css), "", nil
	}

	return "", "", fmt.Errorf("%w: unknown template type %q", ErrInvalidRequest, mode)
}
