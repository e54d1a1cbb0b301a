// Package markup converts a constrained Markdown-like subset into inline
// HTML suitable for email bodies. Only headings, flat lists, paragraphs and
// bold/italic emphasis are supported; everything else is literal text.
package markup

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

// WrapMode selects how plain lines are wrapped in the output.
type WrapMode int

const (
	// WrapParagraph wraps plain lines in <p> elements.
	WrapParagraph WrapMode = iota
	// WrapSpan wraps plain lines in <span> elements followed by <br/>.
	// Used where block-level paragraphs would break the surrounding layout.
	WrapSpan
)

// headingSizes maps heading depth to font size in pixels.
var headingSizes = [...]int{1: 32, 2: 28, 3: 24, 4: 20, 5: 18, 6: 16}

// HeadingSize returns the font size for a heading depth, clamped to 1..6.
func HeadingSize(depth int) int {
	if depth < 1 {
		depth = 1
	}
	if depth > 6 {
		depth = 6
	}
	return headingSizes[depth]
}

var (
	headingRe   = regexp.MustCompile(`^(#+)\s+(.*)$`)
	orderedRe   = regexp.MustCompile(`^\d+\.\s+(.*)$`)
	unorderedRe = regexp.MustCompile(`^[-*]\s+(.*)$`)

	// Bold markers are resolved before italic markers so that ** is never
	// mis-parsed as nested single-star emphasis.
	boldStarRe    = regexp.MustCompile(`\*\*(.+?)\*\*`)
	boldUnderRe   = regexp.MustCompile(`__(.+?)__`)
	italicStarRe  = regexp.MustCompile(`\*([^*]+)\*`)
	italicUnderRe = regexp.MustCompile(`_([^_]+)_`)
)

// Escape HTML-escapes literal text so raw user input cannot inject markup.
func Escape(s string) string {
	return html.EscapeString(s)
}

// Inline escapes a single line and applies emphasis markers.
func Inline(s string) string {
	return emphasize(html.EscapeString(s))
}

// emphasize rewrites emphasis markers inside already-escaped text.
func emphasize(s string) string {
	s = boldStarRe.ReplaceAllString(s, "<strong>$1</strong>")
	s = boldUnderRe.ReplaceAllString(s, "<strong>$1</strong>")
	s = italicStarRe.ReplaceAllString(s, "<em>$1</em>")
	s = italicUnderRe.ReplaceAllString(s, "<em>$1</em>")
	return s
}

// ToHTML converts multi-line markup text to inline HTML, line by line.
// Consecutive list items of the same kind are grouped into a single list
// block; a blank line or a change of list kind closes the open list.
func ToHTML(text string, mode WrapMode) string {
	var b strings.Builder
	openList := "" // "", "ol" or "ul"

	closeList := func() {
		if openList != "" {
			b.WriteString("</" + openList + ">")
			openList = ""
		}
	}
	startList := func(kind string) {
		if openList != kind {
			closeList()
			b.WriteString(`<` + kind + ` style="margin: 12px 0; padding-left: 24px;">`)
			openList = kind
		}
	}

	for _, raw := range strings.Split(text, "\n") {
		line := html.EscapeString(strings.TrimSpace(raw))

		switch {
		case line == "":
			closeList()

		case headingRe.MatchString(line):
			closeList()
			m := headingRe.FindStringSubmatch(line)
			depth := len(m[1])
			if depth > 6 {
				depth = 6
			}
			fmt.Fprintf(&b,
				`<h%d style="font-size: %dpx; font-weight: bold; margin: 12px 0;">%s</h%d>`,
				depth, HeadingSize(depth), emphasize(m[2]), depth)

		case orderedRe.MatchString(line):
			startList("ol")
			b.WriteString("<li>" + emphasize(orderedRe.FindStringSubmatch(line)[1]) + "</li>")

		case unorderedRe.MatchString(line):
			startList("ul")
			b.WriteString("<li>" + emphasize(unorderedRe.FindStringSubmatch(line)[1]) + "</li>")

		default:
			closeList()
			if mode == WrapSpan {
				b.WriteString("<span>" + emphasize(line) + "</span><br/>")
			} else {
				b.WriteString(`<p style="margin: 12px 0; line-height: 1.5;">` + emphasize(line) + "</p>")
			}
		}
	}
	closeList()

	return b.String()
}
