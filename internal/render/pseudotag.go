package render

import (
	"strings"
	"unicode"
)

// pseudoTags maps the structural pseudo-tag set to plain HTML elements.
// Row and Column lower to divs laid out with table/table-cell display,
// which is the only column mechanism old email clients render reliably.
var pseudoTags = map[string]string{
	"Heading": "h2",
	"Text":    "p",
	"Button":  "a",
	"Section": "div",
	"Img":     "img",
	"Hr":      "hr",
	"Row":     "div",
	"Column":  "div",
}

// voidTags lower to self-closing elements.
var voidTags = map[string]bool{
	"Img": true,
	"Hr":  true,
}

// defaultStyles is applied when a pseudo-tag carries no style block.
var defaultStyles = map[string]string{
	"Heading": "margin: 16px 0; font-size: 24px; font-weight: bold;",
	"Text":    "margin: 12px 0; font-size: 16px; line-height: 1.5;",
	"Button":  "padding: 12px 24px; background-color: #2563eb; color: #ffffff; border-radius: 4px;",
	"Section": "padding: 16px;",
	"Img":     "max-width: 100%;",
	"Hr":      "border-top: 1px solid #e2e8f0; margin: 16px 0;",
	"Row":     "width: 100%;",
	"Column":  "vertical-align: top;",
}

// baseStyles is always prepended, style block or not. It carries the
// structural declarations a tag cannot work without.
var baseStyles = map[string]string{
	"Button": "display: inline-block; text-decoration: none;",
	"Img":    "display: block; border: 0;",
	"Hr":     "border: none;",
	"Row":    "display: table;",
	"Column": "display: table-cell;",
}

// lower rewrites every pseudo-tag in s to its plain HTML equivalent.
// Text outside pseudo-tags is copied through untouched. A token that looks
// like a pseudo-tag but does not parse is also copied through literally.
func lower(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		if s[i] != '<' {
			b.WriteByte(s[i])
			i++
			continue
		}
		out, next, ok := lowerTag(s, i)
		if !ok {
			b.WriteByte(s[i])
			i++
			continue
		}
		b.WriteString(out)
		i = next
	}

	return b.String()
}

// lowerTag parses one pseudo-tag starting at s[i] (which is '<') and returns
// its lowered form plus the index just past the tag.
func lowerTag(s string, i int) (string, int, bool) {
	j := i + 1
	closing := false
	if j < len(s) && s[j] == '/' {
		closing = true
		j++
	}

	name, j, ok := readTagName(s, j)
	if !ok {
		return "", 0, false
	}
	elem, known := pseudoTags[name]
	if !known {
		return "", 0, false
	}

	if closing {
		j = skipSpaces(s, j)
		if j >= len(s) || s[j] != '>' {
			return "", 0, false
		}
		return "</" + elem + ">", j + 1, true
	}

	j = skipSpaces(s, j)

	// Optional {key:value,...} style block.
	style := ""
	hasBlock := false
	if j < len(s) && s[j] == '{' {
		block, next, ok := readBraceBlock(s, j)
		if !ok {
			return "", 0, false
		}
		hasBlock = true
		style = flattenStyle(block)
		j = next
		j = skipSpaces(s, j)
	}
	if !hasBlock {
		style = defaultStyles[name]
	}
	if base := baseStyles[name]; base != "" {
		if style != "" {
			style = base + " " + style
		} else {
			style = base
		}
	}

	// Remaining attributes are passed through verbatim up to the tag end.
	attrStart := j
	for j < len(s) && s[j] != '>' {
		j++
	}
	if j >= len(s) {
		return "", 0, false
	}
	attrs := strings.TrimSpace(strings.TrimSuffix(s[attrStart:j], "/"))

	var b strings.Builder
	b.WriteString("<" + elem)
	if style != "" {
		b.WriteString(` style="` + style + `"`)
	}
	if attrs != "" {
		b.WriteString(" " + attrs)
	}
	if voidTags[name] {
		b.WriteString("/>")
	} else {
		b.WriteString(">")
	}
	return b.String(), j + 1, true
}

// readTagName reads an identifier starting with an uppercase letter.
func readTagName(s string, i int) (string, int, bool) {
	start := i
	if i >= len(s) || !unicode.IsUpper(rune(s[i])) {
		return "", 0, false
	}
	for i < len(s) && (unicode.IsLetter(rune(s[i])) || unicode.IsDigit(rune(s[i]))) {
		i++
	}
	// The name must be followed by a space, style block, or tag end.
	if i >= len(s) {
		return "", 0, false
	}
	switch s[i] {
	case ' ', '\t', '{', '>', '/':
		return s[start:i], i, true
	}
	return "", 0, false
}

func skipSpaces(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}

// readBraceBlock reads a brace-delimited block starting at s[i] (which is
// '{') and returns its inner text. Nested braces are tracked so unresolved
// {placeholder} values inside declarations do not cut the block short.
func readBraceBlock(s string, i int) (string, int, bool) {
	depth := 0
	for j := i; j < len(s); j++ {
		switch s[j] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[i+1 : j], j + 1, true
			}
		}
	}
	return "", 0, false
}

// flattenStyle converts {key:value,key:value} notation into a CSS
// declaration list. Declarations that fail the key:value split are skipped
// silently; the rest of the style block still applies.
func flattenStyle(block string) string {
	var b strings.Builder
	for _, decl := range splitTopLevel(block, ',') {
		key, value, ok := strings.Cut(decl, ":")
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if !ok || key == "" || value == "" {
			continue
		}
		b.WriteString(camelToKebab(key) + ": " + value + "; ")
	}
	return strings.TrimSpace(b.String())
}

// splitTopLevel splits on sep outside of brace pairs.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}

// camelToKebab converts camelCase CSS property names to kebab-case.
func camelToKebab(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	for _, r := range s {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
