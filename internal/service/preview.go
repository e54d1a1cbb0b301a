package service

import (
	"fmt"

	"github.com/microcosm-cc/bluemonday"

	"github.com/knightandthey/knightshade-email-service/internal/render"
	"github.com/knightandthey/knightshade-email-service/internal/store"
	"github.com/knightandthey/knightshade-email-service/internal/templates"
)

// PreviewService renders emails without sending them. Preview output is
// displayed inside the composer UI, so it is additionally sanitized:
// anything scriptable is stripped even though send output is not filtered.
type PreviewService struct {
	policy *bluemonday.Policy
}

func NewPreviewService() *PreviewService {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("style").Globally()
	policy.AllowElements("html", "head", "body", "style", "hr")
	return &PreviewService{policy: policy}
}

// PreviewElements renders builder canvas elements to sanitized HTML.
func (s *PreviewService) PreviewElements(elements []render.Element) string {
	return s.policy.Sanitize(render.Render(elements))
}

// PreviewBuiltin renders a built-in template to sanitized HTML.
func (s *PreviewService) PreviewBuiltin(templateID string, vars map[string]string) (string, error) {
	renderFn, ok := templates.Get(templateID)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, templateID)
	}
	return s.policy.Sanitize(renderFn(vars)), nil
}

// PreviewCustom renders freeform content in a custom mode to sanitized HTML.
func (s *PreviewService) PreviewCustom(mode store.TemplateType, content string, vars map[string]string) (string, error) {
	html, _, err := renderCustom(mode, content, vars)
	if err != nil {
		return "", err
	}
	return s.policy.Sanitize(html), nil
}
