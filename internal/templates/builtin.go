package templates

import (
	"github.com/knightandthey/knightshade-email-service/internal/render"
)

// buildTemplates declares the built-in template set. Each template is
// expressed as builder elements so that built-in and visually composed
// emails go through the exact same rendering pipeline.
func buildTemplates() []builtin {
	return []builtin{
		welcomeTemplate(),
		passwordResetTemplate(),
		notificationTemplate(),
		newsletterTemplate(),
	}
}

func welcomeTemplate() builtin {
	defaults := map[string]string{
		"name":        "there",
		"productName": "our product",
		"actionUrl":   "https://example.com/start",
		"actionLabel": "Get started",
	}
	return builtin{
		info: Info{
			ID:               "welcome",
			Name:             "Welcome",
			Description:      "Greets a new user and points them at their first step.",
			VariableDefaults: defaults,
		},
		render: func(vars map[string]string) string {
			v := merge(defaults, vars)
			return render.Render([]render.Element{
				{Type: "heading", Props: map[string]string{"title": "Welcome, " + v["name"] + "!"}},
				{Type: "text", Props: map[string]string{"content": "Thanks for signing up for " + v["productName"] + ". We're glad to have you.\nEverything is ready, so jump straight in."}},
				{Type: "button", Props: map[string]string{"label": v["actionLabel"], "url": v["actionUrl"]}},
				{Type: "divider"},
				{Type: "footer"},
			})
		},
	}
}

func passwordResetTemplate() builtin {
	defaults := map[string]string{
		"name":      "there",
		"resetUrl":  "https://example.com/reset",
		"expiresIn": "1 hour",
	}
	return builtin{
		info: Info{
			ID:               "password-reset",
			Name:             "Password reset",
			Description:      "Sends a password reset link with an expiry note.",
			VariableDefaults: defaults,
		},
		render: func(vars map[string]string) string {
			v := merge(defaults, vars)
			return render.Render([]render.Element{
				{Type: "heading", Props: map[string]string{"title": "Reset your password"}},
				{Type: "text", Props: map[string]string{"content": "Hi " + v["name"] + ",\nSomeone requested a password reset for your account. If that was you, use the button below. The link expires in " + v["expiresIn"] + "."}},
				{Type: "button", Props: map[string]string{"label": "Reset password", "url": v["resetUrl"]}},
				{Type: "text", Props: map[string]string{"content": "If you didn't request this, you can safely ignore this email.", "color": "#718096", "size": "14"}},
				{Type: "footer"},
			})
		},
	}
}

func notificationTemplate() builtin {
	defaults := map[string]string{
		"title":      "Something happened",
		"message":    "There is new activity on your account.",
		"detailsUrl": "https://example.com/activity",
	}
	return builtin{
		info: Info{
			ID:               "notification",
			Name:             "Notification",
			Description:      "Short activity notice with a details link.",
			VariableDefaults: defaults,
		},
		render: func(vars map[string]string) string {
			v := merge(defaults, vars)
			return render.Render([]render.Element{
				{Type: "heading", Props: map[string]string{"title": v["title"], "size": "20"}},
				{Type: "text", Props: map[string]string{"content": v["message"]}},
				{Type: "button", Props: map[string]string{"label": "View details", "url": v["detailsUrl"]}},
				{Type: "footer"},
			})
		},
	}
}

func newsletterTemplate() builtin {
	defaults := map[string]string{
		"title":    "This month's update",
		"intro":    "Here's what's new since our last letter.",
		"items":    "- First highlight\n- Second highlight\n- Third highlight",
		"ctaUrl":   "https://example.com/blog",
		"ctaLabel": "Read more",
	}
	return builtin{
		info: Info{
			ID:               "newsletter",
			Name:             "Newsletter",
			Description:      "Heading, intro, highlight list, and a call to action.",
			VariableDefaults: defaults,
		},
		render: func(vars map[string]string) string {
			v := merge(defaults, vars)
			return render.Render([]render.Element{
				{Type: "heading", Props: map[string]string{"title": v["title"], "size": "28"}},
				{Type: "text", Props: map[string]string{"content": v["intro"]}},
				{Type: "text", Props: map[string]string{"content": v["items"]}},
				{Type: "button", Props: map[string]string{"label": v["ctaLabel"], "url": v["ctaUrl"]}},
				{Type: "divider"},
				{Type: "social"},
				{Type: "footer"},
			})
		},
	}
}
