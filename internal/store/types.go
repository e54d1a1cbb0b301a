// Package store persists send-history logs, custom templates, and
// unsubscribe records in MongoDB.
package store

import "time"

// SendStatus tracks the lifecycle of a send attempt. A record starts queued
// and moves to exactly one terminal status once the provider responds.
type SendStatus string

const (
	StatusQueued SendStatus = "queued"
	StatusSent   SendStatus = "sent"
	StatusFailed SendStatus = "failed"
)

// TemplateType categorizes custom template content.
type TemplateType string

const (
	TypeHTML       TemplateType = "html"
	TypeReact      TemplateType = "react"
	TypeCSS        TemplateType = "css"
	TypeJavaScript TemplateType = "javascript"
	TypePlaintext  TemplateType = "plaintext"
)

// ValidTemplateType reports whether t is a known template type.
func ValidTemplateType(t TemplateType) bool {
	switch t {
	case TypeHTML, TypeReact, TypeCSS, TypeJavaScript, TypePlaintext:
		return true
	}
	return false
}

// EmailLog is the persisted record of one send attempt.
type EmailLog struct {
	ID                string            `bson:"_id" json:"id"`
	To                string            `bson:"to" json:"to"`
	Cc                string            `bson:"cc,omitempty" json:"cc,omitempty"`
	Bcc               string            `bson:"bcc,omitempty" json:"bcc,omitempty"`
	From              string            `bson:"from" json:"from"`
	Subject           string            `bson:"subject" json:"subject"`
	TemplateID        string            `bson:"template_id" json:"templateId"`
	Variables         map[string]string `bson:"variables,omitempty" json:"variables,omitempty"`
	Status            SendStatus        `bson:"status" json:"status"`
	Error             string            `bson:"error,omitempty" json:"error,omitempty"`
	ProviderMessageID string            `bson:"provider_message_id,omitempty" json:"providerMessageId,omitempty"`
	CreatedAt         time.Time         `bson:"created_at" json:"createdAt"`
}

// CustomTemplate is a user-saved content block.
type CustomTemplate struct {
	ID          string            `bson:"_id" json:"id"`
	Name        string            `bson:"name" json:"name"`
	Description string            `bson:"description,omitempty" json:"description,omitempty"`
	Type        TemplateType      `bson:"type" json:"type"`
	Content     string            `bson:"content" json:"content"`
	Variables   map[string]string `bson:"variables,omitempty" json:"variables"`
	CreatedAt   time.Time         `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time         `bson:"updated_at" json:"updatedAt"`
}

// Unsubscribe records an opted-out address. The email address is the
// document id so repeated requests collapse into one record.
type Unsubscribe struct {
	Email     string    `bson:"_id" json:"email"`
	Source    string    `bson:"source,omitempty" json:"source,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
