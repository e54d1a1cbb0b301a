// Package service implements the application operations behind the HTTP
// API: sending, previewing, template management, export/import, and
// unsubscribe recording.
package service

import (
	"context"

	"github.com/knightandthey/knightshade-email-service/internal/store"
)

// LogStore persists send-attempt records.
type LogStore interface {
	Insert(ctx context.Context, log *store.EmailLog) error
	MarkSent(ctx context.Context, id, providerMessageID string) error
	MarkFailed(ctx context.Context, id, errMsg string) error
	List(ctx context.Context, limit int64) ([]store.EmailLog, error)
}

// TemplateStore persists custom templates.
type TemplateStore interface {
	Insert(ctx context.Context, tpl *store.CustomTemplate) error
	Get(ctx context.Context, id string) (store.CustomTemplate, error)
	List(ctx context.Context) ([]store.CustomTemplate, error)
	Update(ctx context.Context, tpl *store.CustomTemplate) error
	Delete(ctx context.Context, id string) error
}

// UnsubscribeStore persists opt-out records.
type UnsubscribeStore interface {
	Upsert(ctx context.Context, email, source string) error
	IsUnsubscribed(ctx context.Context, email string) (bool, error)
}
