package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/knightandthey/knightshade-email-service/internal/store"
	"github.com/knightandthey/knightshade-email-service/internal/templates"
	"github.com/knightandthey/knightshade-email-service/pkg/logger"
	"github.com/knightandthey/knightshade-email-service/pkg/mailer"
)

// SendService runs the send lifecycle: a queued log record is written
// before the delivery call and moved to exactly one terminal status after.
type SendService struct {
	logs         LogStore
	unsubscribes UnsubscribeStore
	mail         mailer.Sender
	defaultFrom  string
	log          *slog.Logger
	now          func() time.Time
}

func NewSendService(logs LogStore, unsubscribes UnsubscribeStore, mail mailer.Sender, defaultFrom string, log *slog.Logger) *SendService {
	return &SendService{
		logs:         logs,
		unsubscribes: unsubscribes,
		mail:         mail,
		defaultFrom:  defaultFrom,
		log:          log,
		now:          time.Now,
	}
}

// Envelope carries the addressing fields shared by both send paths.
type Envelope struct {
	To      string            `json:"to"`
	Cc      string            `json:"cc,omitempty"`
	Bcc     string            `json:"bcc,omitempty"`
	From    string            `json:"from,omitempty"`
	Subject string            `json:"subject"`
	Headers map[string]string `json:"headers,omitempty"`
}

func (e Envelope) validate() error {
	if strings.TrimSpace(e.To) == "" {
		return fmt.Errorf("%w: to is required", ErrInvalidRequest)
	}
	if !mailer.ValidAddress(e.To) {
		return fmt.Errorf("%w: to must be a valid email address", ErrInvalidRequest)
	}
	if strings.TrimSpace(e.Subject) == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidRequest)
	}
	return nil
}

// SendResult reports the outcome of one send attempt.
type SendResult struct {
	LogID             string           `json:"logId"`
	Status            store.SendStatus `json:"status"`
	ProviderMessageID string           `json:"providerMessageId,omitempty"`
	Error             string           `json:"error,omitempty"`
}

// SendBuiltin renders a built-in template and delivers it.
func (s *SendService) SendBuiltin(ctx context.Context, env Envelope, templateID string, vars map[string]string) (SendResult, error) {
	if err := env.validate(); err != nil {
		return SendResult{}, err
	}
	renderFn, ok := templates.Get(templateID)
	if !ok {
		return SendResult{}, fmt.Errorf("%w: %q", ErrTemplateNotFound, templateID)
	}
	if err := s.checkUnsubscribed(ctx, env.To); err != nil {
		return SendResult{}, err
	}

	html := renderFn(vars)
	return s.deliver(ctx, env, templateID, vars, html, "")
}

// SendCustom delivers freeform content in one of the custom template modes.
// The log record's template id is recorded as "custom-<mode>".
func (s *SendService) SendCustom(ctx context.Context, env Envelope, mode store.TemplateType, content string, vars map[string]string) (SendResult, error) {
	if err := env.validate(); err != nil {
		return SendResult{}, err
	}
	if strings.TrimSpace(content) == "" {
		return SendResult{}, fmt.Errorf("%w: content is required", ErrInvalidRequest)
	}
	if err := s.checkUnsubscribed(ctx, env.To); err != nil {
		return SendResult{}, err
	}

	html, text, err := renderCustom(mode, content, vars)
	if err != nil {
		return SendResult{}, err
	}
	return s.deliver(ctx, env, "custom-"+string(mode), vars, html, text)
}

func (s *SendService) checkUnsubscribed(ctx context.Context, to string) error {
	if s.unsubscribes == nil {
		return nil
	}
	unsubscribed, err := s.unsubscribes.IsUnsubscribed(ctx, strings.TrimSpace(strings.ToLower(to)))
	if err != nil {
		return err
	}
	if unsubscribed {
		return fmt.Errorf("%w: %s", ErrRecipientUnsubscribed, to)
	}
	return nil
}

// deliver writes the queued log record, calls the provider, and settles the
// record into its terminal status. The terminal update is always attributed
// to the record created here, never to a fresh one.
func (s *SendService) deliver(ctx context.Context, env Envelope, templateID string, vars map[string]string, html, text string) (SendResult, error) {
	from := env.From
	if from == "" {
		from = s.defaultFrom
	}

	rec := &store.EmailLog{
		ID:         uuid.NewString(),
		To:         env.To,
		Cc:         env.Cc,
		Bcc:        env.Bcc,
		From:       from,
		Subject:    env.Subject,
		TemplateID: templateID,
		Variables:  vars,
		Status:     store.StatusQueued,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.logs.Insert(ctx, rec); err != nil {
		return SendResult{}, err
	}

	receipt, sendErr := s.mail.Send(ctx, mailer.Message{
		To:      env.To,
		Cc:      env.Cc,
		Bcc:     env.Bcc,
		From:    from,
		Subject: env.Subject,
		HTML:    html,
		Text:    text,
		Tag:     templateID,
		Headers: env.Headers,
	})
	if sendErr != nil {
		if err := s.logs.MarkFailed(ctx, rec.ID, sendErr.Error()); err != nil {
			s.log.ErrorContext(ctx, "failed to mark log record failed",
				slog.String("log_id", rec.ID), logger.Errors(sendErr, err))
		}
		s.log.WarnContext(ctx, "email delivery failed",
			slog.String("log_id", rec.ID), slog.String("template_id", templateID), logger.Error(sendErr))
		return SendResult{
			LogID:  rec.ID,
			Status: store.StatusFailed,
			Error:  sendErr.Error(),
		}, fmt.Errorf("%w: %v", ErrDelivery, sendErr)
	}

	if err := s.logs.MarkSent(ctx, rec.ID, receipt.ProviderID); err != nil {
		s.log.ErrorContext(ctx, "failed to mark log record sent",
			slog.String("log_id", rec.ID), logger.Error(err))
	}
	s.log.InfoContext(ctx, "email sent",
		slog.String("log_id", rec.ID), slog.String("template_id", templateID))

	return SendResult{
		LogID:             rec.ID,
		Status:            store.StatusSent,
		ProviderMessageID: receipt.ProviderID,
	}, nil
}

// History returns the most recent send attempts.
func (s *SendService) History(ctx context.Context, limit int64) ([]store.EmailLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	return s.logs.List(ctx, limit)
}
