package mailer

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"
)

type postmarkSender struct {
	client *postmark.Client
	config Config
}

// NewPostmarkSender creates a Postmark-backed email sender.
// Both tokens are required for runtime operation - this enforces
// explicit configuration rather than silent failures in production.
func NewPostmarkSender(cfg Config) (Sender, error) {
	if cfg.PostmarkServerToken == "" {
		return nil, fmt.Errorf("%w: PostmarkServerToken is required", ErrInvalidConfig)
	}
	if cfg.PostmarkAccountToken == "" {
		return nil, fmt.Errorf("%w: PostmarkAccountToken is required", ErrInvalidConfig)
	}
	if cfg.SenderEmail == "" {
		return nil, fmt.Errorf("%w: SenderEmail is required", ErrInvalidConfig)
	}
	if !emailRegex.MatchString(cfg.SenderEmail) {
		return nil, fmt.Errorf("%w: SenderEmail must be a valid email address", ErrInvalidConfig)
	}

	return &postmarkSender{
		client: postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken),
		config: cfg,
	}, nil
}

// MustNewPostmarkSender creates a Postmark sender that panics on invalid config.
// Fails fast during initialization rather than allowing a broken service to start.
func MustNewPostmarkSender(cfg Config) Sender {
	sender, err := NewPostmarkSender(cfg)
	if err != nil {
		panic(err)
	}
	return sender
}

// Send implements Sender using Postmark's transactional API.
// Tracking is enabled by default - opens and HTML link clicks only
// to avoid privacy issues with plain text.
func (s *postmarkSender) Send(ctx context.Context, msg Message) (Receipt, error) {
	if err := msg.Validate(); err != nil {
		return Receipt{}, err
	}

	from := msg.From
	if from == "" {
		from = s.config.SenderEmail
	}

	headers := make([]postmark.Header, 0, len(msg.Headers))
	for name, value := range msg.Headers {
		headers = append(headers, postmark.Header{Name: name, Value: value})
	}

	resp, err := s.client.SendEmail(ctx, postmark.Email{
		From:       from,
		To:         msg.To,
		Cc:         msg.Cc,
		Bcc:        msg.Bcc,
		Subject:    msg.Subject,
		Tag:        msg.Tag,
		HTMLBody:   msg.HTML,
		TextBody:   msg.Text,
		Headers:    headers,
		TrackOpens: true,
		TrackLinks: "HtmlOnly",
	})
	if err != nil {
		return Receipt{}, errors.Join(ErrFailedToSend, err)
	}
	if resp.ErrorCode > 0 {
		return Receipt{}, errors.Join(
			ErrFailedToSend,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}
	return Receipt{ProviderID: resp.MessageID}, nil
}
