package mailer

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Sender delivers a single email message.
type Sender interface {
	Send(ctx context.Context, msg Message) (Receipt, error)
}

// Message represents a single outbound email.
type Message struct {
	To      string            `json:"to"`
	Cc      string            `json:"cc,omitempty"`
	Bcc     string            `json:"bcc,omitempty"`
	From    string            `json:"from,omitempty"` // Falls back to the configured sender when empty
	Subject string            `json:"subject"`
	HTML    string            `json:"html"`
	Text    string            `json:"text,omitempty"`
	Tag     string            `json:"tag,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
}

// Receipt is the provider's acknowledgement of an accepted message.
type Receipt struct {
	ProviderID string `json:"provider_id"`
}

// emailRegex is a pragmatic address check, not a full RFC 5322 validator.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidAddress reports whether s looks like a deliverable email address.
func ValidAddress(s string) bool {
	return emailRegex.MatchString(strings.TrimSpace(s))
}

// Validate checks the message for the fields every sender requires.
func (m Message) Validate() error {
	if strings.TrimSpace(m.To) == "" {
		return fmt.Errorf("%w: To is required", ErrInvalidMessage)
	}
	if !emailRegex.MatchString(strings.TrimSpace(m.To)) {
		return fmt.Errorf("%w: To must be a valid email address", ErrInvalidMessage)
	}
	if strings.TrimSpace(m.Subject) == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidMessage)
	}
	if strings.TrimSpace(m.HTML) == "" && strings.TrimSpace(m.Text) == "" {
		return fmt.Errorf("%w: either HTML or Text body is required", ErrInvalidMessage)
	}
	return nil
}
