package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// DevSender implements Sender for local development.
// It saves emails as HTML and JSON files to a specified directory
// instead of sending them through an email service.
type DevSender struct {
	dir string
}

// NewDevSender creates a development email sender that saves emails to disk.
// The directory will be created if it doesn't exist.
func NewDevSender(dir string) Sender {
	return &DevSender{dir: dir}
}

// devMetadata contains the message data saved to JSON (excluding the HTML body).
type devMetadata struct {
	Timestamp string `json:"timestamp"`
	To        string `json:"to"`
	Cc        string `json:"cc,omitempty"`
	Bcc       string `json:"bcc,omitempty"`
	From      string `json:"from,omitempty"`
	Subject   string `json:"subject"`
	Tag       string `json:"tag,omitempty"`
}

// Send saves the email as HTML and metadata as JSON to the configured directory.
// The base filename doubles as the provider message id.
func (d *DevSender) Send(ctx context.Context, msg Message) (Receipt, error) {
	if err := msg.Validate(); err != nil {
		return Receipt{}, err
	}

	if err := os.MkdirAll(d.dir, 0755); err != nil {
		return Receipt{}, fmt.Errorf("%w: failed to create directory: %v", ErrFailedToSend, err)
	}

	now := time.Now()
	timestamp := now.Format("2006_01_02_150405")

	// Use tag if available, otherwise fall back to the subject
	identifier := msg.Tag
	if identifier == "" {
		identifier = msg.Subject
	}

	baseFilename := fmt.Sprintf("%s_%s", timestamp, sanitizeFilename(identifier))

	htmlPath := filepath.Join(d.dir, baseFilename+".html")
	if err := os.WriteFile(htmlPath, []byte(msg.HTML), 0644); err != nil {
		return Receipt{}, fmt.Errorf("%w: failed to write HTML file: %v", ErrFailedToSend, err)
	}

	metadata := devMetadata{
		Timestamp: now.Format(time.RFC3339),
		To:        msg.To,
		Cc:        msg.Cc,
		Bcc:       msg.Bcc,
		From:      msg.From,
		Subject:   msg.Subject,
		Tag:       msg.Tag,
	}

	jsonData, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return Receipt{}, fmt.Errorf("%w: failed to marshal metadata: %v", ErrFailedToSend, err)
	}

	jsonPath := filepath.Join(d.dir, baseFilename+".json")
	if err := os.WriteFile(jsonPath, jsonData, 0644); err != nil {
		return Receipt{}, fmt.Errorf("%w: failed to write JSON file: %v", ErrFailedToSend, err)
	}

	return Receipt{ProviderID: baseFilename}, nil
}

// sanitizeRegex matches characters that are not alphanumeric, dash, underscore, or dot.
var sanitizeRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// sanitizeFilename converts a string into a safe filename.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = sanitizeRegex.ReplaceAllString(s, "")
	if len(s) > 64 {
		s = s[:64]
	}
	if s == "" {
		s = "email"
	}
	return s
}
