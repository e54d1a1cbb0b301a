package service

import "errors"

var (
	// ErrInvalidRequest indicates missing or malformed input fields.
	ErrInvalidRequest = errors.New("service.errors.invalid_request")
	// ErrTemplateNotFound indicates an unknown template id.
	ErrTemplateNotFound = errors.New("service.errors.template_not_found")
	// ErrCodeExecutionDisabled is returned for template modes that would
	// require executing user-supplied code. There is no sandbox here and
	// emulating one with dynamic evaluation is not an option.
	ErrCodeExecutionDisabled = errors.New("service.errors.code_execution_disabled")
	// ErrDelivery indicates the mail provider rejected or failed the send.
	ErrDelivery = errors.New("service.errors.delivery_failed")
	// ErrRecipientUnsubscribed indicates the recipient has opted out.
	ErrRecipientUnsubscribed = errors.New("service.errors.recipient_unsubscribed")
)
