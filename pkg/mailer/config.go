package mailer

// Config holds mail delivery configuration.
// PostmarkServerToken and PostmarkAccountToken are optional to support
// development environments where real sending is disabled and the
// filesystem sender is used instead. SenderEmail is required as it
// establishes the default sender identity for all outbound emails.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL,required"`
	DevOutputDir         string `env:"MAILER_DEV_DIR" envDefault:"./tmp/emails"`
}
