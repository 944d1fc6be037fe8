package email

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridConfig holds SendGrid configuration
type SendGridConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}

// EmailMessage represents an email to send
type EmailMessage struct {
	To          string
	ToName      string
	Subject     string
	HTMLContent string
	TextContent string
}

// Sender delivers a rendered message
type Sender interface {
	Send(ctx context.Context, msg *EmailMessage) error
}

// SendGridClient sends emails via the SendGrid API
type SendGridClient struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

// NewSendGridClient creates a new SendGrid email client
func NewSendGridClient(config SendGridConfig) *SendGridClient {
	return &SendGridClient{
		client:    sendgrid.NewSendClient(config.APIKey),
		fromEmail: config.FromEmail,
		fromName:  config.FromName,
	}
}

// Send sends an email via SendGrid
func (c *SendGridClient) Send(ctx context.Context, msg *EmailMessage) error {
	from := mail.NewEmail(c.fromName, c.fromEmail)
	to := mail.NewEmail(msg.ToName, msg.To)

	text := msg.TextContent
	if text == "" {
		text = msg.Subject
	}
	message := mail.NewSingleEmail(from, msg.Subject, to, text, msg.HTMLContent)

	resp, err := c.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send failed: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}

// LogSender logs messages instead of sending them; used when no API key is set
type LogSender struct{}

func (LogSender) Send(_ context.Context, msg *EmailMessage) error {
	log.Info().Str("to", msg.To).Str("subject", msg.Subject).Msg("Email sending disabled, message logged only")
	return nil
}

// NewSender picks SendGrid when an API key is configured
func NewSender(config SendGridConfig) Sender {
	if config.APIKey == "" {
		return LogSender{}
	}
	return NewSendGridClient(config)
}
