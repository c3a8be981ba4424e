package email

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"techflow-web-backend/config"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
)

// Message is a fully rendered notification.
type Message struct {
	From    string // "Display Name <address>"
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

// Sender delivers a rendered message.
// Implementations can be swapped (Resend, SendGrid, SES) without changing callers.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// NewSender builds the sender selected by EMAIL_PROVIDER.
// It returns nil when email is not configured.
func NewSender(ctx context.Context, cfg *config.Config) (Sender, error) {
	if !cfg.EmailEnabled() {
		return nil, nil
	}
	switch cfg.EmailProvider {
	case config.EmailProviderResend:
		s, err := NewResendSender(cfg.ResendAPIURL, cfg.ResendAPIKey, &http.Client{Timeout: 15 * time.Second})
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.EmailProviderSendGrid:
		return NewSendGridSender(cfg.SendGridAPIKey), nil
	case config.EmailProviderSES:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		return NewSESSender(sesv2.NewFromConfig(awsCfg)), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.EmailProvider)
	}
}
