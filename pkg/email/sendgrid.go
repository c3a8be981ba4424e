package email

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridSender sends emails via SendGrid API.
type SendGridSender struct {
	client *sendgrid.Client
}

func NewSendGridSender(apiKey string) *SendGridSender {
	return &SendGridSender{client: sendgrid.NewSendClient(apiKey)}
}

func (s *SendGridSender) Send(ctx context.Context, msg Message) error {
	fromName, fromAddr := splitAddress(msg.From)
	from := sgmail.NewEmail(fromName, fromAddr)
	to := sgmail.NewEmail("", msg.To)

	message := sgmail.NewSingleEmail(from, msg.Subject, to, "", msg.HTML)
	if msg.ReplyTo != "" {
		message.SetReplyTo(sgmail.NewEmail("", msg.ReplyTo))
	}

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid: send: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid: status %d: %s", response.StatusCode, response.Body)
	}
	return nil
}

// splitAddress turns "Name <addr>" into its parts; unparsable input is used as the address.
func splitAddress(s string) (name, address string) {
	parsed, err := mail.ParseAddress(s)
	if err != nil {
		return "", s
	}
	return parsed.Name, parsed.Address
}

var _ Sender = (*SendGridSender)(nil)
