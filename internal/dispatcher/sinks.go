package dispatcher

import (
	"context"
	"fmt"
	"net/http"

	"techflow-web-backend/config"
	"techflow-web-backend/internal/domain"
	"techflow-web-backend/pkg/crm"
	"techflow-web-backend/pkg/email"
	"techflow-web-backend/pkg/notion"
	"techflow-web-backend/pkg/webhook"
)

// WebhookSink posts the raw lead to an automation webhook.
type WebhookSink struct {
	client *webhook.Client
}

func NewWebhookSink(client *webhook.Client) *WebhookSink {
	return &WebhookSink{client: client}
}

func (s *WebhookSink) Name() string { return "webhook" }

func (s *WebhookSink) Prepare(lead *domain.Lead) (SendFunc, error) {
	body, err := webhook.Encode(webhookPayload(lead))
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context) error {
		return s.client.Post(ctx, body)
	}, nil
}

// EmailSink renders the notification and hands it to the configured provider.
type EmailSink struct {
	sender         email.Sender
	renderer       *email.Renderer
	to             string
	fromContact    string
	fromCalculator string
}

func NewEmailSink(sender email.Sender, renderer *email.Renderer, to, fromContact, fromCalculator string) *EmailSink {
	return &EmailSink{
		sender:         sender,
		renderer:       renderer,
		to:             to,
		fromContact:    fromContact,
		fromCalculator: fromCalculator,
	}
}

func (s *EmailSink) Name() string { return "email" }

func (s *EmailSink) Prepare(lead *domain.Lead) (SendFunc, error) {
	data := emailData(lead)
	from := s.fromContact

	var html string
	var err error
	switch lead.Source {
	case domain.SourceCalculator:
		from = s.fromCalculator
		html, err = s.renderer.RenderCalculator(data)
	default:
		html, err = s.renderer.RenderContact(data)
	}
	if err != nil {
		return nil, fmt.Errorf("render email: %w", err)
	}

	msg := email.Message{
		From:    from,
		To:      s.to,
		ReplyTo: lead.Email,
		Subject: emailSubject(lead),
		HTML:    html,
	}
	return func(ctx context.Context) error {
		return s.sender.Send(ctx, msg)
	}, nil
}

// CRMSink creates a contact in the CRM.
type CRMSink struct {
	client *crm.Client
}

func NewCRMSink(client *crm.Client) *CRMSink {
	return &CRMSink{client: client}
}

func (s *CRMSink) Name() string { return "crm" }

func (s *CRMSink) Prepare(lead *domain.Lead) (SendFunc, error) {
	body, err := crm.EncodeContact(crmProperties(lead))
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context) error {
		return s.client.CreateContact(ctx, body)
	}, nil
}

// NotionSink adds a row to the Notion lead database.
type NotionSink struct {
	client *notion.Client
}

func NewNotionSink(client *notion.Client) *NotionSink {
	return &NotionSink{client: client}
}

func (s *NotionSink) Name() string { return "notion" }

func (s *NotionSink) Prepare(lead *domain.Lead) (SendFunc, error) {
	page := s.client.NewPage(notionProperties(lead))
	return func(ctx context.Context) error {
		return s.client.CreatePage(ctx, page)
	}, nil
}

// StoreSink archives the lead in Postgres.
type StoreSink struct {
	repo domain.LeadRepository
}

func NewStoreSink(repo domain.LeadRepository) *StoreSink {
	return &StoreSink{repo: repo}
}

func (s *StoreSink) Name() string { return "database" }

func (s *StoreSink) Prepare(lead *domain.Lead) (SendFunc, error) {
	snapshot := *lead
	return func(ctx context.Context) error {
		return s.repo.Save(ctx, &snapshot)
	}, nil
}

// SinkDeps are the collaborators that need more than configuration to build.
type SinkDeps struct {
	EmailSender email.Sender
	Renderer    *email.Renderer
	LeadRepo    domain.LeadRepository
	HTTPClient  *http.Client
}

// BuildSinks enables each sink only when its configuration is complete.
func BuildSinks(cfg *config.Config, deps SinkDeps) []Sink {
	var sinks []Sink
	if cfg.WebhookEnabled() {
		sinks = append(sinks, NewWebhookSink(webhook.NewClient(cfg.WebhookURL, cfg.WebhookSigningSecret, deps.HTTPClient)))
	}
	if cfg.EmailEnabled() && deps.EmailSender != nil && deps.Renderer != nil {
		sinks = append(sinks, NewEmailSink(deps.EmailSender, deps.Renderer, cfg.EmailTo, cfg.EmailFromContact, cfg.EmailFromCalculator))
	}
	if cfg.CRMEnabled() {
		sinks = append(sinks, NewCRMSink(crm.NewClient(cfg.CRMAPIURL, cfg.CRMAPIKey, deps.HTTPClient)))
	}
	if cfg.NotionEnabled() {
		sinks = append(sinks, NewNotionSink(notion.NewClient(cfg.NotionAPIKey, cfg.NotionVersion, cfg.NotionDatabaseID, deps.HTTPClient)))
	}
	if cfg.DatabaseEnabled() && deps.LeadRepo != nil {
		sinks = append(sinks, NewStoreSink(deps.LeadRepo))
	}
	return sinks
}
