package notion

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jomei/notionapi"
)

// Notion rejects text objects longer than this.
const maxTextLength = 2000

func texts(s string) []notionapi.RichText {
	runes := []rune(s)
	out := []notionapi.RichText{}
	for len(runes) > 0 {
		n := len(runes)
		if n > maxTextLength {
			n = maxTextLength
		}
		out = append(out, notionapi.RichText{
			Type: notionapi.ObjectTypeText,
			Text: &notionapi.Text{Content: string(runes[:n])},
		})
		runes = runes[n:]
	}
	return out
}

func Title(s string) notionapi.Property {
	return notionapi.TitleProperty{Type: notionapi.PropertyTypeTitle, Title: texts(s)}
}

func RichText(s string) notionapi.Property {
	return notionapi.RichTextProperty{Type: notionapi.PropertyTypeRichText, RichText: texts(s)}
}

func Email(s string) notionapi.Property {
	return notionapi.EmailProperty{Type: notionapi.PropertyTypeEmail, Email: s}
}

func PhoneNumber(s string) notionapi.Property {
	return notionapi.PhoneNumberProperty{Type: notionapi.PropertyTypePhoneNumber, PhoneNumber: s}
}

// Select returns nil for an empty name; NewPage leaves such properties unset.
func Select(name string) notionapi.Property {
	if name == "" {
		return nil
	}
	return notionapi.SelectProperty{Type: notionapi.PropertyTypeSelect, Select: notionapi.Option{Name: name}}
}

func Date(t time.Time) notionapi.Property {
	start := notionapi.Date(t.UTC())
	return notionapi.DateProperty{Type: notionapi.PropertyTypeDate, Date: &notionapi.DateObject{Start: &start}}
}

// Client creates pages in one Notion database.
type Client struct {
	api        *notionapi.Client
	databaseID notionapi.DatabaseID
}

func NewClient(apiKey, version, databaseID string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	opts := []notionapi.ClientOption{notionapi.WithHTTPClient(httpClient)}
	if version != "" {
		opts = append(opts, notionapi.WithVersion(version))
	}
	return &Client{
		api:        notionapi.NewClient(notionapi.Token(apiKey), opts...),
		databaseID: notionapi.DatabaseID(databaseID),
	}
}

// NewPage builds a create-page request for the configured database.
func (c *Client) NewPage(props map[string]notionapi.Property) *notionapi.PageCreateRequest {
	set := make(notionapi.Properties, len(props))
	for name, p := range props {
		if p != nil {
			set[name] = p
		}
	}
	return &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: c.databaseID,
		},
		Properties: set,
	}
}

func (c *Client) CreatePage(ctx context.Context, req *notionapi.PageCreateRequest) error {
	if _, err := c.api.Page.Create(ctx, req); err != nil {
		return fmt.Errorf("notion: create page: %w", err)
	}
	return nil
}
