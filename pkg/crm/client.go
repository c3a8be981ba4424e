package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// LeadSourceWebsite tags every contact created from the site.
const LeadSourceWebsite = "Website"

// ContactProperties is the contact-property schema the CRM expects.
type ContactProperties struct {
	FirstName       string `json:"firstname"`
	LastName        string `json:"lastname"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Company         string `json:"company"`
	ServiceInterest string `json:"service_interest"`
	BudgetRange     string `json:"budget_range"`
	Message         string `json:"message"`
	LeadSource      string `json:"lead_source"`
}

type createContactRequest struct {
	Properties ContactProperties `json:"properties"`
}

// Client creates contacts through a bearer-authenticated JSON API.
type Client struct {
	apiKey     string
	url        string
	httpClient *http.Client
}

func NewClient(url, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{apiKey: apiKey, url: url, httpClient: httpClient}
}

// EncodeContact builds the request body; LeadSource defaults to Website.
func EncodeContact(props ContactProperties) ([]byte, error) {
	if props.LeadSource == "" {
		props.LeadSource = LeadSourceWebsite
	}
	jsonData, err := json.Marshal(createContactRequest{Properties: props})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal contact: %w", err)
	}
	return jsonData, nil
}

// CreateContact posts an encoded contact.
func (c *Client) CreateContact(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("failed to create contact (status %d): %s", resp.StatusCode, string(respBody))
	}
	return nil
}
