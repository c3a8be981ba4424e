package webhook

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Client posts JSON payloads to an automation webhook (Zapier, Make, n8n).
type Client struct {
	url        string
	secret     []byte
	httpClient *http.Client
}

// NewClient returns a webhook client. With a non-empty secret every request
// carries an HS256 bearer token whose "body_sha256" claim pins the payload.
func NewClient(url, secret string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{url: url, secret: []byte(secret), httpClient: httpClient}
}

// Encode marshals the payload up front so callers can fail before any I/O.
func Encode(payload interface{}) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("webhook: marshal payload: %w", err)
	}
	return body, nil
}

// Post sends an already encoded JSON body.
func (c *Client) Post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("webhook: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if len(c.secret) > 0 {
		token, err := c.sign(body)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("webhook: send: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook: status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) sign(body []byte) (string, error) {
	sum := sha256.Sum256(body)
	now := time.Now()
	claims := jwt.MapClaims{
		"iss":         "techflow-web-backend",
		"iat":         now.Unix(),
		"exp":         now.Add(5 * time.Minute).Unix(),
		"body_sha256": hex.EncodeToString(sum[:]),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("webhook: sign payload: %w", err)
	}
	return token, nil
}
