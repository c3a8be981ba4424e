package notion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/jomei/notionapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// redirect sends every request to srv regardless of the host the SDK targets.
type redirect struct {
	target *url.URL
	next   http.RoundTripper
}

func (r redirect) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.URL.Scheme = r.target.Scheme
	req.URL.Host = r.target.Host
	return r.next.RoundTrip(req)
}

func clientFor(t *testing.T, srv *httptest.Server) *http.Client {
	t.Helper()
	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	return &http.Client{Transport: redirect{target: u, next: srv.Client().Transport}}
}

func TestNewPage(t *testing.T) {
	c := NewClient("k", "2022-06-28", "db-123", nil)

	req := c.NewPage(map[string]notionapi.Property{
		"Nombre":      Title("Ana"),
		"Email":       Email("ana@example.com"),
		"Teléfono":    PhoneNumber("3001234567"),
		"Empresa":     RichText(""),
		"Presupuesto": Select(""),
		"Estado":      Select("Nuevo"),
		"Fecha":       Date(time.Date(2025, 3, 15, 14, 30, 0, 0, time.FixedZone("COT", -5*3600))),
	})

	assert.Equal(t, notionapi.DatabaseID("db-123"), req.Parent.DatabaseID)
	assert.NotContains(t, req.Properties, "Presupuesto", "empty selects are left unset")
	assert.Len(t, req.Properties, 6)

	raw, err := json.Marshal(req)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))

	props := body["properties"].(map[string]interface{})
	assert.Equal(t, "ana@example.com", props["Email"].(map[string]interface{})["email"])
	assert.Equal(t, "3001234567", props["Teléfono"].(map[string]interface{})["phone_number"])
	assert.Equal(t, map[string]interface{}{"name": "Nuevo"}, props["Estado"].(map[string]interface{})["select"])
	assert.Empty(t, props["Empresa"].(map[string]interface{})["rich_text"])

	title := props["Nombre"].(map[string]interface{})["title"].([]interface{})
	require.Len(t, title, 1)
	assert.Equal(t, "Ana", title[0].(map[string]interface{})["text"].(map[string]interface{})["content"])

	start := props["Fecha"].(map[string]interface{})["date"].(map[string]interface{})["start"].(string)
	parsed, err := time.Parse(time.RFC3339, start)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(time.Date(2025, 3, 15, 19, 30, 0, 0, time.UTC)))
}

func TestRichText_SplitsLongContent(t *testing.T) {
	p := RichText(strings.Repeat("a", 4500)).(notionapi.RichTextProperty)
	require.Len(t, p.RichText, 3)
	assert.Len(t, p.RichText[0].Text.Content, 2000)
	assert.Len(t, p.RichText[2].Text.Content, 500)
}

func TestClient_CreatePage(t *testing.T) {
	t.Run("Sends auth and version headers", func(t *testing.T) {
		var body map[string]interface{}
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/pages", r.URL.Path)
			assert.Equal(t, "Bearer secret_x", r.Header.Get("Authorization"))
			assert.Equal(t, "2022-06-28", r.Header.Get("Notion-Version"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"object":"page","id":"page-1"}`))
		}))
		defer srv.Close()

		c := NewClient("secret_x", "2022-06-28", "db", clientFor(t, srv))
		require.NoError(t, c.CreatePage(context.Background(), c.NewPage(map[string]notionapi.Property{"Nombre": Title("Ana")})))
		assert.Equal(t, "db", body["parent"].(map[string]interface{})["database_id"])
	})

	t.Run("Validation error from Notion", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"object":"error","status":400,"code":"validation_error","message":"Estado is not a property that exists."}`))
		}))
		defer srv.Close()

		c := NewClient("k", "2022-06-28", "db", clientFor(t, srv))
		err := c.CreatePage(context.Background(), c.NewPage(map[string]notionapi.Property{"Estado": Select("Nuevo")}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Estado is not a property")
	})
}
