package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Email delivery backends.
const (
	EmailProviderResend   = "resend"
	EmailProviderSendGrid = "sendgrid"
	EmailProviderSES      = "ses"
)

// Config is built once at startup and passed explicitly to every component.
// Nothing reads the process environment after LoadConfig returns.
type Config struct {
	Port           string
	Env            string
	LogLevel       string
	SiteURL        string
	AllowedOrigins []string
	// Generic automation webhook (Zapier, Make, n8n)
	WebhookURL           string
	WebhookSigningSecret string
	// Transactional email
	EmailProvider       string
	EmailTo             string
	EmailFromContact    string
	EmailFromCalculator string
	ResendAPIKey        string
	ResendAPIURL        string
	SendGridAPIKey      string
	AWSRegion           string
	// CRM
	CRMAPIKey string
	CRMAPIURL string
	// Notion lead database
	NotionAPIKey     string
	NotionDatabaseID string
	NotionVersion    string
	// Optional lead archive
	DBUrl string
	// WhatsApp contact link
	WhatsAppNumber  string
	WhatsAppMessage string
	// Per-sink delivery deadline
	SinkTimeout time.Duration
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	LeadRateLimit          int
	RateLimitWindowSeconds int
	GlobalRateLimit        int
}

func LoadConfig() (*Config, error) {
	// Only effective locally; production injects real environment variables
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		// Trim trailing slash so links never end up with "//"
		SiteURL:        strings.TrimRight(getEnv("SITE_URL", getEnv("NEXT_PUBLIC_SITE_URL", "https://techflowai.co")), "/"),
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", []string{"https://techflowai.co", "https://www.techflowai.co"}),

		WebhookURL:           getEnv("WEBHOOK_URL", ""),
		WebhookSigningSecret: getEnv("WEBHOOK_SIGNING_SECRET", ""),

		EmailProvider:       strings.ToLower(getEnv("EMAIL_PROVIDER", EmailProviderResend)),
		EmailTo:             getEnv("EMAIL_TO", "hola@techflowai.co"),
		EmailFromContact:    getEnv("EMAIL_FROM_CONTACT", "TechFlow AI <noreply@techflowai.co>"),
		EmailFromCalculator: getEnv("EMAIL_FROM_CALCULATOR", "TechFlow AI <calculadora@techflowai.co>"),
		ResendAPIKey:        getEnv("RESEND_API_KEY", ""),
		ResendAPIURL:        getEnv("RESEND_API_URL", "https://api.resend.com/"),
		SendGridAPIKey:      getEnv("SENDGRID_API_KEY", ""),
		AWSRegion:           getEnv("AWS_REGION", ""),

		CRMAPIKey: getEnv("CRM_API_KEY", ""),
		CRMAPIURL: getEnv("CRM_API_URL", ""),

		NotionAPIKey:     getEnv("NOTION_API_KEY", ""),
		NotionDatabaseID: getEnv("NOTION_DATABASE_ID", ""),
		NotionVersion:    getEnv("NOTION_VERSION", "2022-06-28"),

		DBUrl: getEnv("DATABASE_URL", ""),

		WhatsAppNumber:  getEnv("WHATSAPP_NUMBER", getEnv("NEXT_PUBLIC_WHATSAPP_NUMBER", "573001234567")),
		WhatsAppMessage: getEnv("WHATSAPP_MESSAGE", getEnv("NEXT_PUBLIC_WHATSAPP_MESSAGE", "Hola! Quiero información sobre sus servicios")),

		SinkTimeout: getEnvDuration("SINK_TIMEOUT_SECONDS", 10*time.Second),

		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),

		LeadRateLimit:          getEnvInt("LEAD_RATE_LIMIT", 5),               // 5 submissions per window
		RateLimitWindowSeconds: getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),   // 1 minute window
		GlobalRateLimit:        getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100), // 100 requests per window
	}

	if !cfg.WebhookEnabled() && !cfg.EmailEnabled() && !cfg.CRMEnabled() && !cfg.NotionEnabled() && !cfg.DatabaseEnabled() {
		log.Println("WARNING: no lead destination configured. Submissions will be accepted and dropped.")
	}

	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// IsProduction reports whether internal error details must be hidden from clients.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) WebhookEnabled() bool {
	return c.WebhookURL != ""
}

// EmailEnabled reports whether the selected provider has everything it needs.
func (c *Config) EmailEnabled() bool {
	if c.EmailTo == "" {
		return false
	}
	switch c.EmailProvider {
	case EmailProviderResend:
		return c.ResendAPIKey != "" && c.ResendAPIURL != ""
	case EmailProviderSendGrid:
		return c.SendGridAPIKey != ""
	case EmailProviderSES:
		return c.AWSRegion != ""
	default:
		return false
	}
}

func (c *Config) CRMEnabled() bool {
	return c.CRMAPIKey != "" && c.CRMAPIURL != ""
}

func (c *Config) NotionEnabled() bool {
	return c.NotionAPIKey != "" && c.NotionDatabaseID != ""
}

func (c *Config) DatabaseEnabled() bool {
	return c.DBUrl != ""
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvDuration reads a whole number of seconds
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if secs, err := strconv.Atoi(value); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping blanks
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, strings.TrimRight(p, "/"))
		}
	}
	return out
}
