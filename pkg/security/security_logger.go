package security

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of security event
type EventType string

const (
	EventRateLimitTriggered EventType = "rate_limit_triggered"
	EventRateLimitDegraded  EventType = "rate_limit_degraded"
	EventValidationFailed   EventType = "validation_failed"
	EventLeadRejected       EventType = "lead_rejected"
	EventEstimateMismatch   EventType = "estimate_mismatch"
	EventLeadAccepted       EventType = "lead_accepted"
)

// SecurityEvent represents a security-related event to be logged
type SecurityEvent struct {
	Timestamp    time.Time              `json:"timestamp"`
	Service      string                 `json:"service"`
	Environment  string                 `json:"env"`
	Level        string                 `json:"level"`
	Event        EventType              `json:"event"`
	SubjectType  string                 `json:"subject_type,omitempty"`  // "email", "ip"
	SubjectValue string                 `json:"subject_value,omitempty"` // masked or hashed
	IP           string                 `json:"ip,omitempty"`
	UserAgent    string                 `json:"user_agent,omitempty"`
	RequestID    string                 `json:"request_id,omitempty"`
	Details      map[string]interface{} `json:"details,omitempty"`
}

// SecurityLogger writes abuse-relevant events as structured zap entries,
// separate from the application log.
type SecurityLogger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

var (
	defaultMu     sync.Mutex
	defaultLogger *SecurityLogger
)

// InitSecurityLogger builds the zap-backed logger and installs it as default.
func InitSecurityLogger(serviceName, environment string) *SecurityLogger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.MessageKey = "message"
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build(zap.AddCaller())
	if err != nil {
		logger, _ = zap.NewProduction()
	}

	return SetDefault(NewSecurityLogger(logger, serviceName, environment))
}

// NewSecurityLogger wraps an existing zap logger.
func NewSecurityLogger(logger *zap.Logger, serviceName, environment string) *SecurityLogger {
	return &SecurityLogger{zapLogger: logger, serviceName: serviceName, environment: environment}
}

// SetDefault installs sl as the process-wide security logger.
func SetDefault(sl *SecurityLogger) *SecurityLogger {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = sl
	return sl
}

// DefaultLogger returns the process-wide security logger, or a no-op one
// when none was initialised.
func DefaultLogger() *SecurityLogger {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		return NewSecurityLogger(zap.NewNop(), "techflow-web-backend", "development")
	}
	return defaultLogger
}

// Log logs a security event
func (sl *SecurityLogger) Log(ctx context.Context, event SecurityEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	event.Service = sl.serviceName
	event.Environment = sl.environment

	level := zapcore.WarnLevel
	switch event.Event {
	case EventLeadAccepted:
		level = zapcore.InfoLevel
	case EventRateLimitDegraded:
		level = zapcore.ErrorLevel
	}
	event.Level = level.String()

	fields := []zap.Field{
		zap.String("service", event.Service),
		zap.String("env", event.Environment),
		zap.String("event", string(event.Event)),
	}
	if event.SubjectType != "" {
		fields = append(fields, zap.String("subject_type", event.SubjectType))
	}
	if event.SubjectValue != "" {
		fields = append(fields, zap.String("subject_value", event.SubjectValue))
	}
	if event.IP != "" {
		fields = append(fields, zap.String("ip", event.IP))
	}
	if event.UserAgent != "" {
		fields = append(fields, zap.String("user_agent", event.UserAgent))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if len(event.Details) > 0 {
		detailsJSON, _ := json.Marshal(event.Details)
		fields = append(fields, zap.String("details", string(detailsJSON)))
	}

	sl.zapLogger.Log(level, string(event.Event), fields...)
}

// LogRateLimitTriggered logs when rate limiting is triggered
func (sl *SecurityLogger) LogRateLimitTriggered(ctx context.Context, ip, userAgent, requestID, endpoint string) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventRateLimitTriggered,
		SubjectType:  "ip",
		SubjectValue: ip,
		IP:           ip,
		UserAgent:    userAgent,
		RequestID:    requestID,
		Details:      map[string]interface{}{"endpoint": endpoint},
	})
}

// LogValidationFailed records which fields a submission failed on. Values are never logged.
func (sl *SecurityLogger) LogValidationFailed(ctx context.Context, source, ip string, fields []string) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventValidationFailed,
		SubjectType:  "ip",
		SubjectValue: ip,
		IP:           ip,
		Details:      map[string]interface{}{"source": source, "fields": fields},
	})
}

// LogLeadRejected records a lead that passed validation but was refused by dispatch.
func (sl *SecurityLogger) LogLeadRejected(ctx context.Context, source, email, ip, reason string) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventLeadRejected,
		SubjectType:  "email",
		SubjectValue: MaskEmail(email),
		IP:           ip,
		Details:      map[string]interface{}{"source": source, "reason": reason},
	})
}

// LogEstimateMismatch records a calculator lead whose client estimate differs from ours.
func (sl *SecurityLogger) LogEstimateMismatch(ctx context.Context, email, ip string, client, server map[string]interface{}) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventEstimateMismatch,
		SubjectType:  "email",
		SubjectValue: MaskEmail(email),
		IP:           ip,
		Details:      map[string]interface{}{"client": client, "server": server},
	})
}

// LogLeadAccepted records an accepted lead keyed by a hash of the email.
func (sl *SecurityLogger) LogLeadAccepted(ctx context.Context, source, email, ip string) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventLeadAccepted,
		SubjectType:  "email_hash",
		SubjectValue: HashValue(strings.ToLower(email)),
		IP:           ip,
		Details:      map[string]interface{}{"source": source},
	})
}

// Sync flushes any buffered log entries
func (sl *SecurityLogger) Sync() error {
	return sl.zapLogger.Sync()
}

// MaskEmail masks an email for logging (e.g., "j***@example.com")
func MaskEmail(email string) string {
	if len(email) < 3 {
		return "***"
	}
	atIndex := strings.IndexByte(email, '@')
	if atIndex <= 1 {
		return "***" + email[1:]
	}
	return string(email[0]) + "***" + email[atIndex:]
}

// HashValue creates a SHA256 hash of a value (for logging without PII)
func HashValue(value string) string {
	hash := sha256.Sum256([]byte(value))
	return hex.EncodeToString(hash[:8])
}
