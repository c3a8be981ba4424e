package security

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "a***@example.com", MaskEmail("ana@example.com"))
	assert.Equal(t, "***@x.co", MaskEmail("a@x.co"))
	assert.Equal(t, "***", MaskEmail("ab"))
}

func TestHashValue(t *testing.T) {
	h := HashValue("ana@example.com")
	assert.Len(t, h, 16)
	assert.Equal(t, h, HashValue("ana@example.com"))
	assert.NotEqual(t, h, HashValue("otra@example.com"))
}

func TestSecurityLogger_Events(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sl := NewSecurityLogger(zap.New(core), "techflow-web-backend", "test")

	sl.LogLeadRejected(context.Background(), "contact-form", "ana@example.com", "10.0.0.1", "missing email")
	sl.LogLeadAccepted(context.Background(), "contact-form", "Ana@Example.com", "10.0.0.1")

	entries := logs.All()
	require.Len(t, entries, 2)

	rejected := entries[0]
	assert.Equal(t, zapcore.WarnLevel, rejected.Level)
	assert.Equal(t, "lead_rejected", rejected.Message)
	assert.Equal(t, "a***@example.com", rejected.ContextMap()["subject_value"])

	accepted := entries[1]
	assert.Equal(t, zapcore.InfoLevel, accepted.Level)
	assert.Equal(t, HashValue("ana@example.com"), accepted.ContextMap()["subject_value"])
}

func TestDefaultLogger_NeverNil(t *testing.T) {
	SetDefault(nil)
	assert.NotNil(t, DefaultLogger())
}
