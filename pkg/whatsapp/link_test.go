package whatsapp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLink(t *testing.T) {
	t.Run("Default contact message", func(t *testing.T) {
		got := Link("573001234567", "Hola! Quiero información sobre sus servicios")
		assert.Equal(t, "https://wa.me/573001234567?text=Hola!%20Quiero%20informaci%C3%B3n%20sobre%20sus%20servicios", got)
	})

	t.Run("Formatted phone without text", func(t *testing.T) {
		assert.Equal(t, "https://wa.me/573001234567", Link("+57 (300) 123-4567", ""))
	})
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "5730012345", Digits("+57 300-123 45"))
	assert.Equal(t, "", Digits("n/a"))
}
