package whatsapp

import (
	"fmt"
	"strings"
)

// Link builds a wa.me click-to-chat URL from any phone notation.
// An empty text yields a bare link.
func Link(phone, text string) string {
	link := "https://wa.me/" + Digits(phone)
	if text != "" {
		link += "?text=" + encodeURIComponent(text)
	}
	return link
}

// Digits strips everything but 0-9.
func Digits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// encodeURIComponent escapes like the browser function of the same name,
// so spaces become %20 rather than "+".
func encodeURIComponent(s string) string {
	const unreserved = "-_.!~*'()"
	var b strings.Builder
	for _, c := range []byte(s) {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', strings.IndexByte(unreserved, c) >= 0:
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}
