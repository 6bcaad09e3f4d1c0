package mail

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeMessage(t *testing.T) {
	msg := &Message{
		From:    "Clubsite <no-reply@clubsite.fi>",
		To:      "sales@clubsite.fi",
		ReplyTo: "matti@example.com",
		Subject: "Yhteydenotto: Matti Virtanen",
		HTML:    "<p>Hei<br>maailma</p>",
		Text:    "Hei\nmaailma",
	}

	raw, err := EncodeMessage(msg)
	require.NoError(t, err)
	out := string(raw)

	assert.Contains(t, out, "From: Clubsite <no-reply@clubsite.fi>\r\n")
	assert.Contains(t, out, "To: sales@clubsite.fi\r\n")
	assert.Contains(t, out, "Reply-To: matti@example.com\r\n")
	assert.Contains(t, out, "MIME-Version: 1.0\r\n")
	assert.Contains(t, out, "multipart/alternative")
	assert.Contains(t, out, "text/plain; charset=utf-8")
	assert.Contains(t, out, "text/html; charset=utf-8")
	assert.Contains(t, out, "<p>Hei<br>maailma</p>")
	assert.Contains(t, out, "Hei\nmaailma")

	// Plain text must come before HTML inside the alternative parts.
	assert.Less(t, strings.Index(out, "text/plain"), strings.Index(out, "text/html"))
}

func TestEncodeMessage_NonASCIISubject(t *testing.T) {
	raw, err := EncodeMessage(&Message{
		From:    "no-reply@clubsite.fi",
		To:      "sales@clubsite.fi",
		Subject: "Yhteydenotto: Äijälä",
		Text:    "sisältö",
	})
	require.NoError(t, err)

	out := string(raw)
	assert.NotContains(t, out, "Subject: Yhteydenotto: Äijälä\r\n", "subject with non-ASCII runes must be Q-encoded")
	assert.Contains(t, out, "Subject: =?utf-8?q?")
}

func TestEncodeMessage_SkipsEmptyValues(t *testing.T) {
	raw, err := EncodeMessage(&Message{
		From:    "no-reply@clubsite.fi",
		To:      "sales@clubsite.fi",
		Subject: "x",
		Text:    "body",
	})
	require.NoError(t, err)

	out := string(raw)
	assert.NotContains(t, out, "Reply-To:")
	assert.NotContains(t, out, "text/html")
}
