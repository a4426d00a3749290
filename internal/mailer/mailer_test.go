package mailer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessage_Headers(t *testing.T) {
	n := NewSMTPNotifier("smtp.example.com", 587, "relay@example.com", "pw", "owner@example.com")

	msg := n.buildMessage("Jane Doe", "jane@example.com", "Hello")

	from := msg.GetHeader("From")
	require.Len(t, from, 1)
	assert.Equal(t, "relay@example.com", from[0])

	to := msg.GetHeader("To")
	require.Len(t, to, 1)
	assert.Equal(t, "owner@example.com", to[0])

	subj := msg.GetHeader("Subject")
	require.Len(t, subj, 1)
	assert.Equal(t, "New contact from portfolio contact form - jane@example.com", subj[0])
}

func TestSubject_EmbedsSenderEmail(t *testing.T) {
	assert.Equal(t,
		"New contact from portfolio contact form - a@b.example",
		subject("a@b.example"))
}

func TestBody_ContainsAllFields(t *testing.T) {
	got := body("Jane Doe", "jane@example.com", "Hello\nthere")

	assert.Equal(t, "Name: Jane Doe\nEmail: jane@example.com\nMessage:\nHello\nthere", got)
}

func TestNotify_UnreachableRelay(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping network test in short mode")
	}

	// Nothing listens on this port; delivery must fail and wrap the cause.
	n := NewSMTPNotifier("127.0.0.1", 2525, "relay@example.com", "pw", "owner@example.com")

	err := n.Notify(context.Background(),"Jane", "jane@example.com", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "send notification for jane@example.com")
}
