// Package mailer delivers contact-form notifications to the site owner
// through an external SMTP relay.
package mailer

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// Notifier sends one notification email per accepted submission.
type Notifier interface {
	// Notify delivers a message describing the submission to the configured
	// recipient. The call blocks until the relay responds; there is no retry,
	// a failed delivery requires the visitor to resubmit.
	Notify(ctx context.Context, name, email, message string) error
}

// SMTPNotifier sends notifications through an authenticated SMTP submission
// connection (STARTTLS on the standard port 587).
type SMTPNotifier struct {
	dialer    *gomail.Dialer
	account   string
	recipient string
}

// Ensure SMTPNotifier implements Notifier at compile time.
var _ Notifier = (*SMTPNotifier)(nil)

// NewSMTPNotifier creates a notifier for the given relay. account is both the
// authentication user and the From address; recipient is the fixed address
// every notification goes to.
func NewSMTPNotifier(host string, port int, account, password, recipient string) *SMTPNotifier {
	return &SMTPNotifier{
		dialer:    gomail.NewDialer(host, port, account, password),
		account:   account,
		recipient: recipient,
	}
}

// Notify builds and sends the notification email. gomail upgrades the
// connection with STARTTLS before authenticating. The context is accepted
// for interface symmetry; the SMTP dial itself is not cancellable, so a slow
// relay simply delays the response (no cancellation is exposed upstream).
func (n *SMTPNotifier) Notify(_ context.Context, name, email, message string) error {
	if err := n.dialer.DialAndSend(n.buildMessage(name, email, message)); err != nil {
		return fmt.Errorf("send notification for %s: %w", email, err)
	}
	return nil
}

func (n *SMTPNotifier) buildMessage(name, email, message string) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", n.account)
	msg.SetHeader("To", n.recipient)
	msg.SetHeader("Subject", subject(email))
	msg.SetBody("text/plain", body(name, email, message))
	return msg
}

func subject(email string) string {
	return fmt.Sprintf("New contact from portfolio contact form - %s", email)
}

func body(name, email, message string) string {
	return fmt.Sprintf("Name: %s\nEmail: %s\nMessage:\n%s", name, email, message)
}
