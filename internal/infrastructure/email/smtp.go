// Package email sends helpdesk notifications over SMTP.
package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Notifier is the outbound notification surface consumed by the inquiry
// use cases. A nil-safe noop implementation covers deployments without SMTP.
type Notifier interface {
	SendAssignmentNotification(to, assigneeName, inquiryTitle string, inquiryID uint) error
	SendResolutionNotification(to, customerName, inquiryTitle string, inquiryID uint) error
}

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // Base URL for email links (e.g., "http://localhost:8080")
}

type SMTPNotifier struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPNotifier(config SMTPConfig) *SMTPNotifier {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPNotifier{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPNotifier) SendAssignmentNotification(to, assigneeName, inquiryTitle string, inquiryID uint) error {
	inquiryURL := fmt.Sprintf("%s/inquiries/%d", s.config.BaseURL, inquiryID)

	subject := fmt.Sprintf("Inquiry assigned to you: %s", inquiryTitle)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Inquiry Assigned</h2>
			<p>Hi %s,</p>
			<p>The inquiry <strong>%s</strong> has been assigned to you.</p>
			<p><a href="%s">Open the inquiry</a></p>
		</body>
		</html>
	`, assigneeName, inquiryTitle, inquiryURL)

	plainBody := fmt.Sprintf(`
Hi %s,

The inquiry "%s" has been assigned to you.

Open it here:
%s
	`, assigneeName, inquiryTitle, inquiryURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPNotifier) SendResolutionNotification(to, customerName, inquiryTitle string, inquiryID uint) error {
	subject := fmt.Sprintf("Your inquiry has been resolved: %s", inquiryTitle)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Inquiry Resolved</h2>
			<p>Hi %s,</p>
			<p>Your inquiry <strong>%s</strong> has been resolved.</p>
			<p>If the issue persists, reply to this email and we will reopen it.</p>
		</body>
		</html>
	`, customerName, inquiryTitle)

	plainBody := fmt.Sprintf(`
Hi %s,

Your inquiry "%s" has been resolved.

If the issue persists, reply to this email and we will reopen it.
	`, customerName, inquiryTitle)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPNotifier) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// NoopNotifier drops notifications. Used when email is disabled.
type NoopNotifier struct{}

func NewNoopNotifier() *NoopNotifier {
	return &NoopNotifier{}
}

func (n *NoopNotifier) SendAssignmentNotification(string, string, string, uint) error {
	return nil
}

func (n *NoopNotifier) SendResolutionNotification(string, string, string, uint) error {
	return nil
}
