package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"yordam/internal/domain/notification"
	"yordam/internal/shared/config"
	"yordam/internal/shared/i18n"
)

// NotificationMailer mirrors in-app notifications to email. Delivery is
// best effort: the in-app notification is the source of truth and a
// failed send must never roll back the business transaction.
type NotificationMailer interface {
	SendNotification(to string, lang i18n.Lang, n *notification.Notification) error
}

type SMTPMailer struct {
	config config.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPMailer(cfg config.EmailConfig) *SMTPMailer {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)

	return &SMTPMailer{
		config: cfg,
		dialer: dialer,
	}
}

func (s *SMTPMailer) SendNotification(to string, lang i18n.Lang, n *notification.Notification) error {
	subject := i18n.T(lang, "email.subject", n.Title())
	link := s.config.BaseURL + n.URL()
	footer := i18n.T(lang, "email.footer")

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>%s</h2>
			<p>%s</p>
			<p><a href="%s">%s</a></p>
			<hr>
			<p><small>%s</small></p>
		</body>
		</html>
	`, n.Title(), n.Text(), link, link, footer)

	plainBody := fmt.Sprintf("%s\n\n%s\n\n%s\n\n%s\n", n.Title(), n.Text(), link, footer)

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

// NoopMailer is used when the email mirror is disabled.
type NoopMailer struct{}

func NewNoopMailer() *NoopMailer {
	return &NoopMailer{}
}

func (s *NoopMailer) SendNotification(string, i18n.Lang, *notification.Notification) error {
	return nil
}
