// Package notifications implements the outbound email gateway over SMTP.
package notifications

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"

	"github.com/Nakulpanchal-gamer/KubereshwarBackend/domain"
)

// MailerImpl implements domain.NotificationService using an SMTP relay.
type MailerImpl struct {
	dialer   *gomail.Dialer
	from     string
	fromName string
	log      *logrus.Logger
}

// MailerConfig carries the SMTP relay settings.
type MailerConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

// NewMailer creates a new SMTP notification service. With no host configured
// the mailer logs messages instead of sending, which keeps local development
// working without a relay.
func NewMailer(cfg MailerConfig, log *logrus.Logger) domain.NotificationService {
	m := &MailerImpl{
		from:     cfg.From,
		fromName: cfg.FromName,
		log:      log,
	}
	if cfg.Host != "" {
		m.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	}
	return m
}

// SendOTPCode implements domain.NotificationService
func (m *MailerImpl) SendOTPCode(to, code string, ttlMinutes int) error {
	subject := "Your admin login code"
	text := fmt.Sprintf("Your verification code is: %s. Valid for %d minutes.", code, ttlMinutes)
	html, err := renderOTPEmail(code, ttlMinutes)
	if err != nil {
		return fmt.Errorf("render otp email: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, m.fromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", text)
	msg.AddAlternative("text/html", html)

	return m.send(msg)
}

// SendEnquiry implements domain.NotificationService
func (m *MailerImpl) SendEnquiry(to string, n domain.EnquiryNotification) error {
	text := renderEnquiryText(n)
	html, err := renderEnquiryEmail(n)
	if err != nil {
		return fmt.Errorf("render enquiry email: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, m.fromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Reply-To", n.FromEmail)
	msg.SetHeader("Subject", enquirySubject(n))
	msg.SetBody("text/plain", text)
	msg.AddAlternative("text/html", html)

	return m.send(msg)
}

func (m *MailerImpl) send(msg *gomail.Message) error {
	if m.dialer == nil {
		m.log.WithFields(logrus.Fields{
			"to":      msg.GetHeader("To"),
			"subject": msg.GetHeader("Subject"),
		}).Info("smtp not configured, skipping send")
		return nil
	}
	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.NotificationService = (*MailerImpl)(nil)
