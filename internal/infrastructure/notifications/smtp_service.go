package notifications

import (
	"fmt"
	"log"
	"time"

	gomail "gopkg.in/gomail.v2"

	"github.com/Jasmitsingh01/school-management/domain"
)

// SMTPServiceImpl implements domain.NotificationService over SMTP.
type SMTPServiceImpl struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPService creates a new SMTP notification service.
func NewSMTPService(host string, port int, username, password, from string) domain.NotificationService {
	return &SMTPServiceImpl{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// SendOTP implements domain.NotificationService. When no sender address
// is configured the message is logged instead of sent, so local
// development works without a mail account.
func (s *SMTPServiceImpl) SendOTP(to, name, code string, validFor time.Duration) error {
	subject := "Your verification code"
	body := fmt.Sprintf(
		"Hello %s,\n\nYour verification code is: %s\nIt is valid for %d minutes.\n\nIf you did not request this, you can ignore this email.\n",
		name, code, int(validFor.Minutes()),
	)

	if s.from == "" {
		log.Printf("MOCK_EMAIL: to=%s subject=%q", to, subject)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
