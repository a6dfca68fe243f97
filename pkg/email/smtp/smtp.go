package smtp

import (
	"errors"
	"fmt"

	"github.com/go-gomail/gomail"
	"github.com/vibe-gaming/verify/pkg/email"
)

type SMTPSender struct {
	from     string
	fromName string
	dialer   *gomail.Dialer
}

func NewSMTPSender(from, fromName, pass, host string, port int) (*SMTPSender, error) {
	if !email.IsEmailValid(from) {
		return nil, errors.New("invalid from email")
	}

	return &SMTPSender{
		from:     from,
		fromName: fromName,
		dialer:   gomail.NewDialer(host, port, from, pass),
	}, nil
}

func (s *SMTPSender) Send(input email.SendEmailInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", msg.FormatAddress(s.from, s.fromName))
	msg.SetHeader("To", input.To)
	msg.SetHeader("Subject", input.Subject)
	msg.SetBody("text/html", input.Body)

	if err := s.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email via smtp: %w", err)
	}

	return nil
}
