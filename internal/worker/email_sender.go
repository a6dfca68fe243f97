package worker

import (
	"context"
	"fmt"

	"github.com/vibe-gaming/verify/internal/config"
	emailProvider "github.com/vibe-gaming/verify/pkg/email"
)

type emailSender struct {
	sender     emailProvider.Sender
	config     config.EmailConfig
	authConfig config.AuthConfig
}

func newEmailSender(
	sender emailProvider.Sender,
	config config.EmailConfig,
	authConfig config.AuthConfig,
) *emailSender {
	return &emailSender{
		sender:     sender,
		config:     config,
		authConfig: authConfig,
	}
}

type verificationEmailInput struct {
	ProductName      string
	VerificationCode string
	ExpiresInMinutes int
}

func (s *emailSender) SendUserVerificationEmail(ctx context.Context, email string, verificationCode string) error {
	if !s.config.Enabled {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	subject := fmt.Sprintf("%s security code", s.config.ProductName)

	templateInput := verificationEmailInput{
		ProductName:      s.config.ProductName,
		VerificationCode: verificationCode,
		ExpiresInMinutes: int(s.authConfig.VerificationCodeTTL.Minutes()),
	}
	sendInput := emailProvider.SendEmailInput{Subject: subject, To: email}

	if err := sendInput.GenerateBodyFromHTML(s.config.Templates.Verification, templateInput); err != nil {
		return fmt.Errorf("generate email failed: %w", err)
	}

	if err := s.sender.Send(sendInput); err != nil {
		return fmt.Errorf("send email failed: %w", err)
	}

	return nil
}
