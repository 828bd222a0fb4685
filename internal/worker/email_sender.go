package worker

import (
	"context"
	"fmt"

	"github.com/genaicorelab/iam-backend/internal/config"
	emailProvider "github.com/genaicorelab/iam-backend/pkg/email"

	"go.uber.org/zap"
)

const welcomeSubject = "Welcome aboard"

type emailSender struct {
	sender emailProvider.Sender
	config config.EmailConfig
	logger *zap.Logger
}

func newEmailSender(
	sender emailProvider.Sender,
	config config.EmailConfig,
	logger *zap.Logger,
) *emailSender {
	return &emailSender{
		sender: sender,
		config: config,
		logger: logger,
	}
}

type welcomeEmailInput struct {
	Username string
}

func (s *emailSender) SendWelcomeEmail(ctx context.Context, email string, username string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sendInput := emailProvider.SendEmailInput{Subject: welcomeSubject, To: email}

	if err := sendInput.GenerateBodyFromHTML(s.config.Templates.Dir, s.config.Templates.Welcome, welcomeEmailInput{username}); err != nil {
		return fmt.Errorf("generate email failed: %w", err)
	}

	if err := sendInput.Validate(); err != nil {
		return fmt.Errorf("invalid welcome email: %w", err)
	}

	if err := s.sender.Send(sendInput); err != nil {
		return fmt.Errorf("send email failed: %w", err)
	}

	s.logger.Info("welcome email sent", zap.String("username", username))

	return nil
}
