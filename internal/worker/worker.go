package worker

import (
	"context"

	"github.com/genaicorelab/iam-backend/internal/config"
	emailProvider "github.com/genaicorelab/iam-backend/pkg/email"

	"go.uber.org/zap"
)

type Workers struct {
	EmailSender EmailSender
}

type Deps struct {
	Logger        *zap.Logger
	EmailProvider emailProvider.Sender
	Config        *config.Config
}

type EmailSender interface {
	SendWelcomeEmail(ctx context.Context, email string, username string) error
}

func NewWorkers(deps Deps) *Workers {
	return &Workers{
		EmailSender: newEmailSender(deps.EmailProvider, deps.Config.Email, deps.Logger),
	}
}
