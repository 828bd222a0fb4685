package service

import (
	"context"
	"fmt"

	"github.com/genaicorelab/iam-backend/internal/queue/client"
	"github.com/genaicorelab/iam-backend/internal/queue/task"
)

// Notifier is told about every successful registration.
type Notifier interface {
	UserRegistered(ctx context.Context, email string, username string) error
}

type NopNotifier struct{}

func (NopNotifier) UserRegistered(context.Context, string, string) error { return nil }

// QueueNotifier schedules a welcome email on the asynq mail queue.
type QueueNotifier struct {
	enqueuer client.Enqueuer
}

func NewQueueNotifier(enqueuer client.Enqueuer) *QueueNotifier {
	return &QueueNotifier{enqueuer: enqueuer}
}

func (n *QueueNotifier) UserRegistered(ctx context.Context, email string, username string) error {
	t, err := task.NewSendWelcomeEmailTask(email, username)
	if err != nil {
		return fmt.Errorf("create welcome email task failed: %w", err)
	}

	if _, err = n.enqueuer.EnqueueContext(ctx, t); err != nil {
		return fmt.Errorf("enqueue welcome email task failed: %w", err)
	}

	return nil
}
