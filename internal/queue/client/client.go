package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hibiken/asynq"
	"github.com/vibe-gaming/verify/internal/queue/task"
)

type ctxKey int

const (
	_ ctxKey = iota
	asyncQCtxKey
)

var (
	globalClient *asynq.Client
	globalMu     sync.RWMutex

	ErrNoClient = errors.New("queue client is not configured")
)

// GetClient returns the Client stored in ctx, falling back to the global one.
// It's safe for concurrent use.
func GetClient(ctx context.Context) *asynq.Client {
	c := ctx.Value(asyncQCtxKey)
	if c != nil {
		client, ok := c.(*asynq.Client)
		if !ok {
			return nil
		}

		return client
	}

	globalMu.RLock()
	client := globalClient
	globalMu.RUnlock()

	return client
}

// WithClient returns a copy of ctx carrying client.
func WithClient(ctx context.Context, client *asynq.Client) context.Context {
	return context.WithValue(ctx, asyncQCtxKey, client)
}

// SetClient replaces the global Client, and returns a
// function to restore the original value. It's safe for concurrent use.
func SetClient(client *asynq.Client) func() {
	globalMu.Lock()
	prev := globalClient
	globalClient = client
	globalMu.Unlock()
	return func() { SetClient(prev) }
}

// Mailer hands verification emails to the send-email queue instead of SMTP.
type Mailer struct{}

func NewMailer() *Mailer {
	return &Mailer{}
}

func (m *Mailer) SendUserVerificationEmail(ctx context.Context, email string, verificationCode string) error {
	c := GetClient(ctx)
	if c == nil {
		return ErrNoClient
	}

	t, err := task.NewSendEmailTask(email, verificationCode)
	if err != nil {
		return err
	}

	if _, err := c.EnqueueContext(ctx, t); err != nil {
		return fmt.Errorf("enqueue send email task failed: %w", err)
	}

	return nil
}
