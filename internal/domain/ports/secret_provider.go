package ports

import "context"

// SecretProvider resolves the webhook URL stored under a secret identifier.
type SecretProvider interface {
	WebhookURL(ctx context.Context, secretID string) (string, error)
}
