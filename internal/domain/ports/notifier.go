package ports

import (
	"context"

	"alarm-notifier/internal/domain/model"
)

// Notifier sends notifications to a downstream webhook (e.g. Slack).
type Notifier interface {
	Send(ctx context.Context, notification model.Notification, webhookURL string) error
}
