package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"alarm-notifier/internal/domain/model"
	"alarm-notifier/internal/domain/ports"
)

// NotifyAlarm formats an inbound alarm event and delivers it to the webhook
// stored in the secret store.
type NotifyAlarm struct {
	secrets     ports.SecretProvider
	notifier    ports.Notifier
	deadLetters ports.DeadLetterQueue
	formatter   *Formatter
	logger      ports.Logger
	secretName  string
	now         func() time.Time
}

// NotifyAlarmConfig controls where the webhook credential is looked up.
type NotifyAlarmConfig struct {
	SecretName string
}

// NewNotifyAlarm constructs a NotifyAlarm use case. deadLetters may be nil.
func NewNotifyAlarm(
	secrets ports.SecretProvider,
	notifier ports.Notifier,
	deadLetters ports.DeadLetterQueue,
	formatter *Formatter,
	logger ports.Logger,
	cfg NotifyAlarmConfig,
) *NotifyAlarm {
	return &NotifyAlarm{
		secrets:     secrets,
		notifier:    notifier,
		deadLetters: deadLetters,
		formatter:   formatter,
		logger:      logger,
		secretName:  cfg.SecretName,
		now:         time.Now,
	}
}

// Handle runs the notification workflow for one event. Every failure is
// logged and returned to the caller; delivery retries happen in the notifier.
func (n *NotifyAlarm) Handle(ctx context.Context, event model.Event) error {
	n.logger.Info(ctx, "processing alarm event", "event", event)

	webhookURL, err := n.webhookURL(ctx)
	if err != nil {
		n.logger.Error(ctx, "failed to resolve webhook url", "error", err)
		return err
	}

	notification := n.formatter.Format(event)
	if err := n.notifier.Send(ctx, notification, webhookURL); err != nil {
		n.logger.Error(ctx, "failed to deliver alarm notification", "error", err)
		if errors.Is(err, model.ErrDeliveryExhausted) {
			n.deadLetter(ctx, event, err)
		}
		return err
	}

	return nil
}

func (n *NotifyAlarm) webhookURL(ctx context.Context) (string, error) {
	if n.secretName == "" {
		return "", fmt.Errorf("%w: SECRET_NAME environment variable is not set", model.ErrConfiguration)
	}
	return n.secrets.WebhookURL(ctx, n.secretName)
}

func (n *NotifyAlarm) deadLetter(ctx context.Context, event model.Event, cause error) {
	if n.deadLetters == nil {
		return
	}

	letter := model.DeadLetter{
		Event:    event,
		Reason:   cause.Error(),
		FailedAt: n.now().UTC(),
	}
	if err := n.deadLetters.Publish(ctx, letter); err != nil {
		n.logger.Error(ctx, "failed to publish dead letter", "error", err)
		return
	}
	n.logger.Warn(ctx, "alarm event sent to dead-letter queue")
}
