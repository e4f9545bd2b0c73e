package ports

import (
	"context"

	"alarm-notifier/internal/domain/model"
)

// DeadLetterQueue receives events whose notification could not be delivered.
type DeadLetterQueue interface {
	Publish(ctx context.Context, letter model.DeadLetter) error
}
