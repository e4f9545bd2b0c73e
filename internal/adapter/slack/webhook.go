package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"alarm-notifier/internal/domain/model"
	"alarm-notifier/internal/domain/ports"
)

const maxLoggedBody = 512

// Webhook is a Slack incoming-webhook notifier with bounded retries.
type Webhook struct {
	httpClient  *http.Client
	logger      ports.Logger
	sleep       Sleeper
	maxAttempts int
}

var _ ports.Notifier = (*Webhook)(nil)

// NewWebhook creates a new Slack webhook notifier.
func NewWebhook(timeout time.Duration, logger ports.Logger) *Webhook {
	return &Webhook{
		httpClient:  &http.Client{Timeout: timeout},
		logger:      logger,
		sleep:       sleepContext,
		maxAttempts: MaxAttempts,
	}
}

// Send posts the notification to webhookURL. A 200 response ends delivery.
// Other responses are retried immediately; transport errors are retried after
// an exponential backoff. Once all attempts fail the returned error wraps
// model.ErrDeliveryExhausted.
func (w *Webhook) Send(ctx context.Context, notification model.Notification, webhookURL string) error {
	if webhookURL == "" {
		return fmt.Errorf("webhook URL is empty")
	}

	body, err := json.Marshal(NewWebhookMessage(notification))
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	attempts, err := retry(ctx, w.maxAttempts, w.sleep, func(ctx context.Context, n int) AttemptResult {
		res := w.post(ctx, webhookURL, body)
		if res.Outcome == OutcomeRetryable {
			w.logger.Warn(ctx, "slack delivery attempt failed",
				"attempt", n+1,
				"max_attempts", w.maxAttempts,
				"error", res.Err,
			)
		}
		return res
	})
	if err != nil {
		return err
	}

	w.logger.Info(ctx, "notification sent to slack", "attempts", attempts)
	return nil
}

func (w *Webhook) post(ctx context.Context, webhookURL string, body []byte) AttemptResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		return fatal(fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return retryAfterBackoff(fmt.Errorf("perform request: %w", err))
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxLoggedBody))
	if resp.StatusCode != http.StatusOK {
		return retryNow(fmt.Errorf("slack webhook returned status %d: %s", resp.StatusCode, respBody))
	}

	w.logger.Debug(ctx, "slack accepted notification", "response", string(respBody))
	return delivered()
}
