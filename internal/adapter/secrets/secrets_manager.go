package secrets

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"

	"alarm-notifier/internal/domain/model"
	"alarm-notifier/internal/domain/ports"
)

// SecretsManagerAPI is the subset of the Secrets Manager client used here.
type SecretsManagerAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManager reads webhook URLs from AWS Secrets Manager. The secret
// string must be a JSON object with a "webhook_url" field.
type SecretsManager struct {
	client SecretsManagerAPI
	logger ports.Logger
}

var _ ports.SecretProvider = (*SecretsManager)(nil)

// NewSecretsManager creates a SecretsManager provider.
func NewSecretsManager(client SecretsManagerAPI, logger ports.Logger) *SecretsManager {
	return &SecretsManager{client: client, logger: logger}
}

type webhookSecret struct {
	WebhookURL string `json:"webhook_url"`
}

// WebhookURL fetches and parses the secret named secretID.
func (s *SecretsManager) WebhookURL(ctx context.Context, secretID string) (string, error) {
	if secretID == "" {
		return "", fmt.Errorf("%w: secret identifier is empty", model.ErrConfiguration)
	}

	out, err := s.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretID),
	})
	if err != nil {
		return "", fmt.Errorf("%w: get secret %q: %w", model.ErrSecret, secretID, err)
	}

	raw := aws.ToString(out.SecretString)
	if raw == "" {
		return "", fmt.Errorf("%w: secret %q has no string value", model.ErrSecret, secretID)
	}

	var secret webhookSecret
	if err := json.Unmarshal([]byte(raw), &secret); err != nil {
		return "", fmt.Errorf("%w: decode secret %q: %v", model.ErrSecret, secretID, err)
	}
	if secret.WebhookURL == "" {
		return "", fmt.Errorf("%w: secret %q has no webhook_url", model.ErrSecret, secretID)
	}

	s.logger.Debug(ctx, "webhook secret resolved", "secret_id", secretID)
	return secret.WebhookURL, nil
}
