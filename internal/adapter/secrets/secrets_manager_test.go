package secrets

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"

	"alarm-notifier/internal/adapter/logging"
	"alarm-notifier/internal/domain/model"
)

type fakeSecretsManager struct {
	secret   *string
	err      error
	lastID   string
	requests int
}

func (f *fakeSecretsManager) GetSecretValue(_ context.Context, in *secretsmanager.GetSecretValueInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	f.requests++
	f.lastID = aws.ToString(in.SecretId)
	if f.err != nil {
		return nil, f.err
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: f.secret}, nil
}

func TestWebhookURL(t *testing.T) {
	client := &fakeSecretsManager{secret: aws.String(`{"webhook_url":"https://hooks.slack.com/services/T/B/X"}`)}
	provider := NewSecretsManager(client, logging.New(nil))

	url, err := provider.WebhookURL(context.Background(), "slack/alarms")
	if err != nil {
		t.Fatalf("WebhookURL: %v", err)
	}
	if url != "https://hooks.slack.com/services/T/B/X" {
		t.Errorf("url: got %q", url)
	}
	if client.lastID != "slack/alarms" {
		t.Errorf("secret id: got %q", client.lastID)
	}
}

func TestWebhookURL_Errors(t *testing.T) {
	tests := []struct {
		name     string
		secretID string
		client   *fakeSecretsManager
		want     error
	}{
		{name: "empty id", secretID: "", client: &fakeSecretsManager{}, want: model.ErrConfiguration},
		{name: "fetch failure", secretID: "s", client: &fakeSecretsManager{err: errors.New("AccessDenied")}, want: model.ErrSecret},
		{name: "no string", secretID: "s", client: &fakeSecretsManager{}, want: model.ErrSecret},
		{name: "not json", secretID: "s", client: &fakeSecretsManager{secret: aws.String("plain")}, want: model.ErrSecret},
		{name: "missing field", secretID: "s", client: &fakeSecretsManager{secret: aws.String(`{"url":"x"}`)}, want: model.ErrSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSecretsManager(tt.client, logging.New(nil)).WebhookURL(context.Background(), tt.secretID)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestWebhookURL_EmptyIDSkipsLookup(t *testing.T) {
	client := &fakeSecretsManager{}
	_, _ = NewSecretsManager(client, logging.New(nil)).WebhookURL(context.Background(), "")
	if client.requests != 0 {
		t.Errorf("expected no lookup, got %d", client.requests)
	}
}
