//go:build wireinject

package di

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/google/wire"

	"alarm-notifier/internal/adapter/deadletter"
	"alarm-notifier/internal/adapter/httptrigger"
	"alarm-notifier/internal/adapter/logging"
	"alarm-notifier/internal/adapter/secrets"
	"alarm-notifier/internal/adapter/slack"
	"alarm-notifier/internal/app"
	"alarm-notifier/internal/config"
	"alarm-notifier/internal/domain/ports"
	"alarm-notifier/internal/usecase"
)

// InitializeApp wires the application components together.
func InitializeApp() (*app.App, error) {
	wire.Build(
		config.Load,
		provideSlogLogger,
		logging.New,
		wire.Bind(new(ports.Logger), new(*logging.SLogger)),
		provideAWSConfig,
		provideSecretProvider,
		provideDeadLetterQueue,
		provideNotifier,
		provideFormatter,
		provideNotifyConfig,
		usecase.NewNotifyAlarm,
		provideRouter,
		provideAppOptions,
		app.New,
	)
	return nil, nil
}

func provideSlogLogger(cfg *config.Config) *slog.Logger {
	return logging.NewJSON(os.Stdout, cfg.LogLevel)
}

func provideAWSConfig() (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(context.Background())
}

func provideSecretProvider(awsCfg aws.Config, logger ports.Logger) ports.SecretProvider {
	return secrets.NewSecretsManager(secretsmanager.NewFromConfig(awsCfg), logger)
}

func provideDeadLetterQueue(cfg *config.Config, awsCfg aws.Config, logger ports.Logger) ports.DeadLetterQueue {
	if cfg.DLQURL == "" {
		return nil
	}
	return deadletter.NewSQSQueue(sqs.NewFromConfig(awsCfg), cfg.DLQURL, logger)
}

func provideNotifier(cfg *config.Config, logger ports.Logger) ports.Notifier {
	return slack.NewWebhook(cfg.RequestTimeout, logger)
}

func provideFormatter(cfg *config.Config) *usecase.Formatter {
	return usecase.NewFormatter(usecase.FormatterConfig{
		Fields:        cfg.MessageFields,
		Title:         cfg.MessageTitle,
		StatusField:   cfg.StatusField,
		StatusMapping: cfg.StatusMapping,
		StatusColors:  cfg.StatusColors,
	})
}

func provideNotifyConfig(cfg *config.Config) usecase.NotifyAlarmConfig {
	return usecase.NotifyAlarmConfig{
		SecretName: cfg.SecretName,
	}
}

func provideRouter(notify *usecase.NotifyAlarm, logger ports.Logger) http.Handler {
	return httptrigger.NewRouter(notify, logger)
}

func provideAppOptions(cfg *config.Config) app.Options {
	return app.Options{
		ListenAddr:  cfg.ListenAddr,
		Lambda:      cfg.LambdaRuntime,
		ConfigAttrs: cfg.LogAttrs(),
	}
}
