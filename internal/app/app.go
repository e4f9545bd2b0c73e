package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/lambda"

	"alarm-notifier/internal/domain/model"
	"alarm-notifier/internal/domain/ports"
	"alarm-notifier/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

// Options controls how the App is exposed.
type Options struct {
	ListenAddr  string
	Lambda      bool
	ConfigAttrs []any
}

// App runs the alarm notifier either inside the Lambda runtime or as an HTTP server.
type App struct {
	notify *usecase.NotifyAlarm
	router http.Handler
	logger ports.Logger
	opts   Options
}

// New constructs an App instance.
func New(notify *usecase.NotifyAlarm, router http.Handler, logger ports.Logger, opts Options) *App {
	return &App{
		notify: notify,
		router: router,
		logger: logger,
		opts:   opts,
	}
}

// Run blocks until ctx is cancelled (HTTP mode) or the Lambda runtime exits.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info(ctx, "notifier configured", a.opts.ConfigAttrs...)

	if a.opts.Lambda {
		a.logger.Info(ctx, "starting lambda runtime")
		lambda.StartWithOptions(a.Invoke, lambda.WithContext(ctx))
		return nil
	}

	return a.serve(ctx)
}

// Invoke handles a single Lambda invocation.
func (a *App) Invoke(ctx context.Context, payload json.RawMessage) error {
	event, err := model.DecodeEvent(payload)
	if err != nil {
		a.logger.Error(ctx, "error processing alarm event", "error", err)
		return err
	}
	return a.notify.Handle(ctx, event)
}

func (a *App) serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.opts.ListenAddr,
		Handler:           a.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info(ctx, "http trigger listening", "address", a.opts.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error(shutdownCtx, "server forced shutdown", "error", err)
		return err
	}
	a.logger.Info(shutdownCtx, "http trigger stopped")
	return nil
}
