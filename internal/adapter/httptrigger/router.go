package httptrigger

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"alarm-notifier/internal/domain/model"
	"alarm-notifier/internal/domain/ports"
)

const maxEventBytes = 1 << 20

// EventHandler processes one inbound alarm event.
type EventHandler interface {
	Handle(ctx context.Context, event model.Event) error
}

// NewRouter exposes the event handler over HTTP:
//
//	POST /events   run the notification workflow for the JSON body
//	GET  /healthz  liveness probe
func NewRouter(handler EventHandler, logger ports.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Post("/events", eventsHandler(handler, logger))

	return r
}

func eventsHandler(handler EventHandler, logger ports.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		body, err := io.ReadAll(io.LimitReader(r.Body, maxEventBytes))
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		event, err := model.DecodeEvent(body)
		if err != nil {
			logger.Warn(ctx, "rejected event", "request_id", middleware.GetReqID(ctx), "error", err)
			writeError(w, http.StatusBadRequest, err)
			return
		}

		if err := handler.Handle(ctx, event); err != nil {
			writeError(w, statusFor(err), err)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]string{"status": "delivered"})
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidEvent):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrDeliveryExhausted):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
