package model

import "errors"

var (
	// ErrConfiguration signals missing or invalid runtime configuration.
	ErrConfiguration = errors.New("configuration error")
	// ErrSecret signals that the webhook secret could not be fetched or parsed.
	ErrSecret = errors.New("secret error")
	// ErrDeliveryExhausted signals that every delivery attempt failed.
	ErrDeliveryExhausted = errors.New("delivery exhausted")
	// ErrInvalidEvent signals an inbound payload that is not a JSON object.
	ErrInvalidEvent = errors.New("invalid event")
)
