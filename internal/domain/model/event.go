package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Event is an inbound alarm payload. Its structure is not known in advance.
type Event map[string]any

// DecodeEvent parses a JSON object into an Event. Numbers are kept as
// json.Number so they render exactly as they were sent.
func DecodeEvent(data []byte) (Event, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var event Event
	if err := dec.Decode(&event); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}
	if event == nil {
		return nil, fmt.Errorf("%w: payload is not a JSON object", ErrInvalidEvent)
	}
	return event, nil
}

// DeadLetter is an event whose notification could not be delivered.
type DeadLetter struct {
	Event    Event     `json:"event"`
	Reason   string    `json:"reason"`
	FailedAt time.Time `json:"failed_at"`
}
