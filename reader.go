package termio

import (
	"os"
	"time"
)

// EventReader reads decoded events from the terminal.
// It is designed for polling-based event loops.
type EventReader interface {
	// PollEvent reads the next event with a timeout.
	// Returns (event, true) if an event was read, or (nil, false) on timeout.
	// A timeout of 0 performs a non-blocking check.
	// A negative timeout blocks indefinitely.
	PollEvent(timeout time.Duration) (Event, bool)

	// Close releases resources. Must be called when done.
	Close() error
}

// NewEventReader creates an EventReader for the given terminal input.
// The terminal should already be in raw mode (see SelectBackend).
func NewEventReader(in *os.File) (EventReader, error) {
	return newPlatformReader(in)
}
