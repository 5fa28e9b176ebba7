package termio

import (
	"sync"
	"time"
)

// MockReader is a scripted EventReader for tests and headless consumers.
// Events are served in the order they were fed; PollEvent never blocks on
// an empty queue regardless of the timeout.
type MockReader struct {
	mu      sync.Mutex
	queue   []Event
	decoder *Decoder
	closed  bool
}

// NewMockReader returns a MockReader preloaded with the given events.
func NewMockReader(events ...Event) *MockReader {
	return &MockReader{queue: events, decoder: NewDecoder()}
}

// Feed appends events to the queue.
func (m *MockReader) Feed(events ...Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, events...)
}

// FeedBytes decodes raw input bytes and appends the resulting events,
// carrying partial sequences across calls exactly like a real reader.
func (m *MockReader) FeedBytes(p []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, m.decoder.Decode(p)...)
}

// PollEvent returns the next queued event, or (nil, false) when the queue
// is empty or the reader is closed. The timeout is ignored.
func (m *MockReader) PollEvent(timeout time.Duration) (Event, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed || len(m.queue) == 0 {
		return nil, false
	}
	ev := m.queue[0]
	m.queue = m.queue[1:]
	return ev, true
}

// Close drops any remaining events.
func (m *MockReader) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.queue = nil
	return nil
}
