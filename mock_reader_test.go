package termio

import "testing"

func TestMockReader_ServesInOrder(t *testing.T) {
	var _ EventReader = (*MockReader)(nil)

	r := NewMockReader(
		KeyEvent{Key: KeyRune, Rune: 'a'},
		FocusEvent{Gained: true},
	)
	r.Feed(KeyEvent{Key: KeyEnter})

	expected := []Event{
		KeyEvent{Key: KeyRune, Rune: 'a'},
		FocusEvent{Gained: true},
		KeyEvent{Key: KeyEnter},
	}
	for i, want := range expected {
		ev, ok := r.PollEvent(0)
		if !ok {
			t.Fatalf("PollEvent %d returned no event", i)
		}
		if ev != want {
			t.Errorf("event %d = %+v, want %+v", i, ev, want)
		}
	}

	if ev, ok := r.PollEvent(0); ok {
		t.Errorf("drained reader returned %+v", ev)
	}
}

func TestMockReader_FeedBytesDecodes(t *testing.T) {
	r := NewMockReader()

	// A sequence split across feeds is carried like a real reader carries
	// partial reads.
	r.FeedBytes([]byte("a\x1b["))
	r.FeedBytes([]byte("A"))

	ev, ok := r.PollEvent(0)
	if !ok || ev != Event(KeyEvent{Key: KeyRune, Rune: 'a'}) {
		t.Fatalf("first event = %+v, want rune a", ev)
	}
	ev, ok = r.PollEvent(0)
	if !ok || ev != Event(KeyEvent{Key: KeyUp}) {
		t.Fatalf("second event = %+v, want up arrow", ev)
	}
}

func TestMockReader_Close(t *testing.T) {
	r := NewMockReader(KeyEvent{Key: KeyEnter})
	if err := r.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if ev, ok := r.PollEvent(0); ok {
		t.Errorf("closed reader returned %+v", ev)
	}
}
