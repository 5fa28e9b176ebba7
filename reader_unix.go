//go:build unix

package termio

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// stdinReader implements EventReader for a real terminal.
type stdinReader struct {
	fd      int            // stdin file descriptor
	buf     []byte         // read buffer
	decoder *Decoder       // carries partial sequences between polls
	pending []Event        // decoded events waiting to be returned
	sigCh   chan os.Signal // resize signal delivery
	closed  bool
}

func newPlatformReader(in *os.File) (EventReader, error) {
	r := &stdinReader{
		fd:      int(in.Fd()),
		buf:     make([]byte, 256),
		decoder: NewDecoder(),
		sigCh:   make(chan os.Signal, 1),
	}

	if sig := Platform().ResizeSignal; sig != nil {
		signal.Notify(r.sigCh, sig)
	}
	return r, nil
}

// PollEvent reads the next event with a timeout.
func (r *stdinReader) PollEvent(timeout time.Duration) (Event, bool) {
	if r.closed {
		return nil, false
	}
	if ev, ok := r.popPending(); ok {
		return ev, true
	}

	// Resize signals take priority over buffered input.
	select {
	case <-r.sigCh:
		w, h := terminalSize(r.fd)
		return ResizeEvent{Width: w, Height: h}, true
	default:
	}

	ready, err := selectWithTimeout(r.fd, timeout)
	if err != nil || !ready {
		return nil, false
	}

	n, err := syscall.Read(r.fd, r.buf)
	if err != nil || n == 0 {
		return nil, false
	}

	r.pending = r.decoder.Decode(r.buf[:n])
	return r.popPending()
}

func (r *stdinReader) popPending() (Event, bool) {
	if len(r.pending) == 0 {
		return nil, false
	}
	ev := r.pending[0]
	r.pending = r.pending[1:]
	return ev, true
}

// Close releases resources. The signal channel is left open: closing it
// would make a later poll read the zero value and fabricate a resize.
func (r *stdinReader) Close() error {
	signal.Stop(r.sigCh)
	r.closed = true
	return nil
}

// terminalSize returns the terminal dimensions, defaulting to 80x24 when
// the ioctl fails.
func terminalSize(fd int) (width, height int) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 80, 24
	}
	return int(ws.Col), int(ws.Row)
}

// selectWithTimeout performs a select() call on the given fd with timeout.
// Returns (true, nil) if the fd is ready for reading.
// Returns (false, nil) on timeout.
// Returns (false, err) on error.
func selectWithTimeout(fd int, timeout time.Duration) (ready bool, err error) {
	var readFds unix.FdSet
	readFds.Zero()
	readFds.Set(fd)

	var tv *unix.Timeval
	if timeout >= 0 {
		tvVal := unix.NsecToTimeval(timeout.Nanoseconds())
		tv = &tvVal
	}
	// If timeout < 0, tv is nil which means block indefinitely.

	n, err := unix.Select(fd+1, &readFds, nil, nil, tv)
	if err != nil {
		// EINTR is expected when signals arrive.
		if err == unix.EINTR {
			return false, nil
		}
		return false, err
	}
	return n > 0, nil
}
