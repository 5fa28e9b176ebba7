package termio

import (
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// capsCache holds the process-wide capability snapshot. Readers load the
// pointer without locking; detection replaces it atomically, so a reader
// never observes a partially-written snapshot.
var (
	capsCache atomic.Pointer[Capabilities]
	capsGroup singleflight.Group
)

// Caps returns the cached capability snapshot, detecting it on first use.
// Concurrent first callers share a single detection pass.
func Caps() Capabilities {
	if c := capsCache.Load(); c != nil {
		return *c
	}
	v, _, _ := capsGroup.Do("detect", func() (any, error) {
		c := DetectCapabilities()
		capsCache.Store(&c)
		return c, nil
	})
	return v.(Capabilities)
}

// InvalidateCaps drops the cached snapshot so the next Caps call re-detects.
// Idempotent: safe to call when nothing is cached.
func InvalidateCaps() {
	capsCache.Store(nil)
}
