package termio

import (
	"runtime"
	"testing"
)

func TestPlatform(t *testing.T) {
	p := Platform()

	if p.OS != runtime.GOOS {
		t.Errorf("OS = %q, want %q", p.OS, runtime.GOOS)
	}

	for i, sig := range p.SupportedSignals() {
		if sig == nil {
			t.Errorf("SupportedSignals()[%d] is nil", i)
		}
	}

	if p.Signals && p.ResizeSignal == nil {
		t.Error("platform reports signal support but no resize signal")
	}
}
