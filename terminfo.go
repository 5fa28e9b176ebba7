package termio

import (
	"context"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/grindlemire/go-termio/pkg/debug"
)

// terminfoQuery asks the terminal-info database how many colors a terminal
// type supports. ok is false when no information is available.
type terminfoQuery func(term string) (colors int, ok bool)

// terminfoTimeout bounds the subprocess query so capability detection can
// never hang on a wedged tput.
const terminfoTimeout = 500 * time.Millisecond

// tputCommand is the binary used to query the terminfo database.
// Overridable in tests.
var tputCommand = "tput"

// defaultTerminfoQuery shells out to tput. Every failure mode — missing
// binary, timeout, non-zero exit, unparsable output — is swallowed and
// reported as "no information".
func defaultTerminfoQuery(term string) (int, bool) {
	if !Platform().Terminfo {
		return 0, false
	}
	return queryTerminfoColors(term, terminfoTimeout)
}

// queryTerminfoColors runs `tput -T <term> colors` with the given timeout.
func queryTerminfoColors(term string, timeout time.Duration) (int, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, tputCommand, "-T", term, "colors").Output()
	if err != nil {
		debug.Log("terminfo: query for %q failed: %v", term, err)
		return 0, false
	}

	colors, err := strconv.Atoi(strings.TrimSpace(string(out)))
	if err != nil {
		debug.Log("terminfo: unparsable answer for %q: %q", term, out)
		return 0, false
	}
	if colors < 0 {
		// tput reports -1 for terminals without color support.
		return 0, false
	}
	return colors, true
}
