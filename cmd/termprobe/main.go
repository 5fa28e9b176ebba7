// Command termprobe inspects what the terminal protocol engine sees:
// the detected capability snapshot, the backend selection outcome, and a
// live echo of decoded input events.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	termio "github.com/grindlemire/go-termio"
)

var rootCmd = &cobra.Command{
	Use:               "termprobe",
	Short:             "Probe terminal capabilities, backend selection, and input decoding",
	DisableAutoGenTag: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var capsCmd = &cobra.Command{
	Use:   "caps",
	Short: "Print the detected capability snapshot",
	Run:   runCaps,
}

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Attempt raw mode and report the backend decision",
	Run:   runSelect,
}

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Decode and echo input events until Ctrl+C",
	Run:   runEvents,
}

func init() {
	rootCmd.AddCommand(capsCmd)
	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(eventsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runCaps(cmd *cobra.Command, args []string) {
	caps := termio.DetectCapabilities()
	fmt.Printf("color mode:      %s (%d colors)\n", caps.ColorMode, caps.MaxColors)
	fmt.Printf("unicode:         %v\n", caps.Unicode)
	fmt.Printf("mouse:           %v\n", caps.Mouse)
	fmt.Printf("bracketed paste: %v\n", caps.BracketedPaste)
	fmt.Printf("focus events:    %v\n", caps.FocusEvents)
	fmt.Printf("alt screen:      %v\n", caps.AltScreen)
	fmt.Printf("terminal:        %v\n", caps.Terminal)
	fmt.Printf("TERM:            %q\n", caps.Term)
	fmt.Printf("TERM_PROGRAM:    %q\n", caps.TermProgram)

	p := termio.Platform()
	fmt.Printf("platform:        %s (signals=%v pty=%v terminfo=%v)\n", p.OS, p.Signals, p.PTY, p.Terminfo)
}

func runSelect(cmd *cobra.Command, args []string) {
	switch sel := termio.SelectBackend().(type) {
	case *termio.RawSelection:
		// Leave the terminal usable before printing.
		sel.Teardown()
		fmt.Printf("raw: exclusive raw mode available on fd %d\n", sel.Fd())
	case termio.TtySelection:
		fmt.Printf("tty: degraded mode (%s)\n", sel.Caps.Reason)
		fmt.Printf("tty: snapshot %s, terminal=%v\n", sel.Caps.ColorMode, sel.Caps.Terminal)
	}
}

func runEvents(cmd *cobra.Command, args []string) {
	sel := termio.SelectBackend()
	raw, ok := sel.(*termio.RawSelection)
	if !ok {
		fmt.Fprintln(os.Stderr, "events: raw mode unavailable; run from an interactive terminal")
		os.Exit(1)
	}
	defer raw.Teardown()

	session := termio.NewSession(os.Stdout, termio.Caps())
	session.EnableMode(termio.ModeMouseNormal)
	session.EnableMode(termio.ModeMouseSGR)
	session.EnableMode(termio.ModeBracketedPaste)
	session.EnableMode(termio.ModeFocusEvents)
	defer session.Close()

	reader, err := termio.NewEventReader(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "events: %v\n", err)
		return
	}
	defer reader.Close()

	fmt.Print("press keys, click, or paste; Ctrl+C exits\r\n")
	for {
		ev, ok := reader.PollEvent(100 * time.Millisecond)
		if !ok {
			continue
		}
		switch e := ev.(type) {
		case termio.KeyEvent:
			if e.Is(termio.KeyRune, termio.ModCtrl) && e.Rune == 'c' {
				return
			}
			fmt.Printf("key: %s rune=%q mod=%s\r\n", e.Key, e.Rune, e.Mod)
		case termio.MouseEvent:
			fmt.Printf("mouse: button=%d action=%d at (%d,%d) mod=%s\r\n", e.Button, e.Action, e.X, e.Y, e.Mod)
		case termio.PasteEvent:
			fmt.Printf("paste: %d bytes\r\n", len(e.Content))
		case termio.FocusEvent:
			fmt.Printf("focus: gained=%v\r\n", e.Gained)
		case termio.ResizeEvent:
			fmt.Printf("resize: %dx%d\r\n", e.Width, e.Height)
		}
	}
}
