// Package termio is the terminal control protocol engine underneath a
// terminal UI framework: it decodes raw input bytes into structured events
// (keys, mouse, paste, focus, resize), encodes styling and screen commands
// into exact escape sequences, and adapts both directions to the
// capabilities a terminal actually demonstrates rather than ones guessed
// from the environment.
//
// The building blocks are independent and composable:
//
//   - DetectCapabilities / Caps produce an immutable capability snapshot
//     from environment signals and an optional terminfo query.
//   - SelectBackend attempts raw mode and branches on the real outcome,
//     degrading to cooperative TTY mode when the terminal is unavailable
//     or already owned.
//   - Decoder is a resumable parser turning byte chunks into events,
//     carrying partial sequences across reads.
//   - The encoder functions (CursorTo, SGR, SetMode, ...) are pure and
//     byte-exact, parameterized by the negotiated color mode.
//   - Session tracks emitted mode toggles and reverses them in strict
//     LIFO order on Close.
package termio
