// Package terminal provides the backends fastpane draws into and the input
// events the surrounding loop reacts to.
package terminal

import "github.com/yeeaiclub/fastpane"

// Screen is a drawable terminal that also produces input events.
type Screen interface {
	fastpane.Backend
	// Start acquires the terminal (raw mode, alternate screen, ...).
	Start() error
	// Stop releases everything Start acquired. It is safe to call twice.
	Stop() error
	Size() fastpane.Size
	// PollEvent blocks until the next event. It returns io.EOF once no more
	// events can arrive.
	PollEvent() (Event, error)
}

var (
	_ Screen = (*Process)(nil)
	_ Screen = (*TCell)(nil)
	_ Screen = (*Virtual)(nil)

	_ fastpane.Discarder = (*ANSI)(nil)
	_ fastpane.Discarder = (*Virtual)(nil)
)
