// Package input turns raw key events into game intents, one snapshot per frame
package input

// Key identifies a physical key or window signal the game reacts to
type Key uint8

const (
	KeyNone Key = iota
	KeyEscape
	KeySpace
	KeyEnter
	KeyCtrlC
	// KeyClose is the window/terminal going away
	KeyClose
)

// Event is a single key-down delivered by a backend
type Event struct {
	Key Key
}

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit             // Escape, Ctrl+C, window close
	IntentToggleFullscreen // Space
	IntentResetBall        // Enter
)

// Actions is the set of intents raised by one frame's event batch
type Actions struct {
	Quit             bool
	ToggleFullscreen bool
	ResetBall        bool
}

// Any reports whether at least one intent fired
func (a Actions) Any() bool {
	return a.Quit || a.ToggleFullscreen || a.ResetBall
}
