package input

// Handler collapses a frame's key events into one pressed-key snapshot.
// A key pressed several times within the same batch acts once.
type Handler struct {
	table KeyTable
}

// NewHandler creates a handler over the given bindings; nil selects DefaultKeyTable
func NewHandler(table KeyTable) *Handler {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Handler{table: table}
}

// Collapse maps a batch of events to the intents they raise
func (h *Handler) Collapse(events []Event) Actions {
	var a Actions
	for _, ev := range events {
		switch h.table.Lookup(ev.Key) {
		case IntentQuit:
			a.Quit = true
		case IntentToggleFullscreen:
			a.ToggleFullscreen = true
		case IntentResetBall:
			a.ResetBall = true
		}
	}
	return a
}
