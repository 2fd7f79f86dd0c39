package input

// KeyTable maps keys to intents
type KeyTable map[Key]IntentType

// DefaultKeyTable returns the fixed game bindings
func DefaultKeyTable() KeyTable {
	return KeyTable{
		KeyEscape: IntentQuit,
		KeyCtrlC:  IntentQuit,
		KeyClose:  IntentQuit,
		KeySpace:  IntentToggleFullscreen,
		KeyEnter:  IntentResetBall,
	}
}

// Lookup returns the intent bound to k, IntentNone if unbound
func (t KeyTable) Lookup(k Key) IntentType {
	return t[k]
}
