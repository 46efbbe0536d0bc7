package segment

// Plugin is the uniform contract every leaf recognizer implements.
// A roster of Plugins is driven in speculative parallel by the
// session engine from IDLE until one of them commits.
type Plugin interface {
	// State reports the plugin's current lifecycle position. Pure;
	// queried between characters, never as a side effect of it.
	State() State

	// ProcessChar advances the plugin by one code unit and returns
	// the keep decision: true if c contributes to the forming span,
	// false if it should be dropped (e.g. a stripped delimiter).
	// atStartOfLine is true for the code unit immediately following
	// '\n', and for the first code unit of the session.
	ProcessChar(c uint16, atStartOfLine bool) bool

	// InitPlugin performs one-time setup at session creation and
	// reports success.
	InitPlugin() bool

	// Reset returns the plugin to Idle with all scratch state cleared.
	Reset()
}
