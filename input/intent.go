package input

// Intent discriminates the semantic actions a key press can request
type Intent uint8

const (
	IntentNone Intent = iota // Unbound keys and non-key events, ignored

	// Cursor motion, clamped to the board
	IntentUp
	IntentDown
	IntentLeft
	IntentRight

	IntentConfirm // Place at cursor
	IntentQuit    // End the session immediately
	IntentHint    // Toggle legal-move markers
)

var intentNames = [...]string{
	IntentNone:    "none",
	IntentUp:      "up",
	IntentDown:    "down",
	IntentLeft:    "left",
	IntentRight:   "right",
	IntentConfirm: "confirm",
	IntentQuit:    "quit",
	IntentHint:    "hint",
}

func (i Intent) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return "unknown"
}

// Delta returns the cursor offset of a motion intent, zero for the rest
func (i Intent) Delta() (dx, dy int) {
	switch i {
	case IntentUp:
		return 0, -1
	case IntentDown:
		return 0, 1
	case IntentLeft:
		return -1, 0
	case IntentRight:
		return 1, 0
	}
	return 0, 0
}

// IsMotion reports whether i moves the cursor
func (i Intent) IsMotion() bool {
	return i >= IntentUp && i <= IntentRight
}
