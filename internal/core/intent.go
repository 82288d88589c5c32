package core

// Intent is a discrete player request, abstracted from physical key presses.
// The engine only ever sees intents; the platform decides which keys map to them.
type Intent int

const (
	IntentNone Intent = iota
	IntentMoveUp
	IntentMoveDown
	IntentMoveLeft
	IntentMoveRight
	IntentTogglePause
	IntentRestart
	IntentAdvanceDialogue
	IntentQuit
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentMoveUp:
		return "MoveUp"
	case IntentMoveDown:
		return "MoveDown"
	case IntentMoveLeft:
		return "MoveLeft"
	case IntentMoveRight:
		return "MoveRight"
	case IntentTogglePause:
		return "TogglePause"
	case IntentRestart:
		return "Restart"
	case IntentAdvanceDialogue:
		return "AdvanceDialogue"
	case IntentQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the intent moves the player.
func (i Intent) IsMove() bool {
	return i >= IntentMoveUp && i <= IntentMoveRight
}

// IntentQueue collects intents delivered between ticks.
// Unlike a set of flags, it keeps arrival order and repeats, so two quick
// presses of the same key move the player twice.
type IntentQueue struct {
	items []Intent
}

// NewIntentQueue creates an empty queue.
func NewIntentQueue() IntentQueue {
	return IntentQueue{}
}

// Push appends an intent. IntentNone is dropped.
func (q *IntentQueue) Push(i Intent) {
	if i == IntentNone {
		return
	}
	q.items = append(q.items, i)
}

// Len returns the number of queued intents.
func (q IntentQueue) Len() int {
	return len(q.items)
}

// Has returns true if the given intent is queued.
func (q IntentQueue) Has(i Intent) bool {
	for _, it := range q.items {
		if it == i {
			return true
		}
	}
	return false
}

// Drain returns the queued intents in arrival order and empties the queue.
func (q *IntentQueue) Drain() []Intent {
	out := q.items
	q.items = nil
	return out
}
