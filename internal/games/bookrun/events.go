package bookrun

import "github.com/vovakirdan/bookrun/internal/core"

// EventKind identifies something that happened during a tick or an input.
type EventKind int

const (
	EventPickup    EventKind = iota // Player picked up the book
	EventDrop                       // Player dropped the book after a bug hit
	EventCollision                  // Bug hit the player
	EventBounce                     // Scoring row refused the player
	EventDelivery                   // Book placed in a slot
	EventGameOver                   // Last slot filled
	EventRestart                    // Board re-initialized by the player
	EventStart                      // Intro finished, play begins
	EventPause
	EventResume
	EventDialogue // Intro advanced to the next line
)

// String returns the event name used in logs.
func (k EventKind) String() string {
	switch k {
	case EventPickup:
		return "pickup"
	case EventDrop:
		return "drop"
	case EventCollision:
		return "collision"
	case EventBounce:
		return "bounce"
	case EventDelivery:
		return "delivery"
	case EventGameOver:
		return "game_over"
	case EventRestart:
		return "restart"
	case EventStart:
		return "start"
	case EventPause:
		return "pause"
	case EventResume:
		return "resume"
	case EventDialogue:
		return "dialogue"
	default:
		return "unknown"
	}
}

// Event is a single state change reported to collaborators.
// Events are informational; feeding them back into the engine has no effect.
type Event struct {
	Kind  EventKind
	Pos   core.Vec // Where it happened, if relevant
	Enemy int      // Index of the bug for EventCollision, otherwise -1
	Level int      // Level after the event
}

