package bookrun

import "github.com/vovakirdan/bookrun/internal/core"

// Story is the dialogue between the two friends. Lines alternate speakers,
// Miriam first. The last line is only shown once every book is delivered.
var Story = [][]string{
	{"Hi Mike! Are you ready for", "tomorrow's start to the", "nanodegree program?"},
	{"I sure am, Miriam!", "I have everything right here..."},
	{"Awesome..."},
	{"Uh oh."},
	{"What's wrong?"},
	{"I can't find the course", "materials!"},
	{"We definitely need those."},
	{"I think they might have fallen", "out of my pocket on my", "way here."},
	{"Let's look around."},
	{"All the course materials", "were found.", "Thanks for your help!"},
}

const (
	// LastIntroLine is the final line of the intro; advancing past it starts play.
	LastIntroLine = 8
	// EndingLine is shown on the game over screen.
	EndingLine = 9
)

// ActorKind is a figure drawn on the dialogue screens.
type ActorKind int

const (
	ActorMiriam ActorKind = iota
	ActorMike
	ActorGong
)

// Actor is a figure standing on the board during dialogue.
type Actor struct {
	Kind    ActorKind
	Pos     core.Vec
	Talking bool
}

// Name returns the label drawn under the actor.
func (a Actor) Name() string {
	switch a.Kind {
	case ActorMiriam:
		return "Miriam"
	case ActorMike:
		return "Mike"
	default:
		return "gong"
	}
}

// Actors returns who stands on the board for the given session.
// Nobody does while playing.
func Actors(s Session) []Actor {
	if s.Mode == ModePlaying {
		return nil
	}
	actors := []Actor{
		{Kind: ActorMiriam, Pos: core.V(202, 238), Talking: s.Speaker == AvatarMiriam},
		{Kind: ActorMike, Pos: core.V(404, 238), Talking: s.Speaker == AvatarMike},
	}
	if s.Mode == ModeGameOver {
		actors = append(actors, Actor{Kind: ActorGong, Pos: core.V(303, 238)})
	}
	return actors
}

// Line returns the dialogue line for the given story index, or nil if the
// index is out of range.
func Line(index int) []string {
	if index < 0 || index >= len(Story) {
		return nil
	}
	return Story[index]
}
