package bookrun

// Mode is the coarse state of a session.
type Mode int

const (
	ModeIntro Mode = iota
	ModePlaying
	ModeGameOver
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeIntro:
		return "intro"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Session holds the mode, progression and dialogue cursor.
// It is only changed through the transitions below and the scoring machine.
type Session struct {
	Mode       Mode
	Level      int // Successful deliveries this game
	StoryIndex int
	Paused     bool
	Speaker    Avatar // Who is talking on the dialogue screens
}

// newSession returns a session at the start of the intro.
func newSession() Session {
	return Session{Mode: ModeIntro, Speaker: AvatarMiriam}
}

// advanceDialogue moves the intro forward one line. Returns true when the
// intro is over and play should begin.
func (s *Session) advanceDialogue() bool {
	if s.StoryIndex < LastIntroLine {
		s.StoryIndex++
		s.Speaker = s.Speaker.Other()
		return false
	}
	s.StoryIndex = EndingLine
	return true
}

// beginPlay switches to a fresh game.
func (s *Session) beginPlay() {
	s.Mode = ModePlaying
	s.Level = 0
	s.Paused = false
}

// end switches to the game over screen with the ending line.
func (s *Session) end() {
	s.Mode = ModeGameOver
	s.Paused = false
	s.StoryIndex = EndingLine
	s.Speaker = AvatarMiriam
}

// togglePause flips the pause flag and returns the new value.
func (s *Session) togglePause() bool {
	s.Paused = !s.Paused
	return s.Paused
}
