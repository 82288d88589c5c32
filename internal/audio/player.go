// Package audio plays the game's sound cues. Cues are synthesized at play
// time, so no sample files ship with the binary.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Cue is a sound the game asks for.
type Cue int

const (
	CueBook    Cue = iota // Book picked up
	CueCollide            // Bug hit the player
	CueGong               // Every book delivered
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueBook:
		return "book"
	case CueCollide:
		return "collide"
	case CueGong:
		return "gong"
	default:
		return "unknown"
	}
}

// Player plays cues without blocking the caller.
type Player interface {
	Play(c Cue)
	Close()
}

// Silent is a Player that drops every cue.
type Silent struct{}

func (Silent) Play(Cue) {}
func (Silent) Close()   {}

// Config controls the speaker.
type Config struct {
	SampleRate int
	Volume     float64 // 0..1
}

// DefaultConfig returns the speaker defaults.
func DefaultConfig() Config {
	return Config{SampleRate: 44100, Volume: 0.6}
}

// Speaker plays cues on the system audio device through one shared mixer.
type Speaker struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	volume float64
	mixer  *beep.Mixer
	open   bool
}

// Open initializes the audio device. On failure it returns a Silent player
// along with the error, so callers can log and carry on.
func Open(cfg Config) (Player, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return Silent{}, fmt.Errorf("audio: cannot init speaker: %w", err)
	}

	s := &Speaker{
		rate:   rate,
		volume: cfg.Volume,
		mixer:  &beep.Mixer{},
		open:   true,
	}
	speaker.Play(s.mixer)
	return s, nil
}

// Play starts the cue. Cues overlap freely.
func (s *Speaker) Play(c Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return
	}
	st := NewCueStreamer(c, s.rate, s.volume)
	if st == nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close stops playback. Later cues are dropped.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	s.open = false
}
