package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(0, total-att-rel),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly by vol. math.Log2(0) is -Inf, so zero volume
// is expressed as a silent stream.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Cue timings
const (
	bookNoteDuration = 90 * time.Millisecond
	bookAttack       = 5 * time.Millisecond
	bookRelease      = 60 * time.Millisecond

	collideDuration = 180 * time.Millisecond
	collideAttack   = 2 * time.Millisecond
	collideRelease  = 120 * time.Millisecond

	gongDuration = 1500 * time.Millisecond
	gongAttack   = 5 * time.Millisecond
	gongRelease  = 1400 * time.Millisecond
)

// createBookSound is a rising two-note chime for picking up the book.
func createBookSound(rate beep.SampleRate) beep.Streamer {
	n1 := NewEnvelope(NewOscillator(659.25, bookNoteDuration, WaveSquare, rate), bookNoteDuration, bookAttack, bookRelease, rate)
	n2 := NewEnvelope(NewOscillator(987.77, bookNoteDuration, WaveSquare, rate), bookNoteDuration, bookAttack, bookRelease, rate)
	return newVolume(beep.Seq(n1, n2), 0.5)
}

// createCollideSound is a low buzz for a bug hit.
func createCollideSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(110, collideDuration, WaveSaw, rate)
	return newVolume(NewEnvelope(osc, collideDuration, collideAttack, collideRelease, rate), 0.6)
}

// createGongSound layers inharmonic partials with a long decay.
func createGongSound(rate beep.SampleRate) beep.Streamer {
	partial := func(freq float64) beep.Streamer {
		osc := NewOscillator(freq, gongDuration, WaveSine, rate)
		return NewEnvelope(osc, gongDuration, gongAttack, gongRelease, rate)
	}
	return beep.Mix(
		newVolume(partial(110), 0.5),
		newVolume(partial(172.7), 0.3),
		newVolume(partial(261.6), 0.2),
	)
}

// NewCueStreamer returns a finite stream playing the cue, scaled by volume.
// Unknown cues return nil.
func NewCueStreamer(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueBook:
		s = createBookSound(rate)
	case CueCollide:
		s = createCollideSound(rate)
	case CueGong:
		s = createGongSound(rate)
	default:
		return nil
	}
	return newVolume(s, volume)
}
