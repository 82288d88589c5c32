// Package tui provides the Bubble Tea integration for the game.
// It runs the terminal UI loop and maps keys to engine intents.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// frameInterval returns the time between ticks for the given rate.
// Non-positive rates fall back to 60 fps.
func frameInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd returns a Bubble Tea command that sends one tick after a frame.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(frameInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds elapsed between two ticks. The first tick
// has no predecessor and counts as one nominal frame. A clock that steps
// backwards yields zero; the engine clamps large values itself.
func frameDelta(prev, now time.Time, tickRate int) float64 {
	if prev.IsZero() {
		return frameInterval(tickRate).Seconds()
	}
	return max(now.Sub(prev).Seconds(), 0)
}
