package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bookrun/internal/audio"
	"github.com/vovakirdan/bookrun/internal/core"
	"github.com/vovakirdan/bookrun/internal/games/bookrun"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model driving a game session.
type Model struct {
	game     *bookrun.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     *KeyMapper
	help     help.Model
	queue    core.IntentQueue
	lastTick time.Time
	mode     bookrun.Mode // Last mode seen, for logging transitions
	logger   *log.Logger
	sound    audio.Player
	palette  Palette
	quitting bool
}

// Options are the collaborators of a play session. Zero values are fine:
// logs are discarded, sound is off and the default palette is used.
type Options struct {
	Logger  *log.Logger
	Sound   audio.Player
	Palette Palette
}

// NewModel creates a new Bubble Tea model for the given game.
// The game is reset here.
func NewModel(game *bookrun.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sound := opts.Sound
	if sound == nil {
		sound = audio.Silent{}
	}
	palette := opts.Palette
	if palette == nil {
		palette = DefaultPalette()
	}

	game.Reset(cfg)
	logger.Info("session started", "seed", cfg.Seed, "fps", cfg.TickRate)

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		config:  cfg,
		keys:    NewKeyMapper(),
		help:    h,
		queue:   core.NewIntentQueue(),
		mode:    game.Session().Mode,
		logger:  logger,
		sound:   sound,
		palette: palette,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the intent for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToQueue(msg, &m.queue) {
		m.quitting = true
		m.logger.Info("quit", "tick", m.game.Tick())
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The board has a fixed size,
// so the game itself is untouched; the last line is kept for help.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step with the time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	events := m.game.Step(&m.queue, dt)
	m.report(events)

	if err := m.game.Validate(); err != nil {
		m.logger.Error("invariant violated", "err", err, "tick", m.game.Tick())
	}

	return m, tickCmd(m.config.TickRate)
}

// report logs events and mode changes and forwards sound cues.
func (m *Model) report(events []bookrun.Event) {
	for _, e := range events {
		m.logger.Debug("event", "kind", e.Kind, "level", e.Level, "x", e.Pos.X, "y", e.Pos.Y)
		if cue, ok := cueFor(e.Kind); ok {
			m.sound.Play(cue)
		}
	}

	if mode := m.game.Session().Mode; mode != m.mode {
		m.logger.Info("mode changed", "from", m.mode, "to", mode, "level", m.game.Session().Level)
		m.mode = mode
	}
}

// cueFor maps an event to its sound.
func cueFor(kind bookrun.EventKind) (audio.Cue, bool) {
	switch kind {
	case bookrun.EventPickup:
		return audio.CueBook, true
	case bookrun.EventCollision:
		return audio.CueCollide, true
	case bookrun.EventGameOver:
		return audio.CueGong, true
	}
	return 0, false
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".bookrun", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("bookrun_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen, m.palette)

	// Instructions appear once the intro is over
	if m.game.Session().Mode != bookrun.ModeIntro {
		out += "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
	}
	return out
}

// Run starts the Bubble Tea program for the game.
func Run(game *bookrun.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
