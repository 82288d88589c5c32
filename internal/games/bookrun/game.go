package bookrun

import (
	"math"
	"math/rand"
	"slices"

	"github.com/vovakirdan/bookrun/internal/config"
	"github.com/vovakirdan/bookrun/internal/core"
)

// Game owns the whole simulation: session, entities and the slot set.
type Game struct {
	cfg  config.BookrunConfig
	diff *config.DifficultyManager
	rng  *rand.Rand
	tick uint64

	session Session
	player  Player
	item    Item
	enemies []Enemy
	slots   Slots

	// laneCursor picks which bug gets faster once every lane is busy.
	laneCursor int
}

// New creates a game with the given tuning. Call Reset before use.
func New(cfg config.BookrunConfig) *Game {
	return &Game{
		cfg:  cfg,
		diff: config.NewDifficultyManager(cfg),
	}
}

// Reset seeds the generator and returns to the first line of the intro.
// The board stays empty until the intro is finished.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.session = newSession()
	g.player = NewPlayer()
	g.item = Item{}
	g.enemies = nil
	g.slots = NewSlots()
	g.laneCursor = 0
}

// newBoard lays out a fresh game and switches to play: the initial bugs in
// the first lanes, walls only on the scoring row, Miriam on the start tile
// and the book somewhere on the stones.
func (g *Game) newBoard() {
	speeds := g.diff.SpawnSpeed(0)
	g.enemies = make([]Enemy, 0, LaneCount)
	for lane := 1; lane <= g.cfg.Enemies.InitialCount; lane++ {
		g.enemies = append(g.enemies, NewEnemy(lane, -float64(ColWidth*lane), speeds.Pick(g.rng)))
	}
	g.slots = NewSlots()
	g.player = NewPlayer()
	g.item.Reset(g.rng, g.player.Pos)
	g.laneCursor = 0
	g.session.beginPlay()
}

// HandleInput applies one intent. Intents that mean nothing in the current
// mode are ignored.
func (g *Game) HandleInput(in core.Intent) []Event {
	switch g.session.Mode {
	case ModeIntro:
		if in != core.IntentAdvanceDialogue {
			return nil
		}
		if !g.session.advanceDialogue() {
			return []Event{g.event(EventDialogue, core.Vec{})}
		}
		g.newBoard()
		return []Event{g.event(EventStart, g.player.Pos)}

	case ModePlaying:
		switch {
		case in.IsMove():
			// The scoring row resolves on the next tick; hold still until then.
			if g.session.Paused || g.player.AtScoringRow() {
				return nil
			}
			g.player.Move(in)
		case in == core.IntentTogglePause:
			if g.session.togglePause() {
				return []Event{g.event(EventPause, g.player.Pos)}
			}
			return []Event{g.event(EventResume, g.player.Pos)}
		case in == core.IntentRestart:
			g.newBoard()
			return []Event{g.event(EventRestart, g.player.Pos)}
		}

	case ModeGameOver:
		if in == core.IntentRestart {
			g.newBoard()
			return []Event{g.event(EventRestart, g.player.Pos)}
		}
	}
	return nil
}

// Update advances the simulation by dt seconds. dt is clamped to
// [0, max_delta]. Outside of unpaused play nothing moves.
func (g *Game) Update(dt float64) []Event {
	g.tick++
	if g.session.Mode != ModePlaying || g.session.Paused {
		return nil
	}
	dt = g.clampDelta(dt)

	for i := range g.enemies {
		g.enemies[i].Advance(dt, g.cfg.Enemies.WrapX, g.cfg.Enemies.ReentryX)
	}

	var events []Event

	// At most one reset per tick, however many bugs overlap the player.
	if idx, hit := DetectEnemyCollision(g.player, g.enemies, g.cfg.Collision); hit {
		at := g.player.Pos
		if g.player.Carrying {
			g.item.Drop(at)
			events = append(events, g.event(EventDrop, at))
		}
		g.player.Reset()
		g.player.Avatar = g.player.Avatar.Other()
		ev := g.event(EventCollision, at)
		ev.Enemy = idx
		events = append(events, ev)
	}

	if DetectItemPickup(g.player, g.item) {
		g.item.Pickup()
		g.player.Carrying = true
		events = append(events, g.event(EventPickup, g.player.Pos))
	}

	return g.evaluateScoringRow(events)
}

// Step applies every queued intent in arrival order, then advances one tick.
func (g *Game) Step(q *core.IntentQueue, dt float64) []Event {
	var events []Event
	for _, in := range q.Drain() {
		events = append(events, g.HandleInput(in)...)
	}
	return append(events, g.Update(dt)...)
}

func (g *Game) clampDelta(dt float64) float64 {
	if math.IsNaN(dt) {
		return 0
	}
	return core.ClampF(dt, 0, g.cfg.Timing.MaxDelta)
}

func (g *Game) event(kind EventKind, pos core.Vec) Event {
	return Event{Kind: kind, Pos: pos, Enemy: -1, Level: g.session.Level}
}

// Session returns the session state.
func (g *Game) Session() Session {
	return g.session
}

// Player returns the player.
func (g *Game) Player() Player {
	return g.player
}

// Item returns the book.
func (g *Game) Item() Item {
	return g.item
}

// Enemies returns a copy of the bugs on the board.
func (g *Game) Enemies() []Enemy {
	return slices.Clone(g.enemies)
}

// Slots returns the filled scoring slots.
func (g *Game) Slots() []Slot {
	return g.slots.All()
}

// Tick returns the number of updates since Reset.
func (g *Game) Tick() uint64 {
	return g.tick
}

