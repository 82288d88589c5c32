package bookrun

import "slices"

// Slot is a position on the scoring row. Walls are pre-filled sentinels.
type Slot struct {
	X    int
	Wall bool
}

// Slots is the set of filled scoring positions, keyed by column x.
type Slots struct {
	byX map[int]Slot
}

// NewSlots returns the set for a fresh board: both walls and nothing else.
func NewSlots() Slots {
	return Slots{byX: map[int]Slot{
		LeftX:  {X: LeftX, Wall: true},
		RightX: {X: RightX, Wall: true},
	}}
}

// Occupied reports whether column x is already filled.
func (s Slots) Occupied(x int) bool {
	_, ok := s.byX[x]
	return ok
}

// Fill records a delivery at column x. Returns false if x was taken.
func (s *Slots) Fill(x int) bool {
	if s.Occupied(x) {
		return false
	}
	if s.byX == nil {
		s.byX = make(map[int]Slot)
	}
	s.byX[x] = Slot{X: x}
	return true
}

// Count returns the number of filled slots, walls included.
func (s Slots) Count() int {
	return len(s.byX)
}

// Full reports whether every slot is filled.
func (s Slots) Full() bool {
	return s.Count() >= SlotCapacity
}

// Columns returns the filled columns in ascending order.
func (s Slots) Columns() []int {
	cols := make([]int, 0, len(s.byX))
	for x := range s.byX {
		cols = append(cols, x)
	}
	slices.Sort(cols)
	return cols
}

// All returns the filled slots ordered by column.
func (s Slots) All() []Slot {
	out := make([]Slot, 0, len(s.byX))
	for _, x := range s.Columns() {
		out = append(out, s.byX[x])
	}
	return out
}

// RowState is the scoring machine's view of the player.
type RowState int

const (
	Roaming RowState = iota
	AtScoringRow
)

// rowState derives the scoring machine state from the player position.
func (g *Game) rowState() RowState {
	if g.player.AtScoringRow() {
		return AtScoringRow
	}
	return Roaming
}

// evaluateScoringRow resolves a player standing on the scoring row: bounce
// back, deliver, or end the game.
func (g *Game) evaluateScoringRow(events []Event) []Event {
	if g.rowState() != AtScoringRow {
		return events
	}

	x := int(g.player.Pos.X)
	if g.slots.Occupied(x) || !g.player.Carrying {
		g.player.Pos.Y += RowHeight
		return append(events, g.event(EventBounce, g.player.Pos))
	}

	g.slots.Fill(x)
	g.session.Level++
	events = append(events, g.event(EventDelivery, g.player.Pos))
	if g.slots.Full() {
		return g.endGame(events)
	}

	g.escalate()
	g.player.Reset()
	g.item.Reset(g.rng, g.player.Pos)
	return events
}

// escalate makes the board harder after a delivery: one more bug (or a
// faster one once every lane is busy), then every bug speeds up and
// restarts off the left edge.
func (g *Game) escalate() {
	if len(g.enemies) < LaneCount {
		lane := len(g.enemies) + 1
		speed := g.diff.SpawnSpeed(g.session.Level).Pick(g.rng)
		g.enemies = append(g.enemies, NewEnemy(lane, g.cfg.Enemies.ReentryX, speed))
	} else {
		i := g.laneCursor % len(g.enemies)
		g.laneCursor++
		g.enemies[i].Bump(g.diff.Increment(g.rng))
	}

	inc := g.diff.Increment(g.rng)
	for i := range g.enemies {
		g.enemies[i].Bump(inc)
		g.enemies[i].Reset(g.rng, g.cfg.Enemies.ResetOffsetMax)
	}
}

// endGame clears the board for the game over screen.
func (g *Game) endGame(events []Event) []Event {
	g.enemies = nil
	g.player.Reset()
	g.item.Hide()
	g.session.end()
	return append(events, g.event(EventGameOver, g.player.Pos))
}
