package bookrun

import (
	"errors"
	"fmt"
)

// Invariant violations. These indicate engine bugs, never bad input.
var (
	ErrPlayerOutOfBounds = errors.New("bookrun: player out of bounds")
	ErrDuplicateSlot     = errors.New("bookrun: duplicate scoring slot")
	ErrTooManyEnemies    = errors.New("bookrun: more bugs than lanes")
	ErrEnemyOffLane      = errors.New("bookrun: bug off its lane")
	ErrItemState         = errors.New("bookrun: book in conflicting state")
)

// Validate checks the structural invariants of the board and returns the
// first violation found, wrapped with detail.
func (g *Game) Validate() error {
	p := g.player.Pos
	inFlight := p.Y == ScoringY && OnBoard(p.Add(vecDown))
	if !OnBoard(p) && !inFlight {
		return fmt.Errorf("%w: at (%v, %v)", ErrPlayerOutOfBounds, p.X, p.Y)
	}

	if g.slots.Count() > SlotCapacity {
		return fmt.Errorf("%w: %d slots filled", ErrDuplicateSlot, g.slots.Count())
	}
	for x, s := range g.slots.byX {
		if s.X != x || x%ColWidth != 0 {
			return fmt.Errorf("%w: column %d holds slot %d", ErrDuplicateSlot, x, s.X)
		}
	}

	if len(g.enemies) > LaneCount {
		return fmt.Errorf("%w: %d bugs", ErrTooManyEnemies, len(g.enemies))
	}
	for i, e := range g.enemies {
		if !IsLaneY(e.Pos.Y) || e.Pos.Y != LaneY(e.Lane) {
			return fmt.Errorf("%w: bug %d at y=%v on lane %d", ErrEnemyOffLane, i, e.Pos.Y, e.Lane)
		}
	}

	held := g.player.Carrying
	switch {
	case g.item.Visible && held:
		return fmt.Errorf("%w: visible while carried", ErrItemState)
	case g.session.Mode == ModePlaying && !g.item.Visible && !held:
		return fmt.Errorf("%w: missing during play", ErrItemState)
	case g.session.Mode != ModePlaying && (g.item.Visible || held):
		return fmt.Errorf("%w: in play while %s", ErrItemState, g.session.Mode)
	}
	return nil
}
