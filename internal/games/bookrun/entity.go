package bookrun

import (
	"math/rand"

	"github.com/vovakirdan/bookrun/internal/core"
)

// Enemy is a bug patrolling one lane from left to right.
type Enemy struct {
	Pos   core.Vec
	Lane  int     // 1-based lane index, Pos.Y == LaneY(Lane)
	Speed float64 // pixels per second
}

// NewEnemy creates a bug on the given lane.
func NewEnemy(lane int, x, speed float64) Enemy {
	return Enemy{
		Pos:   core.V(x, LaneY(lane)),
		Lane:  lane,
		Speed: speed,
	}
}

// Advance moves the bug by dt seconds. A bug past wrapX re-enters at
// reentryX. Returns true if it wrapped.
func (e *Enemy) Advance(dt, wrapX, reentryX float64) bool {
	e.Pos.X += e.Speed * dt
	if e.Pos.X > wrapX {
		e.Pos.X = reentryX
		return true
	}
	return false
}

// Reset moves the bug a random distance of up to maxOffset off the left edge.
func (e *Enemy) Reset(rng *rand.Rand, maxOffset float64) {
	e.Pos.X = -rng.Float64() * maxOffset
}

// Bump raises the bug's speed. Negative deltas are ignored so that bugs
// never slow down.
func (e *Enemy) Bump(delta float64) {
	if delta > 0 {
		e.Speed += delta
	}
}

// Avatar identifies which of the two friends the player is controlling.
type Avatar int

const (
	AvatarMiriam Avatar = iota
	AvatarMike
)

// String returns the friend's name.
func (a Avatar) String() string {
	if a == AvatarMike {
		return "Mike"
	}
	return "Miriam"
}

// Other returns the friend who takes over after a bug hit.
func (a Avatar) Other() Avatar {
	if a == AvatarMike {
		return AvatarMiriam
	}
	return AvatarMike
}

// Player is the grid-snapped sprite controlled by the user.
type Player struct {
	Pos      core.Vec
	Carrying bool
	Avatar   Avatar
}

// NewPlayer creates Miriam at the start tile.
func NewPlayer() Player {
	return Player{Pos: StartTile, Avatar: AvatarMiriam}
}

// Reset returns the player to the start tile with empty hands.
// The avatar is left alone.
func (p *Player) Reset() {
	p.Pos = StartTile
	p.Carrying = false
}

// Move steps one tile in the direction of the intent. Moving up from the top
// row lands on the scoring row. Returns false if the move would leave the
// board or the intent is not a move.
func (p *Player) Move(in core.Intent) bool {
	switch in {
	case core.IntentMoveUp:
		if p.Pos.Y > 0 {
			p.Pos.Y -= RowHeight
			return true
		}
	case core.IntentMoveDown:
		if p.Pos.Y < BottomY {
			p.Pos.Y += RowHeight
			return true
		}
	case core.IntentMoveLeft:
		if p.Pos.X > LeftX {
			p.Pos.X -= ColWidth
			return true
		}
	case core.IntentMoveRight:
		if p.Pos.X < RightX {
			p.Pos.X += ColWidth
			return true
		}
	}
	return false
}

// AtScoringRow reports whether the player has stepped above the board.
func (p Player) AtScoringRow() bool {
	return p.Pos.Y < 0
}

// Item is the book. When held, Visible is false and the holder's Carrying
// flag is set; when delivered at game over, both are false.
type Item struct {
	Pos     core.Vec
	Visible bool
}

// Reset places the book on a random stone tile other than avoid.
func (it *Item) Reset(rng *rand.Rand, avoid core.Vec) {
	tiles := itemTiles()
	free := tiles[:0]
	for _, t := range tiles {
		if t != avoid {
			free = append(free, t)
		}
	}
	it.Pos = free[rng.Intn(len(free))]
	it.Visible = true
}

// Pickup takes the book off the board.
func (it *Item) Pickup() {
	it.Visible = false
}

// Drop leaves the book on the given tile.
func (it *Item) Drop(at core.Vec) {
	it.Pos = at
	it.Visible = true
}

// Hide takes the book out of play.
func (it *Item) Hide() {
	it.Visible = false
}
