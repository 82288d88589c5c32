package bookrun

import (
	"github.com/vovakirdan/bookrun/internal/config"
	"github.com/vovakirdan/bookrun/internal/core"
)

// hits reports whether a single bug touches the player.
// Rows match within the tolerance; horizontally each sprite spans HalfWidth
// from its leading edge and the spans must overlap strictly.
func hits(p Player, e Enemy, tol config.CollisionConfig) bool {
	if core.AbsF(p.Pos.Y-e.Pos.Y) > tol.RowTolerance {
		return false
	}
	return core.SpanAt(p.Pos.X, tol.HalfWidth).Overlaps(core.SpanAt(e.Pos.X, tol.HalfWidth))
}

// DetectEnemyCollision returns the index of the first bug touching the
// player. Each pair is tested independently, so the result does not depend on
// how the other bugs are placed.
func DetectEnemyCollision(p Player, enemies []Enemy, tol config.CollisionConfig) (int, bool) {
	for i, e := range enemies {
		if hits(p, e, tol) {
			return i, true
		}
	}
	return -1, false
}

// CollidingEnemies returns the indexes of every bug touching the player.
func CollidingEnemies(p Player, enemies []Enemy, tol config.CollisionConfig) []int {
	var out []int
	for i, e := range enemies {
		if hits(p, e, tol) {
			out = append(out, i)
		}
	}
	return out
}

// DetectItemPickup reports whether the player stands exactly on the visible book.
func DetectItemPickup(p Player, it Item) bool {
	return it.Visible && p.Pos == it.Pos
}
