// Package bookrun implements the Book Run game engine: two friends hunt for
// their lost course materials across a field of bugs and carry each book to
// the shelf slots on the top row.
//
// The engine is pure. It never reads the clock, the keyboard or the terminal;
// the platform feeds it intents and elapsed time and reads back events,
// snapshots and a rendered character buffer.
package bookrun

import "github.com/vovakirdan/bookrun/internal/core"

// Board geometry, in the pixel space the game was designed in.
const (
	ColWidth  = 101
	RowHeight = 83
	Columns   = 7

	LeftX   = 0   // x of the leftmost column
	RightX  = 606 // x of the rightmost column
	BottomY = 404 // y of the bottom (grass) row
	TopY    = 72  // y of the topmost playable row

	// ScoringY is the y of the row above the board that holds the slots.
	ScoringY = -11

	StartX = 303
	StartY = BottomY

	// LaneCount is the number of stone rows bugs travel on, and also the
	// maximum number of bugs on the board.
	LaneCount = 4

	// SlotCapacity counts the two wall sentinels plus five usable slots.
	SlotCapacity = 7

	laneOffset = 21
)

// StartTile is where the player begins and respawns.
var StartTile = core.V(StartX, StartY)

// vecDown is one row towards the bottom of the board.
var vecDown = core.V(0, RowHeight)

// LaneY returns the y of bug lane i (1-based).
func LaneY(lane int) float64 {
	return float64(RowHeight*lane - laneOffset)
}

// IsLaneY reports whether y is exactly one of the bug lanes.
func IsLaneY(y float64) bool {
	for lane := 1; lane <= LaneCount; lane++ {
		if y == LaneY(lane) {
			return true
		}
	}
	return false
}

// PlayerRows lists the rows the player may stand on, bottom first.
var PlayerRows = []float64{404, 321, 238, 155, 72}

// ItemRows lists the stone rows a book can be placed on.
var ItemRows = []float64{72, 155, 238, 321}

// ColumnX returns the x of column c (0-based).
func ColumnX(c int) float64 {
	return float64(c * ColWidth)
}

// ColumnOf returns the column index of x. x must be grid-aligned.
func ColumnOf(x float64) int {
	return int(x) / ColWidth
}

// RowOf returns the screen row index of y, with the scoring row at 0 and the
// bottom row at 5.
func RowOf(y float64) int {
	return (int(y) - ScoringY) / RowHeight
}

// OnBoard reports whether p is a legal resting tile for the player.
// The scoring row is not included.
func OnBoard(p core.Vec) bool {
	if p.X < LeftX || p.X > RightX || int(p.X)%ColWidth != 0 {
		return false
	}
	for _, y := range PlayerRows {
		if p.Y == y {
			return true
		}
	}
	return false
}

// itemTiles returns every tile a book may be reset to: the interior columns
// of the stone rows.
func itemTiles() []core.Vec {
	tiles := make([]core.Vec, 0, (Columns-2)*len(ItemRows))
	for _, y := range ItemRows {
		for c := 1; c < Columns-1; c++ {
			tiles = append(tiles, core.V(ColumnX(c), y))
		}
	}
	return tiles
}
