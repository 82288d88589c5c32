package bookrun

import (
	"fmt"

	"github.com/vovakirdan/bookrun/internal/core"
)

const (
	tileW = 10 // Screen cells per board column
	tileH = 3  // Screen rows per board row

	boardRows = 6 // Scoring row plus five playable rows
	boardW    = Columns * tileW
	boardH    = boardRows * tileH
	hudHeight = 2
	dialogueH = 5

	// MinScreenW and MinScreenH are the smallest screen the game draws on.
	MinScreenW = boardW
	MinScreenH = hudHeight + boardH + dialogueH
)

// Sprites. Renderers pick these from state; nothing in the engine looks at them.
const (
	spriteBug  = "=(**)>"
	spriteBook = "[≡]"
	spriteWall = '▓'
	spriteGong = "(GONG)"
)

// Render draws the game state to the screen. It only reads state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		renderTooSmall(dst)
		return
	}

	ox := (dst.Width() - boardW) / 2
	oy := hudHeight

	g.renderHUD(dst, ox)
	renderTiles(dst, ox, oy)

	if g.session.Mode == ModePlaying {
		g.renderEntities(dst, ox, oy)
	} else {
		g.renderDialogue(dst, ox, oy)
	}
}

// renderTooSmall shows a "window too small" message.
func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorGray)
}

// renderHUD draws the title and progress line.
func (g *Game) renderHUD(dst *core.Screen, ox int) {
	dst.DrawTextColor(ox, 0, "BOOK RUN", core.ColorBrightYellow)

	if g.session.Mode != ModePlaying {
		return
	}
	delivered := g.slots.Count() - 2
	info := fmt.Sprintf("Level %d  Books %d/%d  %s", g.session.Level+1, delivered, SlotCapacity-2, g.player.Avatar)
	dst.DrawTextColor(ox+boardW-len([]rune(info)), 0, info, core.ColorWhite)

	if g.session.Paused {
		dst.DrawTextCentered(1, "PAUSED", core.ColorBrightRed)
	}
}

// renderTiles draws the board background: the shelf row with its walls,
// the stone lanes and the grass rows.
func renderTiles(dst *core.Screen, ox, oy int) {
	for row := 0; row < boardRows; row++ {
		fill, color := '░', core.ColorGray
		switch {
		case row == 0:
			fill, color = '▒', core.ColorBrown
		case row == boardRows-1:
			fill, color = '"', core.ColorGreen
		}
		dst.DrawRect(core.NewRect(ox, oy+row*tileH, boardW, tileH), fill, color)
	}

	for _, col := range []int{0, Columns - 1} {
		dst.DrawRect(core.NewRect(ox+col*tileW, oy, tileW, tileH), spriteWall, core.ColorGray)
	}
}

// renderEntities draws slots, the book, the bugs and the player, in that order.
func (g *Game) renderEntities(dst *core.Screen, ox, oy int) {
	for _, s := range g.slots.All() {
		if !s.Wall {
			drawSprite(dst, ox, oy, float64(s.X), 0, spriteBook, core.ColorBrightYellow)
		}
	}

	if g.item.Visible {
		drawSprite(dst, ox, oy, g.item.Pos.X, RowOf(g.item.Pos.Y), spriteBook, core.ColorBrightYellow)
	}

	for _, e := range g.enemies {
		drawSprite(dst, ox, oy, e.Pos.X, e.Lane, spriteBug, core.ColorRed)
	}

	drawSprite(dst, ox, oy, g.player.Pos.X, RowOf(g.player.Pos.Y), playerSprite(g.player), core.ColorBrightCyan)
}

// playerSprite returns the label drawn for the player; a held book is
// shown next to the name.
func playerSprite(p Player) string {
	name := p.Avatar.String()
	if p.Carrying {
		return name + "≡"
	}
	return name
}

// renderDialogue draws the actors on the board and the current line below it.
func (g *Game) renderDialogue(dst *core.Screen, ox, oy int) {
	speaker := ""
	for _, a := range Actors(g.session) {
		row := RowOf(a.Pos.Y)
		color := core.ColorBrightCyan
		if a.Kind == ActorGong {
			color = core.ColorYellow
			drawSprite(dst, ox, oy, a.Pos.X, row, spriteGong, color)
			continue
		}
		drawSprite(dst, ox, oy, a.Pos.X, row, a.Name(), color)
		if a.Talking {
			speaker = a.Name()
			drawSprite(dst, ox, oy-1, a.Pos.X, row, "▼", core.ColorBrightWhite)
		}
	}

	box := core.NewRect(ox, oy+boardH, boardW, dialogueH)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextColor(box.X+2, box.Y, " "+speaker+" ", core.ColorBrightCyan)
	for i, line := range Line(g.session.StoryIndex) {
		dst.DrawText(box.X+2, box.Y+1+i, line)
	}

	prompt := " SPACE to continue "
	if g.session.Mode == ModeGameOver {
		prompt = " R to play again "
	}
	dst.DrawTextColor(box.Right()-len(prompt)-2, box.Bottom()-1, prompt, core.ColorGray)
}

// drawSprite draws text on the middle line of board row `row`, starting at
// the screen column matching pixel x. Cells outside the board are clipped, so
// bugs slide in and out at the edges.
func drawSprite(dst *core.Screen, ox, oy int, x float64, row int, text string, c core.Color) {
	sx := ox + int(x*tileW/ColWidth) + 1
	sy := oy + row*tileH + tileH/2
	i := 0
	for _, r := range text {
		cx := sx + i
		i++
		if cx < ox || cx >= ox+boardW {
			continue
		}
		dst.SetWithColor(cx, sy, r, c)
	}
}
