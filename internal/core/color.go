package core

// Color is the foreground of a screen cell. The engine names colors by
// role on the board; the platform decides what they look like.
type Color uint8

const (
	ColorDefault      Color = iota
	ColorRed                // bugs
	ColorGreen              // grass
	ColorYellow             // gong
	ColorWhite              // HUD text, dialogue box
	ColorGray               // stones, walls, hints
	ColorBrown              // shelf row
	ColorBrightRed          // pause banner
	ColorBrightYellow       // books, title
	ColorBrightCyan         // friends
	ColorBrightWhite        // speaker marker

	colorCount
)

// Valid reports whether c is a known color.
func (c Color) Valid() bool {
	return c < colorCount
}
