package core

// Color is the foreground color of a screen cell. The level renderer and
// the text viewer paint with it; the terminal front end maps each value
// to an ANSI 256-color code.
type Color uint8

// Palette used when drawing a level:
//
//   - ColorDefault: text box frames and plain text
//   - ColorGreen: the ground line and green spikas
//   - ColorBrightYellow: the goal marker, text boxes and viewer scroll marks
//   - ColorBrightRed, ColorBlue: the player's body and legs
//   - ColorBrightWhite: text shown in the viewer
//   - ColorOrange, ColorGray, ColorRed: the other spika variants;
//     ColorGray also marks used-up boxes
//
// The remaining values are free for overlays and scripted objects.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightWhite
	ColorOrange
	ColorGray

	// NumColors is the size of the palette.
	NumColors = int(iota)
)
