package core

// Color is the colour tag of a screen or board cell.
// ColorNone doubles as "empty" on game boards.
type Color uint8

// Palette used by the terminal and the games.
const (
	ColorNone Color = iota
	ColorSky
	ColorSun
	ColorPink
	ColorMint
	ColorApricot
	ColorLavender
	ColorTeal
	ColorGray
	ColorDim
	ColorRed
)

// String returns the palette name of the colour.
func (c Color) String() string {
	switch c {
	case ColorNone:
		return "none"
	case ColorSky:
		return "sky"
	case ColorSun:
		return "sun"
	case ColorPink:
		return "pink"
	case ColorMint:
		return "mint"
	case ColorApricot:
		return "apricot"
	case ColorLavender:
		return "lavender"
	case ColorTeal:
		return "teal"
	case ColorGray:
		return "gray"
	case ColorDim:
		return "dim"
	case ColorRed:
		return "red"
	default:
		return "unknown"
	}
}
