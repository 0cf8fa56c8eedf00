package core

// Color names a semantic colour for a screen cell.
// Games pick meanings; the platform layer decides what they look like.
type Color uint8

// Palette used by the board renderer.
const (
	ColorDefault Color = iota
	ColorLightSquare
	ColorDarkSquare
	ColorChoice  // Selected square while the round is running
	ColorHint    // Square revealed as a hint candidate
	ColorGuessed // Square already submitted this round
	ColorWon     // Winning square after a win
	ColorLost    // Winning square after a loss
	ColorTitle
	ColorMuted
	ColorAlert
)

// String returns a short name for the colour, used in tests and screenshots.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorLightSquare:
		return "light"
	case ColorDarkSquare:
		return "dark"
	case ColorChoice:
		return "choice"
	case ColorHint:
		return "hint"
	case ColorGuessed:
		return "guessed"
	case ColorWon:
		return "won"
	case ColorLost:
		return "lost"
	case ColorTitle:
		return "title"
	case ColorMuted:
		return "muted"
	case ColorAlert:
		return "alert"
	default:
		return "unknown"
	}
}
