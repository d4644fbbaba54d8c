package core

// Color is the foreground color of a text overlay cell.
// The platform maps each value to a terminal style.
type Color uint8

// Overlay colors used by the HUD and message boxes.
const (
	ColorDefault Color = iota
	ColorHUD
	ColorWarning
	ColorTitle
	ColorMuted
)

// String returns a human-readable name for the color.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorHUD:
		return "hud"
	case ColorWarning:
		return "warning"
	case ColorTitle:
		return "title"
	case ColorMuted:
		return "muted"
	default:
		return "unknown"
	}
}
