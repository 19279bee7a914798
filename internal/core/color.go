package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI palette entries in the platform renderer.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorPink
	ColorCyan
	ColorOrange
	ColorYellow
	ColorBlue
	ColorWhite
	ColorGray
)
