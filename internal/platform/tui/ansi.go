package tui

// ANSI escape sequences for terminal control
const (
	clearScreen = "\x1b[2J" // Clear entire screen
	cursorHome  = "\x1b[H"  // Move cursor to top-left (1,1)
	colorsReset = "\x1b[0m" // Reset all text formatting
)
