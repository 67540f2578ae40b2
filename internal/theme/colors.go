package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Session state colors
const (
	ColorDraining   Color = "3" // Yellow - draining
	ColorIdle       Color = "8" // Gray - idle
	ColorRunning    Color = "2" // Green - running
	ColorTerminated Color = "1" // Red - terminated
)

// Event source colors
const (
	ColorGitHooks       Color = "214" // Orange - git operations
	ColorHookDispatcher Color = "75"  // Blue - agent lifecycle
	ColorUnowned        Color = "245" // Light gray - anything else
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
)

// Git colors
const (
	ColorAdditions Color = "2" // Green
	ColorDeletions Color = "1" // Red
)
