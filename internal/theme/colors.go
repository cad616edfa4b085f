package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - project names
)

// Git state colors
const (
	ColorAhead     Color = "33"  // Blue - ready to merge
	ColorBehind    Color = "214" // Orange - needs a rebase
	ColorClean     Color = "2"   // Green
	ColorConflict  Color = "196" // Bright red
	ColorDiverged  Color = "205" // Pink
	ColorModified  Color = "3"   // Yellow
	ColorUnknown   Color = "8"   // Gray
	ColorUntracked Color = "141" // Purple
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Git colors
const (
	ColorAdditions Color = "2" // Green
	ColorDeletions Color = "1" // Red
)
