package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
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

// Accent colors
const (
	ColorHelpGroup Color = "141" // Purple
	ColorLink      Color = "39"  // Blue - URLs
	ColorSpinner   Color = "205" // Pink
	ColorSuccess   Color = "2"   // Green - confirmations
)

// Result row colors
const (
	ColorButtonBg Color = "62"  // Indigo - PR number button
	ColorChipBg   Color = "237" // Dark gray - author chip
	ColorChipFg   Color = "117" // Light blue
)

// Tab colors
const (
	ColorTabActive   Color = "99"
	ColorTabInactive Color = "241"
)
