package tui

// Color constants for the teamboard TUI theme
const (
	// Base Colors
	ColorAppBackground = ""        // Use terminal default background
	ColorBorder        = "#2E4057" // Slate blue-grey

	// Text Colors
	ColorPrimaryText   = "#E8EDF4" // Field labels, user input, titles
	ColorSecondaryText = "#9AA8BC" // Column headers, hints
	ColorDisabledText  = "#5C6B80" // Muted/ineligible actions
	ColorPlaceholder   = "#9AA8BC"
	ColorHelpText      = "240" // Dark grey for the help line

	// Accent Colors (Teal theme)
	ColorAccentMain   = "#0FA3A3" // Active tab, selected row marker
	ColorAccentBright = "#5EEAD4" // Highlights, focused input cursor

	// State Colors
	ColorError   = "#EF4444" // Failed requests, validation errors
	ColorSuccess = "#22C55E" // Saves, confirmations
	ColorWarning = "#F59E0B" // Overdue dates, destructive prompts
)
