package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha palette.
var flavor = catppuccin.Mocha

var (
	colorBase     = lipgloss.Color(flavor.Base().Hex)
	colorSurface0 = lipgloss.Color(flavor.Surface0().Hex)
	colorText     = lipgloss.Color(flavor.Text().Hex)
	colorSubtext0 = lipgloss.Color(flavor.Subtext0().Hex)
	colorBlue     = lipgloss.Color(flavor.Blue().Hex)
	colorGreen    = lipgloss.Color(flavor.Green().Hex)
	colorRed      = lipgloss.Color(flavor.Red().Hex)
	colorYellow   = lipgloss.Color(flavor.Yellow().Hex)
	colorMauve    = lipgloss.Color(flavor.Mauve().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
)

var (
	// titleStyle renders the browser header line.
	titleStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	// cursorStyle highlights the row under the cursor.
	cursorStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	// dimStyle renders non-cursor rows and secondary text.
	dimStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0)

	// loadingStyle colors the remote loading placeholder and spinner.
	loadingStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0)

	// kind tag styles.
	agentTagStyle  = lipgloss.NewStyle().Foreground(colorMauve)
	memoryTagStyle = lipgloss.NewStyle().Foreground(colorGreen)
	remoteTagStyle = lipgloss.NewStyle().Foreground(colorBlue)

	// status line styles.
	statusInfoStyle = lipgloss.NewStyle().Foreground(colorGreen)
	statusErrStyle  = lipgloss.NewStyle().Foreground(colorRed)

	// helpStyle renders the contextual footer.
	helpStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorSurface0).
			Padding(0, 1)

	// helpKeyStyle highlights shortcuts in the footer.
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorYellow).
			Background(colorSurface0).
			Bold(true)

	// sourceActiveStyle marks the active source in the header.
	sourceActiveStyle = lipgloss.NewStyle().
				Foreground(colorBase).
				Background(colorBlue).
				Padding(0, 1).
				Bold(true)

	// sourceInactiveStyle marks the inactive source in the header.
	sourceInactiveStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Background(colorSurface0).
				Padding(0, 1)
)
