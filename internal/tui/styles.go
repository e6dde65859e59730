package tui

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// toastDuration is how long a toast stays in the status bar before a timer
// clears it.
const toastDuration = 4 * time.Second

// Styles for the shell chrome. Widget content is styled by the theme
// backends; everything here frames that content.
var (
	appStyle = lipgloss.NewStyle().Margin(0, 0)

	titleBarStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}).
			Background(lipgloss.AdaptiveColor{Light: "#D0D0D0", Dark: "#303030"}).
			Padding(0, 1)

	titleMetaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})

	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#CCCCCC"}).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#262626"}).
			Padding(0, 1)

	toastStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#1A7F37", Dark: "#7EE787"})

	disconnectedBannerStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#9A2222", Dark: "#F97171"}).
				Border(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.AdaptiveColor{Light: "#9A2222", Dark: "#F97171"}).
				Padding(0, 2)

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}).
			Padding(1, 3)

	dialogTitleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)

	helpOverlayStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.AdaptiveColor{Light: "#888888", Dark: "#666666"}).
				Padding(1, 2)

	helpKeyStyle  = lipgloss.NewStyle().Bold(true)
	helpDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"})

	logLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#777777", Dark: "#888888"})

	awaitingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}).
			Italic(true)
)
