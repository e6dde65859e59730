package theme

import "github.com/charmbracelet/lipgloss"

// registerMacOS adds the macos-exclusive widget types. "toolbar" is a window
// toolbar row with the traffic-light cluster on the left.
func registerMacOS(r *Registry) {
	r.Register("toolbar", MacOS, buildToolbar)
}

func buildToolbar(p Params) (string, error) {
	title := p.Props.String("title", "")
	lights := lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F57", Dark: "#FF5F57"}).Render("●") + " " +
		lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FEBC2E", Dark: "#FEBC2E"}).Render("●") + " " +
		lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#28C840", Dark: "#28C840"}).Render("●")

	bar := lights
	if title != "" {
		bar += "  " + lipgloss.NewStyle().Foreground(macosPalette.Muted).Bold(true).Render(title)
	}
	row := bar
	if len(p.Children) > 0 {
		row = lipgloss.JoinHorizontal(lipgloss.Top, append([]string{bar, "  "}, p.Children...)...)
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(macosPalette.Border).
		Render(row), nil
}
