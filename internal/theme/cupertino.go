package theme

import "github.com/charmbracelet/lipgloss"

// registerCupertino adds the cupertino-exclusive widget types. "navbar" is
// the navigation bar with an optional back chevron and centered title.
func registerCupertino(r *Registry) {
	r.Register("navbar", Cupertino, buildNavbar)
}

func buildNavbar(p Params) (string, error) {
	title := p.Props.String("title", "")
	width := p.Props.Int("width", 32)
	if width < 8 {
		width = 8
	}

	left := " "
	if p.Props.Bool("back", false) {
		left = lipgloss.NewStyle().Foreground(cupertinoPalette.Primary).Render("‹ Back")
	}
	centered := lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Bold(true).Foreground(cupertinoPalette.Text).Render(title))

	bar := lipgloss.JoinHorizontal(lipgloss.Top, left, centered)
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(cupertinoPalette.Border).
		Render(bar), nil
}
