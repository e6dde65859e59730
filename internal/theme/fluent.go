package theme

import "github.com/charmbracelet/lipgloss"

// registerFluent adds the fluent-exclusive widget types. "acrylic" is the
// translucent layered panel Fluent backends expose; on a terminal it becomes
// a double-framed panel with muted fill.
func registerFluent(r *Registry) {
	r.Register("acrylic", Fluent, buildAcrylic)
}

func buildAcrylic(p Params) (string, error) {
	body := ""
	if len(p.Children) > 0 {
		body = lipgloss.JoinVertical(lipgloss.Left, p.Children...)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(fluentPalette.Border).
		Foreground(fluentPalette.Muted).
		Padding(0, 2).
		Render(body), nil
}
