package theme

import "github.com/charmbracelet/lipgloss"

// registerMaterial adds the material-exclusive widget types. "card" is the
// elevated surface; elevation is hinted with a thick bottom border.
func registerMaterial(r *Registry) {
	r.Register("card", Material, buildCard)
}

func buildCard(p Params) (string, error) {
	body := ""
	if len(p.Children) > 0 {
		body = lipgloss.JoinVertical(lipgloss.Left, p.Children...)
	}
	border := lipgloss.RoundedBorder()
	border.Bottom = "━"
	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(materialPalette.Border).
		Padding(0, 1).
		Render(body), nil
}
