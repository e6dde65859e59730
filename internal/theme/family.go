package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// registerFamily installs the shared widget categories for one palette.
// Theme-exclusive types live in the per-family files; "divider" is covered
// by the theme-agnostic default rule only.
func registerFamily(r *Registry, pal Palette) {
	r.Register("column", pal.Name, buildColumn)
	r.Register("row", pal.Name, buildRow)
	r.Register("container", pal.Name, pal.buildContainer)
	r.Register("text", pal.Name, pal.buildText)
	r.Register("icon", pal.Name, pal.buildIcon)
	r.Register("button", pal.Name, pal.buildButton)
	r.Register("text_input", pal.Name, pal.buildTextInput)
	r.Register("toggle", pal.Name, pal.buildToggle)
	r.Register("slider", pal.Name, pal.buildSlider)
}

func buildColumn(p Params) (string, error) {
	if len(p.Children) == 0 {
		return "", nil
	}
	return lipgloss.JoinVertical(lipgloss.Left, p.Children...), nil
}

func buildRow(p Params) (string, error) {
	if len(p.Children) == 0 {
		return "", nil
	}
	spaced := make([]string, 0, len(p.Children)*2-1)
	for i, c := range p.Children {
		if i > 0 {
			spaced = append(spaced, " ")
		}
		spaced = append(spaced, c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, spaced...), nil
}

func (pal Palette) buildContainer(p Params) (string, error) {
	body := ""
	if len(p.Children) > 0 {
		body = lipgloss.JoinVertical(lipgloss.Left, p.Children...)
	}
	return lipgloss.NewStyle().
		Border(pal.Frame).
		BorderForeground(pal.Border).
		Padding(0, 1).
		Render(body), nil
}

func (pal Palette) buildText(p Params) (string, error) {
	value := p.Props.String("value", "")
	style := lipgloss.NewStyle().Foreground(pal.Text)
	if p.Props.Bool("bold", false) {
		style = style.Bold(true)
	}
	if p.Props.Bool("italic", false) {
		style = style.Italic(true)
	}
	if p.Props.Bool("muted", false) {
		style = style.Foreground(pal.Muted)
	}
	if c := p.Props.Color("color"); c.Valid {
		style = style.Foreground(lipgloss.Color(c.Hex()))
	}
	return style.Render(value), nil
}

func (pal Palette) buildIcon(p Params) (string, error) {
	name := p.Props.String("name", "")
	glyph, ok := pal.Icons[name]
	if !ok {
		glyph = "•"
	}
	style := lipgloss.NewStyle().Foreground(pal.Primary)
	if c := p.Props.Color("color"); c.Valid {
		style = style.Foreground(lipgloss.Color(c.Hex()))
	}
	return style.Render(glyph), nil
}

func (pal Palette) buildButton(p Params) (string, error) {
	label := p.Props.String("label", p.Props.String("value", p.ID))
	enabled := p.Props.Bool("enabled", true)
	primary := p.Props.Bool("primary", false)

	style := lipgloss.NewStyle().Padding(0, 1)
	switch {
	case !enabled:
		style = style.Foreground(pal.Muted)
	case primary:
		style = style.Background(pal.Primary).
			Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#000000"}).
			Bold(true)
	default:
		style = style.Foreground(pal.Primary)
	}
	if p.Focused && enabled {
		style = style.Underline(true).Foreground(pal.Accent)
		if primary {
			style = style.Background(pal.Accent)
		}
	}
	return style.Render("⟦ " + label + " ⟧"), nil
}

func (pal Palette) buildTextInput(p Params) (string, error) {
	value := p.Props.String("value", "")
	placeholder := p.Props.String("placeholder", "")
	width := p.Props.Int("width", 24)
	if width < 4 {
		width = 4
	}
	enabled := p.Props.Bool("enabled", true)

	content := value
	contentStyle := lipgloss.NewStyle().Foreground(pal.Text)
	if content == "" && placeholder != "" {
		content = placeholder
		contentStyle = contentStyle.Foreground(pal.Muted)
	}
	if p.Focused && enabled {
		content = value + pal.Cursor
		contentStyle = lipgloss.NewStyle().Foreground(pal.Text)
	}

	frame := lipgloss.NewStyle().
		Border(pal.Frame).
		BorderForeground(pal.Border).
		Width(width)
	if p.Focused && enabled {
		frame = frame.BorderForeground(pal.Accent)
	}
	if !enabled {
		frame = frame.BorderForeground(pal.Muted)
		contentStyle = contentStyle.Foreground(pal.Muted)
	}
	return frame.Render(contentStyle.Render(content)), nil
}

func (pal Palette) buildToggle(p Params) (string, error) {
	on := p.Props.Bool("value", false)
	label := p.Props.String("label", "")
	enabled := p.Props.Bool("enabled", true)

	glyph := pal.ToggleOff
	color := pal.Muted
	if on {
		glyph = pal.ToggleOn
		color = pal.Primary
	}
	if !enabled {
		color = pal.Muted
	}
	style := lipgloss.NewStyle().Foreground(color)
	if p.Focused && enabled {
		style = style.Foreground(pal.Accent).Underline(true)
	}
	out := style.Render(glyph)
	if label != "" {
		out += " " + lipgloss.NewStyle().Foreground(pal.Text).Render(label)
	}
	return out, nil
}

func (pal Palette) buildSlider(p Params) (string, error) {
	min := p.Props.Float("min", 0)
	max := p.Props.Float("max", 100)
	if max <= min {
		return "", fmt.Errorf("slider: invalid range [%v, %v]", min, max)
	}
	value := p.Props.Float("value", min)
	if value < min {
		value = min
	}
	if value > max {
		value = max
	}
	width := p.Props.Int("width", 20)
	if width < 5 {
		width = 5
	}

	ratio := (value - min) / (max - min)
	knob := int(ratio * float64(width-1))

	var track strings.Builder
	for i := 0; i < width; i++ {
		switch {
		case i == knob:
			track.WriteString(pal.SliderKnob)
		case i < knob:
			track.WriteString(pal.SliderFill)
		default:
			track.WriteString(pal.SliderTrack)
		}
	}

	style := lipgloss.NewStyle().Foreground(pal.Primary)
	if p.Focused {
		style = style.Foreground(pal.Accent)
	}
	if !p.Props.Bool("enabled", true) {
		style = lipgloss.NewStyle().Foreground(pal.Muted)
	}
	return style.Render(track.String()), nil
}
