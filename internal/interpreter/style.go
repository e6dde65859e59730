package interpreter

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"veneer/internal/props"
)

const (
	defaultAnimationDuration = 300 * time.Millisecond
	defaultEasing            = "ease-in-out"
)

// Style is the normalized form of a props.style sub-object. Every field has
// a safe default; parsing never fails.
type Style struct {
	Padding props.Edges
	Margin  props.Edges

	Width  int
	Height int
	Align  string

	Background  props.Color
	Border      props.Color
	BorderWidth float64
	Radius      float64
	Shadow      bool

	Animation Animation
}

// parseStyle extracts the style sub-object from a prop bag. The second
// return is false when no style key is present, meaning no decorator wraps
// the node at all.
func parseStyle(bag props.Bag) (Style, bool) {
	sub := bag.Map("style")
	if sub == nil {
		return Style{}, false
	}

	st := Style{
		Padding:     sub.Edges("padding"),
		Margin:      sub.Edges("margin"),
		Width:       sub.Int("width", 0),
		Height:      sub.Int("height", 0),
		Align:       sub.Keyword("align", "start", "start", "center", "end"),
		Background:  sub.Color("background"),
		Border:      sub.Color("borderColor"),
		BorderWidth: sub.Float("borderWidth", 0),
		Radius:      sub.Float("radius", 0),
		Shadow:      sub.Bool("shadow", false),
		Animation: Animation{
			Duration: defaultAnimationDuration,
			Easing:   sub.Keyword("easing", defaultEasing, "linear", "ease", "ease-in", "ease-out", "ease-in-out"),
		},
	}
	if ms := sub.Float("duration", 0); ms > 0 {
		st.Animation.Duration = time.Duration(ms) * time.Millisecond
	}
	return st, true
}

// applyStyle wraps an already-built visual in the styled decorator: box
// model, alignment, colors, and frame. The animation attributes have no
// terminal analogue and travel on the node as metadata instead.
func applyStyle(view string, st Style) string {
	s := lipgloss.NewStyle().
		Padding(int(st.Padding.Top), int(st.Padding.Right), int(st.Padding.Bottom), int(st.Padding.Left)).
		Margin(int(st.Margin.Top), int(st.Margin.Right), int(st.Margin.Bottom), int(st.Margin.Left))

	if st.Width > 0 {
		s = s.Width(st.Width)
	}
	if st.Height > 0 {
		s = s.Height(st.Height)
	}
	switch st.Align {
	case "center":
		s = s.Align(lipgloss.Center)
	case "end":
		s = s.Align(lipgloss.Right)
	}
	if st.Background.Valid {
		s = s.Background(lipgloss.Color(st.Background.Hex()))
	}

	hasBorder := st.Border.Valid || st.BorderWidth > 0
	if hasBorder {
		border := lipgloss.NormalBorder()
		if st.Radius > 0 {
			border = lipgloss.RoundedBorder()
		}
		if st.BorderWidth >= 2 {
			border = lipgloss.ThickBorder()
		}
		s = s.Border(border)
		if st.Border.Valid {
			s = s.BorderForeground(lipgloss.Color(st.Border.Hex()))
		}
	} else if st.Shadow {
		// A dim bottom-right edge is the closest terminal reading of a
		// drop shadow.
		s = s.BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).BorderRight(true).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#D1D1D1", Dark: "#3C3C3C"})
	}

	return s.Render(view)
}
