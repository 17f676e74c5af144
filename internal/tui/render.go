package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/blackmichael/explore-feed/internal/view"
)

// glyphs maps icon names to terminal glyphs.
var glyphs = map[string]string{
	"heart":      "♥",
	"comment":    "✎",
	"bookmark":   "⚑",
	"ellipsis-h": "⋯",
}

// maxImageRows caps the height of image placeholders.
const maxImageRows = 6

// Renderer draws view trees as terminal text. Layout is approximate: rows
// join horizontally, everything else stacks, and filled circles become
// padded background blocks.
type Renderer struct {
	// Width is the terminal width in cells, used for full-width nodes.
	Width int

	// Focus is the key of the node drawn with the Focused style.
	Focus string

	// Skip hides the first n children of the list with the given key, which
	// is how horizontally scrolled lists are drawn.
	Skip map[string]int

	Styles Styles
}

// Render returns the text for n.
func (r Renderer) Render(n *view.Node) string {
	if n == nil {
		return ""
	}

	var out string
	switch n.Kind {
	case view.KindText:
		out = textStyle(n.Style).Render(n.Text)
	case view.KindIcon:
		out = r.icon(n)
	case view.KindImage:
		out = r.image(n)
	default:
		out = r.container(n)
	}

	if n.Key != "" && n.Key == r.Focus {
		out = r.Styles.Focused.Render(out)
	}
	return out
}

func (r Renderer) container(n *view.Node) string {
	children := n.Children
	if skip := r.Skip[n.Key]; skip > 0 {
		children = children[min(skip, len(children)):]
	}

	var parts []string
	for _, c := range children {
		s := r.Render(c)
		if s == "" {
			continue
		}
		// absolutely positioned nodes hang off the previous sibling
		if c.Style.Position == "absolute" && len(parts) > 0 {
			parts[len(parts)-1] = lipgloss.JoinHorizontal(lipgloss.Top, parts[len(parts)-1], s)
			continue
		}
		parts = append(parts, s)
	}

	var out string
	if n.Style.FlexDirection == "row" {
		out = r.row(n, parts)
	} else {
		out = column(n, parts)
	}

	if isFilledCircle(n.Style) && out != "" {
		out = lipgloss.NewStyle().
			Background(lipgloss.Color(n.Style.BackgroundColor)).
			Padding(0, 1).
			Render(out)
	}
	return out
}

func (r Renderer) row(n *view.Node, parts []string) string {
	if len(parts) == 0 {
		return ""
	}

	if n.Style.JustifyContent == "space-between" && len(parts) == 2 && r.Width > 0 {
		gap := max(1, r.Width-lipgloss.Width(parts[0])-lipgloss.Width(parts[1]))
		return lipgloss.JoinHorizontal(lipgloss.Center, parts[0], strings.Repeat(" ", gap), parts[1])
	}

	sep := " "
	if n.Style.Gap > 0 {
		sep = "  "
	}
	joined := make([]string, 0, 2*len(parts)-1)
	for i, p := range parts {
		if i > 0 {
			joined = append(joined, sep)
		}
		joined = append(joined, p)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, joined...)
}

func column(n *view.Node, parts []string) string {
	if len(parts) == 0 {
		return ""
	}

	align := lipgloss.Left
	if n.Style.AlignItems == "center" {
		align = lipgloss.Center
	}
	if n.Style.Gap <= 0 {
		return lipgloss.JoinVertical(align, parts...)
	}

	spaced := make([]string, 0, 2*len(parts)-1)
	for i, p := range parts {
		if i > 0 {
			spaced = append(spaced, "")
		}
		spaced = append(spaced, p)
	}
	return lipgloss.JoinVertical(align, spaced...)
}

func (r Renderer) icon(n *view.Node) string {
	g, ok := glyphs[n.Icon]
	if !ok {
		g = "?"
	}
	st := lipgloss.NewStyle()
	if n.Style.Color != "" {
		st = st.Foreground(lipgloss.Color(n.Style.Color))
	}
	return st.Render(g)
}

// image draws a placeholder block. Full-width images follow the aspect
// ratio, halved because terminal cells are about twice as tall as wide.
func (r Renderer) image(n *view.Node) string {
	if n.Style.Width == nil || !n.Style.Width.Percent {
		return "◉"
	}

	cols := max(r.Width, 10)
	rows := 3
	if n.Style.AspectRatio > 0 {
		rows = min(maxImageRows, max(1, int(float64(cols)/n.Style.AspectRatio/2)))
	}

	label := "image"
	if n.Source != "" {
		label = n.Source
	}
	st := lipgloss.NewStyle().
		Width(cols).
		Height(rows).
		Align(lipgloss.Center, lipgloss.Center)
	if n.Style.BackgroundColor != "" {
		st = st.Background(lipgloss.Color(n.Style.BackgroundColor))
	}
	return st.Render(truncate(label, cols))
}

func textStyle(s view.Style) lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.Color != "" {
		st = st.Foreground(lipgloss.Color(s.Color))
	}
	if s.FontWeight >= "600" {
		st = st.Bold(true)
	}
	return st
}

func isFilledCircle(s view.Style) bool {
	return s.BackgroundColor != "" && s.BorderRadius > 0 && s.Width != nil && !s.Width.Percent
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
