package styles

import (
	"travelhub/internal/output"

	"github.com/charmbracelet/lipgloss"
)

var (
	Subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	Highlight = lipgloss.AdaptiveColor{Light: "#1E7FD8", Dark: "#3B9CF2"}
	Special   = lipgloss.AdaptiveColor{Light: "#2E9E5B", Dark: "#73F59F"}
	Muted     = lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#8A8A8A"}

	BrandColor = lipgloss.Color("#1E7FD8")

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(BrandColor).
			Padding(1, 2)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Padding(1, 2).
			Margin(1, 1)

	BadgeStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	CopyStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)
)

// Badge returns the lipgloss style drawn for a status style token.
func Badge(token output.StyleToken) lipgloss.Style {
	switch token {
	case output.StyleDestructive:
		return BadgeStyle.Background(lipgloss.Color("160")).Foreground(lipgloss.Color("#FFF"))
	case output.StyleAccent:
		return BadgeStyle.Background(BrandColor).Foreground(lipgloss.Color("#FFF"))
	case output.StyleSecondary:
		return BadgeStyle.Background(lipgloss.Color("#5B5B8F")).Foreground(lipgloss.Color("#FFF"))
	case output.StyleCaution:
		return BadgeStyle.Background(lipgloss.Color("220")).Foreground(lipgloss.Color("#FFF"))
	default:
		return BadgeStyle.Background(Subtle).Foreground(Muted)
	}
}

// Glyph returns the terminal glyph for an icon token.
func Glyph(icon output.IconToken) string {
	switch icon {
	case output.IconDocument:
		return "▤"
	case output.IconHealth:
		return "♥"
	case output.IconShield:
		return "◈"
	default:
		return "▲"
	}
}

// SectionColor tints each category's title like the original cards.
func SectionColor(icon output.IconToken) lipgloss.TerminalColor {
	switch icon {
	case output.IconDocument:
		return BrandColor
	case output.IconHealth:
		return lipgloss.Color("#C2417A")
	case output.IconShield:
		return lipgloss.Color("#D98E04")
	default:
		return Special
	}
}
