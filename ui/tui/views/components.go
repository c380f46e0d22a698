package views

import (
	"fmt"

	"travelhub/internal/output"
	"travelhub/ui/tui/state"
	"travelhub/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Zone IDs of the hub controls, shared with the controller's mouse handling.
const (
	ZoneFrom    = "field_from"
	ZoneTo      = "field_to"
	ZonePurpose = "field_purpose"
	ZoneSearch  = "btn_search"
	ZoneReset   = "btn_reset"
)

// FieldZone maps a hub control to its zone ID.
func FieldZone(f state.Field) string {
	switch f {
	case state.FieldFrom:
		return ZoneFrom
	case state.FieldTo:
		return ZoneTo
	case state.FieldPurpose:
		return ZonePurpose
	case state.FieldSearch:
		return ZoneSearch
	case state.FieldReset:
		return ZoneReset
	}
	return ""
}

// RenderItem draws one requirement row: icon, type, status badge, then the
// requirement text underneath.
func RenderItem(it output.Item) string {
	title := fmt.Sprintf("%s %s %s",
		styles.Glyph(it.Icon),
		lipgloss.NewStyle().Bold(true).Render(it.Type),
		styles.Badge(it.Style).Render(it.Status),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		styles.CopyStyle.PaddingLeft(2).Render(it.Requirement),
	)
}

// RenderSection draws a category card. width <= 0 lets the card size itself.
func RenderSection(sec output.Section, width int) string {
	heading := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.SectionColor(sec.Icon)).
		Render(styles.Glyph(sec.Icon) + " " + sec.Title)

	rows := []string{heading}
	for _, it := range sec.Items {
		rows = append(rows, "", RenderItem(it))
	}

	card := styles.CardStyle
	if width > 0 {
		card = card.Width(width)
	}
	return card.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
