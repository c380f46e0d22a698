package views

import (
	"strings"

	"travelhub/internal/output"
	"travelhub/ui/tui/state"
	"travelhub/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

const (
	SearchLabel = "Get Travel Requirements"
	ResetLabel  = "New Search"

	// Below this width the result cards stack in one column.
	twoColumnWidth = 90
)

type HubView struct{}

// Render scans zones over the whole page before scrolling: zone coordinates
// are page coordinates, and mouse events must be offset by ScrollY.
func (v HubView) Render(s state.AppState, props ViewProps) string {
	return scroll(zone.Scan(v.Content(s, props)), props.Height, props.ScrollY)
}

// Content is the whole page before scrolling is applied.
func (v HubView) Content(s state.AppState, props ViewProps) string {
	header := styles.TitleStyle.Width(props.Width).Render("✈  GLOBAL TRAVEL HUB")
	tagline := styles.CopyStyle.Padding(1, 2, 0).
		Render("Your personal border-control advisor. Get instant travel requirements, visa info, and cultural insights for any destination.")

	form := v.renderForm(s, props)

	parts := []string{header, tagline, form}
	if res := output.BuildResults(s.Search); res != nil {
		parts = append(parts, v.renderResults(*res, props.Width))
	}
	if props.HelpView != "" {
		parts = append(parts, lipgloss.NewStyle().Padding(1, 2).Render(props.HelpView))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (v HubView) renderForm(s state.AppState, props ViewProps) string {
	sel := s.Search

	from := selectBox(s, state.FieldFrom, "From", string(sel.From), "Select departure country")
	to := selectBox(s, state.FieldTo, "To", string(sel.To), "Select destination country")
	purpose := selectBox(s, state.FieldPurpose, "Purpose (Optional)", sel.Purpose.Label(), "Select travel purpose")

	buttons := []string{searchButton(s)}
	if sel.ResultsVisible {
		buttons = append(buttons, button(s, state.FieldReset, ResetLabel, true))
	}

	rows := []string{
		lipgloss.NewStyle().Bold(true).Foreground(styles.BrandColor).Render("◉ Plan Your Journey"),
		styles.CopyStyle.Render("Select your departure and destination countries to get personalized travel requirements"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, from, "  ", to),
		purpose,
	}
	if props.PickerView != "" {
		rows = append(rows, props.PickerView)
	}
	rows = append(rows, "", lipgloss.JoinHorizontal(lipgloss.Top, buttons...))

	card := styles.CardStyle
	if props.Width > 4 {
		card = card.Width(props.Width - 4)
	}
	return card.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (v HubView) renderResults(res output.Results, width int) string {
	captions := []string{lipgloss.NewStyle().Bold(true).Render(res.Header)}
	if res.PurposeLine != "" {
		captions = append(captions, styles.CopyStyle.Render(res.PurposeLine))
	}
	heading := lipgloss.NewStyle().Padding(1, 2, 0).Render(lipgloss.JoinVertical(lipgloss.Left, captions...))

	var grid string
	if width >= twoColumnWidth {
		cardW := width/2 - 6
		var rows []string
		for i := 0; i < len(res.Sections); i += 2 {
			left := RenderSection(res.Sections[i], cardW)
			right := ""
			if i+1 < len(res.Sections) {
				right = RenderSection(res.Sections[i+1], cardW)
			}
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, left, right))
		}
		grid = lipgloss.JoinVertical(lipgloss.Left, rows...)
	} else {
		cardW := 0
		if width > 4 {
			cardW = width - 6
		}
		cards := make([]string, 0, len(res.Sections))
		for _, sec := range res.Sections {
			cards = append(cards, RenderSection(sec, cardW))
		}
		grid = lipgloss.JoinVertical(lipgloss.Left, cards...)
	}

	return lipgloss.JoinVertical(lipgloss.Left, heading, grid)
}

func selectBox(s state.AppState, f state.Field, label, value, placeholder string) string {
	text := value
	valStyle := lipgloss.NewStyle()
	if text == "" {
		text = placeholder
		valStyle = valStyle.Foreground(styles.Muted)
	}

	border := lipgloss.Color("#444")
	if s.Focus == f {
		border = styles.BrandColor
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(34).
		Render(valStyle.Render(text) + " ▾")

	return zone.Mark(FieldZone(f), lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(label),
		box,
	))
}

func searchButton(s state.AppState) string {
	return button(s, state.FieldSearch, SearchLabel, s.Search.CanSearch())
}

func button(s state.AppState, f state.Field, label string, enabled bool) string {
	st := lipgloss.NewStyle().Padding(0, 2).MarginRight(2).Border(lipgloss.RoundedBorder())
	switch {
	case !enabled:
		st = st.Foreground(styles.Muted).BorderForeground(styles.Subtle)
	case s.Focus == f:
		st = st.Bold(true).Foreground(lipgloss.Color("#FFF")).Background(styles.BrandColor).BorderForeground(styles.BrandColor)
	default:
		st = st.BorderForeground(styles.Highlight)
	}
	return zone.Mark(FieldZone(f), st.Render(label))
}

// scroll keeps height lines of content starting at offset. A non-positive
// height returns the content unchanged.
func scroll(content string, height, offset int) string {
	if height <= 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	total := len(lines)

	if offset > total-height {
		offset = total - height
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + height
	if end > total {
		end = total
	}
	return strings.Join(lines[offset:end], "\n")
}

// MaxScroll is the largest useful scroll offset for content on a screen of
// the given height.
func MaxScroll(content string, height int) int {
	if height <= 0 {
		return 0
	}
	n := strings.Count(content, "\n") + 1 - height
	if n < 0 {
		return 0
	}
	return n
}
