package views

import (
	"travelhub/ui/tui/state"
	"travelhub/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

type welcomeCard struct {
	Title, Summary, Body, Action string
}

var welcomeCards = []welcomeCard{
	{
		Title:   "Refine & Customize",
		Summary: "Tweak the design, animations, and layouts via prompts or visual edits.",
		Body:    "Select elements directly on the page and make instant changes to text, colors, fonts, or use prompts for complex adjustments.",
		Action:  "Try Visual Edits",
	},
	{
		Title:   "Master Prompting",
		Summary: "Use chat mode to plan out your project without making edits.",
		Body:    "Use clear, detailed, and iterative prompts for best results. Break down complex features into smaller, manageable steps.",
		Action:  "Learn More",
	},
	{
		Title:   "GitHub Sync",
		Summary: "Transfer your project's code to GitHub for two-way sync of edits.",
		Body:    "Connect your GitHub account to automatically sync changes between the editor and your repository in real-time.",
		Action:  "Connect GitHub",
	},
	{
		Title:   "Supabase Integration",
		Summary: "Need to save information, add user accounts, or connect with other services?",
		Body:    "Supabase is a simple way to add these features without complex technical setup. Get authentication, databases, and APIs instantly.",
		Action:  "Connect Supabase",
	},
}

// WelcomeView is the static onboarding page of the project template.
type WelcomeView struct{}

func (v WelcomeView) Render(s state.AppState, props ViewProps) string {
	header := styles.TitleStyle.Width(props.Width).Render("Welcome to Your Project")
	sub := styles.CopyStyle.Padding(1, 2, 0).Render("Discover the powerful features at your fingertips")

	cardW := 40
	if props.Width >= twoColumnWidth {
		cardW = props.Width/2 - 6
	}

	cards := make([]string, 0, len(welcomeCards))
	for _, c := range welcomeCards {
		cards = append(cards, styles.CardStyle.Width(cardW).Render(lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Render(c.Title),
			styles.CopyStyle.Render(c.Summary),
			"",
			c.Body,
			"",
			lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Render(c.Action),
		)))
	}

	var grid string
	if props.Width >= twoColumnWidth {
		grid = lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.JoinHorizontal(lipgloss.Top, cards[0], cards[1]),
			lipgloss.JoinHorizontal(lipgloss.Top, cards[2], cards[3]),
		)
	} else {
		grid = lipgloss.JoinVertical(lipgloss.Left, cards...)
	}

	footer := lipgloss.NewStyle().Padding(1, 2).Foreground(styles.Muted).Render("Press 'b' to go back")
	page := lipgloss.JoinVertical(lipgloss.Left, header, sub, grid, footer)
	return scroll(zone.Scan(page), props.Height, props.ScrollY)
}
