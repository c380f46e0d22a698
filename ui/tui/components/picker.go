package components

import (
	"fmt"
	"math"

	"travelhub/ui/tui/styles"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

const defaultVisibleOptions = 8

// Picker is the drop-down list opened by a select control. It only offers its
// fixed options; there is no free-text entry.
type Picker struct {
	ID         string
	Title      string
	Options    []string
	Cursor     int
	AnimCursor float64
	MaxVisible int

	velocity float64
	spring   harmonica.Spring
}

// NewPicker opens a picker with the cursor on selected, or on the first
// option when nothing is selected yet.
func NewPicker(id, title string, options []string, selected string) *Picker {
	cursor := 0
	for i, o := range options {
		if o == selected {
			cursor = i
			break
		}
	}
	return &Picker{
		ID:         id,
		Title:      title,
		Options:    options,
		Cursor:     cursor,
		AnimCursor: float64(cursor),
		MaxVisible: defaultVisibleOptions,
		// Same tuning as the menu cursor: quick, without overshoot.
		spring: harmonica.NewSpring(harmonica.FPS(60), 12.0, 0.9),
	}
}

func (p *Picker) Init() tea.Cmd {
	return nil
}

func (p *Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			p.Move(-1)
		case "down", "j":
			p.Move(1)
		case "home":
			p.Cursor = 0
		case "end":
			p.Cursor = len(p.Options) - 1
		}
	}
	return p, nil
}

// Move shifts the cursor by delta, clamped to the option list.
func (p *Picker) Move(delta int) {
	p.Cursor += delta
	if p.Cursor < 0 {
		p.Cursor = 0
	}
	if p.Cursor > len(p.Options)-1 {
		p.Cursor = len(p.Options) - 1
	}
}

// Selected returns the option under the cursor.
func (p *Picker) Selected() string {
	if p.Cursor < 0 || p.Cursor >= len(p.Options) {
		return ""
	}
	return p.Options[p.Cursor]
}

// Step advances the highlight animation by one frame.
func (p *Picker) Step() {
	p.AnimCursor, p.velocity = p.spring.Update(p.AnimCursor, float64(p.Cursor), p.velocity)
}

// Settled reports whether the highlight has reached the cursor.
func (p *Picker) Settled() bool {
	return math.Abs(p.AnimCursor-float64(p.Cursor)) < 0.01 && math.Abs(p.velocity) < 0.01
}

// OptionZone is the bubblezone ID of option i.
func (p *Picker) OptionZone(i int) string {
	return fmt.Sprintf("%s_opt_%d", p.ID, i)
}

// Zones returns the zone id of every option, in option order.
func (p *Picker) Zones() []string {
	ids := make([]string, len(p.Options))
	for i := range p.Options {
		ids[i] = p.OptionZone(i)
	}
	return ids
}

// window returns the slice bounds of the options currently on screen.
func (p *Picker) window() (int, int) {
	n := len(p.Options)
	size := p.MaxVisible
	if size <= 0 || size > n {
		size = n
	}
	start := p.Cursor - size/2
	if start < 0 {
		start = 0
	}
	if start > n-size {
		start = n - size
	}
	return start, start + size
}

func (p *Picker) View() string {
	start, end := p.window()

	var rows []string
	for i := start; i < end; i++ {
		dist := math.Abs(float64(i) - p.AnimCursor)
		strength := 0.0
		if dist < 1.0 {
			strength = 1.0 - dist
		}

		style := lipgloss.NewStyle().PaddingLeft(1 + int(strength*2)).Width(32)
		prefix := "  "
		if i == p.Cursor {
			style = style.Bold(true).Foreground(styles.BrandColor)
			prefix = "› "
		} else {
			style = style.Foreground(styles.Muted)
		}
		rows = append(rows, zone.Mark(p.OptionZone(i), style.Render(prefix+p.Options[i])))
	}

	more := ""
	if start > 0 || end < len(p.Options) {
		more = lipgloss.NewStyle().Foreground(styles.Muted).
			Render(fmt.Sprintf("%d/%d", p.Cursor+1, len(p.Options)))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.BrandColor).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Render(p.Title),
			lipgloss.JoinVertical(lipgloss.Left, rows...),
			more,
		))
}
