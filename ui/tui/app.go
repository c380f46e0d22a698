package tui

import (
	"fmt"
	"time"

	"travelhub/internal/catalog"
	"travelhub/internal/config"
	"travelhub/ui/tui/components"
	"travelhub/ui/tui/state"
	"travelhub/ui/tui/views"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/zap"
)

// MainModel is the Bubble Tea Model acting as the Controller
type MainModel struct {
	cfg         config.Config
	log         *zap.Logger
	state       state.AppState
	keys        keyMap
	help        help.Model
	picker      *components.Picker
	pickerField state.Field
	animating   bool
	scrollY     int
	zonesReady  bool
	quitting    bool
	width       int
	height      int
}

// Messages
type AnimateMsg time.Time

func InitialModel(cfg config.Config, log *zap.Logger) MainModel {
	if log == nil {
		log = zap.NewNop()
	}

	page := state.PageHub
	if cfg.StartPage == config.PageWelcome {
		page = state.PageWelcome
	}

	return MainModel{
		cfg:  cfg,
		log:  log.With(zap.String("session_id", uuid.NewString())),
		keys: defaultKeyMap(),
		help: help.New(),
		state: state.AppState{
			CurrentPage: page,
			Focus:       state.FieldFrom,
		},
	}
}

func (m *MainModel) Init() tea.Cmd {
	zone.NewGlobal()
	m.zonesReady = true
	m.log.Debug("view mounted", zap.Stringer("page", m.state.CurrentPage))
	return nil
}

// Commands
func animateCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*16, func(t time.Time) tea.Msg {
		return AnimateMsg(t)
	})
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case AnimateMsg:
		return m.handleAnimateMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	return m, nil
}

func (m *MainModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.state.CurrentPage == state.PageWelcome {
		switch {
		case key.Matches(msg, m.keys.Back):
			m.showPage(state.PageHub)
		case key.Matches(msg, m.keys.PageUp):
			m.scrollBy(-m.pageStep())
		case key.Matches(msg, m.keys.PageDown):
			m.scrollBy(m.pageStep())
		}
		return m, nil
	}

	if m.picker != nil {
		return m.handlePickerKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		m.state = m.state.MoveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		m.state = m.state.MoveFocus(-1)
	case key.Matches(msg, m.keys.Activate):
		return m.activate(m.state.Focus)
	case key.Matches(msg, m.keys.PageUp):
		m.scrollBy(-m.pageStep())
	case key.Matches(msg, m.keys.PageDown):
		m.scrollBy(m.pageStep())
	case key.Matches(msg, m.keys.Welcome):
		m.showPage(state.PageWelcome)
	}
	return m, nil
}

func (m *MainModel) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", " ":
		m.choose(m.picker.Cursor)
		return m, nil
	case "esc":
		m.picker = nil
		return m, nil
	}
	m.picker.Update(msg)
	return m, m.startAnimation()
}

// activate performs the action of a hub control, as if it was clicked.
func (m *MainModel) activate(f state.Field) (tea.Model, tea.Cmd) {
	switch f {
	case state.FieldFrom, state.FieldTo, state.FieldPurpose:
		m.openPicker(f)
		return m, m.startAnimation()

	case state.FieldSearch:
		before := m.state.Search
		m.state.Search = before.Search()
		if !before.CanSearch() {
			m.log.Debug("search_ignored",
				zap.Bool("from_set", before.From != ""),
				zap.Bool("to_set", before.To != ""))
			return m, nil
		}
		m.log.Debug("search",
			zap.String("from", string(before.From)),
			zap.String("to", string(before.To)),
			zap.String("purpose", string(before.Purpose)))

	case state.FieldReset:
		if !m.state.Search.ResultsVisible {
			return m, nil
		}
		m.state.Search = m.state.Search.Reset()
		// the reset control is gone now
		m.state.Focus = state.FieldFrom
		m.scrollY = 0
		m.log.Debug("reset")
	}
	return m, nil
}

func (m *MainModel) openPicker(f state.Field) {
	sel := m.state.Search
	var title, current string
	var options []string

	switch f {
	case state.FieldFrom, state.FieldTo:
		title, current = "Select departure country", string(sel.From)
		if f == state.FieldTo {
			title, current = "Select destination country", string(sel.To)
		}
		for _, c := range catalog.Countries() {
			options = append(options, string(c))
		}
	case state.FieldPurpose:
		title, current = "Select travel purpose", sel.Purpose.Label()
		for _, p := range catalog.Purposes() {
			options = append(options, p.Label())
		}
	default:
		return
	}

	m.picker = components.NewPicker(views.FieldZone(f), title, options, current)
	m.pickerField = f
}

// choose applies option i of the open picker to its field and closes it.
func (m *MainModel) choose(i int) {
	sel := m.state.Search
	switch m.pickerField {
	case state.FieldFrom:
		if c := catalog.Countries(); i >= 0 && i < len(c) {
			sel = sel.WithFrom(c[i])
		}
	case state.FieldTo:
		if c := catalog.Countries(); i >= 0 && i < len(c) {
			sel = sel.WithTo(c[i])
		}
	case state.FieldPurpose:
		if p := catalog.Purposes(); i >= 0 && i < len(p) {
			sel = sel.WithPurpose(p[i])
		}
	}
	m.state.Search = sel
	m.picker = nil
	m.log.Debug("field_changed",
		zap.Stringer("field", m.pickerField),
		zap.String("from", string(sel.From)),
		zap.String("to", string(sel.To)),
		zap.String("purpose", string(sel.Purpose)))
}

func (m *MainModel) startAnimation() tea.Cmd {
	if m.animating || m.picker == nil {
		return nil
	}
	m.animating = true
	return animateCmd()
}

func (m *MainModel) handleAnimateMsg(msg AnimateMsg) (tea.Model, tea.Cmd) {
	if m.picker == nil {
		m.animating = false
		return m, nil
	}
	m.picker.Step()
	if m.picker.Settled() {
		m.animating = false
		return m, nil
	}
	return m, animateCmd()
}

func (m *MainModel) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.scrollBy(0)
	return m, nil
}

func (m *MainModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.cfg.Mouse || !m.zonesReady {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollBy(-3)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.scrollBy(3)
		return m, nil
	}

	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.state.CurrentPage != state.PageHub {
		return m, nil
	}

	// zones are in page coordinates
	msg.Y += m.visibleOffset()

	if m.picker != nil {
		for i, id := range m.picker.Zones() {
			if inZone(id, msg) {
				m.choose(i)
				return m, nil
			}
		}
		return m, nil
	}

	for _, f := range m.state.Focusable() {
		if inZone(views.FieldZone(f), msg) {
			m.state.Focus = f
			return m.activate(f)
		}
	}
	return m, nil
}

func inZone(id string, msg tea.MouseMsg) bool {
	z := zone.Get(id)
	return z != nil && z.InBounds(msg)
}

func (m *MainModel) showPage(p state.Page) {
	if m.state.CurrentPage == p {
		return
	}
	m.state.CurrentPage = p
	m.picker = nil
	m.scrollY = 0
	m.log.Debug("page_changed", zap.Stringer("page", p))
}

func (m *MainModel) pageStep() int {
	if m.height > 4 {
		return m.height / 2
	}
	return 10
}

func (m *MainModel) scrollBy(delta int) {
	m.scrollY += delta
	if limit := m.maxScroll(); m.scrollY > limit {
		m.scrollY = limit
	}
	if m.scrollY < 0 {
		m.scrollY = 0
	}
}

// visibleOffset is the scroll offset the view actually applies, which can be
// below scrollY after the page got shorter.
func (m *MainModel) visibleOffset() int {
	if limit := m.maxScroll(); m.scrollY > limit {
		return limit
	}
	return m.scrollY
}

func (m *MainModel) maxScroll() int {
	if m.state.CurrentPage == state.PageWelcome {
		return views.MaxScroll(views.RenderWelcome(m.width, 0, 0), m.height)
	}
	return views.HubMaxScroll(m.state, m.width, m.height, m.pickerView(), m.help.View(m.keys))
}

func (m *MainModel) pickerView() string {
	if m.picker == nil {
		return ""
	}
	return m.picker.View()
}

func (m *MainModel) View() string {
	if m.quitting {
		return "Safe travels!\n"
	}

	return views.RenderPage(m.state, m.width, m.height, m.scrollY, m.pickerView(), m.help.View(m.keys))
}

func Start(cfg config.Config, log *zap.Logger) error {
	m := InitialModel(cfg, log)

	var opts []tea.ProgramOption
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(&m, opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
