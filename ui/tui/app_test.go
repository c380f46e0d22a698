package tui

import (
	"os"
	"strings"
	"testing"
	"time"

	"travelhub/internal/catalog"
	"travelhub/internal/config"
	"travelhub/internal/search"
	"travelhub/ui/tui/state"
	"travelhub/ui/tui/views"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/zap/zaptest"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func newModel(t *testing.T) *MainModel {
	t.Helper()
	m := InitialModel(config.Default(), zaptest.NewLogger(t))
	return &m
}

func press(t *testing.T, m *MainModel, keys ...string) *MainModel {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "shift+tab":
			msg = tea.KeyMsg{Type: tea.KeyShiftTab}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "pgdown":
			msg = tea.KeyMsg{Type: tea.KeyPgDown}
		case "pgup":
			msg = tea.KeyMsg{Type: tea.KeyPgUp}
		case "home":
			msg = tea.KeyMsg{Type: tea.KeyHome}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		updated, _ := m.Update(msg)
		m = updated.(*MainModel)
	}
	return m
}

// pick opens the picker on the focused select and moves down n options
// before confirming.
func pick(t *testing.T, m *MainModel, n int) *MainModel {
	t.Helper()
	m = press(t, m, "enter")
	if m.picker == nil {
		t.Fatalf("Expected picker to open on %v", m.state.Focus)
	}
	for i := 0; i < n; i++ {
		m = press(t, m, "down")
	}
	return press(t, m, "enter")
}

func indexOf(c catalog.Country) int {
	for i, x := range catalog.Countries() {
		if x == c {
			return i
		}
	}
	return -1
}

func TestInitialState(t *testing.T) {
	m := newModel(t)

	if m.state.CurrentPage != state.PageHub {
		t.Errorf("Expected initial page PageHub, got %v", m.state.CurrentPage)
	}
	if m.state.Search != search.Initial() {
		t.Errorf("Expected empty selection, got %+v", m.state.Search)
	}
	if m.state.Focus != state.FieldFrom {
		t.Errorf("Expected focus on From, got %v", m.state.Focus)
	}
}

func TestStartPageFromConfig(t *testing.T) {
	m := InitialModel(config.Default().WithStartPage(config.PageWelcome), nil)
	if m.state.CurrentPage != state.PageWelcome {
		t.Errorf("Expected PageWelcome, got %v", m.state.CurrentPage)
	}
}

func TestFocusNavigation(t *testing.T) {
	m := newModel(t)

	m = press(t, m, "tab")
	if m.state.Focus != state.FieldTo {
		t.Errorf("Expected focus To after tab, got %v", m.state.Focus)
	}
	m = press(t, m, "down", "down")
	if m.state.Focus != state.FieldSearch {
		t.Errorf("Expected focus Search, got %v", m.state.Focus)
	}
	m = press(t, m, "tab")
	if m.state.Focus != state.FieldFrom {
		t.Errorf("Expected focus to wrap to From while idle, got %v", m.state.Focus)
	}
	m = press(t, m, "shift+tab")
	if m.state.Focus != state.FieldSearch {
		t.Errorf("Expected focus to wrap back to Search, got %v", m.state.Focus)
	}
}

func TestPickerSelectsCountry(t *testing.T) {
	m := newModel(t)
	m = pick(t, m, indexOf("Japan"))

	if m.state.Search.From != "Japan" {
		t.Errorf("Expected From Japan, got %q", m.state.Search.From)
	}
	if m.picker != nil {
		t.Error("Expected picker closed after selection")
	}
}

func TestPickerEscCancels(t *testing.T) {
	m := newModel(t)
	m = press(t, m, "enter", "down", "esc")

	if m.picker != nil {
		t.Error("Expected esc to close the picker")
	}
	if m.state.Search.From != "" {
		t.Errorf("Expected From unchanged, got %q", m.state.Search.From)
	}
}

func TestSearchShowsFixtureGroups(t *testing.T) {
	m := newModel(t)
	m = pick(t, m, indexOf("Japan"))
	m = press(t, m, "tab")
	m = pick(t, m, indexOf("France"))
	m = press(t, m, "tab", "tab", "enter")

	if !m.state.Search.ResultsVisible {
		t.Fatal("Expected results to be visible after search")
	}

	out := m.View()
	if !strings.Contains(out, "Travel Requirements: Japan → France") {
		t.Errorf("Expected results header in view, got:\n%s", out)
	}
	for _, title := range []string{"Required Documents", "Health Requirements", "Customs & Restrictions", "Cultural Do's & Don'ts"} {
		if !strings.Contains(out, title) {
			t.Errorf("Expected %q group in view", title)
		}
	}
}

func TestSearchWithoutDestinationIgnored(t *testing.T) {
	m := newModel(t)
	m = pick(t, m, indexOf("Japan"))
	m = press(t, m, "tab", "tab", "tab")
	if m.state.Focus != state.FieldSearch {
		t.Fatalf("Expected focus on Search, got %v", m.state.Focus)
	}
	m = press(t, m, "enter")

	if m.state.Search.ResultsVisible {
		t.Error("Expected search without destination to be ignored")
	}
	if strings.Contains(m.View(), "Required Documents") {
		t.Error("Expected no groups to render")
	}
}

func TestPurposeCaption(t *testing.T) {
	m := newModel(t)
	m.state.Search = search.Initial().WithFrom("Japan").WithTo("France")
	m.state.Focus = state.FieldPurpose
	m = pick(t, m, 1)

	if m.state.Search.Purpose != catalog.PurposeBusiness {
		t.Fatalf("Expected purpose business, got %q", m.state.Search.Purpose)
	}

	m = press(t, m, "tab", "enter")
	if !strings.Contains(m.View(), "Purpose: Business") {
		t.Error("Expected capitalized purpose line")
	}
}

func TestResetClearsSelection(t *testing.T) {
	m := newModel(t)
	m.state.Search = search.Initial().WithFrom("Japan").WithTo("France").WithPurpose(catalog.PurposeStudy).Search()
	m.state.Focus = state.FieldReset

	m = press(t, m, "enter")

	if m.state.Search != search.Initial() {
		t.Errorf("Expected initial selection after reset, got %+v", m.state.Search)
	}
	if m.state.Focus != state.FieldFrom {
		t.Errorf("Expected focus back on From, got %v", m.state.Focus)
	}
	out := m.View()
	if strings.Contains(out, "New Search") || strings.Contains(out, "Required Documents") {
		t.Error("Expected results and reset control gone after reset")
	}
}

func TestEditKeepsStaleResults(t *testing.T) {
	m := newModel(t)
	m.state.Search = search.Initial().WithFrom("Japan").WithTo("France").Search()
	m.state.Focus = state.FieldTo

	// the picker opens on France; jump to the top of the list
	m = press(t, m, "enter", "home", "enter")

	if !m.state.Search.ResultsVisible {
		t.Error("Expected results to stay visible while editing")
	}
	if m.state.Search.To != "United States" {
		t.Errorf("Expected To United States, got %q", m.state.Search.To)
	}
	if !strings.Contains(m.View(), "Travel Requirements: Japan → United States") {
		t.Error("Expected the caption to follow the current selection")
	}
}

func TestPickerAnimationTicks(t *testing.T) {
	m := newModel(t)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(*MainModel)
	if cmd == nil {
		t.Fatal("Expected opening the picker to start the animation")
	}

	m = press(t, m, "down", "down")
	before := m.picker.AnimCursor
	updated, cmd = m.Update(AnimateMsg(time.Now()))
	m = updated.(*MainModel)
	if m.picker.AnimCursor <= before {
		t.Errorf("Expected highlight to move towards the cursor, got %f (was %f)", m.picker.AnimCursor, before)
	}
	if cmd == nil {
		t.Error("Expected another frame while the highlight is moving")
	}

	m = press(t, m, "esc")
	_, cmd = m.Update(AnimateMsg(time.Now()))
	if cmd != nil {
		t.Error("Expected animation to stop once the picker is closed")
	}
}

func TestPageTransition(t *testing.T) {
	m := newModel(t)

	m = press(t, m, "w")
	if m.state.CurrentPage != state.PageWelcome {
		t.Errorf("Expected page to change to PageWelcome, got %v", m.state.CurrentPage)
	}
	if !strings.Contains(m.View(), "Welcome to Your Project") {
		t.Error("Expected welcome page content")
	}

	m = press(t, m, "b")
	if m.state.CurrentPage != state.PageHub {
		t.Errorf("Expected page to change back to PageHub, got %v", m.state.CurrentPage)
	}
}

func TestScrolling(t *testing.T) {
	m := newModel(t)
	m.state.Search = search.Initial().WithFrom("Japan").WithTo("France").Search()
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})

	m = press(t, m, "pgdown")
	if m.scrollY != 10 {
		t.Errorf("Expected scroll 10 after pgdown, got %d", m.scrollY)
	}
	for i := 0; i < 50; i++ {
		m = press(t, m, "pgdown")
	}
	if m.scrollY != m.maxScroll() {
		t.Errorf("Expected scroll clamped at %d, got %d", m.maxScroll(), m.scrollY)
	}
	for i := 0; i < 50; i++ {
		m = press(t, m, "pgup")
	}
	if m.scrollY != 0 {
		t.Errorf("Expected scroll back at 0, got %d", m.scrollY)
	}
}

// zoneOf renders m and waits for the zone scanner to publish id.
func zoneOf(t *testing.T, m *MainModel, id string) *zone.ZoneInfo {
	t.Helper()
	zone.Clear(id)
	m.View()
	for i := 0; i < 100; i++ {
		time.Sleep(5 * time.Millisecond)
		if zone.Get(id) != nil {
			// let the rest of the scan land
			time.Sleep(20 * time.Millisecond)
			return zone.Get(id)
		}
	}
	t.Fatalf("Expected zone %q to be rendered", id)
	return nil
}

func click(t *testing.T, m *MainModel, x, y int) *MainModel {
	t.Helper()
	updated, _ := m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	return updated.(*MainModel)
}

func TestMouseClicks(t *testing.T) {
	japanFrance := search.Initial().WithFrom("Japan").WithTo("France")

	tests := []struct {
		name   string
		setup  func(t *testing.T, m *MainModel) *MainModel
		target func(m *MainModel) string
		check  func(t *testing.T, m *MainModel)
	}{
		{
			name:   "select opens its picker",
			target: func(*MainModel) string { return views.ZoneTo },
			check: func(t *testing.T, m *MainModel) {
				if m.picker == nil || m.pickerField != state.FieldTo {
					t.Fatalf("Expected the To picker to open, got field %v", m.pickerField)
				}
				if m.state.Focus != state.FieldTo {
					t.Errorf("Expected focus on To, got %v", m.state.Focus)
				}
			},
		},
		{
			name: "picker row chooses its option",
			setup: func(t *testing.T, m *MainModel) *MainModel {
				return press(t, m, "enter")
			},
			target: func(m *MainModel) string { return m.picker.OptionZone(2) },
			check: func(t *testing.T, m *MainModel) {
				if m.picker != nil {
					t.Error("Expected the picker to close")
				}
				if want := catalog.Countries()[2]; m.state.Search.From != want {
					t.Errorf("Expected From %q, got %q", want, m.state.Search.From)
				}
			},
		},
		{
			name: "disabled search does nothing",
			setup: func(t *testing.T, m *MainModel) *MainModel {
				m.state.Search = search.Initial().WithFrom("Japan")
				return m
			},
			target: func(*MainModel) string { return views.ZoneSearch },
			check: func(t *testing.T, m *MainModel) {
				if m.state.Search.ResultsVisible {
					t.Error("Expected search without destination to be ignored")
				}
				if m.picker != nil {
					t.Error("Expected no picker to open")
				}
			},
		},
		{
			name: "search shows results",
			setup: func(t *testing.T, m *MainModel) *MainModel {
				m.state.Search = japanFrance
				return m
			},
			target: func(*MainModel) string { return views.ZoneSearch },
			check: func(t *testing.T, m *MainModel) {
				if !m.state.Search.ResultsVisible {
					t.Error("Expected results after clicking search")
				}
			},
		},
		{
			name: "new search resets",
			setup: func(t *testing.T, m *MainModel) *MainModel {
				m.state.Search = japanFrance.Search()
				return m
			},
			target: func(*MainModel) string { return views.ZoneReset },
			check: func(t *testing.T, m *MainModel) {
				if m.state.Search != search.Initial() {
					t.Errorf("Expected initial selection, got %+v", m.state.Search)
				}
				if m.state.Focus != state.FieldFrom {
					t.Errorf("Expected focus back on From, got %v", m.state.Focus)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newModel(t)
			m.Init()
			m.Update(tea.WindowSizeMsg{Width: 100, Height: 80})
			if tt.setup != nil {
				m = tt.setup(t, m)
			}

			z := zoneOf(t, m, tt.target(m))
			m = click(t, m, z.StartX+1, z.StartY-m.visibleOffset())
			tt.check(t, m)
		})
	}
}

func TestMouseClickOnScrolledControl(t *testing.T) {
	m := newModel(t)
	m.Init()
	m.state.Search = search.Initial().WithFrom("Japan").WithTo("France").Search()
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 20})

	top := zoneOf(t, m, views.ZoneFrom)

	// label and top border of the From select scroll off screen
	m.scrollY = top.StartY + 2
	if m.scrollY > m.maxScroll() {
		t.Fatalf("Expected page to scroll past the From select, max %d", m.maxScroll())
	}

	z := zoneOf(t, m, views.ZoneFrom)
	if z.StartY != top.StartY {
		t.Errorf("Expected zone in page coordinates, got StartY %d (was %d)", z.StartY, top.StartY)
	}
	if lines := strings.Split(m.View(), "\n"); !strings.Contains(lines[0], "Japan") {
		t.Fatalf("Expected the From value on the first screen line, got %q", lines[0])
	}

	m = click(t, m, z.StartX+2, 0)
	if m.picker == nil || m.pickerField != state.FieldFrom {
		t.Error("Expected a click on the visible part of From to open its picker")
	}
}

func TestMouseWheelScrolls(t *testing.T) {
	m := newModel(t)
	m.Init()
	m.state.Search = search.Initial().WithFrom("Japan").WithTo("France").Search()
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 20})

	updated, _ := m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	m = updated.(*MainModel)
	if m.scrollY != 3 {
		t.Errorf("Expected wheel to scroll by 3, got %d", m.scrollY)
	}
}

func TestMouseIgnoredBeforeInit(t *testing.T) {
	m := newModel(t)
	updated, _ := m.Update(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = updated.(*MainModel)
	if m.picker != nil {
		t.Error("Expected mouse to be ignored before zones are ready")
	}
}

func TestQuit(t *testing.T) {
	m := newModel(t)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = updated.(*MainModel)
	if !m.quitting || cmd == nil {
		t.Error("Expected q to quit")
	}
	if m.View() != "Safe travels!\n" {
		t.Errorf("Unexpected goodbye view %q", m.View())
	}
}
