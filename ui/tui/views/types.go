package views

import (
	"travelhub/ui/tui/state"
)

// ViewProps contains UI-specific properties provided by the Controller.
type ViewProps struct {
	Width, Height int
	ScrollY       int

	PickerView string // open picker, empty when closed
	HelpView   string
}

// View is a page of the travel hub. Render must be a pure function of its
// arguments.
type View interface {
	Render(s state.AppState, props ViewProps) string
}

var pages = map[state.Page]View{
	state.PageHub:     HubView{},
	state.PageWelcome: WelcomeView{},
}

// ForPage returns the view hosting page p, falling back to the hub.
func ForPage(p state.Page) View {
	if v, ok := pages[p]; ok {
		return v
	}
	return HubView{}
}
