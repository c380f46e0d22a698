package views

import (
	"travelhub/ui/tui/state"
)

// RenderPage renders whichever page s currently shows.
func RenderPage(s state.AppState, width, height, scrollY int, pickerView, helpView string) string {
	return ForPage(s.CurrentPage).Render(s, ViewProps{
		Width:      width,
		Height:     height,
		ScrollY:    scrollY,
		PickerView: pickerView,
		HelpView:   helpView,
	})
}

func RenderHub(s state.AppState, width, height, scrollY int, pickerView, helpView string) string {
	s.CurrentPage = state.PageHub
	return RenderPage(s, width, height, scrollY, pickerView, helpView)
}

// HubMaxScroll is how far the hub page can scroll on the current screen.
func HubMaxScroll(s state.AppState, width, height int, pickerView, helpView string) int {
	v := HubView{}
	content := v.Content(s, ViewProps{
		Width:      width,
		PickerView: pickerView,
		HelpView:   helpView,
	})
	return MaxScroll(content, height)
}

func RenderWelcome(width, height, scrollY int) string {
	return RenderPage(state.AppState{CurrentPage: state.PageWelcome}, width, height, scrollY, "", "")
}
