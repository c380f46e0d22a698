package components

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Component is a widget hosted by a page. Zones lists the bubblezone ids the
// widget marks in View, indexed the way the widget's own selection is.
type Component interface {
	tea.Model
	Zones() []string
}

var _ Component = (*Picker)(nil)
