// Package search implements the selection state machine behind the travel
// requirements page.
package search

import "travelhub/internal/catalog"

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseResultsShown
)

func (p Phase) String() string {
	if p == PhaseResultsShown {
		return "results_shown"
	}
	return "idle"
}

// State is the user's in-progress selection. It is a value: every transition
// returns a new State and leaves the receiver untouched.
type State struct {
	From           catalog.Country
	To             catalog.Country
	Purpose        catalog.Purpose
	ResultsVisible bool
}

// Initial returns the state a freshly mounted view starts in.
func Initial() State {
	return State{}
}

// WithFrom sets the departure country. Visible results stay visible.
func (s State) WithFrom(c catalog.Country) State {
	s.From = c
	return s
}

// WithTo sets the destination country. Visible results stay visible.
func (s State) WithTo(c catalog.Country) State {
	s.To = c
	return s
}

// WithPurpose sets the travel purpose. Visible results stay visible.
func (s State) WithPurpose(p catalog.Purpose) State {
	s.Purpose = p
	return s
}

// CanSearch reports whether both countries are selected.
func (s State) CanSearch() bool {
	return s.From != "" && s.To != ""
}

// Search shows the results when both countries are selected and is a no-op
// otherwise.
func (s State) Search() State {
	if !s.CanSearch() {
		return s
	}
	s.ResultsVisible = true
	return s
}

// Reset clears every field regardless of the current phase.
func (s State) Reset() State {
	return Initial()
}

func (s State) Phase() Phase {
	if s.ResultsVisible {
		return PhaseResultsShown
	}
	return PhaseIdle
}
