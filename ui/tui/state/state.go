package state

import (
	"travelhub/internal/search"
)

type Page int

const (
	PageHub     Page = iota
	PageWelcome // onboarding boilerplate
)

func (p Page) String() string {
	if p == PageWelcome {
		return "welcome"
	}
	return "hub"
}

// Field identifies a focusable control on the hub page, in focus order.
type Field int

const (
	FieldFrom Field = iota
	FieldTo
	FieldPurpose
	FieldSearch
	FieldReset // only focusable while results are visible
)

func (f Field) String() string {
	switch f {
	case FieldFrom:
		return "from"
	case FieldTo:
		return "to"
	case FieldPurpose:
		return "purpose"
	case FieldSearch:
		return "search"
	case FieldReset:
		return "reset"
	}
	return "unknown"
}

// AppState holds everything the views render from.
type AppState struct {
	Search      search.State
	CurrentPage Page
	Focus       Field
}

// Focusable lists the controls that can take focus right now.
func (s AppState) Focusable() []Field {
	fields := []Field{FieldFrom, FieldTo, FieldPurpose, FieldSearch}
	if s.Search.ResultsVisible {
		fields = append(fields, FieldReset)
	}
	return fields
}

// MoveFocus cycles focus by delta over the focusable controls.
func (s AppState) MoveFocus(delta int) AppState {
	fields := s.Focusable()
	idx := 0
	for i, f := range fields {
		if f == s.Focus {
			idx = i
			break
		}
	}
	idx = ((idx+delta)%len(fields) + len(fields)) % len(fields)
	s.Focus = fields[idx]
	return s
}
