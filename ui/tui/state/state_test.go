package state

import (
	"testing"

	"travelhub/internal/search"
)

func TestFocusable(t *testing.T) {
	s := AppState{}
	if got := len(s.Focusable()); got != 4 {
		t.Errorf("Expected 4 focusable fields while idle, got %d", got)
	}

	s.Search = search.Initial().WithFrom("Japan").WithTo("France").Search()
	fields := s.Focusable()
	if len(fields) != 5 || fields[4] != FieldReset {
		t.Errorf("Expected reset control to be focusable with results shown, got %v", fields)
	}
}

func TestMoveFocus(t *testing.T) {
	tests := []struct {
		name    string
		start   Field
		delta   int
		results bool
		want    Field
	}{
		{"next", FieldFrom, 1, false, FieldTo},
		{"wrap forward idle", FieldSearch, 1, false, FieldFrom},
		{"wrap forward shown", FieldSearch, 1, true, FieldReset},
		{"wrap backward", FieldFrom, -1, false, FieldSearch},
		{"wrap backward shown", FieldFrom, -1, true, FieldReset},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := AppState{Focus: tt.start}
			if tt.results {
				s.Search = search.Initial().WithFrom("Japan").WithTo("France").Search()
			}
			if got := s.MoveFocus(tt.delta).Focus; got != tt.want {
				t.Errorf("MoveFocus(%d) from %v = %v; want %v", tt.delta, tt.start, got, tt.want)
			}
		})
	}
}
