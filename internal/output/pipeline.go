package output

import (
	"fmt"

	"travelhub/internal/catalog"
	"travelhub/internal/search"
)

// Query is an unparsed selection coming from a flag set or a tool call.
type Query struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Purpose string `json:"purpose,omitempty"`
}

// Run executes the full selection pipeline for surfaces without an
// interactive view: Parse -> Select -> Search -> Build. A query missing a
// country runs the guarded search as a no-op and returns nil Results with the
// resulting state; only names outside the catalogs are errors.
func Run(q Query) (*Results, search.State, error) {
	from, err := catalog.ParseCountry(q.From)
	if err != nil {
		return nil, search.State{}, fmt.Errorf("parse from: %w", err)
	}
	to, err := catalog.ParseCountry(q.To)
	if err != nil {
		return nil, search.State{}, fmt.Errorf("parse to: %w", err)
	}
	purpose, err := catalog.ParsePurpose(q.Purpose)
	if err != nil {
		return nil, search.State{}, fmt.Errorf("parse purpose: %w", err)
	}

	st := search.Initial().
		WithFrom(from).
		WithTo(to).
		WithPurpose(purpose).
		Search()

	return BuildResults(st), st, nil
}
