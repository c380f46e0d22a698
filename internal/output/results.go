// Package output turns a search state into render-ready sections. Nothing in
// here prints; the TUI, the console report and the MCP server all draw from
// the same Results value.
package output

import (
	"fmt"

	"travelhub/internal/catalog"
	"travelhub/internal/search"
)

type Item struct {
	Icon        IconToken  `json:"icon"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	Style       StyleToken `json:"style"`
	Requirement string     `json:"requirement"`
}

type Section struct {
	ID    catalog.Category `json:"id"`
	Title string           `json:"title"`
	Icon  IconToken        `json:"icon"`
	Items []Item           `json:"items"`
}

type Results struct {
	Header      string    `json:"header"`
	PurposeLine string    `json:"purpose_line,omitempty"`
	Sections    []Section `json:"sections"`
}

// HeaderFor is the results caption for a country pair.
func HeaderFor(from, to catalog.Country) string {
	return fmt.Sprintf("Travel Requirements: %s → %s", from, to)
}

// PurposeLineFor returns the purpose caption, or "" when no purpose is set.
func PurposeLineFor(p catalog.Purpose) string {
	if p == "" {
		return ""
	}
	return "Purpose: " + p.Label()
}

// BuildResults returns nil while results are hidden. Otherwise it lists every
// fixture item of every category in declaration order; the selected countries
// and purpose only feed the captions.
func BuildResults(s search.State) *Results {
	if !s.ResultsVisible {
		return nil
	}

	res := &Results{
		Header:      HeaderFor(s.From, s.To),
		PurposeLine: PurposeLineFor(s.Purpose),
	}

	for _, cat := range catalog.Categories() {
		sec := Section{
			ID:    cat,
			Title: cat.Title(),
			Icon:  IconForCategory(cat),
		}
		for _, req := range catalog.Requirements(cat) {
			sec.Items = append(sec.Items, Item{
				Icon:        IconForType(req.Type),
				Type:        req.Type,
				Status:      string(req.Status),
				Style:       StyleForStatus(req.Status),
				Requirement: req.Requirement,
			})
		}
		res.Sections = append(res.Sections, sec)
	}
	return res
}

func (r Results) SectionByID(id catalog.Category) *Section {
	for i := range r.Sections {
		if r.Sections[i].ID == id {
			return &r.Sections[i]
		}
	}
	return nil
}

func (s Section) ItemByType(label string) *Item {
	for i := range s.Items {
		if s.Items[i].Type == label {
			return &s.Items[i]
		}
	}
	return nil
}
