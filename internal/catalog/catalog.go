// Package catalog holds the fixed vocabularies of the travel hub: the country
// list, travel purposes and the sample requirement fixture.
package catalog

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	ErrUnknownCountry = errors.New("unknown country")
	ErrUnknownPurpose = errors.New("unknown travel purpose")
)

// Country is a name from the fixed country catalog. The zero value means
// "not selected".
type Country string

var countries = []Country{
	"United States", "United Kingdom", "Canada", "Australia", "Germany", "France", "Italy", "Spain",
	"Japan", "South Korea", "China", "India", "Brazil", "Mexico", "Argentina", "South Africa",
	"Egypt", "Morocco", "Thailand", "Singapore", "Malaysia", "Indonesia", "Philippines", "Vietnam",
	"Russia", "Turkey", "Greece", "Portugal", "Netherlands", "Belgium", "Switzerland", "Austria",
	"Sweden", "Norway", "Denmark", "Finland", "Poland", "Czech Republic", "Hungary", "Romania",
}

// Countries returns the catalog in display order.
func Countries() []Country {
	out := make([]Country, len(countries))
	copy(out, countries)
	return out
}

// IsCountry reports whether name is a catalog member, spelled exactly.
func IsCountry(name string) bool {
	for _, c := range countries {
		if string(c) == name {
			return true
		}
	}
	return false
}

// ParseCountry resolves user input to its catalog spelling, ignoring case and
// surrounding whitespace. Empty input means "not selected".
func ParseCountry(name string) (Country, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil
	}
	for _, c := range countries {
		if strings.EqualFold(string(c), name) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCountry, name)
}

// Purpose is the optional reason for travel. The zero value means unset.
type Purpose string

const (
	PurposeTourism  Purpose = "tourism"
	PurposeBusiness Purpose = "business"
	PurposeStudy    Purpose = "study"
	PurposeWork     Purpose = "work"
	PurposeTransit  Purpose = "transit"
)

var purposes = []Purpose{PurposeTourism, PurposeBusiness, PurposeStudy, PurposeWork, PurposeTransit}

func Purposes() []Purpose {
	out := make([]Purpose, len(purposes))
	copy(out, purposes)
	return out
}

func ParsePurpose(s string) (Purpose, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	for _, p := range purposes {
		if strings.EqualFold(string(p), s) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPurpose, s)
}

// Label returns the purpose with its first character upper-cased.
func (p Purpose) Label() string {
	return Capitalize(string(p))
}

// Capitalize upper-cases the first rune of s and leaves the rest untouched.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
