package output

import (
	"strings"

	"travelhub/internal/catalog"
)

// StyleToken names the badge style for a requirement status. Renderers decide
// what each token looks like.
type StyleToken string

const (
	StyleDestructive StyleToken = "destructive"
	StyleAccent      StyleToken = "accent"
	StyleSecondary   StyleToken = "secondary"
	StyleCaution     StyleToken = "caution"
	StyleMuted       StyleToken = "muted"
)

// IconToken names the icon drawn next to a requirement row.
type IconToken string

const (
	IconDocument IconToken = "document"
	IconHealth   IconToken = "health"
	IconShield   IconToken = "shield"
	IconWarning  IconToken = "warning"
)

// StyleForStatus maps every status to its badge style. Values outside the
// enumeration get the info style.
func StyleForStatus(s catalog.Status) StyleToken {
	switch s {
	case catalog.StatusRequired:
		return StyleDestructive
	case catalog.StatusRecommended:
		return StyleAccent
	case catalog.StatusImportant:
		return StyleSecondary
	case catalog.StatusWarning:
		return StyleCaution
	case catalog.StatusInfo:
		return StyleMuted
	default:
		return StyleMuted
	}
}

// IconForType picks the row icon from a requirement type label, ignoring case.
// Labels outside the document, health and customs sets fall back to the
// warning icon.
func IconForType(label string) IconToken {
	switch strings.ToLower(label) {
	case "passport", "visa", "travel insurance":
		return IconDocument
	case "vaccinations", "covid-19", "health insurance":
		return IconHealth
	case "currency", "alcohol", "tobacco":
		return IconShield
	default:
		return IconWarning
	}
}

// IconForCategory is the icon shown in a group's title bar.
func IconForCategory(c catalog.Category) IconToken {
	switch c {
	case catalog.CategoryDocuments:
		return IconDocument
	case catalog.CategoryHealth:
		return IconHealth
	case catalog.CategoryCustoms:
		return IconShield
	default:
		return IconWarning
	}
}
