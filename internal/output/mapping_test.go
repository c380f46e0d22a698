package output

import (
	"testing"

	"travelhub/internal/catalog"

	"github.com/stretchr/testify/assert"
)

func TestStyleForStatus(t *testing.T) {
	tests := []struct {
		status catalog.Status
		want   StyleToken
	}{
		{catalog.StatusRequired, StyleDestructive},
		{catalog.StatusRecommended, StyleAccent},
		{catalog.StatusImportant, StyleSecondary},
		{catalog.StatusWarning, StyleCaution},
		{catalog.StatusInfo, StyleMuted},
		{catalog.Status(""), StyleMuted},
		{catalog.Status("REQUIRED"), StyleMuted},
		{catalog.Status("bogus"), StyleMuted},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StyleForStatus(tt.status), "status %q", tt.status)
		// deterministic
		assert.Equal(t, StyleForStatus(tt.status), StyleForStatus(tt.status))
	}
}

func TestIconForType(t *testing.T) {
	tests := []struct {
		label string
		want  IconToken
	}{
		{"Passport", IconDocument},
		{"VISA", IconDocument},
		{"travel insurance", IconDocument},
		{"Vaccinations", IconHealth},
		{"COVID-19", IconHealth},
		{"Health Insurance", IconHealth},
		{"Currency", IconShield},
		{"alcohol", IconShield},
		{"Tobacco", IconShield},
		{"Dress Code", IconWarning},
		{"Photography", IconWarning},
		{"Tipping", IconWarning},
		{"", IconWarning},
		{" Passport", IconWarning},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IconForType(tt.label), "label %q", tt.label)
	}
}

func TestFixtureIcons(t *testing.T) {
	for _, cat := range catalog.Categories() {
		for _, it := range catalog.Requirements(cat) {
			icon := IconForType(it.Type)
			if cat == catalog.CategoryCultural {
				assert.Equal(t, IconWarning, icon, "%s should use the default icon", it.Type)
				continue
			}
			assert.NotEqual(t, IconWarning, icon, "%s fell through to the default icon", it.Type)
			assert.Equal(t, IconForCategory(cat), icon)
		}
	}
}
