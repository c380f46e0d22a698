package styles

import (
	"testing"

	"travelhub/internal/output"
)

func TestGlyph(t *testing.T) {
	tests := []struct {
		icon output.IconToken
		want string
	}{
		{output.IconDocument, "▤"},
		{output.IconHealth, "♥"},
		{output.IconShield, "◈"},
		{output.IconWarning, "▲"},
		{output.IconToken("unknown"), "▲"},
	}
	for _, tt := range tests {
		if got := Glyph(tt.icon); got != tt.want {
			t.Errorf("Glyph(%q) = %q; want %q", tt.icon, got, tt.want)
		}
	}
}

func TestBadgeRendersText(t *testing.T) {
	for _, tok := range []output.StyleToken{
		output.StyleDestructive, output.StyleAccent, output.StyleSecondary,
		output.StyleCaution, output.StyleMuted, output.StyleToken("other"),
	} {
		if got := Badge(tok).Render("required"); got == "" {
			t.Errorf("Badge(%q) rendered nothing", tok)
		}
	}
}
