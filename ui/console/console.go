package console

import (
	"fmt"
	"io"
	"strings"

	"travelhub/internal/output"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorBlue   = "\033[34m"
	colorPurple = "\033[35m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
	colorCyan   = "\033[36m"
)

// Print renders the results to the writer in a compact format.
func Print(w io.Writer, res output.Results) {
	fmt.Fprintf(w, "%s%s %s%s\n", colorCyan, "■", res.Header, colorReset)
	if res.PurposeLine != "" {
		fmt.Fprintf(w, "  %s\n", res.PurposeLine)
	}

	for _, sec := range res.Sections {
		// Section Header
		fmt.Fprintf(w, "%s%s%s\n", colorCyan, "─ "+sec.Title, colorReset)

		for _, it := range sec.Items {
			label, dots := fitLabel(it.Type)

			// Format: "  ! Label............... [status] requirement"
			fmt.Fprintf(w, "  %s %s%s%s%s %s[%s]%s %s\n",
				iconFor(it.Icon),
				label, colorCyan, dots, colorReset,
				colorFor(it.Style), it.Status, colorReset,
				it.Requirement,
			)
		}
	}
	fmt.Fprintln(w)
}

const (
	labelWidth  = 20
	leaderWidth = 22
)

// fitLabel truncates a type label to labelWidth runes and returns the dot
// leader that pads it to leaderWidth.
func fitLabel(s string) (label, dots string) {
	r := []rune(s)
	if len(r) > labelWidth {
		r = append(r[:labelWidth-3:labelWidth-3], '.', '.', '.')
	}
	return string(r), strings.Repeat("·", leaderWidth-len(r))
}

func colorFor(style output.StyleToken) string {
	switch style {
	case output.StyleDestructive:
		return colorRed
	case output.StyleAccent:
		return colorBlue
	case output.StyleSecondary:
		return colorPurple
	case output.StyleCaution:
		return colorYellow
	default:
		return colorGray
	}
}

// iconFor keeps to single-width ASCII so the report lines up in any terminal.
func iconFor(icon output.IconToken) string {
	switch icon {
	case output.IconDocument:
		return "D"
	case output.IconHealth:
		return "+"
	case output.IconShield:
		return "$"
	default:
		return "!"
	}
}
