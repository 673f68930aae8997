package cli

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/custodia-labs/radar/internal/core/analysis"
	"github.com/custodia-labs/radar/internal/core/domain"
)

// Zone palette.
var (
	colorGood  = lipgloss.Color("#A6E3A1")
	colorWarn  = lipgloss.Color("#F9E2AF")
	colorBad   = lipgloss.Color("#F38BA8")
	colorMuted = lipgloss.Color("#6C7086")
)

var mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)

// zoneStyle colours a headline by how bad the zone is.
func zoneStyle(z domain.Zone) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)
	switch z.Rank() {
	case 0:
		return style.Foreground(colorGood)
	case 1:
		return style.Foreground(colorWarn)
	case 2:
		return style.Foreground(colorBad)
	default:
		return style
	}
}

// renderVerdict formats v for the terminal, recommendation included.
// With colour the headline line takes the zone colour and an AI verdict
// gets a muted footer.
func renderVerdict(v domain.Verdict, colour bool) string {
	text := analysis.Render(v, analysis.WithRecommendation())
	if !colour {
		return text
	}

	headline, rest, found := strings.Cut(text, "\n")
	out := zoneStyle(v.Zone).Render(headline)
	if found {
		out += "\n" + rest
	}
	if v.IsAI() {
		out += "\n\n" + mutedStyle.Render("(AI verdict)")
	}
	return out
}

// isTerminal reports whether v is an *os.File attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// colourEnabled reports whether styled output should go to w.
func colourEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isTerminal(w)
}
