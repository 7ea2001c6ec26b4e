package metadata

import (
	"regexp"
	"strings"

	"github.com/joseph-ayodele/posteingang/internal/entity"
	"github.com/joseph-ayodele/posteingang/internal/rules"
	"github.com/joseph-ayodele/posteingang/internal/textutil"
)

// "Müller ./. Schmidt" is the German shorthand for "Müller versus Schmidt".
const versus = "./."

var reVersusLine = regexp.MustCompile(`([^\n]+?)\s*\./\.\s*([^\n]+)`)

// Parties are the client (Mandant) and the opposing party of a case.
type Parties struct {
	Mandant  string
	Opponent string
}

// ExtractParties prefers the registry: its short designation "A ./. B", or
// the designation as client plus the dedicated opponent column. Without a
// registry row the first "A ./. B" line of the text is used.
func ExtractParties(text string, entry *entity.RegistryEntry, cols rules.RegistryColumns) Parties {
	if entry != nil {
		designation := entry.Field(cols.ShortDesignation)
		if a, b, ok := splitVersus(designation); ok {
			return Parties{Mandant: a, Opponent: b}
		}
		return Parties{
			Mandant:  strings.TrimSpace(designation),
			Opponent: strings.TrimSpace(entry.Field(cols.Opponent)),
		}
	}

	m := reVersusLine.FindStringSubmatch(text)
	if m == nil {
		return Parties{}
	}
	return Parties{
		Mandant:  textutil.FirstLine(m[1]),
		Opponent: textutil.FirstLine(m[2]),
	}
}

func splitVersus(s string) (string, string, bool) {
	i := strings.Index(s, versus)
	if i < 0 {
		return "", "", false
	}
	return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+len(versus):]), true
}
