package export

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/joseph-ayodele/posteingang/constants"
	"github.com/joseph-ayodele/posteingang/internal/entity"
	"github.com/joseph-ayodele/posteingang/internal/rules"
)

// German digraphs go first; everything else loses its diacritics via NFD.
var digraphs = strings.NewReplacer(
	"ä", "ae", "ö", "oe", "ü", "ue",
	"Ä", "Ae", "Ö", "Oe", "Ü", "Ue",
	"ß", "ss", "ẞ", "SS",
)

// BuildFilename returns the archive name of doc:
// {ref}_{mandant}_{opponent}_{date}_{keyword}.pdf
func BuildFilename(doc *entity.ExtractedDocument, ph rules.Placeholders) string {
	ref := ph.Reference
	if doc.InternalRef != "" {
		ref = refPart(doc.InternalRef)
	}

	date := ph.Date
	if !doc.DocumentDate.IsZero() {
		date = doc.DocumentDate.Format(constants.DateLayout)
	}

	keyword := ""
	if len(doc.Keywords) > 0 {
		keyword = Slug(doc.Keywords[0], ph.NameMaxLen)
	}

	parts := []string{
		ref,
		orPlaceholder(Slug(doc.Mandant, ph.NameMaxLen), ph.Name),
		orPlaceholder(Slug(doc.Opponent, ph.NameMaxLen), ph.Name),
		date,
		orPlaceholder(keyword, ph.Keyword),
	}
	return strings.Join(parts, "_") + ".pdf"
}

func refPart(ref string) string {
	ref = strings.ReplaceAll(ref, "/", "-")
	return strings.Map(func(r rune) rune {
		if isASCIIAlnum(r) || r == '-' {
			return r
		}
		return -1
	}, ref)
}

func orPlaceholder(v, placeholder string) string {
	if v == "" {
		return placeholder
	}
	return v
}

// Slug transliterates s to ASCII, drops everything but letters and digits,
// turns whitespace runs into a single underscore and caps the result at max
// runes (max <= 0 means no cap).
func Slug(s string, max int) string {
	s = digraphs.Replace(strings.TrimSpace(s))
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if out, _, err := transform.String(t, s); err == nil {
		s = out
	}

	var b strings.Builder
	pendingSep := false
	for _, r := range s {
		switch {
		case isASCIIAlnum(r):
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		case unicode.IsSpace(r):
			pendingSep = true
		}
	}

	out := b.String()
	if max > 0 && len(out) > max {
		out = strings.TrimRight(out[:max], "_")
	}
	return out
}

func isASCIIAlnum(r rune) bool {
	return r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r))
}

// uniqueNames returns one archive name per document, in order. Repeated names
// get _2, _3, ... before the extension.
func uniqueNames(docs []*entity.ExtractedDocument) []string {
	seen := make(map[string]int, len(docs))
	out := make([]string, len(docs))
	for i, d := range docs {
		name := d.FileName
		seen[name]++
		if n := seen[name]; n > 1 {
			base, ext := splitExt(name)
			candidate := base + "_" + strconv.Itoa(n) + ext
			for seen[candidate] > 0 {
				seen[name]++
				candidate = base + "_" + strconv.Itoa(seen[name]) + ext
			}
			seen[candidate]++
			name = candidate
		}
		out[i] = name
	}
	return out
}

func splitExt(name string) (string, string) {
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		return name[:i], name[i:]
	}
	return name, ""
}
