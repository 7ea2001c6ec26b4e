package metadata

import (
	"sort"

	"github.com/joseph-ayodele/posteingang/internal/textutil"
)

// ExtractKeywords returns the vocabulary words occurring in text as whole
// words, ignoring case, ordered by first occurrence. Spelling follows the
// vocabulary, not the text.
func ExtractKeywords(text string, vocabulary []string) []string {
	type hit struct {
		word string
		pos  int
	}
	var hits []hit
	seen := map[string]bool{}
	for _, w := range vocabulary {
		if seen[w] {
			continue
		}
		seen[w] = true
		if pos := textutil.IndexWordFold(text, w); pos >= 0 {
			hits = append(hits, hit{word: w, pos: pos})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	out := make([]string, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.word)
	}
	return out
}
