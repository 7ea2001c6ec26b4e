package metadata

import (
	"github.com/joseph-ayodele/posteingang/constants"
	"github.com/joseph-ayodele/posteingang/internal/rules"
	"github.com/joseph-ayodele/posteingang/internal/textutil"
)

// DetectSenderType checks the court, authority and insurer keyword sets in
// that order; the first set with a keyword ending a word of text wins
// ("Finanzgericht" is a court, "courtesy" is not).
func DetectSenderType(text string, kw rules.SenderKeywords) constants.SenderType {
	for _, t := range constants.SenderPriority() {
		for _, k := range kw.For(t) {
			if textutil.HasWordSuffixFold(text, k) {
				return t
			}
		}
	}
	return constants.SenderOther
}
