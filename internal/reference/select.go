package reference

import (
	"github.com/joseph-ayodele/posteingang/internal/entity"
	"github.com/joseph-ayodele/posteingang/internal/registry"
)

// Selection is the primary internal reference of a document.
type Selection struct {
	InternalRef string
	Stem        string
	Suffix      string
	Entry       *entity.RegistryEntry // nil when the registry has no such case
}

// SelectPrimary picks the first candidate (in scan order) whose stem is in
// the registry; a candidate without its own suffix then borrows the
// registry's staff code. Without any registry hit the first candidate wins
// as found. No candidates yields the zero Selection.
func SelectPrimary(cands []Candidate, idx *registry.Index) Selection {
	for _, c := range cands {
		e := idx.Lookup(c.Stem)
		if e == nil {
			continue
		}
		suffix := c.Suffix()
		if suffix == "" {
			suffix = e.StaffCode
		}
		return Selection{InternalRef: c.Stem + suffix, Stem: c.Stem, Suffix: suffix, Entry: e}
	}
	if len(cands) == 0 {
		return Selection{}
	}
	c := cands[0]
	return Selection{InternalRef: c.Ref(), Stem: c.Stem, Suffix: c.Suffix()}
}
