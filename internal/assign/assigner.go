// Package assign decides which staff member a document goes to.
package assign

import (
	"strings"

	"github.com/joseph-ayodele/posteingang/internal/entity"
	"github.com/joseph-ayodele/posteingang/internal/rules"
	"github.com/joseph-ayodele/posteingang/internal/textutil"
)

// Rule names, recorded on every document as the reason for its assignment.
const (
	RuleRegistry  = "registry"
	RuleSuffix    = "reference-suffix"
	RuleTextToken = "text-token"
	RuleDomain    = "domain-keyword"
	RuleDefault   = "default"
)

// Input is everything a rule may look at.
type Input struct {
	Text   string
	Suffix string // suffix of the selected internal reference, e.g. "CVa"
	Entry  *entity.RegistryEntry
}

// Rule is one step of the cascade. Apply must be pure.
type Rule struct {
	Name  string
	Apply func(Input) (string, bool)
}

// Assigner evaluates its rules in order; the first hit wins.
// Registry data outranks document markers, which outrank content heuristics,
// which outrank the default.
type Assigner struct {
	rules    []Rule
	fallback string
}

func New(r *rules.Rules) *Assigner {
	return &Assigner{
		rules: []Rule{
			{Name: RuleRegistry, Apply: registryRule},
			{Name: RuleSuffix, Apply: suffixRule(r)},
			{Name: RuleTextToken, Apply: tokenRule(r.StaffCodes)},
			{Name: RuleDomain, Apply: domainRule(r.DomainStaff)},
		},
		fallback: r.DefaultStaff,
	}
}

// Assign returns the staff code and the name of the rule that produced it.
// The result is never empty.
func (a *Assigner) Assign(text, suffix string, entry *entity.RegistryEntry) (string, string) {
	in := Input{Text: text, Suffix: suffix, Entry: entry}
	for _, r := range a.rules {
		if code, ok := r.Apply(in); ok {
			return code, r.Name
		}
	}
	return a.fallback, RuleDefault
}

// Default returns the sentinel used when no rule fires.
func (a *Assigner) Default() string {
	return a.fallback
}

// Rules returns the cascade in evaluation order.
func (a *Assigner) Rules() []Rule {
	out := make([]Rule, len(a.rules))
	copy(out, a.rules)
	return out
}

func registryRule(in Input) (string, bool) {
	if in.Entry == nil || in.Entry.StaffCode == "" {
		return "", false
	}
	return in.Entry.StaffCode, true
}

// suffixRule accepts a known code, optionally followed by one disambiguating
// character ("CVa" -> "CV").
func suffixRule(r *rules.Rules) func(Input) (string, bool) {
	codes := r.StaffCodesByLength()
	return func(in Input) (string, bool) {
		for _, c := range codes {
			rest, ok := strings.CutPrefix(in.Suffix, c)
			if ok && len([]rune(rest)) <= 1 {
				return c, true
			}
		}
		return "", false
	}
}

// tokenRule checks the codes in their configured order, not in text order.
func tokenRule(codes []string) func(Input) (string, bool) {
	return func(in Input) (string, bool) {
		for _, c := range codes {
			if textutil.IndexWord(in.Text, c) >= 0 {
				return c, true
			}
		}
		return "", false
	}
}

// domainRule matches keywords at the start of a word so that compounds
// such as "Verkehrsunfall" count while "Arbeitsunfall" does not hit "unfall".
func domainRule(table []rules.DomainRule) func(Input) (string, bool) {
	return func(in Input) (string, bool) {
		for _, d := range table {
			for _, k := range d.Keywords {
				if textutil.HasWordPrefixFold(in.Text, k) {
					return d.Staff, true
				}
			}
		}
		return "", false
	}
}
