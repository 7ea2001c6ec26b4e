package assign

import (
	"testing"

	"github.com/joseph-ayodele/posteingang/internal/entity"
	"github.com/joseph-ayodele/posteingang/internal/rules"
)

func TestAssignCascade(t *testing.T) {
	a := New(rules.Default())
	reg := &entity.RegistryEntry{Key: "151/20", StaffCode: "M"}

	tests := []struct {
		name     string
		text     string
		suffix   string
		entry    *entity.RegistryEntry
		want     string
		wantRule string
	}{
		{"registry beats everything", "zur Kenntnis an SQ, Mietvertrag", "TS", reg, "M", RuleRegistry},
		{"empty registry code falls through", "", "CV", &entity.RegistryEntry{Key: "1/20"}, "CV", RuleSuffix},
		{"suffix with tail", "", "CVa", nil, "CV", RuleSuffix},
		{"unknown suffix ignored", "", "XY", nil, "UNZUGEORDNET", RuleDefault},
		{"suffix beats text token", "bitte an SQ", "TS", nil, "TS", RuleSuffix},
		{"text token in enumeration order", "z.Hd. JK, Kopie TS", "", nil, "TS", RuleTextToken},
		{"glued token is not standalone", "Az. 151/20TS", "", nil, "UNZUGEORDNET", RuleDefault},
		{"token beats domain", "Verkehrsunfall, Sachbearbeiter MB", "", nil, "MB", RuleTextToken},
		{"labor domain", "Kündigungsschutzklage vor dem Arbeitsgericht", "", nil, "SQ", RuleDomain},
		{"traffic domain", "Ihr Verkehrsunfall vom 3.3.", "", nil, "CV", RuleDomain},
		{"tenancy domain", "Nebenkostenabrechnung", "", nil, "TS", RuleDomain},
		{"inheritance domain", "Antrag auf Erbschein", "", nil, "MB", RuleDomain},
		{"nothing", "Sehr geehrte Damen und Herren", "", nil, "UNZUGEORDNET", RuleDefault},
		{"stem inside unrelated word", "Gewerbeanmeldung der Firma", "", nil, "UNZUGEORDNET", RuleDefault},
		{"accident at work is not traffic", "Arbeitsunfall im Lager", "", nil, "UNZUGEORDNET", RuleDefault},
		{"keyword starting a compound", "Unfallbericht anbei", "", nil, "CV", RuleDomain},
		{"inheritance compound", "die Erbengemeinschaft", "", nil, "MB", RuleDomain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rule := a.Assign(tt.text, tt.suffix, tt.entry)
			if got != tt.want || rule != tt.wantRule {
				t.Fatalf("Assign = (%q, %q), want (%q, %q)", got, rule, tt.want, tt.wantRule)
			}
		})
	}
}

func TestRegistryOverridesDisplayedSuffix(t *testing.T) {
	// The document shows 151/20TS but the registry says M: staff is M.
	a := New(rules.Default())
	got, _ := a.Assign("Ihr Zeichen 151/20TS", "TS", &entity.RegistryEntry{Key: "151/20", StaffCode: "M"})
	if got != "M" {
		t.Fatalf("staff = %q, want M", got)
	}
}

func TestRulesOrder(t *testing.T) {
	a := New(rules.Default())
	want := []string{RuleRegistry, RuleSuffix, RuleTextToken, RuleDomain}
	got := a.Rules()
	if len(got) != len(want) {
		t.Fatalf("got %d rules", len(got))
	}
	for i := range want {
		if got[i].Name != want[i] {
			t.Fatalf("rule %d = %s, want %s", i, got[i].Name, want[i])
		}
	}
	if a.Default() != "UNZUGEORDNET" {
		t.Fatalf("default = %q", a.Default())
	}
}

func TestRulesArePure(t *testing.T) {
	a := New(rules.Default())
	in := Input{Text: "z.Hd. CV", Suffix: ""}
	for _, r := range a.Rules() {
		first, ok1 := r.Apply(in)
		second, ok2 := r.Apply(in)
		if first != second || ok1 != ok2 {
			t.Fatalf("rule %s not deterministic", r.Name)
		}
	}
}
