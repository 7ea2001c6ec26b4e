package rules

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/joseph-ayodele/posteingang/constants"
	"github.com/joseph-ayodele/posteingang/internal/common"
)

//go:embed default.yaml
var defaultRules []byte

// Rules holds every fixed table the analysis depends on.
type Rules struct {
	StaffCodes       []string        `yaml:"staff_codes"`
	DefaultStaff     string          `yaml:"default_staff"`
	Registry         RegistryColumns `yaml:"registry"`
	ReferenceMarkers []string        `yaml:"reference_markers"`
	ExternalLabels   []string        `yaml:"external_labels"`
	Deadline         DeadlineRule    `yaml:"deadline"`
	Senders          SenderKeywords  `yaml:"senders"`
	Keywords         []string        `yaml:"keywords"`
	DomainStaff      []DomainRule    `yaml:"domain_staff"`
	Placeholders     Placeholders    `yaml:"placeholders"`
}

// RegistryColumns names the registry header cells.
type RegistryColumns struct {
	CaseReference    string `yaml:"case_reference"`
	StaffCode        string `yaml:"staff_code"`
	ShortDesignation string `yaml:"short_designation"`
	Opponent         string `yaml:"opponent"`
}

// Required returns the columns whose absence is fatal.
func (c RegistryColumns) Required() []string {
	return []string{c.CaseReference, c.StaffCode}
}

type DeadlineRule struct {
	Keyword string `yaml:"keyword"`
	Label   string `yaml:"label"`
}

type SenderKeywords struct {
	Court     []string `yaml:"court"`
	Authority []string `yaml:"authority"`
	Insurer   []string `yaml:"insurer"`
}

// For returns the keyword set for a checked sender type.
func (s SenderKeywords) For(t constants.SenderType) []string {
	switch t {
	case constants.SenderCourt:
		return s.Court
	case constants.SenderAuthority:
		return s.Authority
	case constants.SenderInsurer:
		return s.Insurer
	}
	return nil
}

// DomainRule maps legal-domain vocabulary to the staff code handling that domain.
type DomainRule struct {
	Domain   string   `yaml:"domain"`
	Staff    string   `yaml:"staff"`
	Keywords []string `yaml:"keywords"`
}

type Placeholders struct {
	Reference  string `yaml:"reference"`
	Name       string `yaml:"name"`
	Date       string `yaml:"date"`
	Keyword    string `yaml:"keyword"`
	NameMaxLen int    `yaml:"name_max_len"`
}

// Default returns the embedded rule tables. It panics if they are invalid,
// which only a broken build can cause.
func Default() *Rules {
	r, err := Parse(defaultRules)
	if err != nil {
		panic(fmt.Sprintf("embedded rules: %v", err))
	}
	return r
}

// Load reads a rules document from path; an empty path yields Default().
func Load(path string) (*Rules, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, common.NewAppError(common.CodeRules, "read rules file", err)
	}
	return Parse(b)
}

// Parse decodes and validates a YAML rules document.
func Parse(data []byte) (*Rules, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, common.NewAppError(common.CodeRules, "decode rules", err)
	}
	asJSON, err := json.Marshal(doc)
	if err != nil {
		return nil, common.NewAppError(common.CodeRules, "re-encode rules", err)
	}
	if err := validateDocument(asJSON); err != nil {
		return nil, common.NewAppError(common.CodeRules, err.Error(), common.ErrValidation)
	}

	var r Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, common.NewAppError(common.CodeRules, "decode rules", err)
	}
	if err := r.check(); err != nil {
		return nil, common.NewAppError(common.CodeRules, err.Error(), common.ErrValidation)
	}
	if r.Placeholders.NameMaxLen == 0 {
		r.Placeholders.NameMaxLen = 30
	}
	return &r, nil
}

// check covers cross-field constraints the schema cannot express.
func (r *Rules) check() error {
	for _, d := range r.DomainStaff {
		if !r.IsStaffCode(d.Staff) {
			return fmt.Errorf("domain %q maps to unknown staff code %q", d.Domain, d.Staff)
		}
	}
	if r.IsStaffCode(r.DefaultStaff) {
		return fmt.Errorf("default_staff %q collides with a staff code", r.DefaultStaff)
	}
	return nil
}

// IsStaffCode reports whether code is one of the known staff codes.
func (r *Rules) IsStaffCode(code string) bool {
	for _, c := range r.StaffCodes {
		if c == code {
			return true
		}
	}
	return false
}

// StaffCodesByLength returns the known codes longest first, the order a
// regexp alternation needs so that "ABC" is not cut short by "AB".
func (r *Rules) StaffCodesByLength() []string {
	out := make([]string, len(r.StaffCodes))
	copy(out, r.StaffCodes)
	sort.SliceStable(out, func(i, j int) bool {
		return len([]rune(out[i])) > len([]rune(out[j]))
	})
	return out
}
