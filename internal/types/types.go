package types

import "fmt"

// Severity indicates how a finding should be treated by the caller.
type Severity int

const (
	SeverityOff Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityError
)

var severityNames = map[Severity]string{
	SeverityOff:     "off",
	SeverityInfo:    "info",
	SeverityWarning: "warning",
	SeverityError:   "error",
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

// MarshalYAML implements yaml.Marshaler.
func (s Severity) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Severity) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	parsed, err := ParseSeverity(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSeverity converts a textual severity into a Severity value.
func ParseSeverity(raw string) (Severity, error) {
	for sev, name := range severityNames {
		if name == raw {
			return sev, nil
		}
	}
	return SeverityOff, fmt.Errorf("unknown severity %q", raw)
}

// Position is a single point in a source file.
type Position struct {
	Line   int `json:"line"`   // 1-based
	Column int `json:"column"` // 1-based
	Offset int `json:"offset"` // 0-based byte offset
}

// Span is a half-open source range [Start, End).
type Span struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Contains reports whether other lies entirely within s.
func (s Span) Contains(other Span) bool {
	return s.Start.Offset <= other.Start.Offset && other.End.Offset <= s.End.Offset
}

// ContainsOffset reports whether the byte offset lies within s.
func (s Span) ContainsOffset(offset int) bool {
	return s.Start.Offset <= offset && offset < s.End.Offset
}

// Finding represents one convention violation at one location.
// The span is copied out of the syntax tree, so a Finding stays valid
// after the tree is discarded.
type Finding struct {
	Rule       string   `json:"rule"`
	Severity   Severity `json:"severity"`
	Filename   string   `json:"filename"`
	Span       Span     `json:"span"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion,omitempty"`
	Suppressed bool     `json:"-"`
}

// RuleFault records an internal failure of one rule invocation.
// It is engine metadata, not a finding: the run continues without the rule
// for that node and the fault is surfaced in the report.
type RuleFault struct {
	Rule     string `json:"rule"`
	Filename string `json:"filename"`
	Span     Span   `json:"span"`
	Err      string `json:"error"`
}

// Report is the final product of one analysis run. It is owned by the
// caller once returned; the engine keeps no reference to it.
type Report struct {
	Findings   []Finding   `json:"findings"`
	Suppressed int         `json:"suppressed"`
	Faults     []RuleFault `json:"faults,omitempty"`
	Complete   bool        `json:"complete"`
}

// ConfigRule holds the per-rule settings from a configuration file.
type ConfigRule struct {
	Severity Severity `yaml:"severity"`
}

// Config carries the recognized run options. The zero value is a valid
// configuration that excludes nothing and overrides nothing.
type Config struct {
	Name          string                `yaml:"name"`
	Rules         map[string]ConfigRule `yaml:"rules"`
	DisabledRules []string              `yaml:"disabled-rules"`
	ExcludedPaths []string              `yaml:"excluded-paths"`
}
