package internal

import (
	"errors"
	"fmt"
	"sort"

	"github.com/apaliavy/golangcodestyle/internal/syntax"
	"github.com/apaliavy/golangcodestyle/internal/types"
)

var (
	// ErrDuplicateRule is returned when a rule ID is registered twice.
	ErrDuplicateRule = errors.New("duplicate rule id")

	// ErrFrozenRegistry is returned when Register is called after Freeze.
	ErrFrozenRegistry = errors.New("registry is frozen")

	// ErrEmptyRegistry is returned when a run is attempted with no rules.
	ErrEmptyRegistry = errors.New("registry has no rules")
)

// Registry holds the set of registered rules. It is populated once at
// startup, frozen, and then shared read-only by any number of concurrent
// runs. Rules are kept in registration order; ApplicableRules preserves it.
type Registry struct {
	order  []Rule
	index  map[string]Rule
	frozen bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]Rule)}
}

// Register adds a rule. It fails with ErrDuplicateRule if the ID is taken
// and ErrFrozenRegistry after Freeze; in both cases the registry keeps its
// previous contents.
func (r *Registry) Register(rule Rule) error {
	if r.frozen {
		return fmt.Errorf("register %s: %w", rule.ID(), ErrFrozenRegistry)
	}
	if _, exists := r.index[rule.ID()]; exists {
		return fmt.Errorf("register %s: %w", rule.ID(), ErrDuplicateRule)
	}
	r.index[rule.ID()] = rule
	r.order = append(r.order, rule)
	return nil
}

// RegisterAll registers a batch of rules, ordering the batch by rule ID so
// that registration order is deterministic regardless of how the slice was
// assembled.
func (r *Registry) RegisterAll(rules ...Rule) error {
	sorted := make([]Rule, len(rules))
	copy(sorted, rules)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID() < sorted[j].ID() })
	for _, rule := range sorted {
		if err := r.Register(rule); err != nil {
			return err
		}
	}
	return nil
}

// Freeze makes the registry immutable. Idempotent.
func (r *Registry) Freeze() {
	r.frozen = true
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	return len(r.order)
}

// Lookup returns the rule with the given ID.
func (r *Registry) Lookup(id string) (Rule, bool) {
	rule, ok := r.index[id]
	return rule, ok
}

// Rules returns all rules in registration order. The slice is a copy; the
// rules themselves are shared and must stay stateless.
func (r *Registry) Rules() []Rule {
	out := make([]Rule, len(r.order))
	copy(out, r.order)
	return out
}

// ApplicableRules returns, in registration order, every rule whose
// AppliesTo set matches the node kind. Rules with an empty AppliesTo set
// match every kind.
func (r *Registry) ApplicableRules(kind syntax.Kind) []Rule {
	var out []Rule
	for _, rule := range r.order {
		if ruleApplies(rule, kind) {
			out = append(out, rule)
		}
	}
	return out
}

func ruleApplies(rule Rule, kind syntax.Kind) bool {
	kinds := rule.AppliesTo()
	if len(kinds) == 0 {
		return true
	}
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// DefaultRegistry returns a frozen registry pre-loaded with every built-in
// convention rule. This is the standard registry for CLI and library use.
func DefaultRegistry() (*Registry, error) {
	r := NewRegistry()
	err := r.RegisterAll(
		&GetterPrefixRule{},
		&InitialismCaseRule{},
		&UnderscoreNameRule{},
		&ReceiverNameRule{},
		&ErrorMessageStyleRule{},
		&InterfaceNameRule{},
		&KeyedFieldsRule{},
		&ExportedDocRule{},
		&ContextFirstParamRule{},
		&DotImportRule{},
	)
	if err != nil {
		return nil, err
	}
	r.Freeze()
	return r, nil
}

// effectiveSeverities resolves the per-rule severity for one run: rule
// defaults first, then configuration overrides, last applied wins. Disabled
// rules and SeverityOff overrides map to SeverityOff.
func effectiveSeverities(reg *Registry, cfg types.Config) map[string]types.Severity {
	out := make(map[string]types.Severity, reg.Len())
	for _, rule := range reg.Rules() {
		out[rule.ID()] = rule.DefaultSeverity()
	}
	for id, rc := range cfg.Rules {
		if _, ok := out[id]; ok {
			out[id] = rc.Severity
		}
	}
	for _, id := range cfg.DisabledRules {
		if _, ok := out[id]; ok {
			out[id] = types.SeverityOff
		}
	}
	return out
}
