package internal

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/apaliavy/golangcodestyle/internal/suppress"
	"github.com/apaliavy/golangcodestyle/internal/syntax"
	"github.com/apaliavy/golangcodestyle/internal/types"
)

// Engine runs the registered rules over one syntax tree per call. The
// registry is shared and read-only; everything else (candidate findings,
// suppression directives, faults) is run-local, so one Engine value may
// serve concurrent runs.
type Engine struct {
	registry   *Registry
	cfg        types.Config
	severities map[string]types.Severity
	workers    int
}

// NewEngine validates the configuration against the registry and returns
// an engine ready to run. The registry must already be frozen and
// non-empty.
func NewEngine(registry *Registry, cfg types.Config) (*Engine, error) {
	if registry == nil || registry.Len() == 0 {
		return nil, ErrEmptyRegistry
	}
	if err := ValidateConfig(cfg, registry); err != nil {
		return nil, err
	}
	return &Engine{
		registry:   registry,
		cfg:        cfg,
		severities: effectiveSeverities(registry, cfg),
		workers:    runtime.NumCPU(),
	}, nil
}

// SetWorkers bounds the rule-dispatch pool. Values below 1 force serial
// dispatch. Safe to call between runs, not during one.
func (e *Engine) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	e.workers = n
}

// Run walks the tree in pre-order, dispatches every applicable rule per
// node, filters candidates through the suppression resolver and returns
// the aggregated report.
//
// A rule that panics is recorded as a RuleFault and never aborts the run.
// Cancellation is checked between node visits; a cancelled run returns the
// partial report with Complete set to false and a nil error.
func (e *Engine) Run(ctx context.Context, tree *syntax.Tree) (*types.Report, error) {
	resolver := suppress.NewResolver(tree, e.cfg)

	var (
		mu         sync.Mutex
		candidates []types.Finding
		faults     []types.RuleFault
	)

	var g errgroup.Group
	g.SetLimit(e.workers)

	complete := true
	cursor := tree.Cursor()
	for node := cursor.Next(); node != nil; node = cursor.Next() {
		select {
		case <-ctx.Done():
			complete = false
		default:
		}
		if !complete {
			break
		}

		node := node
		g.Go(func() error {
			found, faulted := e.dispatch(tree, node)
			if len(found) == 0 && len(faulted) == 0 {
				return nil
			}
			mu.Lock()
			candidates = append(candidates, found...)
			faults = append(faults, faulted...)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	suppressed := 0
	kept := candidates[:0]
	for _, f := range candidates {
		if resolver.IsSuppressed(f) {
			suppressed++
			continue
		}
		kept = append(kept, f)
	}

	return finalizeReport(kept, suppressed, faults, complete), nil
}

// dispatch invokes every applicable, enabled rule on one node. Candidate
// findings are stamped with the tree's filename and the rule's effective
// severity; malformed candidates become faults instead of findings.
func (e *Engine) dispatch(tree *syntax.Tree, node *syntax.Node) ([]types.Finding, []types.RuleFault) {
	var (
		findings []types.Finding
		faults   []types.RuleFault
	)
	for _, rule := range e.registry.ApplicableRules(node.Kind()) {
		if e.severities[rule.ID()] == types.SeverityOff {
			continue
		}
		candidates, fault := evaluateRule(rule, node)
		if fault != nil {
			fault.Filename = tree.Filename()
			faults = append(faults, *fault)
			continue
		}
		for _, f := range candidates {
			f.Filename = tree.Filename()
			f.Severity = e.severities[rule.ID()]
			if err := validateFinding(tree, f); err != nil {
				faults = append(faults, types.RuleFault{
					Rule:     rule.ID(),
					Filename: tree.Filename(),
					Span:     node.Span(),
					Err:      err.Error(),
				})
				continue
			}
			findings = append(findings, f)
		}
	}
	return findings, faults
}

// evaluateRule contains rule faults: a panicking rule yields a RuleFault
// and the remaining rules keep running. There is no retry; rules are pure,
// so a second attempt would reproduce the fault.
func evaluateRule(rule Rule, node *syntax.Node) (findings []types.Finding, fault *types.RuleFault) {
	defer func() {
		if rec := recover(); rec != nil {
			findings = nil
			fault = &types.RuleFault{
				Rule: rule.ID(),
				Span: node.Span(),
				Err:  fmt.Sprintf("rule panicked: %v", rec),
			}
		}
	}()
	return rule.Evaluate(node), nil
}

// validateFinding rejects candidates a buggy rule produced: an empty
// message or a span outside the tree.
func validateFinding(tree *syntax.Tree, f types.Finding) error {
	if f.Message == "" {
		return fmt.Errorf("rule %s produced a finding with an empty message", f.Rule)
	}
	if !tree.Root().Span().Contains(f.Span) {
		return fmt.Errorf("rule %s produced a finding with an out-of-range span", f.Rule)
	}
	return nil
}
