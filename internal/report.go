package internal

import (
	"sort"

	"github.com/apaliavy/golangcodestyle/internal/types"
)

// finalizeReport deduplicates and orders the surviving findings so the
// report is byte-identical across runs regardless of how dispatch was
// scheduled. Sort key: start offset, then rule ID, then message, then end
// offset.
func finalizeReport(findings []types.Finding, suppressed int, faults []types.RuleFault, complete bool) *types.Report {
	type key struct {
		rule    string
		span    types.Span
		message string
	}
	seen := make(map[key]bool, len(findings))
	deduped := make([]types.Finding, 0, len(findings))
	for _, f := range findings {
		k := key{rule: f.Rule, span: f.Span, message: f.Message}
		if seen[k] {
			continue
		}
		seen[k] = true
		deduped = append(deduped, f)
	}

	sort.SliceStable(deduped, func(i, j int) bool {
		a, b := deduped[i], deduped[j]
		if a.Span.Start.Offset != b.Span.Start.Offset {
			return a.Span.Start.Offset < b.Span.Start.Offset
		}
		if a.Rule != b.Rule {
			return a.Rule < b.Rule
		}
		if a.Message != b.Message {
			return a.Message < b.Message
		}
		return a.Span.End.Offset < b.Span.End.Offset
	})

	sort.SliceStable(faults, func(i, j int) bool {
		a, b := faults[i], faults[j]
		if a.Span.Start.Offset != b.Span.Start.Offset {
			return a.Span.Start.Offset < b.Span.Start.Offset
		}
		return a.Rule < b.Rule
	})

	return &types.Report{
		Findings:   deduped,
		Suppressed: suppressed,
		Faults:     faults,
		Complete:   complete,
	}
}

// MergeReports combines per-file reports into one, preserving the
// per-report ordering by concatenating in input order. Composing results
// across compilation units is deliberately the caller's job; this helper
// just keeps the bookkeeping in one place.
func MergeReports(reports ...*types.Report) *types.Report {
	merged := &types.Report{Complete: true}
	for _, r := range reports {
		if r == nil {
			continue
		}
		merged.Findings = append(merged.Findings, r.Findings...)
		merged.Faults = append(merged.Faults, r.Faults...)
		merged.Suppressed += r.Suppressed
		if !r.Complete {
			merged.Complete = false
		}
	}
	return merged
}
