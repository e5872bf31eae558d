package internal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apaliavy/golangcodestyle/internal/syntax"
	"github.com/apaliavy/golangcodestyle/internal/types"
)

func testSpan(start, end int) types.Span {
	return types.Span{
		Start: types.Position{Line: 1, Column: start + 1, Offset: start},
		End:   types.Position{Line: 1, Column: end + 1, Offset: end},
	}
}

// getterTree builds a file with one exported niladic function named
// getOwner returning one value.
func getterTree(extra ...*syntax.Node) *syntax.Tree {
	root := syntax.NewNode(syntax.KindFile, testSpan(0, 200))
	decl := syntax.NewNode(syntax.KindDeclaration, testSpan(10, 80)).
		SetAttr(syntax.AttrName, "getOwner").
		SetAttr(syntax.AttrExported, true).
		SetAttr(syntax.AttrDeclKind, "func").
		SetAttr(syntax.AttrHasDoc, true).
		SetAttr(syntax.AttrNumParams, 0).
		SetAttr(syntax.AttrNumResults, 1)
	decl.AddChild(syntax.NewNode(syntax.KindIdentifier, testSpan(15, 23)).
		SetAttr(syntax.AttrName, "getOwner").
		SetAttr(syntax.AttrDeclared, true))
	for _, n := range extra {
		decl.AddChild(n)
	}
	root.AddChild(decl)
	return syntax.NewTree("owner.go", root)
}

func getterRegistry(t *testing.T, rules ...Rule) *Registry {
	t.Helper()
	reg := NewRegistry()
	require.NoError(t, reg.Register(&GetterPrefixRule{}))
	for _, r := range rules {
		require.NoError(t, reg.Register(r))
	}
	reg.Freeze()
	return reg
}

func TestRunReportsGetterFinding(t *testing.T) {
	t.Parallel()
	engine, err := NewEngine(getterRegistry(t), types.Config{})
	require.NoError(t, err)

	report, err := engine.Run(context.Background(), getterTree())
	require.NoError(t, err)

	require.Len(t, report.Findings, 1)
	f := report.Findings[0]
	assert.Equal(t, "naming.getter-prefix", f.Rule)
	assert.Equal(t, "exported getter should not use Get prefix.", f.Message)
	assert.Equal(t, "owner.go", f.Filename)
	assert.Equal(t, types.SeverityWarning, f.Severity)
	assert.Equal(t, 0, report.Suppressed)
	assert.Empty(t, report.Faults)
	assert.True(t, report.Complete)
}

func TestRunInlineWildcardSuppression(t *testing.T) {
	t.Parallel()
	engine, err := NewEngine(getterRegistry(t), types.Config{})
	require.NoError(t, err)

	comment := syntax.NewNode(syntax.KindComment, testSpan(12, 20)).
		SetAttr(syntax.AttrText, "//nolint")
	report, err := engine.Run(context.Background(), getterTree(comment))
	require.NoError(t, err)

	assert.Empty(t, report.Findings)
	assert.Equal(t, 1, report.Suppressed)
}

func TestRunRuleSuppressionByID(t *testing.T) {
	t.Parallel()
	engine, err := NewEngine(getterRegistry(t), types.Config{})
	require.NoError(t, err)

	comment := syntax.NewNode(syntax.KindComment, testSpan(12, 20)).
		SetAttr(syntax.AttrText, "//nolint:some.other-rule")
	report, err := engine.Run(context.Background(), getterTree(comment))
	require.NoError(t, err)

	// directive names a different rule, so the finding survives
	require.Len(t, report.Findings, 1)
	assert.Equal(t, 0, report.Suppressed)
}

func TestRunFaultIsolation(t *testing.T) {
	t.Parallel()
	panicky := &stubRule{
		id:       "broken.rule",
		severity: types.SeverityError,
		kinds:    []syntax.Kind{syntax.KindIdentifier},
		eval:     func(*syntax.Node) []types.Finding { panic("boom") },
	}
	engine, err := NewEngine(getterRegistry(t, panicky), types.Config{})
	require.NoError(t, err)

	extra := syntax.NewNode(syntax.KindIdentifier, testSpan(30, 35)).
		SetAttr(syntax.AttrName, "owner").
		SetAttr(syntax.AttrDeclared, true)
	report, err := engine.Run(context.Background(), getterTree(extra))
	require.NoError(t, err)

	// one fault per triggering node, other rules unaffected
	require.Len(t, report.Faults, 2)
	for _, fault := range report.Faults {
		assert.Equal(t, "broken.rule", fault.Rule)
		assert.Contains(t, fault.Err, "boom")
	}
	require.Len(t, report.Findings, 1)
	assert.Equal(t, "naming.getter-prefix", report.Findings[0].Rule)
}

func TestRunDeterministicUnderParallelism(t *testing.T) {
	t.Parallel()
	tree := getterTree(
		syntax.NewNode(syntax.KindIdentifier, testSpan(30, 38)).
			SetAttr(syntax.AttrName, "user_id").
			SetAttr(syntax.AttrDeclared, true),
		syntax.NewNode(syntax.KindIdentifier, testSpan(40, 47)).
			SetAttr(syntax.AttrName, "ownerId").
			SetAttr(syntax.AttrDeclared, true),
	)

	reg := NewRegistry()
	require.NoError(t, reg.RegisterAll(
		&GetterPrefixRule{}, &InitialismCaseRule{}, &UnderscoreNameRule{},
	))
	reg.Freeze()

	var baseline *types.Report
	for _, workers := range []int{1, 2, 4, 16} {
		engine, err := NewEngine(reg, types.Config{})
		require.NoError(t, err)
		engine.SetWorkers(workers)

		report, err := engine.Run(context.Background(), tree)
		require.NoError(t, err)
		if baseline == nil {
			baseline = report
			continue
		}
		assert.Equal(t, baseline, report, "workers=%d", workers)
	}
	require.Len(t, baseline.Findings, 3)
}

func TestRunIdempotent(t *testing.T) {
	t.Parallel()
	engine, err := NewEngine(getterRegistry(t), types.Config{})
	require.NoError(t, err)

	tree := getterTree()
	first, err := engine.Run(context.Background(), tree)
	require.NoError(t, err)
	second, err := engine.Run(context.Background(), tree)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRunSuppressionMonotonic(t *testing.T) {
	t.Parallel()
	reg := getterRegistry(t)

	plain, err := NewEngine(reg, types.Config{})
	require.NoError(t, err)
	base, err := plain.Run(context.Background(), getterTree())
	require.NoError(t, err)

	excluded, err := NewEngine(reg, types.Config{ExcludedPaths: []string{"**/*.go"}})
	require.NoError(t, err)
	silenced, err := excluded.Run(context.Background(), getterTree())
	require.NoError(t, err)

	assert.LessOrEqual(t, len(silenced.Findings), len(base.Findings))
	assert.Equal(t, len(base.Findings), len(silenced.Findings)+silenced.Suppressed)
}

func TestRunCancellation(t *testing.T) {
	t.Parallel()
	engine, err := NewEngine(getterRegistry(t), types.Config{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := engine.Run(ctx, getterTree())
	require.NoError(t, err)
	assert.False(t, report.Complete)
	assert.Empty(t, report.Findings)
}

func TestRunSeverityOverride(t *testing.T) {
	t.Parallel()
	cfg := types.Config{
		Rules: map[string]types.ConfigRule{
			"naming.getter-prefix": {Severity: types.SeverityError},
		},
	}
	engine, err := NewEngine(getterRegistry(t), cfg)
	require.NoError(t, err)

	report, err := engine.Run(context.Background(), getterTree())
	require.NoError(t, err)
	require.Len(t, report.Findings, 1)
	assert.Equal(t, types.SeverityError, report.Findings[0].Severity)
}

func TestRunDisabledRule(t *testing.T) {
	t.Parallel()
	cfg := types.Config{DisabledRules: []string{"naming.getter-prefix"}}
	engine, err := NewEngine(getterRegistry(t), cfg)
	require.NoError(t, err)

	report, err := engine.Run(context.Background(), getterTree())
	require.NoError(t, err)
	assert.Empty(t, report.Findings)
	assert.Equal(t, 0, report.Suppressed)
}

func TestNewEngineRejectsEmptyRegistry(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()
	_, err := NewEngine(reg, types.Config{})
	assert.ErrorIs(t, err, ErrEmptyRegistry)
}

func TestNewEngineRejectsInvalidConfig(t *testing.T) {
	t.Parallel()
	reg := getterRegistry(t)

	_, err := NewEngine(reg, types.Config{ExcludedPaths: []string{"[broken"}})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewEngine(reg, types.Config{
		Rules: map[string]types.ConfigRule{"no.such-rule": {Severity: types.SeverityError}},
	})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewEngine(reg, types.Config{DisabledRules: []string{"no.such-rule"}})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRunMalformedFindingBecomesFault(t *testing.T) {
	t.Parallel()
	sloppy := &stubRule{
		id:       "sloppy.rule",
		severity: types.SeverityWarning,
		kinds:    []syntax.Kind{syntax.KindDeclaration},
		eval: func(node *syntax.Node) []types.Finding {
			return []types.Finding{{Rule: "sloppy.rule", Span: node.Span()}} // empty message
		},
	}
	reg := NewRegistry()
	require.NoError(t, reg.Register(sloppy))
	reg.Freeze()

	engine, err := NewEngine(reg, types.Config{})
	require.NoError(t, err)

	report, err := engine.Run(context.Background(), getterTree())
	require.NoError(t, err)
	assert.Empty(t, report.Findings)
	require.Len(t, report.Faults, 1)
	assert.Contains(t, report.Faults[0].Err, "empty message")
}

func TestRulePurity(t *testing.T) {
	t.Parallel()
	tree := getterTree()
	decl := tree.Root().Children()[0]

	rule := &GetterPrefixRule{}
	first := rule.Evaluate(decl)
	second := rule.Evaluate(decl)
	assert.Equal(t, first, second)
	require.Len(t, first, 1)
}
