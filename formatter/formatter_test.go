package formatter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apaliavy/golangcodestyle/internal/types"
)

func sampleReport() *types.Report {
	return &types.Report{
		Findings: []types.Finding{{
			Rule:     "naming.getter-prefix",
			Severity: types.SeverityWarning,
			Filename: "owner.go",
			Span: types.Span{
				Start: types.Position{Line: 3, Column: 1, Offset: 20},
				End:   types.Position{Line: 5, Column: 2, Offset: 60},
			},
			Message:    "exported getter should not use Get prefix.",
			Suggestion: "rename to Owner",
		}},
		Suppressed: 1,
		Faults: []types.RuleFault{{
			Rule:     "broken.rule",
			Filename: "owner.go",
			Err:      "rule panicked: boom",
		}},
		Complete: true,
	}
}

func TestGet(t *testing.T) {
	t.Parallel()
	for _, format := range []string{"", "text", "json", "sarif"} {
		f, err := Get(format)
		require.NoError(t, err, format)
		require.NotNil(t, f)
	}
	_, err := Get("xml")
	assert.Error(t, err)
}

func TestTextFormatter(t *testing.T) {
	t.Parallel()
	out, err := (&TextFormatter{}).Format(sampleReport())
	require.NoError(t, err)

	assert.Contains(t, out, "naming.getter-prefix")
	assert.Contains(t, out, "owner.go:3:1")
	assert.Contains(t, out, "exported getter should not use Get prefix.")
	assert.Contains(t, out, "suggestion: rename to Owner")
	assert.Contains(t, out, "rule fault: ")
	assert.Contains(t, out, "1 finding(s), 1 suppressed")
}

func TestTextFormatterIncomplete(t *testing.T) {
	t.Parallel()
	report := sampleReport()
	report.Complete = false

	out, err := (&TextFormatter{}).Format(report)
	require.NoError(t, err)
	assert.Contains(t, out, "analysis incomplete")
}

func TestJSONFormatter(t *testing.T) {
	t.Parallel()
	out, err := (&JSONFormatter{}).Format(sampleReport())
	require.NoError(t, err)

	var decoded types.Report
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded.Findings, 1)
	assert.Equal(t, "naming.getter-prefix", decoded.Findings[0].Rule)
	assert.Equal(t, 1, decoded.Suppressed)
}

func TestSARIFFormatter(t *testing.T) {
	t.Parallel()
	out, err := (&SARIFFormatter{}).Format(sampleReport())
	require.NoError(t, err)

	var log sarifLog
	require.NoError(t, json.Unmarshal([]byte(out), &log))
	assert.Equal(t, "2.1.0", log.Version)
	require.Len(t, log.Runs, 1)
	require.Len(t, log.Runs[0].Results, 1)

	result := log.Runs[0].Results[0]
	assert.Equal(t, "naming.getter-prefix", result.RuleID)
	assert.Equal(t, "warning", result.Level)
	assert.Equal(t, "owner.go", result.Locations[0].PhysicalLocation.ArtifactLocation.URI)
	assert.Equal(t, 3, result.Locations[0].PhysicalLocation.Region.StartLine)
}
