package formatter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/apaliavy/golangcodestyle/internal/types"
)

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	warningStyle = color.New(color.FgYellow, color.Bold)
	infoStyle    = color.New(color.FgCyan, color.Bold)
	ruleStyle    = color.New(color.FgMagenta)
	fileStyle    = color.New(color.FgCyan)
	lineStyle    = color.New(color.FgBlue, color.Bold)
)

// TextFormatter renders a colored, human-readable report.
type TextFormatter struct{}

func (f *TextFormatter) Format(report *types.Report) (string, error) {
	var b strings.Builder
	for _, finding := range report.Findings {
		b.WriteString(severityStyle(finding.Severity).Sprint(finding.Severity.String()+": ") +
			ruleStyle.Sprint(finding.Rule) + "\n")
		b.WriteString(lineStyle.Sprint(" --> ") + fileStyle.Sprintf("%s:%d:%d",
			finding.Filename, finding.Span.Start.Line, finding.Span.Start.Column) + "\n")
		b.WriteString("    " + finding.Message + "\n")
		if finding.Suggestion != "" {
			b.WriteString("    suggestion: " + finding.Suggestion + "\n")
		}
		b.WriteString("\n")
	}

	for _, fault := range report.Faults {
		b.WriteString(errorStyle.Sprint("rule fault: ") + ruleStyle.Sprint(fault.Rule) +
			fmt.Sprintf(" at %s:%d: %s\n", fault.Filename, fault.Span.Start.Line, fault.Err))
	}

	b.WriteString(fmt.Sprintf("%d finding(s), %d suppressed\n",
		len(report.Findings), report.Suppressed))
	if !report.Complete {
		b.WriteString("analysis incomplete: run was cancelled\n")
	}
	return b.String(), nil
}

func severityStyle(s types.Severity) *color.Color {
	switch s {
	case types.SeverityError:
		return errorStyle
	case types.SeverityWarning:
		return warningStyle
	default:
		return infoStyle
	}
}
