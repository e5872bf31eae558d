// Package formatter renders a report for humans or machines. The engine
// itself emits no bytes; everything presentational lives here.
package formatter

import (
	"fmt"

	"github.com/apaliavy/golangcodestyle/internal/types"
)

// ReportFormatter renders one report to a string.
type ReportFormatter interface {
	Format(report *types.Report) (string, error)
}

// Get returns the formatter for a format name: "text", "json" or "sarif".
func Get(format string) (ReportFormatter, error) {
	switch format {
	case "", "text":
		return &TextFormatter{}, nil
	case "json":
		return &JSONFormatter{}, nil
	case "sarif":
		return &SARIFFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
