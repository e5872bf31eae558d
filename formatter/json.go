package formatter

import (
	"encoding/json"
	"fmt"

	"github.com/apaliavy/golangcodestyle/internal/types"
)

// JSONFormatter renders the report as indented JSON.
type JSONFormatter struct{}

func (f *JSONFormatter) Format(report *types.Report) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	return string(data) + "\n", nil
}
