package rules

import (
	"fmt"
	"strings"

	"github.com/apaliavy/golangcodestyle/internal/syntax"
	"github.com/apaliavy/golangcodestyle/internal/types"
)

// DetectUnderscoreName flags declared identifiers written in snake_case.
// The blank identifier and pure leading underscores are left alone.
func DetectUnderscoreName(node *syntax.Node) []types.Finding {
	if !node.BoolAttr(syntax.AttrDeclared) {
		return nil
	}
	name := node.StringAttr(syntax.AttrName)
	if name == "" || name == "_" {
		return nil
	}
	trimmed := strings.TrimLeft(name, "_")
	if !strings.Contains(trimmed, "_") {
		return nil
	}

	return []types.Finding{finding("naming.underscore", node,
		fmt.Sprintf("identifier %s should use mixedCaps rather than underscores.", name))}
}
