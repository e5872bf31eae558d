package rules

import (
	"fmt"

	"github.com/apaliavy/golangcodestyle/internal/syntax"
	"github.com/apaliavy/golangcodestyle/internal/types"
)

// DetectDotImport flags dot imports, which obscure where an identifier
// comes from.
func DetectDotImport(node *syntax.Node) []types.Finding {
	if !node.BoolAttr(syntax.AttrDotImport) {
		return nil
	}
	return []types.Finding{finding("imports.no-dot", node,
		fmt.Sprintf("dot import of %q should not be used.", node.StringAttr(syntax.AttrPath)))}
}
