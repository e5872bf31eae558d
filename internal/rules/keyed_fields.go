package rules

import (
	"github.com/apaliavy/golangcodestyle/internal/syntax"
	"github.com/apaliavy/golangcodestyle/internal/types"
)

// DetectKeyedFields flags struct literals that rely on field order instead
// of field names. Positional literals silently break when the struct grows.
func DetectKeyedFields(node *syntax.Node) []types.Finding {
	if node.BoolAttr(syntax.AttrKeyed) || node.IntAttr(syntax.AttrFieldCount) == 0 {
		return nil
	}
	return []types.Finding{finding("structs.keyed-fields", node,
		"composite literal should use keyed fields.")}
}
