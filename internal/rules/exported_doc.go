package rules

import (
	"fmt"

	"github.com/apaliavy/golangcodestyle/internal/syntax"
	"github.com/apaliavy/golangcodestyle/internal/types"
)

// DetectExportedDoc flags exported declarations that carry no doc comment.
func DetectExportedDoc(node *syntax.Node) []types.Finding {
	if !node.BoolAttr(syntax.AttrExported) || node.BoolAttr(syntax.AttrHasDoc) {
		return nil
	}
	name := node.StringAttr(syntax.AttrName)
	if name == "" {
		return nil
	}
	kind := node.StringAttr(syntax.AttrDeclKind)
	if kind == "" {
		return nil
	}

	return []types.Finding{finding("comments.exported-doc", node,
		fmt.Sprintf("exported %s %s should have a doc comment.", kind, name))}
}
