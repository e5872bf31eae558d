package rules

import (
	"github.com/apaliavy/golangcodestyle/internal/syntax"
	"github.com/apaliavy/golangcodestyle/internal/types"
)

// DetectContextFirstParam flags functions that accept a context.Context
// anywhere but the first parameter position.
func DetectContextFirstParam(node *syntax.Node) []types.Finding {
	if !isFuncDecl(node) {
		return nil
	}
	idx, ok := node.Attr(syntax.AttrCtxParamIndex)
	if !ok {
		return nil
	}
	if i, _ := idx.(int); i > 0 {
		return []types.Finding{finding("context.first-param", node,
			"context.Context should be the first parameter.")}
	}
	return nil
}
