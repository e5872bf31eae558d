package rules

import (
	"strings"

	"github.com/apaliavy/golangcodestyle/internal/syntax"
	"github.com/apaliavy/golangcodestyle/internal/types"
)

// DetectGetterPrefix flags exported getters whose name carries a Get prefix.
// A getter here is a niladic function or method with at least one result;
// the idiomatic name is the field itself (Owner, not GetOwner).
func DetectGetterPrefix(node *syntax.Node) []types.Finding {
	if !isFuncDecl(node) || !node.BoolAttr(syntax.AttrExported) {
		return nil
	}
	if node.IntAttr(syntax.AttrNumParams) != 0 || node.IntAttr(syntax.AttrNumResults) == 0 {
		return nil
	}

	name := node.StringAttr(syntax.AttrName)
	var rest string
	switch {
	case strings.HasPrefix(name, "Get"):
		rest = name[len("Get"):]
	case strings.HasPrefix(name, "get"):
		rest = name[len("get"):]
	default:
		return nil
	}
	// "Get" alone, or Getxxx where xxx is not a new word, is not a getter
	// prefix (e.g. Getter).
	if rest == "" || !strings.ContainsAny(rest[:1], "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		return nil
	}

	f := finding("naming.getter-prefix", node, "exported getter should not use Get prefix.")
	f.Suggestion = "rename to " + exportName(rest)
	return []types.Finding{f}
}
