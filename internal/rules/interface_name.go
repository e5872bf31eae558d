package rules

import (
	"fmt"
	"strings"

	"github.com/apaliavy/golangcodestyle/internal/syntax"
	"github.com/apaliavy/golangcodestyle/internal/types"
)

// DetectInterfaceName flags single-method interfaces whose name does not
// follow the agent-noun convention (Reader, Writer, Formatter, Validator).
func DetectInterfaceName(node *syntax.Node) []types.Finding {
	if node.StringAttr(syntax.AttrDeclKind) != "type" ||
		node.StringAttr(syntax.AttrTypeKind) != "interface" {
		return nil
	}
	if node.IntAttr(syntax.AttrMethodCount) != 1 {
		return nil
	}
	name := node.StringAttr(syntax.AttrName)
	if name == "" || strings.HasSuffix(name, "er") || strings.HasSuffix(name, "or") {
		return nil
	}

	return []types.Finding{finding("interfaces.er-name", node,
		fmt.Sprintf("single-method interface %s should be named with an -er suffix.", name))}
}
