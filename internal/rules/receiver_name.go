package rules

import (
	"fmt"

	"github.com/apaliavy/golangcodestyle/internal/syntax"
	"github.com/apaliavy/golangcodestyle/internal/types"
)

var genericReceiverNames = map[string]bool{
	"this": true,
	"self": true,
	"me":   true,
}

const maxReceiverNameLen = 4

// DetectReceiverName flags method receivers named after other languages'
// conventions (this, self) and receivers long enough to read like a regular
// parameter. Idiomatic receivers are one or two letter abbreviations of the
// type.
func DetectReceiverName(node *syntax.Node) []types.Finding {
	if node.StringAttr(syntax.AttrDeclKind) != "method" {
		return nil
	}
	name := node.StringAttr(syntax.AttrReceiverName)
	if name == "" || name == "_" {
		return nil
	}

	if genericReceiverNames[name] {
		return []types.Finding{finding("naming.receiver-name", node,
			fmt.Sprintf("receiver name %s is generic; use a short abbreviation of the type.", name))}
	}
	if len(name) > maxReceiverNameLen {
		return []types.Finding{finding("naming.receiver-name", node,
			fmt.Sprintf("receiver name %s is too long; one or two letters are conventional.", name))}
	}
	return nil
}
