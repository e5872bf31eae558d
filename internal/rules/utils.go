// Package rules contains the detection bodies of the built-in convention
// rules. Each function inspects a single node of the syntax model and
// returns candidate findings; context beyond the node itself is read from
// attributes the front end materialized, never re-derived from the tree.
package rules

import (
	"strings"
	"unicode"

	"github.com/apaliavy/golangcodestyle/internal/syntax"
	"github.com/apaliavy/golangcodestyle/internal/types"
)

// finding copies the node's span so the result outlives the tree.
func finding(rule string, node *syntax.Node, message string) types.Finding {
	return types.Finding{
		Rule:    rule,
		Span:    node.Span(),
		Message: message,
	}
}

// camelWords splits an identifier into its camelCase words.
// "parseHTTPRequest" -> ["parse", "HTTP", "Request"].
func camelWords(name string) []string {
	var words []string
	runes := []rune(name)
	start := 0
	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]
		boundary := false
		switch {
		case unicode.IsLower(prev) && unicode.IsUpper(cur):
			boundary = true
		case unicode.IsUpper(prev) && unicode.IsUpper(cur) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			// end of an all-caps run followed by a new word: HTTPServer
			boundary = true
		}
		if boundary {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	words = append(words, string(runes[start:]))
	return words
}

func isFuncDecl(node *syntax.Node) bool {
	kind := node.StringAttr(syntax.AttrDeclKind)
	return kind == "func" || kind == "method"
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

func exportName(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
