package rules

import (
	"strings"
	"unicode"

	"github.com/apaliavy/golangcodestyle/internal/syntax"
	"github.com/apaliavy/golangcodestyle/internal/types"
)

// DetectErrorMessageStyle flags error constructor messages that start with
// a capital letter or end with punctuation. Error strings get composed into
// larger sentences ("read config: open /etc/x: no such file"), so they
// should read as fragments.
func DetectErrorMessageStyle(node *syntax.Node) []types.Finding {
	if !node.BoolAttr(syntax.AttrErrorArg) {
		return nil
	}
	value := node.StringAttr(syntax.AttrValue)
	if value == "" {
		return nil
	}

	var findings []types.Finding
	first := firstRune(value)
	if unicode.IsUpper(first) && !startsWithProperNoun(value) {
		findings = append(findings, finding("errors.message-style", node,
			"error string should not be capitalized."))
	}
	if strings.ContainsAny(value[len(value)-1:], ".!\n") {
		findings = append(findings, finding("errors.message-style", node,
			"error string should not end with punctuation or a newline."))
	}
	return findings
}

// startsWithProperNoun treats a leading all-caps or CamelCased word as a
// proper noun or exported symbol, which may legitimately open an error
// string ("JSON decoding failed", "Close called twice").
func startsWithProperNoun(s string) bool {
	word := s
	if i := strings.IndexByte(s, ' '); i > 0 {
		word = s[:i]
	}
	if word == strings.ToUpper(word) {
		return true
	}
	rest := word[1:]
	return rest != strings.ToLower(rest)
}
