package rules

import (
	"fmt"
	"strings"

	"github.com/apaliavy/golangcodestyle/internal/syntax"
	"github.com/apaliavy/golangcodestyle/internal/types"
)

// commonInitialisms maps the lowercase form of well-known initialisms to
// their canonical spelling. Subset of the list the Go code review comments
// maintain.
var commonInitialisms = map[string]string{
	"api":   "API",
	"db":    "DB",
	"html":  "HTML",
	"http":  "HTTP",
	"https": "HTTPS",
	"id":    "ID",
	"json":  "JSON",
	"sql":   "SQL",
	"tcp":   "TCP",
	"tls":   "TLS",
	"udp":   "UDP",
	"ui":    "UI",
	"uid":   "UID",
	"url":   "URL",
	"uuid":  "UUID",
	"xml":   "XML",
}

// DetectInitialismCase flags declared identifiers that spell a well-known
// initialism in mixed case, e.g. userId instead of userID or Url instead
// of URL.
func DetectInitialismCase(node *syntax.Node) []types.Finding {
	if !node.BoolAttr(syntax.AttrDeclared) {
		return nil
	}
	name := node.StringAttr(syntax.AttrName)
	if name == "" || name == "_" {
		return nil
	}

	var findings []types.Finding
	for _, word := range camelWords(name) {
		canonical, known := commonInitialisms[strings.ToLower(word)]
		if !known || word == canonical {
			continue
		}
		// a fully lowercase initialism is fine at the start of an
		// unexported name: id, url, httpClient
		if word == strings.ToLower(word) && strings.HasPrefix(name, word) {
			continue
		}
		f := finding("naming.initialism-case", node,
			fmt.Sprintf("identifier %s should spell %s as %s.", name, word, canonical))
		f.Suggestion = "rename to " + strings.Replace(name, word, canonical, 1)
		findings = append(findings, f)
	}
	return findings
}
