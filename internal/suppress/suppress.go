// Package suppress resolves whether a candidate finding is silenced by an
// inline //nolint directive or a configuration-level path exclusion.
//
// Suppression is monotonic: directives are OR-combined and there is no way
// to un-suppress, so precedence between sources never matters.
package suppress

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/apaliavy/golangcodestyle/internal/syntax"
	"github.com/apaliavy/golangcodestyle/internal/types"
)

const directivePrefix = "//nolint"

// Directive is one inline suppression marker. An empty rule set means the
// wildcard form (//nolint with no rule list).
type Directive struct {
	Rules map[string]struct{}
	Scope types.Span
}

// Exclusion is a configuration-level suppression: a path glob plus an
// optional rule ID. An empty Rule matches every rule.
type Exclusion struct {
	Pattern string
	Rule    string
}

// Resolver answers suppression queries for one run. It is built once per
// run from the tree's comment nodes and the configuration, then consulted
// read-only.
type Resolver struct {
	directives []Directive
	exclusions []Exclusion
}

// NewResolver harvests inline directives from the tree and combines them
// with the configuration's excluded paths.
func NewResolver(tree *syntax.Tree, cfg types.Config) *Resolver {
	r := &Resolver{directives: FromTree(tree)}
	for _, pattern := range cfg.ExcludedPaths {
		r.exclusions = append(r.exclusions, Exclusion{Pattern: pattern})
	}
	return r
}

// FromTree extracts every valid inline directive from the tree's comment
// nodes. The scope of a directive is the smallest enclosing declaration,
// or the whole file for comments outside any declaration. Malformed
// directives are ignored, matching the usual linter behavior.
func FromTree(tree *syntax.Tree) []Directive {
	var directives []Directive
	tree.Walk(func(n *syntax.Node) bool {
		if n.Kind() != syntax.KindComment {
			return true
		}
		rules, ok := parseDirective(n.StringAttr(syntax.AttrText))
		if !ok {
			return true
		}
		directives = append(directives, Directive{
			Rules: rules,
			Scope: directiveScope(tree, n),
		})
		return true
	})
	return directives
}

// parseDirective parses "//nolint" or "//nolint:rule1,rule2". The second
// return value is false for comments that are not directives at all or
// that are malformed (e.g. a colon with no rules after it). Whitespace
// after a bare "//nolint" starts an explanation, not a rule list.
func parseDirective(text string) (map[string]struct{}, bool) {
	if !strings.HasPrefix(text, directivePrefix) {
		return nil, false
	}
	rest := text[len(directivePrefix):]
	rules := make(map[string]struct{})
	if rest == "" || rest[0] == ' ' || rest[0] == '\t' {
		return rules, true // wildcard
	}
	if rest[0] != ':' {
		return nil, false
	}
	for _, rule := range strings.Split(rest[1:], ",") {
		rule = strings.TrimSpace(rule)
		if rule != "" {
			rules[rule] = struct{}{}
		}
	}
	if len(rules) == 0 {
		return nil, false
	}
	return rules, true
}

func directiveScope(tree *syntax.Tree, comment *syntax.Node) types.Span {
	decl := comment.Enclosing(func(n *syntax.Node) bool {
		return n.Kind() == syntax.KindDeclaration
	})
	if decl != nil {
		return decl.Span()
	}
	return tree.Root().Span()
}

// IsSuppressed reports whether any directive or exclusion silences the
// finding. An inline directive matches when the finding's span lies inside
// the directive's scope and the rule matches (or the directive is a
// wildcard); an exclusion matches on the file path and optional rule ID.
func (r *Resolver) IsSuppressed(f types.Finding) bool {
	for _, d := range r.directives {
		if !d.Scope.Contains(f.Span) {
			continue
		}
		if len(d.Rules) == 0 {
			return true
		}
		if _, ok := d.Rules[f.Rule]; ok {
			return true
		}
	}
	for _, e := range r.exclusions {
		if e.Rule != "" && e.Rule != f.Rule {
			continue
		}
		if matched, err := doublestar.Match(e.Pattern, filepath.ToSlash(f.Filename)); err == nil && matched {
			return true
		}
	}
	return false
}
