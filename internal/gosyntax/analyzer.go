package gosyntax

import (
	"go/ast"
	"go/parser"
	"go/token"

	"golang.org/x/tools/go/analysis"

	"github.com/apaliavy/golangcodestyle/internal/types"
)

// RunAnalyzer bridges a golang.org/x/tools analyzer into the finding
// model, so third-party go/analysis checks can feed the same report
// pipeline as the built-in rules.
func RunAnalyzer(filename string, src any, analyzer *analysis.Analyzer) ([]types.Finding, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, err
	}

	toPos := func(p token.Pos) types.Position {
		position := fset.Position(p)
		return types.Position{Line: position.Line, Column: position.Column, Offset: position.Offset}
	}

	var findings []types.Finding
	pass := &analysis.Pass{
		Analyzer: analyzer,
		Fset:     fset,
		Files:    []*ast.File{file},
		Report: func(d analysis.Diagnostic) {
			end := d.End
			if !end.IsValid() {
				end = d.Pos
			}
			findings = append(findings, types.Finding{
				Rule:     analyzer.Name,
				Filename: filename,
				Message:  d.Message,
				Span:     types.Span{Start: toPos(d.Pos), End: toPos(end)},
			})
		},
	}

	if _, err := analyzer.Run(pass); err != nil {
		return nil, err
	}
	return findings, nil
}
