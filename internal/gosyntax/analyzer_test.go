package gosyntax

import (
	"go/ast"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/analysis"
)

// reportIdentsAnalyzer reports every top-level function; enough to
// exercise the diagnostic bridge.
var reportIdentsAnalyzer = &analysis.Analyzer{
	Name: "reportidents",
	Doc:  "reports every top-level function declaration",
	Run: func(pass *analysis.Pass) (interface{}, error) {
		for _, file := range pass.Files {
			for _, decl := range file.Decls {
				if fn, ok := decl.(*ast.FuncDecl); ok {
					pass.Reportf(fn.Pos(), "function %s declared", fn.Name.Name)
				}
			}
		}
		return nil, nil
	},
}

func TestRunAnalyzer(t *testing.T) {
	t.Parallel()
	src := `package sample

func a() {}

func b() {}
`
	findings, err := RunAnalyzer("sample.go", src, reportIdentsAnalyzer)
	require.NoError(t, err)
	require.Len(t, findings, 2)

	assert.Equal(t, "reportidents", findings[0].Rule)
	assert.Equal(t, "function a declared", findings[0].Message)
	assert.Equal(t, "sample.go", findings[0].Filename)
	assert.Positive(t, findings[0].Span.Start.Line)
}

func TestRunAnalyzerParseError(t *testing.T) {
	t.Parallel()
	_, err := RunAnalyzer("bad.go", "not go source", reportIdentsAnalyzer)
	assert.Error(t, err)
}
