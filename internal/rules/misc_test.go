package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apaliavy/golangcodestyle/internal/syntax"
)

func TestDetectInterfaceName(t *testing.T) {
	t.Parallel()
	iface := func(name string, methods int) *syntax.Node {
		return syntax.NewNode(syntax.KindDeclaration, span(0, 60)).
			SetAttr(syntax.AttrName, name).
			SetAttr(syntax.AttrExported, true).
			SetAttr(syntax.AttrDeclKind, "type").
			SetAttr(syntax.AttrTypeKind, "interface").
			SetAttr(syntax.AttrMethodCount, methods)
	}

	findings := DetectInterfaceName(iface("Validation", 1))
	require.Len(t, findings, 1)
	assert.Equal(t, "single-method interface Validation should be named with an -er suffix.", findings[0].Message)

	assert.Empty(t, DetectInterfaceName(iface("Validator", 1)))
	assert.Empty(t, DetectInterfaceName(iface("Visitor", 1)))
	assert.Empty(t, DetectInterfaceName(iface("Validation", 3)))

	structDecl := syntax.NewNode(syntax.KindDeclaration, span(0, 60)).
		SetAttr(syntax.AttrDeclKind, "type").
		SetAttr(syntax.AttrTypeKind, "struct").
		SetAttr(syntax.AttrName, "Validation")
	assert.Empty(t, DetectInterfaceName(structDecl))
}

func TestDetectKeyedFields(t *testing.T) {
	t.Parallel()
	lit := func(keyed bool, fields int) *syntax.Node {
		return syntax.NewNode(syntax.KindStructLiteral, span(0, 30)).
			SetAttr(syntax.AttrKeyed, keyed).
			SetAttr(syntax.AttrFieldCount, fields)
	}

	findings := DetectKeyedFields(lit(false, 3))
	require.Len(t, findings, 1)
	assert.Equal(t, "composite literal should use keyed fields.", findings[0].Message)

	assert.Empty(t, DetectKeyedFields(lit(true, 3)))
	assert.Empty(t, DetectKeyedFields(lit(false, 0)))
}

func TestDetectExportedDoc(t *testing.T) {
	t.Parallel()
	decl := func(name string, exported, hasDoc bool) *syntax.Node {
		return syntax.NewNode(syntax.KindDeclaration, span(0, 40)).
			SetAttr(syntax.AttrName, name).
			SetAttr(syntax.AttrExported, exported).
			SetAttr(syntax.AttrDeclKind, "func").
			SetAttr(syntax.AttrHasDoc, hasDoc)
	}

	findings := DetectExportedDoc(decl("Serve", true, false))
	require.Len(t, findings, 1)
	assert.Equal(t, "exported func Serve should have a doc comment.", findings[0].Message)

	assert.Empty(t, DetectExportedDoc(decl("Serve", true, true)))
	assert.Empty(t, DetectExportedDoc(decl("serve", false, false)))
}

func TestDetectContextFirstParam(t *testing.T) {
	t.Parallel()
	withCtx := func(index int) *syntax.Node {
		return funcDecl("Serve", true, 3, 1).SetAttr(syntax.AttrCtxParamIndex, index)
	}

	findings := DetectContextFirstParam(withCtx(2))
	require.Len(t, findings, 1)
	assert.Equal(t, "context.Context should be the first parameter.", findings[0].Message)

	assert.Empty(t, DetectContextFirstParam(withCtx(0)))
	assert.Empty(t, DetectContextFirstParam(funcDecl("Serve", true, 3, 1)))
}

func TestDetectDotImport(t *testing.T) {
	t.Parallel()
	imp := func(dot bool) *syntax.Node {
		return syntax.NewNode(syntax.KindImport, span(0, 20)).
			SetAttr(syntax.AttrPath, "github.com/onsi/gomega").
			SetAttr(syntax.AttrDotImport, dot)
	}

	findings := DetectDotImport(imp(true))
	require.Len(t, findings, 1)
	assert.Equal(t, `dot import of "github.com/onsi/gomega" should not be used.`, findings[0].Message)

	assert.Empty(t, DetectDotImport(imp(false)))
}
