package internal

import (
	"github.com/apaliavy/golangcodestyle/internal/rules"
	"github.com/apaliavy/golangcodestyle/internal/syntax"
	"github.com/apaliavy/golangcodestyle/internal/types"
)

/*
* Implement each convention rule as a separate struct
 */

// Rule defines the contract every convention rule implements.
//
// Evaluate must be pure with respect to the tree: given the same node it
// returns the same findings, with no hidden state, randomness, or clock
// dependence. This is the invariant that lets the engine dispatch rules in
// parallel without locks; it is enforced by review and by the purity tests,
// since it cannot be checked mechanically.
type Rule interface {
	// ID returns the stable rule identifier, e.g. "naming.getter-prefix".
	ID() string

	// Title returns a short human-readable description.
	Title() string

	// DefaultSeverity returns the severity used when no override applies.
	DefaultSeverity() types.Severity

	// AppliesTo returns the node kinds the rule wants to see. An empty
	// slice means every kind.
	AppliesTo() []syntax.Kind

	// Evaluate runs the rule on one node and returns candidate findings.
	// Rules fill Rule, Span, Message and optionally Suggestion; the engine
	// stamps Filename and Severity and owns suppression.
	Evaluate(node *syntax.Node) []types.Finding
}

type GetterPrefixRule struct{}

func (r *GetterPrefixRule) ID() string                      { return "naming.getter-prefix" }
func (r *GetterPrefixRule) Title() string                   { return "getters should not carry a Get prefix" }
func (r *GetterPrefixRule) DefaultSeverity() types.Severity { return types.SeverityWarning }
func (r *GetterPrefixRule) AppliesTo() []syntax.Kind        { return []syntax.Kind{syntax.KindDeclaration} }

func (r *GetterPrefixRule) Evaluate(node *syntax.Node) []types.Finding {
	return rules.DetectGetterPrefix(node)
}

type InitialismCaseRule struct{}

func (r *InitialismCaseRule) ID() string                      { return "naming.initialism-case" }
func (r *InitialismCaseRule) Title() string                   { return "initialisms should keep a consistent case" }
func (r *InitialismCaseRule) DefaultSeverity() types.Severity { return types.SeverityWarning }
func (r *InitialismCaseRule) AppliesTo() []syntax.Kind        { return []syntax.Kind{syntax.KindIdentifier} }

func (r *InitialismCaseRule) Evaluate(node *syntax.Node) []types.Finding {
	return rules.DetectInitialismCase(node)
}

type UnderscoreNameRule struct{}

func (r *UnderscoreNameRule) ID() string                      { return "naming.underscore" }
func (r *UnderscoreNameRule) Title() string                   { return "identifiers should use mixedCaps" }
func (r *UnderscoreNameRule) DefaultSeverity() types.Severity { return types.SeverityWarning }
func (r *UnderscoreNameRule) AppliesTo() []syntax.Kind        { return []syntax.Kind{syntax.KindIdentifier} }

func (r *UnderscoreNameRule) Evaluate(node *syntax.Node) []types.Finding {
	return rules.DetectUnderscoreName(node)
}

type ReceiverNameRule struct{}

func (r *ReceiverNameRule) ID() string                      { return "naming.receiver-name" }
func (r *ReceiverNameRule) Title() string                   { return "receiver names should be short and not generic" }
func (r *ReceiverNameRule) DefaultSeverity() types.Severity { return types.SeverityWarning }
func (r *ReceiverNameRule) AppliesTo() []syntax.Kind        { return []syntax.Kind{syntax.KindDeclaration} }

func (r *ReceiverNameRule) Evaluate(node *syntax.Node) []types.Finding {
	return rules.DetectReceiverName(node)
}

type ErrorMessageStyleRule struct{}

func (r *ErrorMessageStyleRule) ID() string                      { return "errors.message-style" }
func (r *ErrorMessageStyleRule) Title() string                   { return "error strings should be lowercase without trailing punctuation" }
func (r *ErrorMessageStyleRule) DefaultSeverity() types.Severity { return types.SeverityWarning }
func (r *ErrorMessageStyleRule) AppliesTo() []syntax.Kind {
	return []syntax.Kind{syntax.KindStringLiteral}
}

func (r *ErrorMessageStyleRule) Evaluate(node *syntax.Node) []types.Finding {
	return rules.DetectErrorMessageStyle(node)
}

type InterfaceNameRule struct{}

func (r *InterfaceNameRule) ID() string                      { return "interfaces.er-name" }
func (r *InterfaceNameRule) Title() string                   { return "single-method interfaces should use an -er name" }
func (r *InterfaceNameRule) DefaultSeverity() types.Severity { return types.SeverityInfo }
func (r *InterfaceNameRule) AppliesTo() []syntax.Kind        { return []syntax.Kind{syntax.KindDeclaration} }

func (r *InterfaceNameRule) Evaluate(node *syntax.Node) []types.Finding {
	return rules.DetectInterfaceName(node)
}

type KeyedFieldsRule struct{}

func (r *KeyedFieldsRule) ID() string                      { return "structs.keyed-fields" }
func (r *KeyedFieldsRule) Title() string                   { return "composite literals should use keyed fields" }
func (r *KeyedFieldsRule) DefaultSeverity() types.Severity { return types.SeverityWarning }
func (r *KeyedFieldsRule) AppliesTo() []syntax.Kind        { return []syntax.Kind{syntax.KindStructLiteral} }

func (r *KeyedFieldsRule) Evaluate(node *syntax.Node) []types.Finding {
	return rules.DetectKeyedFields(node)
}

type ExportedDocRule struct{}

func (r *ExportedDocRule) ID() string                      { return "comments.exported-doc" }
func (r *ExportedDocRule) Title() string                   { return "exported declarations should carry a doc comment" }
func (r *ExportedDocRule) DefaultSeverity() types.Severity { return types.SeverityInfo }
func (r *ExportedDocRule) AppliesTo() []syntax.Kind        { return []syntax.Kind{syntax.KindDeclaration} }

func (r *ExportedDocRule) Evaluate(node *syntax.Node) []types.Finding {
	return rules.DetectExportedDoc(node)
}

type ContextFirstParamRule struct{}

func (r *ContextFirstParamRule) ID() string                      { return "context.first-param" }
func (r *ContextFirstParamRule) Title() string                   { return "context.Context should be the first parameter" }
func (r *ContextFirstParamRule) DefaultSeverity() types.Severity { return types.SeverityWarning }
func (r *ContextFirstParamRule) AppliesTo() []syntax.Kind        { return []syntax.Kind{syntax.KindDeclaration} }

func (r *ContextFirstParamRule) Evaluate(node *syntax.Node) []types.Finding {
	return rules.DetectContextFirstParam(node)
}

type DotImportRule struct{}

func (r *DotImportRule) ID() string                      { return "imports.no-dot" }
func (r *DotImportRule) Title() string                   { return "dot imports should not be used" }
func (r *DotImportRule) DefaultSeverity() types.Severity { return types.SeverityError }
func (r *DotImportRule) AppliesTo() []syntax.Kind        { return []syntax.Kind{syntax.KindImport} }

func (r *DotImportRule) Evaluate(node *syntax.Node) []types.Finding {
	return rules.DetectDotImport(node)
}
