// Package gosyntax is the Go front end for the engine: it parses Go source
// and lowers the go/ast representation into the language-agnostic syntax
// model, materializing the attributes rules read (exported flags, receiver
// shapes, literal keying, error constructor messages, import forms).
package gosyntax

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"sort"
	"strconv"

	"golang.org/x/tools/go/ast/astutil"

	"github.com/apaliavy/golangcodestyle/internal/syntax"
	"github.com/apaliavy/golangcodestyle/internal/types"
)

// ParseFile parses Go source and lowers it. Pass src as nil to read the
// file from disk, mirroring go/parser.
func ParseFile(filename string, src any) (*syntax.Tree, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	return Lower(fset, file, filename), nil
}

// Lower converts a parsed file into a syntax tree. The resulting tree is
// self-contained: discarding the *ast.File afterwards is safe.
func Lower(fset *token.FileSet, file *ast.File, filename string) *syntax.Tree {
	l := &lowerer{
		fset:     fset,
		children: make(map[*syntax.Node][]*syntax.Node),
	}

	root := syntax.NewNode(syntax.KindFile, l.fileSpan(file))
	root.SetAttr(syntax.AttrName, file.Name.Name)

	var decls []*syntax.Node
	for _, decl := range file.Decls {
		for _, n := range l.lowerDecl(decl) {
			decls = append(decls, n)
			l.children[root] = append(l.children[root], n)
		}
	}

	l.attachComments(root, decls, file)
	l.build(root)
	return syntax.NewTree(filename, root)
}

type lowerer struct {
	fset     *token.FileSet
	children map[*syntax.Node][]*syntax.Node
}

// build attaches the collected children bottom-up, ordered by start offset
// so pre-order traversal follows source order.
func (l *lowerer) build(n *syntax.Node) {
	kids := l.children[n]
	sort.SliceStable(kids, func(i, j int) bool {
		return kids[i].Span().Start.Offset < kids[j].Span().Start.Offset
	})
	for _, child := range kids {
		n.AddChild(child)
		l.build(child)
	}
}

func (l *lowerer) pos(p token.Pos) types.Position {
	position := l.fset.Position(p)
	return types.Position{Line: position.Line, Column: position.Column, Offset: position.Offset}
}

func (l *lowerer) span(n ast.Node) types.Span {
	return types.Span{Start: l.pos(n.Pos()), End: l.pos(n.End())}
}

// fileSpan covers the whole file, including comments before the package
// clause, so every node span is contained in the root span.
func (l *lowerer) fileSpan(file *ast.File) types.Span {
	tokFile := l.fset.File(file.Pos())
	return types.Span{
		Start: types.Position{Line: 1, Column: 1, Offset: 0},
		End:   l.pos(tokFile.Pos(tokFile.Size())),
	}
}

func (l *lowerer) lowerDecl(decl ast.Decl) []*syntax.Node {
	switch d := decl.(type) {
	case *ast.FuncDecl:
		return []*syntax.Node{l.lowerFuncDecl(d)}
	case *ast.GenDecl:
		return l.lowerGenDecl(d)
	default:
		return nil
	}
}

func (l *lowerer) lowerFuncDecl(d *ast.FuncDecl) *syntax.Node {
	node := syntax.NewNode(syntax.KindDeclaration, l.declSpan(d, d.Doc))
	node.SetAttr(syntax.AttrName, d.Name.Name)
	node.SetAttr(syntax.AttrExported, ast.IsExported(d.Name.Name))
	node.SetAttr(syntax.AttrHasDoc, d.Doc != nil)
	node.SetAttr(syntax.AttrNumParams, countFields(d.Type.Params))
	node.SetAttr(syntax.AttrNumResults, countFields(d.Type.Results))

	if d.Recv != nil && len(d.Recv.List) > 0 {
		node.SetAttr(syntax.AttrDeclKind, "method")
		recv := d.Recv.List[0]
		if len(recv.Names) > 0 {
			node.SetAttr(syntax.AttrReceiverName, recv.Names[0].Name)
		}
		if _, ok := recv.Type.(*ast.StarExpr); ok {
			node.SetAttr(syntax.AttrReceiverKind, "pointer")
		} else {
			node.SetAttr(syntax.AttrReceiverKind, "value")
		}
	} else {
		node.SetAttr(syntax.AttrDeclKind, "func")
	}

	if idx, ok := contextParamIndex(d.Type.Params); ok {
		node.SetAttr(syntax.AttrCtxParamIndex, idx)
	}

	l.addIdent(node, d.Name)
	l.lowerFieldNames(node, d.Recv)
	l.lowerFieldNames(node, d.Type.Params)
	l.lowerFieldNames(node, d.Type.Results)
	if d.Body != nil {
		l.lowerBody(node, d.Body)
	}
	return node
}

func (l *lowerer) lowerGenDecl(d *ast.GenDecl) []*syntax.Node {
	var nodes []*syntax.Node
	for _, spec := range d.Specs {
		switch s := spec.(type) {
		case *ast.ImportSpec:
			nodes = append(nodes, l.lowerImport(s))
		case *ast.TypeSpec:
			nodes = append(nodes, l.lowerTypeSpec(d, s))
		case *ast.ValueSpec:
			nodes = append(nodes, l.lowerValueSpec(d, s))
		}
	}
	return nodes
}

func (l *lowerer) lowerImport(s *ast.ImportSpec) *syntax.Node {
	node := syntax.NewNode(syntax.KindImport, l.span(s))
	path, _ := strconv.Unquote(s.Path.Value)
	node.SetAttr(syntax.AttrPath, path)
	if s.Name != nil {
		node.SetAttr(syntax.AttrName, s.Name.Name)
		node.SetAttr(syntax.AttrDotImport, s.Name.Name == ".")
	}
	return node
}

func (l *lowerer) lowerTypeSpec(d *ast.GenDecl, s *ast.TypeSpec) *syntax.Node {
	doc := s.Doc
	if doc == nil && len(d.Specs) == 1 {
		doc = d.Doc
	}
	node := syntax.NewNode(syntax.KindDeclaration, l.declSpan(s, doc))
	node.SetAttr(syntax.AttrName, s.Name.Name)
	node.SetAttr(syntax.AttrExported, ast.IsExported(s.Name.Name))
	node.SetAttr(syntax.AttrDeclKind, "type")
	node.SetAttr(syntax.AttrHasDoc, doc != nil)
	l.addIdent(node, s.Name)

	switch t := s.Type.(type) {
	case *ast.StructType:
		node.SetAttr(syntax.AttrTypeKind, "struct")
		for _, field := range t.Fields.List {
			for _, name := range field.Names {
				l.addField(node, field, name)
			}
		}
	case *ast.InterfaceType:
		node.SetAttr(syntax.AttrTypeKind, "interface")
		node.SetAttr(syntax.AttrMethodCount, interfaceMethodCount(t))
		for _, method := range t.Methods.List {
			for _, name := range method.Names {
				l.addField(node, method, name)
			}
		}
	default:
		node.SetAttr(syntax.AttrTypeKind, "other")
	}
	return node
}

func (l *lowerer) lowerValueSpec(d *ast.GenDecl, s *ast.ValueSpec) *syntax.Node {
	doc := s.Doc
	if doc == nil && len(d.Specs) == 1 {
		doc = d.Doc
	}
	node := syntax.NewNode(syntax.KindDeclaration, l.declSpan(s, doc))
	if len(s.Names) > 0 {
		node.SetAttr(syntax.AttrName, s.Names[0].Name)
		node.SetAttr(syntax.AttrExported, ast.IsExported(s.Names[0].Name))
	}
	if d.Tok == token.CONST {
		node.SetAttr(syntax.AttrDeclKind, "const")
	} else {
		node.SetAttr(syntax.AttrDeclKind, "var")
	}
	node.SetAttr(syntax.AttrHasDoc, doc != nil)
	for _, name := range s.Names {
		l.addIdent(node, name)
	}
	for _, value := range s.Values {
		l.lowerExprs(node, value)
	}
	return node
}

// lowerBody collects the nodes rules care about from a function body:
// locally declared identifiers, function and composite literals, and error
// constructor messages.
func (l *lowerer) lowerBody(parent *syntax.Node, body *ast.BlockStmt) {
	ast.Inspect(body, func(n ast.Node) bool {
		switch x := n.(type) {
		case *ast.AssignStmt:
			if x.Tok == token.DEFINE {
				for _, lhs := range x.Lhs {
					if ident, ok := lhs.(*ast.Ident); ok {
						l.addIdent(parent, ident)
					}
				}
			}
		case *ast.ValueSpec:
			for _, name := range x.Names {
				l.addIdent(parent, name)
			}
		case *ast.FuncLit:
			lit := syntax.NewNode(syntax.KindFunctionLiteral, l.span(x))
			lit.SetAttr(syntax.AttrNumParams, countFields(x.Type.Params))
			lit.SetAttr(syntax.AttrNumResults, countFields(x.Type.Results))
			l.children[parent] = append(l.children[parent], lit)
		case *ast.CompositeLit:
			l.lowerCompositeLit(parent, x)
		case *ast.CallExpr:
			l.lowerErrorCall(parent, x)
		}
		return true
	})
}

func (l *lowerer) lowerExprs(parent *syntax.Node, expr ast.Expr) {
	ast.Inspect(expr, func(n ast.Node) bool {
		switch x := n.(type) {
		case *ast.CompositeLit:
			l.lowerCompositeLit(parent, x)
		case *ast.CallExpr:
			l.lowerErrorCall(parent, x)
		}
		return true
	})
}

func (l *lowerer) lowerCompositeLit(parent *syntax.Node, lit *ast.CompositeLit) {
	switch lit.Type.(type) {
	case *ast.Ident, *ast.SelectorExpr:
	default:
		// slice, array and map literals are positional by nature
		return
	}
	keyed := true
	for _, elt := range lit.Elts {
		if _, ok := elt.(*ast.KeyValueExpr); !ok {
			keyed = false
			break
		}
	}
	node := syntax.NewNode(syntax.KindStructLiteral, l.span(lit))
	node.SetAttr(syntax.AttrKeyed, keyed)
	node.SetAttr(syntax.AttrFieldCount, len(lit.Elts))
	l.children[parent] = append(l.children[parent], node)
}

// lowerErrorCall materializes the message literal of errors.New and
// fmt.Errorf calls so the message-style rule can check it without looking
// at call expressions.
func (l *lowerer) lowerErrorCall(parent *syntax.Node, call *ast.CallExpr) {
	sel, ok := astutil.Unparen(call.Fun).(*ast.SelectorExpr)
	if !ok || len(call.Args) == 0 {
		return
	}
	pkg, ok := sel.X.(*ast.Ident)
	if !ok {
		return
	}
	isErrCall := (pkg.Name == "errors" && sel.Sel.Name == "New") ||
		(pkg.Name == "fmt" && sel.Sel.Name == "Errorf")
	if !isErrCall {
		return
	}
	lit, ok := call.Args[0].(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return
	}
	value, err := strconv.Unquote(lit.Value)
	if err != nil {
		return
	}
	node := syntax.NewNode(syntax.KindStringLiteral, l.span(lit))
	node.SetAttr(syntax.AttrValue, value)
	node.SetAttr(syntax.AttrErrorArg, true)
	l.children[parent] = append(l.children[parent], node)
}

func (l *lowerer) lowerFieldNames(parent *syntax.Node, fields *ast.FieldList) {
	if fields == nil {
		return
	}
	for _, field := range fields.List {
		for _, name := range field.Names {
			l.addIdent(parent, name)
		}
	}
}

func (l *lowerer) addIdent(parent *syntax.Node, ident *ast.Ident) {
	node := syntax.NewNode(syntax.KindIdentifier, l.span(ident))
	node.SetAttr(syntax.AttrName, ident.Name)
	node.SetAttr(syntax.AttrExported, ast.IsExported(ident.Name))
	node.SetAttr(syntax.AttrDeclared, true)
	l.children[parent] = append(l.children[parent], node)
}

func (l *lowerer) addField(parent *syntax.Node, field *ast.Field, name *ast.Ident) {
	node := syntax.NewNode(syntax.KindField, l.span(field))
	node.SetAttr(syntax.AttrName, name.Name)
	node.SetAttr(syntax.AttrExported, ast.IsExported(name.Name))
	l.children[parent] = append(l.children[parent], node)

	ident := syntax.NewNode(syntax.KindIdentifier, l.span(name))
	ident.SetAttr(syntax.AttrName, name.Name)
	ident.SetAttr(syntax.AttrExported, ast.IsExported(name.Name))
	ident.SetAttr(syntax.AttrDeclared, true)
	l.children[node] = append(l.children[node], ident)
}

// attachComments hangs every comment on the innermost declaration whose
// span contains it, or on the root for file-level comments. Declaration
// spans already include doc comments (declSpan), so //nolint directives in
// docs scope to their declaration.
func (l *lowerer) attachComments(root *syntax.Node, decls []*syntax.Node, file *ast.File) {
	for _, group := range file.Comments {
		for _, comment := range group.List {
			node := syntax.NewNode(syntax.KindComment, l.span(comment))
			node.SetAttr(syntax.AttrText, comment.Text)

			parent := root
			for _, decl := range decls {
				if decl.Span().Contains(node.Span()) {
					parent = decl
					break
				}
			}
			l.children[parent] = append(l.children[parent], node)
		}
	}
}

// declSpan extends a declaration's span to cover its doc comment, keeping
// the containment invariant when the doc is attached as a child.
func (l *lowerer) declSpan(decl ast.Node, doc *ast.CommentGroup) types.Span {
	s := l.span(decl)
	if doc != nil && l.pos(doc.Pos()).Offset < s.Start.Offset {
		s.Start = l.pos(doc.Pos())
	}
	return s
}

// interfaceMethodCount counts declared methods, ignoring embedded
// interfaces.
func interfaceMethodCount(t *ast.InterfaceType) int {
	n := 0
	for _, method := range t.Methods.List {
		if len(method.Names) > 0 {
			n += len(method.Names)
		}
	}
	return n
}

func countFields(fields *ast.FieldList) int {
	if fields == nil {
		return 0
	}
	n := 0
	for _, field := range fields.List {
		if len(field.Names) == 0 {
			n++
			continue
		}
		n += len(field.Names)
	}
	return n
}

// contextParamIndex returns the flattened index of the first parameter
// whose type is context.Context.
func contextParamIndex(params *ast.FieldList) (int, bool) {
	if params == nil {
		return 0, false
	}
	idx := 0
	for _, field := range params.List {
		if isContextType(field.Type) {
			return idx, true
		}
		if len(field.Names) == 0 {
			idx++
			continue
		}
		idx += len(field.Names)
	}
	return 0, false
}

func isContextType(expr ast.Expr) bool {
	sel, ok := astutil.Unparen(expr).(*ast.SelectorExpr)
	if !ok {
		return false
	}
	pkg, ok := sel.X.(*ast.Ident)
	return ok && pkg.Name == "context" && sel.Sel.Name == "Context"
}
