// Package syntax defines the language-agnostic tree that rules inspect.
//
// A tree is produced by a front end (see internal/gosyntax for the Go one),
// is immutable once built, and may be shared by any number of concurrent
// readers. Ownership is strictly tree-shaped: parents own their children,
// the parent back-reference is a lookup convenience only.
package syntax

import (
	"github.com/apaliavy/golangcodestyle/internal/types"
)

// Kind tags a node with its syntactic category.
type Kind int

const (
	KindFile Kind = iota
	KindImport
	KindDeclaration
	KindField
	KindIdentifier
	KindFunctionLiteral
	KindStructLiteral
	KindStringLiteral
	KindComment
)

var kindNames = map[Kind]string{
	KindFile:            "File",
	KindImport:          "Import",
	KindDeclaration:     "Declaration",
	KindField:           "Field",
	KindIdentifier:      "Identifier",
	KindFunctionLiteral: "FunctionLiteral",
	KindStructLiteral:   "StructLiteral",
	KindStringLiteral:   "StringLiteral",
	KindComment:         "Comment",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Attribute names materialized by front ends. Rules read these instead of
// re-deriving context from the tree.
const (
	AttrName          = "name"          // string: identifier / declaration name
	AttrExported      = "exported"      // bool
	AttrDeclared      = "declared"      // bool: identifier is a declaration site
	AttrDeclKind      = "declKind"      // string: func | method | type | var | const
	AttrTypeKind      = "typeKind"      // string: struct | interface | other
	AttrMethodCount   = "methodCount"   // int: interface method count
	AttrReceiverName  = "receiverName"  // string
	AttrReceiverKind  = "receiverKind"  // string: value | pointer
	AttrNumParams     = "numParams"     // int
	AttrNumResults    = "numResults"    // int
	AttrCtxParamIndex = "ctxParamIndex" // int: position of context.Context, -1 if absent
	AttrHasDoc        = "hasDoc"        // bool: declaration carries a doc comment
	AttrKeyed         = "keyed"         // bool: composite literal uses field keys
	AttrFieldCount    = "fieldCount"    // int: composite literal element count
	AttrValue         = "value"         // string: literal value, unquoted
	AttrErrorArg      = "errorArg"      // bool: literal is an error constructor message
	AttrText          = "text"          // string: raw comment text
	AttrPath          = "path"          // string: import path
	AttrDotImport     = "dot"           // bool: dot import
)

// Node is a single vertex of the syntax tree. Nodes are built once by a
// front end and must not be mutated afterwards.
type Node struct {
	kind     Kind
	span     types.Span
	parent   *Node
	children []*Node
	attrs    map[string]any
}

// NewNode creates a detached node. Front ends attach it with AddChild and
// decorate it with SetAttr before handing the finished tree out.
func NewNode(kind Kind, span types.Span) *Node {
	return &Node{kind: kind, span: span}
}

// SetAttr records an attribute on a node under construction.
func (n *Node) SetAttr(name string, value any) *Node {
	if n.attrs == nil {
		n.attrs = make(map[string]any)
	}
	n.attrs[name] = value
	return n
}

// AddChild appends child to n and sets its back-reference.
func (n *Node) AddChild(child *Node) *Node {
	child.parent = n
	n.children = append(n.children, child)
	return n
}

func (n *Node) Kind() Kind        { return n.kind }
func (n *Node) Span() types.Span  { return n.span }
func (n *Node) Parent() *Node     { return n.parent }
func (n *Node) Children() []*Node { return n.children }

// Attr returns the raw attribute value.
func (n *Node) Attr(name string) (any, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// BoolAttr returns the attribute as a bool, false when absent or mistyped.
func (n *Node) BoolAttr(name string) bool {
	v, _ := n.attrs[name].(bool)
	return v
}

// StringAttr returns the attribute as a string, "" when absent or mistyped.
func (n *Node) StringAttr(name string) string {
	v, _ := n.attrs[name].(string)
	return v
}

// IntAttr returns the attribute as an int, 0 when absent or mistyped.
func (n *Node) IntAttr(name string) int {
	v, _ := n.attrs[name].(int)
	return v
}

// Enclosing walks the parent chain (inclusive) and returns the innermost
// node satisfying pred, or nil. Intended for the suppression resolver;
// rules read materialized attributes instead of climbing the tree.
func (n *Node) Enclosing(pred func(*Node) bool) *Node {
	for cur := n; cur != nil; cur = cur.parent {
		if pred(cur) {
			return cur
		}
	}
	return nil
}

// Tree is an immutable syntax tree with exactly one root.
type Tree struct {
	root     *Node
	filename string
}

// NewTree wraps a finished root node. The root must be fully built: after
// this call neither the tree nor any node may be modified.
func NewTree(filename string, root *Node) *Tree {
	return &Tree{root: root, filename: filename}
}

func (t *Tree) Root() *Node      { return t.root }
func (t *Tree) Filename() string { return t.filename }

// Cursor returns a fresh pre-order iterator over the tree. Cursors are
// independent: each call restarts from the root.
func (t *Tree) Cursor() *Cursor {
	return &Cursor{stack: []*Node{t.root}}
}

// Walk visits every node in depth-first pre-order. Returning false from fn
// skips the node's subtree.
func (t *Tree) Walk(fn func(*Node) bool) {
	walk(t.root, fn)
}

func walk(n *Node, fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.children {
		walk(child, fn)
	}
}

// NodeAt returns the innermost node whose span contains the byte offset.
func (t *Tree) NodeAt(offset int) *Node {
	if !t.root.span.ContainsOffset(offset) {
		return nil
	}
	cur := t.root
	for {
		advanced := false
		for _, child := range cur.children {
			if child.span.ContainsOffset(offset) {
				cur = child
				advanced = true
				break
			}
		}
		if !advanced {
			return cur
		}
	}
}

// Cursor is a lazy pre-order iterator. The zero value is exhausted.
type Cursor struct {
	stack []*Node
}

// Next returns the next node in pre-order, or nil when the walk is done.
func (c *Cursor) Next() *Node {
	if len(c.stack) == 0 {
		return nil
	}
	n := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	for i := len(n.children) - 1; i >= 0; i-- {
		c.stack = append(c.stack, n.children[i])
	}
	return n
}
