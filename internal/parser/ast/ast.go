// Package ast defines the Abstract Syntax Tree node types for the compiler.
//
// The AST is a closed sum type: Node is sealed by an unexported method, and
// the variants are exactly the structs in this package. Consumers switch on
// the concrete type; the default branch of such a switch is unreachable and
// panics.
//
// OWNERSHIP: every child node or child list belongs to exactly one parent.
// Nodes are not shared, the tree has no cycles, and nodes are not modified
// after construction. Passes that rewrite the tree build new nodes.
package ast

import (
	"fmt"

	"github.com/hassan/bootc/internal/lexer"
)

// Node is the interface of all AST nodes.
type Node interface {
	// Span returns the source range covered by the node.
	Span() lexer.Span

	node()
}

// Loc records the source range of a node. It is embedded in every variant
// but does not make a type a Node on its own.
type Loc struct {
	Range lexer.Span
}

func (l Loc) Span() lexer.Span { return l.Range }

func (*Ident) node()  {}
func (*IntLit) node() {}
func (*StrLit) node() {}
func (*Unary) node()  {}
func (*Call) node()   {}
func (*Index) node()  {}
func (*Member) node() {}
func (*UOps) node()   {}
func (*Binary) node() {}
func (*Scope) node()  {}
func (*While) node()  {}
func (*If) node()     {}

// unknownNode panics on a node type outside the closed set.
// Reaching it means a variant was added without updating a consumer.
func unknownNode(n Node) {
	panic(fmt.Sprintf("ast: unknown node type %T", n))
}
