package ast

// Inspect traverses the tree rooted at n in depth-first order, calling f for
// every node. If f returns false, the children of that node are skipped.
func Inspect(n Node, f func(Node) bool) {
	if !f(n) {
		return
	}

	switch n := n.(type) {
	case *Ident, *IntLit, *StrLit:
		// leaves
	case *Unary:
		Inspect(n.Arg, f)
	case *Call:
		Inspect(n.Target, f)
		inspectList(n.Args, f)
	case *Index:
		Inspect(n.Target, f)
		inspectList(n.Args, f)
	case *Member:
		Inspect(n.Aggregate, f)
	case *UOps:
		inspectList(n.List, f)
	case *Binary:
		Inspect(n.Left, f)
		Inspect(n.Right, f)
	case *Scope:
		inspectList(n.Stmts, f)
	case *While:
		Inspect(n.Cond, f)
		inspectList(n.Body, f)
	case *If:
		Inspect(n.Cond, f)
		inspectList(n.True, f)
		inspectList(n.False, f)
	default:
		unknownNode(n)
	}
}

func inspectList(nodes []Node, f func(Node) bool) {
	for _, n := range nodes {
		Inspect(n, f)
	}
}

// Count returns the number of nodes in the tree rooted at n.
func Count(n Node) int {
	count := 0
	Inspect(n, func(Node) bool {
		count++
		return true
	})
	return count
}
