package ast

import (
	"io"
	"strconv"
	"strings"
)

// String returns a compact S-expression dump of n.
//
// FORMAT:
//
//	x                     identifier
//	42  "s"               literals
//	(- x)                 unary
//	(call f a b)          call
//	(index a i)           indexing
//	(member a m)          member access
//	(uops a + b * c)      unresolved chain
//	(+ a b)               resolved binary
//	(scope s1 s2)
//	(while c (s1 s2))
//	(if c (s1) (s2))
func String(n Node) string {
	var b strings.Builder
	write(&b, n)
	return b.String()
}

// Fprint writes the dump of each node on its own line.
func Fprint(w io.Writer, nodes ...Node) error {
	for _, n := range nodes {
		if _, err := io.WriteString(w, String(n)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func write(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Ident:
		b.WriteString(n.Name)
	case *IntLit:
		b.WriteString(strconv.FormatUint(n.Value, 10))
	case *StrLit:
		b.WriteString(strconv.Quote(n.Value))
	case *Unary:
		writeList(b, n.Op.Spelling, n.Arg)
	case *Call:
		writeList(b, "call", append([]Node{n.Target}, n.Args...)...)
	case *Index:
		writeList(b, "index", append([]Node{n.Target}, n.Args...)...)
	case *Member:
		b.WriteString("(member ")
		write(b, n.Aggregate)
		b.WriteString(" " + n.Name + ")")
	case *UOps:
		writeList(b, "uops", n.List...)
	case *Binary:
		writeList(b, n.Op.Spelling, n.Left, n.Right)
	case *Scope:
		writeList(b, "scope", n.Stmts...)
	case *While:
		b.WriteString("(while ")
		write(b, n.Cond)
		b.WriteByte(' ')
		writeBody(b, n.Body)
		b.WriteByte(')')
	case *If:
		b.WriteString("(if ")
		write(b, n.Cond)
		b.WriteByte(' ')
		writeBody(b, n.True)
		b.WriteByte(' ')
		writeBody(b, n.False)
		b.WriteByte(')')
	default:
		unknownNode(n)
	}
}

func writeList(b *strings.Builder, head string, nodes ...Node) {
	b.WriteByte('(')
	b.WriteString(head)
	for _, n := range nodes {
		b.WriteByte(' ')
		write(b, n)
	}
	b.WriteByte(')')
}

func writeBody(b *strings.Builder, stmts []Node) {
	b.WriteByte('(')
	for i, stmt := range stmts {
		if i > 0 {
			b.WriteByte(' ')
		}
		write(b, stmt)
	}
	b.WriteByte(')')
}
