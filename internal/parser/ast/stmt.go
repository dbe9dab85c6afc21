package ast

// Statement nodes. Any expression node can also stand as a statement.

// Scope is a block of statements: { ... } or do ... end.
// The parser also returns a Scope for a whole program.
type Scope struct {
	Loc
	Stmts []Node
}

// While is a loop: while Cond do Body end.
type While struct {
	Loc
	Cond Node
	Body []Node
}

// If is a conditional: if Cond do True else False end.
// False is empty when there is no else branch.
type If struct {
	Loc
	Cond  Node
	True  []Node
	False []Node
}
