package purity

// This file names the parser/resolver collaborator interface the
// engine consumes. It is deliberately small: everything the engine
// needs from a parsed program and its symbol table, and nothing a
// concrete front end (internal/langsupport) doesn't already have to
// produce anyway.

// SymbolKind classifies a resolved symbol. Only Field and Property
// count toward a static-state read (§4.2); Method never does, even
// when the resolved symbol is itself static (a reference to a static
// method is not a static-field read).
type SymbolKind int

const (
	KindOther SymbolKind = iota
	KindField
	KindProperty
	KindMethod
)

// Node is an opaque reference to a node in the parsed tree, handed out
// by the parser/resolver collaborator. Two Node values compare equal
// (via ==) exactly when they denote the same declaration; langsupport
// achieves this by wrapping each underlying tree-sitter node in the
// same pointer every time it is referenced, never allocating a fresh
// wrapper per reference.
type Node interface {
	Kind() string
}

// MethodDecl is a Node that is specifically a method declaration: it
// additionally exposes the pieces needed to build the display form
// (§3) and to walk the body for dependencies (§4.4) and static-state
// reads (§4.2).
type MethodDecl interface {
	Node

	ReturnType() string
	EnclosingClass() string
	Name() string

	// Invocations lists every invocation expression inside the
	// method's body, in the order the parser encounters them.
	Invocations() []Invocation

	// IdentifierRefs lists every identifier-name reference inside the
	// method's body, in source order, for ReadsStaticProgramState.
	IdentifierRefs() []Node
}

// Invocation is one call expression inside a method body.
type Invocation interface {
	// Node is the invocation expression itself; pass this to
	// Resolver.SymbolOf to find its target.
	Node() Node

	// ReceiverText is the invocation's receiver-plus-name text,
	// exactly as written (whitespace not yet normalized).
	ReceiverText() string
}

// Symbol is what a Resolver returns for an identifier or invocation
// expression node.
type Symbol struct {
	Static        bool
	Kind          SymbolKind
	DeclaringRefs []Node
}

// Resolver is the symbol resolver collaborator. SymbolOf returns
// (Symbol{}, false) when the node's symbol cannot be determined —
// the engine treats that as semantic uncertainty (§7), never as an
// error.
type Resolver interface {
	SymbolOf(node Node) (Symbol, bool)
}

// Unit is a parsed compilation unit: a root node yielding every
// method declaration in document order.
type Unit interface {
	Methods() []MethodDecl
}
