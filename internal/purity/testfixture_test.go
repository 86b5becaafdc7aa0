package purity

// fakeNode, fakeDecl, fakeInvocation, fakeResolver, fakeUnit build a
// minimal in-memory parsed-tree-and-resolver pair for the engine's
// own tests, standing in for internal/langsupport's tree-sitter-backed
// implementation of the same interfaces. Each test constructs its call
// graph directly rather than through a real parser, since the engine
// under test never looks past the Unit/Resolver seam.

type fakeNode struct {
	kind string
}

func (n *fakeNode) Kind() string { return n.kind }

type fakeDecl struct {
	fakeNode
	returnType     string
	enclosingClass string
	name           string
	invocations    []Invocation
	identifierRefs []Node
}

func (d *fakeDecl) ReturnType() string        { return d.returnType }
func (d *fakeDecl) EnclosingClass() string    { return d.enclosingClass }
func (d *fakeDecl) Name() string              { return d.name }
func (d *fakeDecl) Invocations() []Invocation { return d.invocations }
func (d *fakeDecl) IdentifierRefs() []Node    { return d.identifierRefs }

func newFakeDecl(returnType, class, name string) *fakeDecl {
	return &fakeDecl{fakeNode: fakeNode{kind: "method_declaration"}, returnType: returnType, enclosingClass: class, name: name}
}

type fakeInvocation struct {
	node         *fakeNode
	receiverText string
}

func (i *fakeInvocation) Node() Node           { return i.node }
func (i *fakeInvocation) ReceiverText() string { return i.receiverText }

func newCall(receiverText string) *fakeInvocation {
	return &fakeInvocation{node: &fakeNode{kind: "invocation_expression"}, receiverText: receiverText}
}

// fakeResolver resolves an invocation node to a target fakeDecl when
// present in the targets map (keyed by the invocation's own *fakeNode,
// the value Invocation.Node() hands to SymbolOf); identifier-name nodes
// resolve via the staticRefs map for ReadsStaticProgramState tests.
type fakeResolver struct {
	targets    map[*fakeNode]*fakeDecl
	staticRefs map[*fakeNode]Symbol
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{targets: make(map[*fakeNode]*fakeDecl), staticRefs: make(map[*fakeNode]Symbol)}
}

func (r *fakeResolver) SymbolOf(node Node) (Symbol, bool) {
	switch n := node.(type) {
	case *fakeNode:
		if target, ok := r.targets[n]; ok {
			return Symbol{Kind: KindMethod, DeclaringRefs: []Node{target}}, true
		}
		sym, ok := r.staticRefs[n]
		return sym, ok
	default:
		return Symbol{}, false
	}
}

func (r *fakeResolver) resolveCallTo(inv *fakeInvocation, target *fakeDecl) {
	r.targets[inv.node] = target
}

func (r *fakeResolver) markStaticField(ref *fakeNode) {
	r.staticRefs[ref] = Symbol{Static: true, Kind: KindField}
}

type fakeUnit struct {
	methods []MethodDecl
}

func (u *fakeUnit) Methods() []MethodDecl { return u.methods }

// call wires inv as a call from caller to callee, resolved through r.
func call(r *fakeResolver, caller *fakeDecl, inv *fakeInvocation, callee *fakeDecl) {
	caller.invocations = append(caller.invocations, inv)
	if callee != nil {
		r.resolveCallTo(inv, callee)
	}
}
