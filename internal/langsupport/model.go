package langsupport

import (
	"github.com/purityeng/purity/internal/purity"
)

// method is this package's purity.MethodDecl: one declaration found
// while walking a class body. Every reference to the same declaration
// reuses this same pointer, satisfying purity.Node's equal-by-identity
// contract.
type method struct {
	kind           string
	returnType     string
	enclosingClass string
	name           string
	isStatic       bool
	invocations    []purity.Invocation
	identifierRefs []purity.Node
}

func (m *method) Kind() string                    { return m.kind }
func (m *method) ReturnType() string               { return m.returnType }
func (m *method) EnclosingClass() string           { return m.enclosingClass }
func (m *method) Name() string                     { return m.name }
func (m *method) Invocations() []purity.Invocation { return m.invocations }
func (m *method) IdentifierRefs() []purity.Node    { return m.identifierRefs }

// callSite is the Node an invocation resolves against; one per call
// expression in the source, reused as both Invocation.Node()'s return
// value and the resolver's map key for that specific call site.
type callSite struct {
	kind string
}

func (s *callSite) Kind() string { return s.kind }

// invocation is this package's purity.Invocation.
type invocation struct {
	site         *callSite
	receiverText string
}

func (i *invocation) Node() purity.Node      { return i.site }
func (i *invocation) ReceiverText() string   { return i.receiverText }

// fieldRef is a bare identifier reference inside a method body that
// this package has classified, with reasonable confidence, as reading
// a field or property of the enclosing class (never a local variable
// or parameter — those are deliberately left out of IdentifierRefs so
// that ReadsStaticProgramState's "stop on first unresolved identifier"
// rule never fires on a name this front end cannot classify).
type fieldRef struct {
	kind           string
	name           string
	enclosingClass string
}

func (r *fieldRef) Kind() string { return r.kind }

// Unit is this package's purity.Unit: every method declaration found
// in one parsed compilation unit, in document order.
type Unit struct {
	methods []purity.MethodDecl
}

func (u *Unit) Methods() []purity.MethodDecl { return u.methods }

// member describes one field or property declared on a class, used by
// the resolver to classify fieldRef identifiers and to decide whether
// a bare-name invocation's receiver is a known class rather than a
// local variable of unknown type.
type member struct {
	static bool
	kind   purity.SymbolKind
}

// classInfo is the per-class symbol table the resolver consults.
type classInfo struct {
	name      string
	methods   map[string]*method // by method name; last declaration wins on overload
	members   map[string]member  // by field/property name
	javaStyle bool                // selects method_invocation/field_access node kinds over the C# ones
}

// Resolver is this package's purity.Resolver: a same-file symbol table
// built in one pass over the parsed tree, resolving invocation call
// sites to same-file declarations and identifier references to
// same-class field/property symbols. Cross-file and cross-assembly
// receivers (the common case for a local variable of unknown type)
// are left unresolved, falling through to an external identity exactly
// as §4.2 case (b) describes.
type Resolver struct {
	classes map[string]*classInfo
	targets map[*callSite]*method
}

func newResolver() *Resolver {
	return &Resolver{
		classes: make(map[string]*classInfo),
		targets: make(map[*callSite]*method),
	}
}

// SymbolOf implements purity.Resolver.
func (r *Resolver) SymbolOf(node purity.Node) (purity.Symbol, bool) {
	switch n := node.(type) {
	case *callSite:
		target, ok := r.targets[n]
		if !ok {
			return purity.Symbol{}, false
		}
		return purity.Symbol{Kind: purity.KindMethod, DeclaringRefs: []purity.Node{target}}, true
	case *fieldRef:
		cls, ok := r.classes[n.enclosingClass]
		if !ok {
			return purity.Symbol{}, false
		}
		m, ok := cls.members[n.name]
		if !ok {
			return purity.Symbol{}, false
		}
		return purity.Symbol{Static: m.static, Kind: m.kind}, true
	default:
		return purity.Symbol{}, false
	}
}

// resolveCall attempts to find the method a bare or same-class call
// targets: "Method()" or "this.Method()" resolve within the enclosing
// class; "ClassName.Method()" resolves against a known class in the
// same file. Any other receiver shape (an arbitrary local variable or
// parameter) is left unresolved — this front end has no type inference
// over locals, and an unresolved call site correctly becomes an
// external identity.
func (r *Resolver) resolveCall(site *callSite, enclosingClass, receiverType, methodName string) {
	var cls *classInfo
	switch receiverType {
	case "", "this":
		cls = r.classes[enclosingClass]
	default:
		cls = r.classes[receiverType]
	}
	if cls == nil {
		return
	}
	target, ok := cls.methods[methodName]
	if !ok {
		return
	}
	r.targets[site] = target
}
