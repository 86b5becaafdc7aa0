package purity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyze(t *testing.T, table *PriorKnowledgeTable, unit *fakeUnit, resolver *fakeResolver) *LookupTable {
	t.Helper()
	eng := NewEngine(table)
	return eng.Analyze(unit, resolver)
}

func purityOf(t *testing.T, lt *LookupTable, id Identity) Level {
	t.Helper()
	lvl, err := lt.GetPurity(id)
	require.NoError(t, err)
	return lvl
}

// Scenario 1: two pure methods, one calls the other.
func TestScenario_TwoPureMethodsOneCallsOther(t *testing.T) {
	foo := newFakeDecl("int", "C", "foo")
	bar := newFakeDecl("int", "C", "bar")
	resolver := newFakeResolver()
	call(resolver, foo, newCall("bar"), bar)

	lt := analyze(t, BuiltinCSharp(), &fakeUnit{methods: []MethodDecl{foo, bar}}, resolver)

	assert.Equal(t, Pure, purityOf(t, lt, NewResolvedIdentity(foo)))
	assert.Equal(t, Pure, purityOf(t, lt, NewResolvedIdentity(bar)))
}

// Scenario 2: direct I/O via prior knowledge.
func TestScenario_DirectIO(t *testing.T) {
	f := newFakeDecl("void", "C", "f")
	resolver := newFakeResolver()
	call(resolver, f, newCall("Console.WriteLine"), nil)

	lt := analyze(t, BuiltinCSharp(), &fakeUnit{methods: []MethodDecl{f}}, resolver)

	assert.Equal(t, Impure, purityOf(t, lt, NewResolvedIdentity(f)))
}

// Scenario 3: transitive impurity.
func TestScenario_TransitiveImpurity(t *testing.T) {
	a := newFakeDecl("int", "C", "a")
	b := newFakeDecl("int", "C", "b")
	resolver := newFakeResolver()
	call(resolver, a, newCall("b"), b)
	call(resolver, b, newCall("Console.WriteLine"), nil)

	lt := analyze(t, BuiltinCSharp(), &fakeUnit{methods: []MethodDecl{a, b}}, resolver)

	assert.Equal(t, Impure, purityOf(t, lt, NewResolvedIdentity(a)))
	assert.Equal(t, Impure, purityOf(t, lt, NewResolvedIdentity(b)))
}

// Scenario 4: static field read.
func TestScenario_StaticFieldRead(t *testing.T) {
	f := newFakeDecl("int", "C", "f")
	resolver := newFakeResolver()
	sRef := &fakeNode{kind: "identifier"}
	resolver.markStaticField(sRef)
	f.identifierRefs = append(f.identifierRefs, sRef)

	lt := analyze(t, BuiltinCSharp(), &fakeUnit{methods: []MethodDecl{f}}, resolver)

	assert.Equal(t, Impure, purityOf(t, lt, NewResolvedIdentity(f)))
}

// Scenario 5: unknown external.
func TestScenario_UnknownExternal(t *testing.T) {
	f := newFakeDecl("int", "C", "f")
	resolver := newFakeResolver()
	call(resolver, f, newCall("Unrecognized.call"), nil)

	lt := analyze(t, BuiltinCSharp(), &fakeUnit{methods: []MethodDecl{f}}, resolver)

	assert.Equal(t, Unknown, purityOf(t, lt, NewResolvedIdentity(f)))
}

// Scenario 6: cross-class pure chain; a static method read is not a
// static field read.
func TestScenario_CrossClassPureChain(t *testing.T) {
	x := newFakeDecl("int", "A", "x")
	y := newFakeDecl("int", "B", "y")
	resolver := newFakeResolver()
	call(resolver, x, newCall("B.y"), y)

	lt := analyze(t, BuiltinCSharp(), &fakeUnit{methods: []MethodDecl{x, y}}, resolver)

	assert.Equal(t, Pure, purityOf(t, lt, NewResolvedIdentity(x)))
	assert.Equal(t, Pure, purityOf(t, lt, NewResolvedIdentity(y)))
}

// Scenario 7: Java-equivalent direct I/O through the shared engine,
// proving the engine's rules are language-shape-agnostic (§11).
func TestScenario_JavaDirectIO(t *testing.T) {
	f := newFakeDecl("void", "C", "f")
	resolver := newFakeResolver()
	call(resolver, f, newCall("System.out.println"), nil)

	lt := analyze(t, BuiltinJava(), &fakeUnit{methods: []MethodDecl{f}}, resolver)

	assert.Equal(t, Impure, purityOf(t, lt, NewResolvedIdentity(f)))
}

// Scenario 8: Dispose is recognized regardless of receiver variable name.
func TestScenario_DisposeIsImpure(t *testing.T) {
	f := newFakeDecl("void", "C", "f")
	resolver := newFakeResolver()
	call(resolver, f, newCall("r.Dispose"), nil)

	lt := analyze(t, BuiltinCSharp(), &fakeUnit{methods: []MethodDecl{f}}, resolver)

	assert.Equal(t, Impure, purityOf(t, lt, NewResolvedIdentity(f)))
}

// Law L4: empty program yields an empty table.
func TestLaw_EmptyProgramEmptyTable(t *testing.T) {
	lt := analyze(t, BuiltinCSharp(), &fakeUnit{}, newFakeResolver())
	assert.Equal(t, 0, lt.Len())
}

// Property P5 (termination bound) and P1 (uniqueness): a deep call
// chain converges and every identity is a single row.
func TestProperty_UniquenessAndTermination(t *testing.T) {
	const depth = 12
	decls := make([]*fakeDecl, depth)
	resolver := newFakeResolver()
	for i := 0; i < depth; i++ {
		decls[i] = newFakeDecl("void", "C", "m"+string(rune('a'+i)))
	}
	for i := 0; i < depth-1; i++ {
		call(resolver, decls[i], newCall("next"), decls[i+1])
	}
	call(resolver, decls[depth-1], newCall("Console.WriteLine"), nil)

	methods := make([]MethodDecl, depth)
	for i, d := range decls {
		methods[i] = d
	}
	lt := analyze(t, BuiltinCSharp(), &fakeUnit{methods: methods}, resolver)

	seen := make(map[Identity]bool)
	for _, id := range lt.Rows() {
		assert.False(t, seen[id], "duplicate row for %s", id.Display())
		seen[id] = true
	}
	for _, d := range decls {
		assert.Equal(t, Impure, purityOf(t, lt, NewResolvedIdentity(d)))
	}
}

func TestPriorKnowledgeTable_DuplicateFirstMatchWins(t *testing.T) {
	table := newTable([]priorEntry{
		{"X.Y", Impure},
		{"X.Y", Pure},
	})
	lvl, ok := table.Lookup("X.Y")
	require.True(t, ok)
	assert.Equal(t, Impure, lvl)
}

func TestLattice_Join(t *testing.T) {
	assert.Equal(t, Impure, Join(Pure, Impure))
	assert.Equal(t, Unknown, Join(Pure, Unknown))
	assert.Equal(t, Impure, Join(Impure, Unknown))
	assert.Equal(t, Pure, Join(Pure, Pure))
}
