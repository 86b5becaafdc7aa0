package purity

import "github.com/purityeng/purity/internal/debug"

// Engine runs the fixed-point propagation algorithm of §4.5 against a
// parsed unit and its resolver, seeded by a prior-knowledge table.
// Grounded on the teacher's SideEffectPropagator
// (internal/core/side_effect_propagation.go): a bounded
// "for iterations < max { changed := propagateIteration() }" loop
// driven by a per-symbol caller index, adapted here to stop when the
// working set's history leaves nothing new to process, with an
// edge-count iteration cap kept only as a safeguard.
type Engine struct {
	PriorKnowledge *PriorKnowledgeTable
}

// NewEngine returns an engine seeded with table.
func NewEngine(table *PriorKnowledgeTable) *Engine {
	return &Engine{PriorKnowledge: table}
}

// Analyze runs the algorithm to completion and returns the populated
// lookup table (§5: a single Analyze call owns its table exclusively;
// this function allocates a fresh one every call, so concurrent calls
// never share state).
func (e *Engine) Analyze(unit Unit, resolver Resolver) *LookupTable {
	table := buildInitial(unit, resolver)
	ws := NewWorkingSet(table)

	maxIterations := table.EdgeCount() + 1
	iterations := 0

	for {
		ws.Recompute()
		snapshot := ws.Snapshot()
		if len(snapshot) == 0 {
			break
		}

		for _, m := range snapshot {
			e.settle(table, resolver, m)
			table.PropagatePurity(m)
		}

		iterations++
		if iterations > maxIterations {
			// P5 guarantees this cannot happen for a correctly built
			// table; stop rather than loop forever if it somehow does.
			debug.LogEngine("fixed-point loop exceeded bound %d, stopping early", maxIterations)
			break
		}
	}

	return table
}

// settle applies the three impurity criteria of §4.5 to a working-set
// member before it propagates. A resolved leaf matching none of them
// keeps its constructed-default Pure level (invariant 3) and still
// propagates that unchanged value, clearing the edge to its callers —
// without this, a chain of ordinary pure calls (scenario 1 in §8)
// could never converge, since PropagatePurity is the only way
// dependency edges are ever removed.
func (e *Engine) settle(table *LookupTable, resolver Resolver, m Identity) {
	if lvl, ok := e.PriorKnowledge.MatchIdentity(m); ok {
		_ = table.SetPurity(m, lvl)
		return
	}

	current, err := table.GetPurity(m)
	if err != nil {
		return
	}

	// An external identity with no prior-knowledge entry is, per the
	// glossary, exactly the "insufficient information" case: nothing
	// in this repository knows what it does. Collapsing it to Unknown
	// here — rather than leaving it stuck at its constructed-default
	// Pure — is what gives test scenario 5 (§8) its expected result:
	// the caller ends up Unknown via the lattice join, instead of
	// inheriting the external identity's default Pure.
	if m.IsExternal() {
		if current != Unknown {
			_ = table.SetPurity(m, Unknown)
		}
		return
	}

	if current == Unknown {
		return
	}

	if m.ReadsStaticProgramState(resolver) {
		_ = table.SetPurity(m, Impure)
		return
	}
}
