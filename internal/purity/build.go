package purity

// buildInitial implements the "Initial construction" algorithm of
// §4.4: for each method declaration in the parsed unit, add a
// resolved row and compute its *immediate* dependencies only — never
// recursing into callees at construction time (§4.4's "known anomaly"
// / §9's first open question, resolved in favor of immediate-only:
// the fixed-point loop in Engine.Analyze computes the transitive
// closure).
func buildInitial(unit Unit, resolver Resolver) *LookupTable {
	table := NewLookupTable(resolver)

	for _, decl := range unit.Methods() {
		m := NewResolvedIdentity(decl)
		table.AddMethod(m)
	}

	for _, decl := range unit.Methods() {
		m := NewResolvedIdentity(decl)
		for _, inv := range decl.Invocations() {
			n := IdentityForInvocation(inv, resolver)
			table.AddDependency(m, n)
		}
	}

	return table
}
