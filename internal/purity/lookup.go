package purity

import "github.com/purityeng/purity/internal/errors"

// row is one entry of the lookup table: a method identity together
// with its current dependency set and purity level (§3).
type row struct {
	id      Identity
	order   []Identity      // D(m), ordered, duplicate-free
	present map[Identity]bool // membership mirror of order, for O(1) HasDependency
	purity  Level
}

// LookupTable is the mutable central data structure of §4.4: a
// mapping from method identity to (dependency set, purity level).
// Grounded on the teacher's FunctionDependencyTracker
// (internal/analysis/dependency_tracker.go) for the map-of-nodes +
// reverse-caller-index shape, with its mutex dropped: per §5 a single
// LookupTable is owned exclusively by one Analyze call, so there is no
// concurrent access to guard against within the engine itself.
type LookupTable struct {
	insertOrder []Identity
	rows        map[Identity]*row
	callers     map[Identity]map[Identity]bool // callers[n] = {m | n in D(m)}
	resolver    Resolver                        // borrowed, read-only
}

// NewLookupTable returns an empty table bound to a resolver.
func NewLookupTable(resolver Resolver) *LookupTable {
	return &LookupTable{
		rows:     make(map[Identity]*row),
		callers:  make(map[Identity]map[Identity]bool),
		resolver: resolver,
	}
}

// AddMethod adds row (m, ∅, Pure) if absent (invariant 3). Idempotent.
func (t *LookupTable) AddMethod(m Identity) {
	if _, ok := t.rows[m]; ok {
		return
	}
	t.rows[m] = &row{id: m, present: make(map[Identity]bool), purity: Pure}
	t.insertOrder = append(t.insertOrder, m)
	if t.callers[m] == nil {
		t.callers[m] = make(map[Identity]bool)
	}
}

// HasMethod reports whether m has a row.
func (t *LookupTable) HasMethod(m Identity) bool {
	_, ok := t.rows[m]
	return ok
}

// RemoveMethod removes m's row. Fails if m is absent.
func (t *LookupTable) RemoveMethod(m Identity) error {
	r, ok := t.rows[m]
	if !ok {
		return errors.NewPreconditionError("RemoveMethod", m.Display())
	}
	for _, n := range r.order {
		if cs := t.callers[n]; cs != nil {
			delete(cs, m)
		}
	}
	delete(t.rows, m)
	delete(t.callers, m)
	t.insertOrder = removeIdentity(t.insertOrder, m)
	return nil
}

func removeIdentity(s []Identity, target Identity) []Identity {
	out := s[:0]
	for _, v := range s {
		if v != target {
			out = append(out, v)
		}
	}
	return out
}

// AddDependency ensures both rows exist and adds n to D(m) if absent.
func (t *LookupTable) AddDependency(m, n Identity) {
	t.AddMethod(m)
	t.AddMethod(n)
	r := t.rows[m]
	if r.present[n] {
		return
	}
	r.present[n] = true
	r.order = append(r.order, n)
	if t.callers[n] == nil {
		t.callers[n] = make(map[Identity]bool)
	}
	t.callers[n][m] = true
}

// RemoveDependency removes n from D(m). Fails if either row is absent
// or n ∉ D(m).
func (t *LookupTable) RemoveDependency(m, n Identity) error {
	r, ok := t.rows[m]
	if !ok {
		return errors.NewPreconditionError("RemoveDependency", m.Display())
	}
	if _, ok := t.rows[n]; !ok {
		return errors.NewPreconditionError("RemoveDependency", n.Display())
	}
	if !r.present[n] {
		return errors.NewPreconditionError("RemoveDependency", m.Display()+" -> "+n.Display())
	}
	delete(r.present, n)
	r.order = removeIdentity(r.order, n)
	if cs := t.callers[n]; cs != nil {
		delete(cs, m)
	}
	return nil
}

// HasDependency reports whether n ∈ D(m).
func (t *LookupTable) HasDependency(m, n Identity) bool {
	r, ok := t.rows[m]
	if !ok {
		return false
	}
	return r.present[n]
}

// Dependencies returns D(m) in insertion order. Empty slice if m is
// absent or has no dependencies.
func (t *LookupTable) Dependencies(m Identity) []Identity {
	r, ok := t.rows[m]
	if !ok {
		return nil
	}
	out := make([]Identity, len(r.order))
	copy(out, r.order)
	return out
}

// GetPurity reads P(m). Fails if m is absent.
func (t *LookupTable) GetPurity(m Identity) (Level, error) {
	r, ok := t.rows[m]
	if !ok {
		return 0, errors.NewPreconditionError("GetPurity", m.Display())
	}
	return r.purity, nil
}

// SetPurity overwrites P(m). Fails if m is absent.
func (t *LookupTable) SetPurity(m Identity, p Level) error {
	r, ok := t.rows[m]
	if !ok {
		return errors.NewPreconditionError("SetPurity", m.Display())
	}
	r.purity = p
	return nil
}

// GetCallers returns every c such that m ∈ D(c), in the order those
// callers were first added to the table (matching the teacher's
// deterministic sort.Slice output discipline in dependency_tracker.go,
// adapted here to insertion order since identities, unlike the
// teacher's integer symbol IDs, carry no natural sort key).
func (t *LookupTable) GetCallers(m Identity) []Identity {
	set := t.callers[m]
	if len(set) == 0 {
		return nil
	}
	out := make([]Identity, 0, len(set))
	for _, c := range t.insertOrder {
		if set[c] {
			out = append(out, c)
		}
	}
	return out
}

// PropagatePurity propagates m's purity to every caller c: c's purity
// becomes the lattice join of its current purity and P(m), and the
// m->c dependency edge is removed. A literal unconditional overwrite
// (as the contract's prose reads in isolation) would let a caller with
// more than one outstanding dependency have its purity raised back up
// by a later, purer dependency resolving — violating invariant 4/6
// (monotonic decrease). Joining instead of overwriting keeps every
// propagation a one-way trip down the lattice while still satisfying
// "SetPurity(c, P(m))" for the common case of a caller with exactly
// one remaining dependency.
func (t *LookupTable) PropagatePurity(m Identity) {
	mPurity, err := t.GetPurity(m)
	if err != nil {
		return
	}
	for _, c := range t.GetCallers(m) {
		cPurity, err := t.GetPurity(c)
		if err != nil {
			continue
		}
		_ = t.SetPurity(c, Join(cPurity, mPurity))
		_ = t.RemoveDependency(c, m)
	}
}

// StripExternal returns a copy containing only rows whose identity is
// resolved to a declaration in the parsed tree, for the CLI's
// file-mode report (§6).
func (t *LookupTable) StripExternal() *LookupTable {
	out := NewLookupTable(t.resolver)
	keep := make(map[Identity]bool)
	for _, id := range t.insertOrder {
		if id.IsResolved() {
			keep[id] = true
		}
	}
	for _, id := range t.insertOrder {
		if !keep[id] {
			continue
		}
		out.AddMethod(id)
		r := t.rows[id]
		_ = out.SetPurity(id, r.purity)
		for _, dep := range r.order {
			if keep[dep] {
				out.AddDependency(id, dep)
			}
		}
	}
	return out
}

// Copy returns a deep clone of the rows; the parsed tree and resolver
// are shared (borrowed, read-only), never copied.
func (t *LookupTable) Copy() *LookupTable {
	out := NewLookupTable(t.resolver)
	for _, id := range t.insertOrder {
		out.AddMethod(id)
	}
	for _, id := range t.insertOrder {
		r := t.rows[id]
		_ = out.SetPurity(id, r.purity)
		for _, dep := range r.order {
			out.AddDependency(id, dep)
		}
	}
	return out
}

// Rows returns every identity currently in the table, in insertion order.
func (t *LookupTable) Rows() []Identity {
	out := make([]Identity, len(t.insertOrder))
	copy(out, t.insertOrder)
	return out
}

// Len returns the number of rows.
func (t *LookupTable) Len() int {
	return len(t.insertOrder)
}

// UnknownMethods returns every resolved identity whose settled purity
// is Unknown, in insertion order — the set that strict mode (§10)
// surfaces as a semantic-uncertainty warning instead of a silent
// Unknown. External identities are excluded: they are never
// "declared" methods a caller can act on.
func (t *LookupTable) UnknownMethods() []Identity {
	var out []Identity
	for _, id := range t.insertOrder {
		if id.IsExternal() {
			continue
		}
		if t.rows[id].purity == Unknown {
			out = append(out, id)
		}
	}
	return out
}

// UnmatchedExternals returns every external identity that missed the
// prior-knowledge table (settle's only path to Unknown for an
// external identity, per engine.go), in insertion order — the
// candidates for the nearest-match suggestion of §11/§12.2.
func (t *LookupTable) UnmatchedExternals() []Identity {
	var out []Identity
	for _, id := range t.insertOrder {
		if !id.IsExternal() {
			continue
		}
		if t.rows[id].purity == Unknown {
			out = append(out, id)
		}
	}
	return out
}

// EdgeCount returns the total number of dependency edges currently in
// the table, used by the analyzer driver to bound iteration (§4.5/P5).
func (t *LookupTable) EdgeCount() int {
	n := 0
	for _, r := range t.rows {
		n += len(r.order)
	}
	return n
}
