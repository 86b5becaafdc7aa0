package purity

// WorkingSet is the projection over the lookup table described in
// §4.6: the methods with an empty dependency set that have not been
// processed before, plus a history set so a method enters the working
// set at most once ever (invariant 5).
type WorkingSet struct {
	table   *LookupTable
	history map[Identity]bool
	current []Identity
}

// NewWorkingSet builds an empty working set over table. Call
// Recompute once before the first iteration of the fixed-point loop.
func NewWorkingSet(table *LookupTable) *WorkingSet {
	return &WorkingSet{table: table, history: make(map[Identity]bool)}
}

// Recompute clears the sequence and appends every row whose D(m) = ∅
// and which has never previously entered the working set, in the
// table's row-insertion order (§5: deterministic in row-insertion
// order).
func (w *WorkingSet) Recompute() {
	w.current = w.current[:0]
	for _, id := range w.table.Rows() {
		if len(w.table.Dependencies(id)) != 0 {
			continue
		}
		if w.history[id] {
			continue
		}
		w.current = append(w.current, id)
		w.history[id] = true
	}
}

// Snapshot returns the working set as produced by the preceding
// Recompute — the analyzer driver iterates this snapshot, since
// propagation mutates the table and can change other rows' eligibility
// mid-pass (§5).
func (w *WorkingSet) Snapshot() []Identity {
	out := make([]Identity, len(w.current))
	copy(out, w.current)
	return out
}

// Len reports the size of the current snapshot.
func (w *WorkingSet) Len() int {
	return len(w.current)
}
