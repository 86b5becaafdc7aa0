package purity

import "strings"

// PriorKnowledgeTable is the static, ordered (qualified-name, purity)
// mapping of §4.3, grounded on the teacher's KnownPureFunctions /
// KnownIOFunctions maps but kept as an ordered slice rather than a Go
// map: the specification's §9 open question requires first-match-wins
// semantics on duplicate entries, which only a defined iteration order
// can give.
type PriorKnowledgeTable struct {
	order    []string
	rows     map[string]Level
	nameOnly map[string]Level
}

type priorEntry struct {
	qualifiedName string
	level         Level
}

// Override is one caller-supplied (qualified-name, purity) row, the
// exported shape of priorEntry callers outside this package can build —
// used to layer a project's .purity.kdl entries onto a built-in table.
type Override struct {
	QualifiedName string
	Level         Level
}

// newTable builds a table from an ordered list of entries, deduping
// duplicate qualified names with first-occurrence-wins semantics
// (§9) while preserving the winning entry's position in order. An
// entry whose qualifiedName has no "." (e.g. the bare "Dispose" the
// specification names) is additionally indexed by bare method name,
// since an external identifier's receiver varies by call site and a
// literal "r.Dispose" would otherwise never match a table entry
// written as just "Dispose".
func newTable(entries []priorEntry) *PriorKnowledgeTable {
	t := &PriorKnowledgeTable{rows: make(map[string]Level, len(entries)), nameOnly: make(map[string]Level)}
	for _, e := range entries {
		if _, exists := t.rows[e.qualifiedName]; exists {
			continue
		}
		t.rows[e.qualifiedName] = e.level
		t.order = append(t.order, e.qualifiedName)
		if !strings.Contains(e.qualifiedName, ".") {
			if _, exists := t.nameOnly[e.qualifiedName]; !exists {
				t.nameOnly[e.qualifiedName] = e.level
			}
		}
	}
	return t
}

// Lookup performs the exact-string match §4.3 specifies.
func (t *PriorKnowledgeTable) Lookup(qualifiedName string) (Level, bool) {
	lvl, ok := t.rows[qualifiedName]
	return lvl, ok
}

// Names returns the deduped entries in their first-occurrence order,
// used both for iteration and for the nearest-match suggestion (§11).
func (t *PriorKnowledgeTable) Names() []string {
	return t.order
}

// MatchIdentity resolves an identity against the table using the
// two-step lookup §9's open question calls for: try the identity's own
// textual form first (the external identifier, or a resolved method's
// display form), and only when that misses and the identity is
// resolved, retry the plain "<class>.<name>" form against the table —
// prior-knowledge entries are written without a return type, while a
// resolved identity's display form includes one.
func (t *PriorKnowledgeTable) MatchIdentity(id Identity) (Level, bool) {
	key := id.Display()
	if id.IsExternal() {
		key = id.External()
	}
	if lvl, ok := t.Lookup(key); ok {
		return lvl, true
	}
	if qn, ok := id.qualifiedName(); ok {
		if lvl, ok := t.Lookup(qn); ok {
			return lvl, true
		}
	}
	if id.IsExternal() {
		if dot := strings.LastIndexByte(key, '.'); dot >= 0 {
			if lvl, ok := t.nameOnly[key[dot+1:]]; ok {
				return lvl, true
			}
		}
	}
	return 0, false
}

// WithOverrides returns a new table with additional entries from a
// project's .purity.kdl layered on top (§10): each override is tried
// before the built-in entries sharing its name, since it is appended
// after them is wrong — overrides must win, so they are prepended.
func (t *PriorKnowledgeTable) WithOverrides(overrides []Override) *PriorKnowledgeTable {
	merged := make([]priorEntry, 0, len(overrides)+len(t.order))
	for _, o := range overrides {
		merged = append(merged, priorEntry{qualifiedName: o.QualifiedName, level: o.Level})
	}
	for _, name := range t.order {
		merged = append(merged, priorEntry{qualifiedName: name, level: t.rows[name]})
	}
	return newTable(merged)
}
