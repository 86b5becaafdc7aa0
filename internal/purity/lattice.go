// Package purity implements the purity inference engine: the purity
// lattice, method identity, the prior-knowledge table, the lookup
// table, the working set, and the fixed-point analyzer driver.
package purity

import "fmt"

// Level is one of the four purity levels, totally ordered from least
// to greatest trust: Impure < Unknown < ParametricallyImpure < Pure.
type Level int

const (
	Impure Level = iota
	Unknown
	ParametricallyImpure
	Pure
)

// String renders the level the way the CLI/MCP report names it.
func (l Level) String() string {
	switch l {
	case Impure:
		return "Impure"
	case Unknown:
		return "Unknown"
	case ParametricallyImpure:
		return "ParametricallyImpure"
	case Pure:
		return "Pure"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// ParseLevel parses a level's textual tag, as used by the
// prior-knowledge table and .purity.kdl overrides.
func ParseLevel(s string) (Level, bool) {
	switch s {
	case "Impure":
		return Impure, true
	case "Unknown":
		return Unknown, true
	case "ParametricallyImpure":
		return ParametricallyImpure, true
	case "Pure":
		return Pure, true
	default:
		return 0, false
	}
}

// Less reports whether a is strictly less trusted than b.
func (l Level) Less(b Level) bool {
	return l < b
}

// Equal reports whether two levels are the same.
func (l Level) Equal(b Level) bool {
	return l == b
}

// Join computes a ⊔ b = min(a, b). Pure is the identity of join
// (the top element); Impure is absorbing (the bottom element).
func Join(a, b Level) Level {
	if a < b {
		return a
	}
	return b
}
