package purity

import "github.com/hbollon/go-edlib"

// Suggest proposes the prior-knowledge table's closest-named entry to
// an unmatched external identifier, using Jaro-Winkler similarity
// (§11, §7's "non-authoritative hint"). Grounded on the teacher's
// internal/semantic/fuzzy_matcher.go, which wraps the same algorithm
// from the same library for the same "closest known name" purpose.
// The result never affects a computed purity level.
const suggestThreshold = 0.82

// Suggest returns the nearest prior-knowledge qualified name to
// identifier, and whether it cleared the similarity threshold.
func Suggest(table *PriorKnowledgeTable, identifier string) (string, bool) {
	names := table.Names()
	if len(names) == 0 || identifier == "" {
		return "", false
	}

	best := ""
	var bestScore float32
	for _, name := range names {
		score, err := edlib.StringsSimilarity(identifier, name, edlib.JaroWinkler)
		if err != nil {
			continue
		}
		if score > bestScore {
			bestScore = score
			best = name
		}
	}

	if bestScore < suggestThreshold {
		return "", false
	}
	return best, true
}
