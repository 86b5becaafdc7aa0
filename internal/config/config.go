// Package config loads the optional project-local .purity.kdl file.
package config

import "github.com/purityeng/purity/internal/purity"

// Config holds the settings the purity CLI and MCP server read before
// running an analysis. Its absence is not an error: NewDefault()
// returns a config that runs the engine with its built-in defaults.
type Config struct {
	// DefaultLanguage names the langsupport.Language to use when
	// --lang is not given in -s mode. It is not used for a file path
	// with an unrecognized extension; that is an error.
	DefaultLanguage string

	// StrictMode turns semantic uncertainty (an unresolved symbol)
	// into a visible warning on stderr instead of a silently emitted
	// Unknown purity level. The purity level itself is unaffected.
	StrictMode bool

	// PriorKnowledge lists additional (or overriding) qualified-name
	// -> purity entries layered on top of the language's built-in
	// prior-knowledge table. Never removes an entry.
	PriorKnowledge []PriorKnowledgeEntry
}

// PriorKnowledgeEntry is one row of a project's prior-knowledge overrides.
type PriorKnowledgeEntry struct {
	QualifiedName string
	Purity        string // parsed against purity.ParseLevel by the caller
}

// NewDefault returns the configuration used when no .purity.kdl is found.
func NewDefault() *Config {
	return &Config{
		DefaultLanguage: "csharp",
		StrictMode:      false,
	}
}

// ApplyOverrides layers c's PriorKnowledge entries onto base (§10),
// skipping any entry whose Purity string does not name a valid level.
// Returns base unchanged when c is nil or carries no overrides.
func (c *Config) ApplyOverrides(base *purity.PriorKnowledgeTable) *purity.PriorKnowledgeTable {
	if c == nil || len(c.PriorKnowledge) == 0 {
		return base
	}
	overrides := make([]purity.Override, 0, len(c.PriorKnowledge))
	for _, e := range c.PriorKnowledge {
		lvl, ok := purity.ParseLevel(e.Purity)
		if !ok {
			continue
		}
		overrides = append(overrides, purity.Override{QualifiedName: e.QualifiedName, Level: lvl})
	}
	return base.WithOverrides(overrides)
}
