// Package report renders a purity.LookupTable as the fixed-width
// two-column text table §6 specifies, shared by the CLI and the
// protocol server so both surfaces produce byte-identical output for
// the same analysis.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/purityeng/purity/internal/purity"
)

const (
	totalWidth  = 80
	levelHeader = "PURITY LEVEL"
	levelWidth  = len(levelHeader)
	methodWidth = totalWidth - levelWidth
)

// Render formats every row of the table as the METHOD / PURITY LEVEL
// table, sorted by row text. External identities are included unless
// stripExternal is true (file mode, per §6), in which case they are
// omitted first via StripExternal.
func Render(table *purity.LookupTable, stripExternal bool) string {
	if stripExternal {
		table = table.StripExternal()
	}

	rows := table.Rows()
	displays := make([]string, 0, len(rows))
	for _, id := range rows {
		disp := id.Display()
		if disp == "" {
			continue
		}
		lvl, err := table.GetPurity(id)
		if err != nil {
			continue
		}
		displays = append(displays, formatRow(disp, lvl))
	}
	sort.Strings(displays)

	var b strings.Builder
	b.WriteString(pad("METHOD", methodWidth))
	b.WriteString(levelHeader)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", totalWidth))
	b.WriteByte('\n')
	for _, row := range displays {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	return b.String()
}

// Warnings returns one line per resolved method whose settled purity
// is Unknown due to semantic uncertainty, for strict mode (§10) to
// print to stderr instead of leaving the Unknown silent in the table.
func Warnings(table *purity.LookupTable) []string {
	var out []string
	for _, id := range table.UnknownMethods() {
		out = append(out, fmt.Sprintf("Warning: purity of %s could not be determined (semantic uncertainty)", id.Display()))
	}
	return out
}

// Suggestions returns one non-authoritative hint line (§11, §12.2) per
// external identifier that missed every prior-knowledge lookup and
// has a Jaro-Winkler match above threshold in prior. It never affects
// a computed purity level — it is attached to the report as text.
func Suggestions(table *purity.LookupTable, prior *purity.PriorKnowledgeTable) []string {
	var out []string
	for _, id := range table.UnmatchedExternals() {
		name, ok := purity.Suggest(prior, id.External())
		if !ok {
			continue
		}
		out = append(out, fmt.Sprintf("hint: %s has no known purity — did you mean %s?", id.Display(), name))
	}
	sort.Strings(out)
	return out
}

func formatRow(display string, level purity.Level) string {
	return pad(display, methodWidth) + padLeft(level.String(), levelWidth)
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
