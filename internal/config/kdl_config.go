package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"
)

// LoadKDL attempts to load configuration from a .purity.kdl file in
// projectRoot. Returns (nil, nil) when the file does not exist.
func LoadKDL(projectRoot string) (*Config, error) {
	kdlPath := filepath.Join(projectRoot, ".purity.kdl")

	if _, err := os.Stat(kdlPath); os.IsNotExist(err) {
		return nil, nil
	}

	content, err := os.ReadFile(kdlPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read .purity.kdl: %w", err)
	}

	return parseKDL(string(content))
}

// parseKDL parses the following shape (KDL v1 syntax, the version the
// kdl-go parser accepts, so booleans are bare true/false):
//
//	language "csharp"
//	strict true
//	prior-knowledge {
//	    entry "MyLogger.Write" "Impure"
//	    entry "MyCache.Get" "Pure"
//	}
func parseKDL(content string) (*Config, error) {
	cfg := NewDefault()

	doc, err := kdl.Parse(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse .purity.kdl: %w", err)
	}

	for _, n := range doc.Nodes {
		switch nodeName(n) {
		case "language":
			if s, ok := firstStringArg(n); ok {
				cfg.DefaultLanguage = s
			}
		case "strict":
			if b, ok := firstBoolArg(n); ok {
				cfg.StrictMode = b
			}
		case "prior-knowledge":
			for _, cn := range n.Children {
				if nodeName(cn) != "entry" {
					continue
				}
				args := stringArgs(cn)
				if len(args) < 2 {
					continue
				}
				cfg.PriorKnowledge = append(cfg.PriorKnowledge, PriorKnowledgeEntry{
					QualifiedName: args[0],
					Purity:        args[1],
				})
			}
		}
	}

	return cfg, nil
}

func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}

func firstStringArg(n *document.Node) (string, bool) {
	if len(n.Arguments) == 0 {
		return "", false
	}
	if s, ok := n.Arguments[0].Value.(string); ok {
		return s, true
	}
	return "", false
}

func firstBoolArg(n *document.Node) (bool, bool) {
	if len(n.Arguments) == 0 {
		return false, false
	}
	if b, ok := n.Arguments[0].Value.(bool); ok {
		return b, true
	}
	return false, false
}

func stringArgs(n *document.Node) []string {
	out := make([]string, 0, len(n.Arguments))
	for _, a := range n.Arguments {
		if s, ok := a.Value.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
