// Package langsupport implements the parser/resolver collaborator
// named abstractly in purity.Resolver/purity.Unit/purity.MethodDecl:
// a tree-sitter-backed front end for two analyzed languages, grounded
// on the teacher's parser_language_setup.go (one *sitter.Parser per
// language, built once) and csharp_extractor.go (the node-kind switch
// that walks a class body looking for declarations).
package langsupport

import (
	"fmt"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_csharp "github.com/tree-sitter/tree-sitter-c-sharp/bindings/go"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"
)

// Name identifies a supported analyzed language.
type Name string

const (
	CSharp Name = "csharp"
	Java   Name = "java"
)

// ParseString parses source text as the named language and returns
// the Unit/Resolver pair the purity engine consumes. The syntax tree
// itself is not returned: the Unit and Resolver hold only values copied
// out of it (names, types, call sites), so they stay usable after
// parsing finishes.
func ParseString(lang Name, source []byte) (*Unit, *Resolver, error) {
	switch lang {
	case CSharp:
		return parseWith(newCSharpParser(), source, extractCSharp)
	case Java:
		return parseWith(newJavaParser(), source, extractJava)
	default:
		return nil, nil, fmt.Errorf("langsupport: unsupported language %q", lang)
	}
}

// extractFunc builds the Unit/Resolver pair for one language from a
// parsed tree and its source bytes.
type extractFunc func(tree *tree_sitter.Tree, source []byte) (*Unit, *Resolver)

func parseWith(parser *tree_sitter.Parser, source []byte, extract extractFunc) (*Unit, *Resolver, error) {
	defer parser.Close()

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, nil, fmt.Errorf("langsupport: parse returned no tree")
	}
	root := tree.RootNode()
	if root == nil {
		return nil, nil, fmt.Errorf("langsupport: parse returned no root node")
	}

	unit, resolver := extract(tree, source)
	return unit, resolver, nil
}

func newCSharpParser() *tree_sitter.Parser {
	parser := tree_sitter.NewParser()
	language := tree_sitter.NewLanguage(tree_sitter_csharp.Language())
	// The go-tree-sitter binding can return a typed-nil error here; the
	// language pointer itself is what matters, per the teacher's own
	// setupGo/setupJavaScript workaround.
	_ = parser.SetLanguage(language)
	return parser
}

func newJavaParser() *tree_sitter.Parser {
	parser := tree_sitter.NewParser()
	language := tree_sitter.NewLanguage(tree_sitter_java.Language())
	_ = parser.SetLanguage(language)
	return parser
}

// ForPath infers the analyzed language from a file extension, for the
// CLI's path mode (§6: "inferred from the file extension").
func ForPath(path string) (Name, bool) {
	n := len(path)
	switch {
	case n >= 3 && path[n-3:] == ".cs":
		return CSharp, true
	case n >= 5 && path[n-5:] == ".java":
		return Java, true
	default:
		return "", false
	}
}
