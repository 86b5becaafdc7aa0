package langsupport

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/purityeng/purity/internal/purity"
)

// extractJava builds the Unit/Resolver pair for a parsed Java file.
// Structurally identical to extractCSharp — same two-pass shape, same
// shared extractBody walk — proving §11's claim that only the node-kind
// mapping differs between the two adapters, not the extraction
// strategy: Java's class_declaration/method_declaration/
// field_declaration nodes carry modifiers the same way C#'s do (either
// a "modifiers" wrapper node or bare keyword children), and its
// method_invocation/field_access node kinds play the same structural
// role as C#'s invocation_expression/member_access_expression.
func extractJava(tree *tree_sitter.Tree, source []byte) (*Unit, *Resolver) {
	root := tree.RootNode()
	r := newResolver()

	var classNodes []*tree_sitter.Node
	walk(root, func(n *tree_sitter.Node) bool {
		if n.Kind() == "class_declaration" {
			classNodes = append(classNodes, n)
		}
		return true
	})

	type pendingMethod struct {
		body *tree_sitter.Node
		m    *method
		cls  *classInfo
	}
	var pending []pendingMethod
	var methods []purity.MethodDecl

	for _, cn := range classNodes {
		className := nodeText(firstChildOfType(cn, "identifier"), source)
		if className == "" {
			continue
		}
		cls := &classInfo{name: className, methods: make(map[string]*method), members: make(map[string]member), javaStyle: true}
		r.classes[className] = cls

		body := firstChildOfType(cn, "class_body")
		if body == nil {
			continue
		}
		for i := uint(0); i < body.ChildCount(); i++ {
			decl := body.Child(i)
			if decl == nil {
				continue
			}
			switch decl.Kind() {
			case "method_declaration":
				name := nodeText(firstChildOfType(decl, "identifier"), source)
				if name == "" {
					continue
				}
				returnType := ""
				if tn := typeNode(decl); tn != nil {
					returnType = nodeText(tn, source)
				}
				m := &method{
					kind:           "method_declaration",
					returnType:     returnType,
					enclosingClass: className,
					name:           name,
					isStatic:       hasModifierKeyword(decl, "static"),
				}
				cls.methods[name] = m
				methods = append(methods, m)
				pending = append(pending, pendingMethod{body: firstChildOfType(decl, "block"), m: m, cls: cls})

			case "field_declaration":
				isStatic := hasModifierKeyword(decl, "static")
				for _, declarator := range childrenOfType(decl, "variable_declarator") {
					name := nodeText(firstChildOfType(declarator, "identifier"), source)
					if name != "" {
						cls.members[name] = member{static: isStatic, kind: purity.KindField}
					}
				}
			}
		}
	}

	for _, p := range pending {
		if p.body == nil {
			continue
		}
		extractBody(p.body, source, r, p.cls, p.m)
	}

	return &Unit{methods: methods}, r
}
