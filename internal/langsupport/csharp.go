package langsupport

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/purityeng/purity/internal/purity"
)

// extractCSharp builds the Unit/Resolver pair for a parsed C# file.
// Grounded on csharp_extractor.go's extractSymbolsFromNode switch over
// declaration node kinds (method_declaration, class_declaration,
// field_declaration, property_declaration) and its extractModifiers /
// findTypeNode helpers, reworked here into a two-pass extraction: pass
// one registers every class's members and method signatures (so a
// method can call another declared later in the file), pass two walks
// each method body for invocations and field/property reads.
func extractCSharp(tree *tree_sitter.Tree, source []byte) (*Unit, *Resolver) {
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
		cls := &classInfo{name: className, methods: make(map[string]*method), members: make(map[string]member)}
		r.classes[className] = cls

		body := firstChildOfType(cn, "declaration_list")
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
				varDecl := firstChildOfType(decl, "variable_declaration")
				for _, declarator := range childrenOfType(varDecl, "variable_declarator") {
					name := nodeText(firstChildOfType(declarator, "identifier"), source)
					if name != "" {
						cls.members[name] = member{static: isStatic, kind: purity.KindField}
					}
				}

			case "property_declaration":
				isStatic := hasModifierKeyword(decl, "static")
				name := nodeText(firstChildOfType(decl, "identifier"), source)
				if name != "" {
					cls.members[name] = member{static: isStatic, kind: purity.KindProperty}
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

// extractBody walks a method body collecting invocations (as
// "invocation_expression" nodes) and candidate field/property reads,
// shared structurally between the C# and Java adapters since both
// grammars shape invocations and member access the same way.
func extractBody(body *tree_sitter.Node, source []byte, r *Resolver, cls *classInfo, m *method) {
	invocationKind := "invocation_expression"
	memberKind := "member_access_expression"
	if cls.javaStyle {
		invocationKind = "method_invocation"
		memberKind = "field_access"
	}

	var visit func(n, parent *tree_sitter.Node)
	visit = func(n, parent *tree_sitter.Node) {
		if n == nil {
			return
		}

		switch n.Kind() {
		case invocationKind:
			extractInvocation(n, source, r, cls, m, memberKind)
		case "identifier":
			if isDeclaratorName(parent) || isInvocationCallee(parent, n, memberKind) {
				break
			}
			name := nodeText(n, source)
			if _, ok := cls.members[name]; ok {
				m.identifierRefs = append(m.identifierRefs, &fieldRef{kind: n.Kind(), name: name, enclosingClass: cls.name})
			}
		}

		for i := uint(0); i < n.ChildCount(); i++ {
			visit(n.Child(i), n)
		}
	}
	visit(body, nil)
}

func isDeclaratorName(parent *tree_sitter.Node) bool {
	if parent == nil {
		return false
	}
	switch parent.Kind() {
	case "variable_declarator", "parameter", "catch_declaration", "formal_parameter":
		return true
	}
	return false
}

// isInvocationCallee reports whether n is the callee position of an
// invocation expression — a method name, not a field read — or the
// property-name half of a bare member access used as that callee.
func isInvocationCallee(parent *tree_sitter.Node, n *tree_sitter.Node, memberKind string) bool {
	if parent == nil {
		return false
	}
	switch parent.Kind() {
	case "invocation_expression", "method_invocation":
		fn := invocationFunction(parent)
		return fn != nil && fn.StartByte() == n.StartByte() && fn.EndByte() == n.EndByte()
	case memberKind:
		grand := parent.Parent()
		if grand == nil {
			return false
		}
		if grand.Kind() != "invocation_expression" && grand.Kind() != "method_invocation" {
			return false
		}
		_, prop := memberParts(parent)
		return prop != nil && prop.StartByte() == n.StartByte() && prop.EndByte() == n.EndByte()
	}
	return false
}

// extractInvocation records one call site and, when the receiver shape
// permits it, resolves it against the in-file class table (§4.2 case
// (b)); unresolvable shapes still contribute an invocation with their
// full receiver-plus-name text, deferring to an external identity.
func extractInvocation(n *tree_sitter.Node, source []byte, r *Resolver, cls *classInfo, m *method, memberKind string) {
	fn := invocationFunction(n)
	if fn == nil {
		return
	}

	site := &callSite{kind: n.Kind()}
	receiverText := nodeText(fn, source)
	// A Java method_invocation keeps its receiver in a separate "object"
	// field, so its callee expression is only the bare method name; the
	// receiver-plus-name text is rebuilt from both halves.
	object := n.ChildByFieldName("object")
	if cls.javaStyle && object != nil {
		receiverText = nodeText(object, source) + "." + receiverText
	}
	m.invocations = append(m.invocations, &invocation{site: site, receiverText: receiverText})

	if cls.javaStyle && object != nil {
		r.resolveCall(site, cls.name, nodeText(object, source), nodeText(fn, source))
		return
	}

	switch fn.Kind() {
	case "identifier":
		r.resolveCall(site, cls.name, "", receiverText)
	default:
		if fn.Kind() == memberKind {
			object, property := memberParts(fn)
			if property == nil {
				return
			}
			methodName := nodeText(property, source)
			receiverType := nodeText(object, source)
			r.resolveCall(site, cls.name, receiverType, methodName)
		}
	}
}
