package langsupport

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// Small AST helpers shared by both language adapters, grounded on the
// teacher's extractor.go (GetNodeText, FindChildByType) and
// side_effect_tracking.go (the field-name-with-positional-fallback
// idiom for member-access expressions, which this package reuses
// verbatim since both grammars shape their grammars the same way: an
// "object"/"expression" field plus a "name"/"property"/"field" field).

func nodeText(n *tree_sitter.Node, content []byte) string {
	if n == nil {
		return ""
	}
	start, end := n.StartByte(), n.EndByte()
	if start > uint(len(content)) || end > uint(len(content)) || start > end {
		return ""
	}
	return string(content[start:end])
}

func firstChildOfType(n *tree_sitter.Node, kind string) *tree_sitter.Node {
	if n == nil {
		return nil
	}
	for i := uint(0); i < n.ChildCount(); i++ {
		if child := n.Child(i); child != nil && child.Kind() == kind {
			return child
		}
	}
	return nil
}

func childrenOfType(n *tree_sitter.Node, kind string) []*tree_sitter.Node {
	if n == nil {
		return nil
	}
	var out []*tree_sitter.Node
	for i := uint(0); i < n.ChildCount(); i++ {
		if child := n.Child(i); child != nil && child.Kind() == kind {
			out = append(out, child)
		}
	}
	return out
}

// walk visits every node in the subtree rooted at n, depth first,
// calling visit on each. Stops descending into a subtree when visit
// returns false, matching the teacher's traverseNode contract.
func walk(n *tree_sitter.Node, visit func(*tree_sitter.Node) bool) {
	if n == nil || !visit(n) {
		return
	}
	for i := uint(0); i < n.ChildCount(); i++ {
		walk(n.Child(i), visit)
	}
}

// hasModifierKeyword reports whether decl carries modifier keyword as
// either a direct child token or nested inside a "modifier" wrapper
// node, matching extractModifiers' two grammar shapes.
func hasModifierKeyword(decl *tree_sitter.Node, keyword string) bool {
	if decl == nil {
		return false
	}
	for i := uint(0); i < decl.ChildCount(); i++ {
		child := decl.Child(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case keyword:
			return true
		case "modifier", "modifiers":
			for j := uint(0); j < child.ChildCount(); j++ {
				if modChild := child.Child(j); modChild != nil && modChild.Kind() == keyword {
					return true
				}
			}
		}
	}
	return false
}

// typeNode finds the first plausible type reference among decl's
// direct children, for return-type / field-type / property-type text.
func typeNode(decl *tree_sitter.Node) *tree_sitter.Node {
	if decl == nil {
		return nil
	}
	for i := uint(0); i < decl.ChildCount(); i++ {
		child := decl.Child(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "predefined_type", "generic_name", "nullable_type", "array_type",
			"scoped_type", "integral_type", "void_type", "type_identifier":
			return child
		case "identifier":
			// A user-defined class/interface type name. Both grammars
			// place the type before the declaration's own name, so the
			// first bare "identifier" child is taken as the type; this
			// is a best effort and callers do not check it further.
			return child
		}
	}
	return nil
}

// memberParts splits a member-access-shaped node into its object and
// property subexpressions, trying the field names either grammar may
// use before falling back to position (mirrors the teacher's
// extractMemberExpression).
func memberParts(n *tree_sitter.Node) (object, property *tree_sitter.Node) {
	object = n.ChildByFieldName("expression")
	if object == nil {
		object = n.ChildByFieldName("object")
	}
	if object == nil && n.ChildCount() > 0 {
		object = n.Child(0)
	}

	property = n.ChildByFieldName("name")
	if property == nil {
		property = n.ChildByFieldName("property")
	}
	if property == nil {
		property = n.ChildByFieldName("field")
	}
	if property == nil {
		for i := uint(1); i < n.ChildCount(); i++ {
			child := n.Child(i)
			if child == nil {
				continue
			}
			switch child.Kind() {
			case "identifier", "property_identifier", "field_identifier", "simple_identifier":
				property = child
			}
		}
	}
	return object, property
}

// invocationFunction finds the callee expression of an
// invocation/method-call-shaped node.
func invocationFunction(n *tree_sitter.Node) *tree_sitter.Node {
	if fn := n.ChildByFieldName("function"); fn != nil {
		return fn
	}
	if fn := n.ChildByFieldName("name"); fn != nil {
		return fn
	}
	if n.ChildCount() > 0 {
		return n.Child(0)
	}
	return nil
}
