package dom

// SetAttribute sets a plain attribute on an element. A no-op on a text node:
// attribute opcodes applied to the wrong node kind are silently ignored
// rather than treated as an error.
func (n *Node) SetAttribute(name, value string) error {
	if name == "" {
		return &DOMError{Name: "InvalidCharacterError", Message: "attribute name must not be empty"}
	}
	if n.kind != ElementNode {
		return nil
	}
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[name] = value

	// Volatile attributes don't reflect into their live property after the
	// initial parse, so the property is mirrored explicitly.
	switch name {
	case "value":
		n.value = value
	case "checked":
		n.checked = true
	case "selected":
		n.selected = true
	}
	return nil
}

// RemoveAttribute removes a plain attribute from an element.
func (n *Node) RemoveAttribute(name string) {
	if n.kind != ElementNode {
		return
	}
	delete(n.attrs, name)

	switch name {
	case "value":
		n.value = ""
	case "checked":
		n.checked = false
	case "selected":
		n.selected = false
	}
}

// GetAttribute returns an element's attribute value and whether it is set.
func (n *Node) GetAttribute(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// SetAttributeNS sets a namespaced attribute. The namespace URI operand is
// not threaded through to the DOM call — createElementNS's namespace operand
// is the only place a namespace actually reaches the tree.
func (n *Node) SetAttributeNS(name, value string) error {
	return n.SetAttribute(name, value)
}

// ClassName returns the element's class name, as set by SetClassName. It is
// kept apart from the attribute map: GetAttribute("class") does not see it,
// and SetAttribute("class", ...) does not change it.
func (n *Node) ClassName() string { return n.class }

// SetClassName sets the element's class name. A no-op on a text node.
func (n *Node) SetClassName(s string) {
	if n.kind != ElementNode {
		return
	}
	n.class = s
}

// Value returns the live value of an <input>-like element.
func (n *Node) Value() string { return n.value }

// SetValue sets the live value property, independent of the "value"
// attribute (mirrors a real input element's behavior once the user or a
// script has touched it).
func (n *Node) SetValue(v string) { n.value = v }

// Checked returns the live checked property.
func (n *Node) Checked() bool { return n.checked }

// SetChecked sets the live checked property.
func (n *Node) SetChecked(v bool) { n.checked = v }

// Selected returns the live selected property.
func (n *Node) Selected() bool { return n.selected }

// SetSelected sets the live selected property.
func (n *Node) SetSelected(v bool) { n.selected = v }

// DOMError is raised by a DOM operation itself — a rejection intrinsic to the
// tree, as opposed to a malformed or out-of-protocol opcode stream. The
// interpreter propagates these unchanged.
type DOMError struct {
	Name    string
	Message string
}

func (e *DOMError) Error() string { return e.Name + ": " + e.Message }
