package changelist

import (
	"github.com/pgavlin/domvm/dom"
	"github.com/pgavlin/domvm/memory"
)

// The handlers below implement the opcode table, in opcode order. Each
// docstring restates that opcode's effect; see opcodes.go for the numbering.

// 0: setText(text) — T.textContent <- str
func opFuncSetText(ip *Interpreter, mem memory.View, i int) (int, error) {
	text, next := readText(mem, i)
	top, err := ip.cur.top()
	if err != nil {
		return 0, err
	}
	top.SetTextContent(text)
	return next, nil
}

// 1: removeSelfAndNextSiblings() — pop n; remove n and all of
// n.nextSibling...
func opFuncRemoveSelfAndNextSiblings(ip *Interpreter, mem memory.View, i int) (int, error) {
	n, err := ip.cur.pop()
	if err != nil {
		return 0, err
	}
	for sibling := n.NextSibling(); sibling != nil; {
		next := sibling.NextSibling()
		ip.events.releaseNode(sibling)
		sibling.Remove()
		sibling = next
	}
	ip.events.releaseNode(n)
	n.Remove()
	return i, nil
}

// 2: replaceWith() — pop new, pop old; old.replaceWith(new); push new
func opFuncReplaceWith(ip *Interpreter, mem memory.View, i int) (int, error) {
	newNode, err := ip.cur.pop()
	if err != nil {
		return 0, err
	}
	oldNode, err := ip.cur.pop()
	if err != nil {
		return 0, err
	}
	ip.events.releaseNode(oldNode)
	oldNode.ReplaceWith(newNode)
	ip.cur.push(newNode, -1)
	return i, nil
}

// 3: setAttribute(name, value) — T.setAttribute(name, value), plus the
// volatile-property mirror for value/checked/selected (dom.SetAttribute
// already does this).
func opFuncSetAttribute(ip *Interpreter, mem memory.View, i int) (int, error) {
	name, err := ip.str(mem.Word32(i))
	if err != nil {
		return 0, err
	}
	value, err := ip.str(mem.Word32(i + 1))
	if err != nil {
		return 0, err
	}
	top, err := ip.cur.top()
	if err != nil {
		return 0, err
	}
	if err := top.SetAttribute(name, value); err != nil {
		return 0, err
	}
	return i + 2, nil
}

// 4: removeAttribute(name)
func opFuncRemoveAttribute(ip *Interpreter, mem memory.View, i int) (int, error) {
	name, err := ip.str(mem.Word32(i))
	if err != nil {
		return 0, err
	}
	top, err := ip.cur.top()
	if err != nil {
		return 0, err
	}
	top.RemoveAttribute(name)
	return i + 1, nil
}

// 5: pushFirstChild() — push T.firstChild (the null sentinel if T has no
// children).
func opFuncPushFirstChild(ip *Interpreter, mem memory.View, i int) (int, error) {
	top, err := ip.cur.top()
	if err != nil {
		return 0, err
	}
	ip.cur.push(top.FirstChild(), 0)
	return i, nil
}

// 6: popPushNextSibling() — pop n; push n.nextSibling. The "sibling-jump"
// opcode: the only one that consumes the side-stack's sibling index rather
// than just the node.
func opFuncPopPushNextSibling(ip *Interpreter, mem memory.View, i int) (int, error) {
	popped, err := ip.cur.popFull()
	if err != nil {
		return 0, err
	}
	nextIndex := int32(-1)
	if popped.siblingIndex >= 0 {
		nextIndex = popped.siblingIndex + 1
	}
	ip.cur.push(popped.node.NextSibling(), nextIndex)
	return i, nil
}

// 7: pop()
func opFuncPop(ip *Interpreter, mem memory.View, i int) (int, error) {
	if _, err := ip.cur.pop(); err != nil {
		return 0, err
	}
	return i, nil
}

// 8: appendChild() — pop c; T.appendChild(c)
func opFuncAppendChild(ip *Interpreter, mem memory.View, i int) (int, error) {
	child, err := ip.cur.pop()
	if err != nil {
		return 0, err
	}
	top, err := ip.cur.top()
	if err != nil {
		return 0, err
	}
	top.AppendChild(child)
	return i, nil
}

// 9: createTextNode(text) — push new text node
func opFuncCreateTextNode(ip *Interpreter, mem memory.View, i int) (int, error) {
	text, next := readText(mem, i)
	ip.cur.push(dom.NewText(text), -1)
	return next, nil
}

// 10: createElement(tagName) — push new element
func opFuncCreateElement(ip *Interpreter, mem memory.View, i int) (int, error) {
	tag, err := ip.str(mem.Word32(i))
	if err != nil {
		return 0, err
	}
	ip.cur.push(dom.NewElement(tag), -1)
	return i + 1, nil
}

// 11: newEventListener(eventType, a, b) — register the shared handler once
// per event type and record (a, b) for it.
func opFuncNewEventListener(ip *Interpreter, mem memory.View, i int) (int, error) {
	eventType, err := ip.str(mem.Word32(i))
	if err != nil {
		return 0, err
	}
	a, b := mem.Word32(i+1), mem.Word32(i+2)

	top, err := ip.cur.top()
	if err != nil {
		return 0, err
	}
	top.AddEventListener(eventType, ip.handleEvent)
	ip.events.set(top, eventType, a, b)
	return i + 3, nil
}

// 12: updateEventListener(eventType, a, b) — overwrite the stored payload in
// place; no DOM registration call is made, since newEventListener is assumed
// to have already registered the shared handler for this (element, event
// type) pair.
func opFuncUpdateEventListener(ip *Interpreter, mem memory.View, i int) (int, error) {
	eventType, err := ip.str(mem.Word32(i))
	if err != nil {
		return 0, err
	}
	a, b := mem.Word32(i+1), mem.Word32(i+2)

	top, err := ip.cur.top()
	if err != nil {
		return 0, err
	}
	ip.events.set(top, eventType, a, b)
	return i + 3, nil
}

// 13: removeEventListener(eventType)
func opFuncRemoveEventListener(ip *Interpreter, mem memory.View, i int) (int, error) {
	eventType, err := ip.str(mem.Word32(i))
	if err != nil {
		return 0, err
	}
	top, err := ip.cur.top()
	if err != nil {
		return 0, err
	}
	top.RemoveEventListener(eventType)
	ip.events.remove(top, eventType)
	return i + 1, nil
}

// 14: addCachedString(text, id)
func opFuncAddCachedString(ip *Interpreter, mem memory.View, i int) (int, error) {
	text, next := readText(mem, i)
	id := mem.Word32(next)
	ip.strings.Add(id, text)
	return next + 1, nil
}

// 15: dropCachedString(id)
func opFuncDropCachedString(ip *Interpreter, mem memory.View, i int) (int, error) {
	ip.strings.Drop(mem.Word32(i))
	return i + 1, nil
}

// 16: createElementNS(tagName, namespace) — push
// document.createElementNS(ns, tag)
func opFuncCreateElementNS(ip *Interpreter, mem memory.View, i int) (int, error) {
	tag, err := ip.str(mem.Word32(i))
	if err != nil {
		return 0, err
	}
	ns, err := ip.str(mem.Word32(i + 1))
	if err != nil {
		return 0, err
	}
	ip.cur.push(dom.NewElementNS(ns, tag), -1)
	return i + 2, nil
}

// 17: setAttributeNS(name, value) — the namespace is deliberately not
// threaded through to this call; see createElementNS for where a namespace
// actually reaches the tree.
func opFuncSetAttributeNS(ip *Interpreter, mem memory.View, i int) (int, error) {
	name, err := ip.str(mem.Word32(i))
	if err != nil {
		return 0, err
	}
	value, err := ip.str(mem.Word32(i + 1))
	if err != nil {
		return 0, err
	}
	top, err := ip.cur.top()
	if err != nil {
		return 0, err
	}
	if err := top.SetAttributeNS(name, value); err != nil {
		return 0, err
	}
	return i + 2, nil
}

// 18: saveChildrenToTemporaries(tempBase, start, end)
func opFuncSaveChildrenToTemporaries(ip *Interpreter, mem memory.View, i int) (int, error) {
	tempBase, start, end := mem.Word32(i), mem.Word32(i+1), mem.Word32(i+2)
	top, err := ip.cur.top()
	if err != nil {
		return 0, err
	}
	for idx := start; idx < end; idx++ {
		ip.temps.set(tempBase+(idx-start), top.ChildAt(int(idx)))
	}
	return i + 3, nil
}

// 19: pushChild(n) — push T.childNodes[n]
func opFuncPushChild(ip *Interpreter, mem memory.View, i int) (int, error) {
	n := mem.Word32(i)
	top, err := ip.cur.top()
	if err != nil {
		return 0, err
	}
	ip.cur.push(top.ChildAt(int(n)), int32(n))
	return i + 1, nil
}

// 20: pushTemporary(temp) — push M[temp]
func opFuncPushTemporary(ip *Interpreter, mem memory.View, i int) (int, error) {
	temp := mem.Word32(i)
	node, ok := ip.temps.get(temp)
	if !ok {
		return 0, errUnknownTemporary(temp)
	}
	ip.cur.push(node, -1)
	return i + 1, nil
}

// 21: insertBefore() — pop before, pop after;
// after.parentNode.insertBefore(before, after); push before
func opFuncInsertBefore(ip *Interpreter, mem memory.View, i int) (int, error) {
	before, err := ip.cur.pop()
	if err != nil {
		return 0, err
	}
	after, err := ip.cur.pop()
	if err != nil {
		return 0, err
	}
	after.InsertBefore(before)
	ip.cur.push(before, -1)
	return i, nil
}

// 22: popPushReverseChild(n) — pop; push
// T.childNodes[T.childNodes.length - n - 1]
func opFuncPopPushReverseChild(ip *Interpreter, mem memory.View, i int) (int, error) {
	n := mem.Word32(i)
	if _, err := ip.cur.pop(); err != nil {
		return 0, err
	}
	top, err := ip.cur.top()
	if err != nil {
		return 0, err
	}
	ip.cur.push(top.ChildFromEnd(int(n)), -1)
	return i + 1, nil
}

// 23: removeChild(n) — T.childNodes[n].remove()
func opFuncRemoveChild(ip *Interpreter, mem memory.View, i int) (int, error) {
	n := mem.Word32(i)
	top, err := ip.cur.top()
	if err != nil {
		return 0, err
	}
	if child := top.ChildAt(int(n)); child != nil {
		ip.events.releaseNode(child)
		child.Remove()
	}
	return i + 1, nil
}

// 24: setClass(className) — T.className <- str
func opFuncSetClass(ip *Interpreter, mem memory.View, i int) (int, error) {
	class, err := ip.str(mem.Word32(i))
	if err != nil {
		return 0, err
	}
	top, err := ip.cur.top()
	if err != nil {
		return 0, err
	}
	top.SetClassName(class)
	return i + 1, nil
}

// 25: saveTemplate(id) — template <- T.cloneNode(deep=true); Pi[id] <- template
func opFuncSaveTemplate(ip *Interpreter, mem memory.View, i int) (int, error) {
	id := mem.Word32(i)
	top, err := ip.cur.top()
	if err != nil {
		return 0, err
	}
	ip.templates.save(id, top)
	return i + 1, nil
}

// 26: pushTemplate(id) — push Pi[id].cloneNode(deep=true)
func opFuncPushTemplate(ip *Interpreter, mem memory.View, i int) (int, error) {
	id := mem.Word32(i)
	tmpl, ok := ip.templates.get(id)
	if !ok {
		return 0, errUnknownTemplate(id)
	}
	ip.cur.push(tmpl.CloneNode(true), -1)
	return i + 1, nil
}
