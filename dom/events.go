package dom

// AddEventListener registers handler for the given event type if one is not
// already registered, and reports whether it added a new registration. The
// change-list interpreter relies on this to add the shared handler to the DOM
// exactly once per (element, event type), even though the guest may register
// and re-register a listener many times over the element's lifetime.
func (n *Node) AddEventListener(eventType string, handler EventHandler) bool {
	if n.listeners == nil {
		n.listeners = make(map[string]EventHandler)
	}
	if _, ok := n.listeners[eventType]; ok {
		return false
	}
	n.listeners[eventType] = handler
	return true
}

// RemoveEventListener removes the listener for the given event type, if any.
func (n *Node) RemoveEventListener(eventType string) bool {
	if _, ok := n.listeners[eventType]; !ok {
		return false
	}
	delete(n.listeners, eventType)
	return true
}

// HasEventListener reports whether a listener is registered for eventType.
func (n *Node) HasEventListener(eventType string) bool {
	_, ok := n.listeners[eventType]
	return ok
}

// Dispatch invokes the registered listener for event.Type, if any. This is
// the test/demo equivalent of the browser delivering a trusted event.
func (n *Node) Dispatch(event Event) {
	if handler, ok := n.listeners[event.Type]; ok {
		handler(n, event)
	}
}
