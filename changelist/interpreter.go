// Package changelist implements the change-list interpreter itself: the
// traversal cursor, temporaries table, template cache, event dispatch, the
// opcode table, and the frame controller that replays a guest's opcode
// stream against a physical DOM tree. It is the core this repository exists
// to build; everything else (dom, memory, strcache) exists to give it
// something to operate on.
package changelist

import (
	"github.com/pgavlin/domvm/dom"
	"github.com/pgavlin/domvm/memory"
	"github.com/pgavlin/domvm/strcache"
)

// Trampoline is the single host-side callback events are forwarded through,
// parameterized by the two opaque payloads the guest attached to the
// listener.
type Trampoline func(event dom.Event, a, b uint32)

type byteRange struct {
	offset, length int
}

// Interpreter is the change-list interpreter: construct one per managed
// subtree, feed it opcode ranges with AddChangeListRange, and apply them with
// ApplyChanges. It implements the frame controller and owns every other
// component.
type Interpreter struct {
	container *dom.Node

	cur       cursor
	strings   *strcache.Cache
	temps     *temporaries
	templates *templateCache
	events    *eventTable

	trampoline Trampoline
	unmounted  bool

	ranges []byteRange
}

// New constructs an Interpreter that mutates container's subtree.
func New(container *dom.Node) *Interpreter {
	return &Interpreter{
		container: container,
		strings:   strcache.New(),
		temps:     newTemporaries(),
		templates: newTemplateCache(),
		events:    newEventTable(),
	}
}

// AddChangeListRange appends a (offset, length) byte range to the pending
// ranges that the next ApplyChanges will interpret, in submission order. No
// validation beyond rejecting a misaligned range; an empty range is
// tolerated and simply contributes nothing.
func (ip *Interpreter) AddChangeListRange(offset, length int) error {
	if ip.unmounted {
		return ErrUnmounted
	}
	if offset%4 != 0 || length%4 != 0 {
		return ErrMisalignedRange
	}
	if length == 0 {
		return nil
	}
	ip.ranges = append(ip.ranges, byteRange{offset: offset, length: length})
	return nil
}

// ApplyChanges replays every pending range against mem, in submission order,
// then resets per-frame state. If no ranges are pending this is a no-op. If a
// range's dispatch fails the frame is abandoned: state is left exactly as it
// was when the error occurred, and the error is returned to the caller — the
// host is expected to unmount.
func (ip *Interpreter) ApplyChanges(mem memory.View) (err error) {
	if ip.unmounted {
		return ErrUnmounted
	}
	if len(ip.ranges) == 0 {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = ProtocolError("changelist: " + e.Error())
			} else {
				err = errOutOfRange()
			}
		}
	}()

	// The cursor starts each frame with container itself as the sole entry,
	// not container's first child: creating and attaching a node into an
	// empty container only works if appendChild's post-pop top resolves to
	// container, and descending into an existing first child is always done
	// with an explicit pushFirstChild opcode rather than an implicit one at
	// frame start. See DESIGN.md for the full resolution.
	ip.cur.push(ip.container, -1)

	for _, rng := range ip.ranges {
		start, end := rng.offset/4, (rng.offset+rng.length)/4
		if err := ip.dispatchRange(mem, start, end); err != nil {
			return err
		}
	}

	ip.cur.reset()
	ip.temps.reset()
	ip.ranges = ip.ranges[:0]
	return nil
}

// InitEventsTrampoline binds the trampoline that the shared event handler
// registered by opcode 11 forwards events to. The handler reads the binding
// when an event fires, so events that fire while no trampoline is bound are
// dropped. Panics with ErrUnmounted after Unmount.
func (ip *Interpreter) InitEventsTrampoline(fn Trampoline) {
	if ip.unmounted {
		panic(ErrUnmounted)
	}
	ip.trampoline = fn
}

// Unmount invalidates this interpreter: every subsequent public call, and
// any event that fires after this point, fails with ErrUnmounted. Idempotent.
func (ip *Interpreter) Unmount() {
	ip.unmounted = true
	ip.container = nil
	ip.cur.reset()
	ip.ranges = nil
}

// handleEvent is the single handler opcode 11 registers with the DOM for
// every (element, event type) pair. It resolves the (a, b) payload from the
// element the event was dispatched to — not from the event's own target —
// and forwards it to the trampoline.
func (ip *Interpreter) handleEvent(target *dom.Node, event dom.Event) {
	if ip.unmounted {
		panic(ErrUnmounted)
	}
	ann, ok := ip.events.get(target, event.Type)
	if !ok {
		return
	}
	if ip.trampoline != nil {
		ip.trampoline(event, ann.a, ann.b)
	}
}

func (ip *Interpreter) str(id uint32) (string, error) {
	s, ok := ip.strings.Get(id)
	if !ok {
		return "", errUnknownString(id)
	}
	return s, nil
}
