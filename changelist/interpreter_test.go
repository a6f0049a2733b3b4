package changelist

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgavlin/domvm/dom"
	"github.com/pgavlin/domvm/memory"
)

// memBuilder assembles a little-endian word stream plus its out-of-line
// string data into a single buffer a memory.View can be built over, mirroring
// the change-list wire format.
type memBuilder struct {
	words      []uint32
	data       []byte
	ptrPatches []int
}

func (b *memBuilder) word(w uint32) { b.words = append(b.words, w) }

func (b *memBuilder) op(o opcode) { b.word(uint32(o)) }

// text appends a (pointer, length) operand pair, recording the pointer word
// for patching once the final opcode-area size is known.
func (b *memBuilder) text(s string) {
	off := uint32(len(b.data))
	b.data = append(b.data, s...)
	idx := len(b.words)
	b.words = append(b.words, off)
	b.ptrPatches = append(b.ptrPatches, idx)
	b.words = append(b.words, uint32(len(s)))
}

// build returns a view over the assembled buffer and the byte length of the
// opcode range (the (offset, length) callers should submit).
func (b *memBuilder) build() (memory.View, int) {
	opBytes := uint32(len(b.words) * 4)
	for _, idx := range b.ptrPatches {
		b.words[idx] += opBytes
	}
	buf := make([]byte, len(b.words)*4)
	for i, w := range b.words {
		binary.LittleEndian.PutUint32(buf[i*4:], w)
	}
	buf = append(buf, b.data...)
	for len(buf)%4 != 0 {
		buf = append(buf, 0)
	}
	return memory.NewView(buf), int(opBytes)
}

func apply(t *testing.T, ip *Interpreter, b *memBuilder) {
	t.Helper()
	view, n := b.build()
	require.NoError(t, ip.AddChangeListRange(0, n))
	require.NoError(t, ip.ApplyChanges(view))
}

// TestCreateAndAttach creates an element into an empty container and attaches
// it as the container's first child.
func TestCreateAndAttach(t *testing.T) {
	container := dom.NewElement("container")
	ip := New(container)

	b := &memBuilder{}
	b.op(opAddCachedString)
	b.text("div")
	b.word(1)
	b.op(opCreateElement)
	b.word(1)
	b.op(opAppendChild)
	apply(t, ip, b)

	first := container.FirstChild()
	require.NotNil(t, first)
	assert.Equal(t, dom.ElementNode, first.Kind())
	assert.Equal(t, "div", first.TagName())
	assert.Equal(t, 0, ip.cur.len())
}

// TestSetText descends into the container's existing first child and sets
// its text content.
func TestSetText(t *testing.T) {
	container := dom.NewElement("container")
	p := dom.NewElement("p")
	container.AppendChild(p)
	ip := New(container)

	b := &memBuilder{}
	b.op(opPushFirstChild)
	b.op(opSetText)
	b.text("hi")
	b.op(opPop)
	apply(t, ip, b)

	assert.Equal(t, "hi", p.TextContent())
	assert.Equal(t, 0, ip.cur.len())
}

// TestVolatileAttribute sets an input's "value" attribute and checks that it
// mirrors into the element's live value property.
func TestVolatileAttribute(t *testing.T) {
	container := dom.NewElement("container")
	input := dom.NewElement("input")
	container.AppendChild(input)
	ip := New(container)

	b := &memBuilder{}
	b.op(opAddCachedString)
	b.text("value")
	b.word(2)
	b.op(opAddCachedString)
	b.text("42")
	b.word(3)
	b.op(opPushFirstChild)
	b.op(opSetAttribute)
	b.word(2)
	b.word(3)
	apply(t, ip, b)

	v, ok := input.GetAttribute("value")
	require.True(t, ok)
	assert.Equal(t, "42", v)
	assert.Equal(t, "42", input.Value())
}

// TestEventPayloadUpdateWithoutReRegistration registers a listener, then
// updates its payload, and checks that the dispatched event carries the
// latest payload without a second DOM registration.
func TestEventPayloadUpdateWithoutReRegistration(t *testing.T) {
	container := dom.NewElement("container")
	target := dom.NewElement("button")
	container.AppendChild(target)
	ip := New(container)

	var fired int
	var gotA, gotB uint32
	ip.InitEventsTrampoline(func(event dom.Event, a, b uint32) {
		fired++
		gotA, gotB = a, b
	})

	b := &memBuilder{}
	b.op(opPushFirstChild)
	b.op(opAddCachedString)
	b.text("click")
	b.word(1)
	b.op(opNewEventListener)
	b.word(1)
	b.word(7)
	b.word(8)
	b.op(opUpdateEventListener)
	b.word(1)
	b.word(9)
	b.word(10)
	apply(t, ip, b)

	require.True(t, target.HasEventListener("click"))
	target.Dispatch(dom.Event{Type: "click"})
	assert.Equal(t, 1, fired)
	assert.Equal(t, uint32(9), gotA)
	assert.Equal(t, uint32(10), gotB)

	// updateEventListener without a preceding newEventListener must not
	// itself register a DOM listener: it only replaces a stored payload,
	// never issuing a DOM addEventListener/removeEventListener call.
	c2 := dom.NewElement("container")
	el := dom.NewElement("span")
	c2.AppendChild(el)
	ip2 := New(c2)

	b2 := &memBuilder{}
	b2.op(opPushFirstChild)
	b2.op(opAddCachedString)
	b2.text("click")
	b2.word(1)
	b2.op(opUpdateEventListener)
	b2.word(1)
	b2.word(1)
	b2.word(2)
	apply(t, ip2, b2)

	assert.False(t, el.HasEventListener("click"))
}

// TestTemplateCloneIsolation saves a subtree as a template, mutates one
// clone pushed from it, and checks that a second, independent clone pushed
// afterward is unaffected.
func TestTemplateCloneIsolation(t *testing.T) {
	container := dom.NewElement("container")
	ip := New(container)

	build := &memBuilder{}
	build.op(opAddCachedString)
	build.text("ul")
	build.word(1)
	build.op(opAddCachedString)
	build.text("li")
	build.word(2)
	build.op(opCreateElement)
	build.word(1) // push ul
	build.op(opCreateElement)
	build.word(2) // push li
	build.op(opCreateTextNode)
	build.text("a") // push text "a"
	build.op(opAppendChild) // li.appendChild(text)
	build.op(opAppendChild) // ul.appendChild(li)
	build.op(opSaveTemplate)
	build.word(5) // Π[5] <- ul.cloneNode(deep)
	build.op(opPop)
	apply(t, ip, build)

	mutate := &memBuilder{}
	mutate.op(opPushTemplate)
	mutate.word(5)
	mutate.op(opPushFirstChild)
	mutate.op(opSetText)
	mutate.text("b")
	mutate.op(opPop)
	mutate.op(opPop)
	apply(t, ip, mutate)

	check := &memBuilder{}
	check.op(opPushTemplate)
	check.word(5)
	check.op(opAppendChild) // container.appendChild(second clone)
	view, n := check.build()
	require.NoError(t, ip.AddChangeListRange(0, n))
	require.NoError(t, ip.ApplyChanges(view))

	ulClone := container.FirstChild()
	require.NotNil(t, ulClone)
	assert.Equal(t, "a", ulClone.FirstChild().TextContent())
}

// TestRemoveSelfAndNextSiblings removes the current node and every sibling
// after it in one opcode.
func TestRemoveSelfAndNextSiblings(t *testing.T) {
	root := dom.NewElement("root")
	root.AppendChild(dom.NewElement("a"))
	root.AppendChild(dom.NewElement("b"))
	root.AppendChild(dom.NewElement("c"))
	ip := New(root)

	b := &memBuilder{}
	b.op(opPushFirstChild)
	b.op(opRemoveSelfAndNextSiblings)
	apply(t, ip, b)

	assert.Equal(t, 0, root.ChildCount())
}

// TestCachedStringIndependentOfID checks that caching the same text under two
// different ids produces identical results: the cache id is just a handle,
// not part of the cached value's identity.
func TestCachedStringIndependentOfID(t *testing.T) {
	c1, c2 := dom.NewElement("container"), dom.NewElement("container")
	ip1, ip2 := New(c1), New(c2)

	b1 := &memBuilder{}
	b1.op(opAddCachedString)
	b1.text("div")
	b1.word(1)
	b1.op(opCreateElement)
	b1.word(1)
	b1.op(opAppendChild)
	apply(t, ip1, b1)

	b2 := &memBuilder{}
	b2.op(opAddCachedString)
	b2.text("div")
	b2.word(99)
	b2.op(opCreateElement)
	b2.word(99)
	b2.op(opAppendChild)
	apply(t, ip2, b2)

	assert.Equal(t, c1.FirstChild().TagName(), c2.FirstChild().TagName())
}

// TestCommitClearsFrameStateOnly checks that after a successful ApplyChanges,
// the pending ranges and traversal cursor are empty, while the string cache
// and template cache persist across frames.
func TestCommitClearsFrameStateOnly(t *testing.T) {
	container := dom.NewElement("container")
	ip := New(container)

	b := &memBuilder{}
	b.op(opAddCachedString)
	b.text("div")
	b.word(1)
	b.op(opCreateElement)
	b.word(1)
	b.op(opSaveTemplate)
	b.word(5)
	b.op(opPop)
	apply(t, ip, b)

	assert.Equal(t, 0, ip.cur.len())
	assert.Empty(t, ip.ranges)

	s, ok := ip.strings.Get(1)
	require.True(t, ok)
	assert.Equal(t, "div", s)

	_, ok = ip.templates.get(5)
	assert.True(t, ok)
}

// TestUnmountFailsSubsequentCalls checks that every public call fails with
// ErrUnmounted once Unmount has been called.
func TestUnmountFailsSubsequentCalls(t *testing.T) {
	container := dom.NewElement("container")
	ip := New(container)
	ip.Unmount()

	assert.ErrorIs(t, ip.AddChangeListRange(0, 4), ErrUnmounted)

	view, _ := (&memBuilder{}).build()
	assert.ErrorIs(t, ip.ApplyChanges(view), ErrUnmounted)
}

// TestMisalignedRangeRejected checks that a submitted range whose offset or
// length is not a multiple of 4 bytes is rejected.
func TestMisalignedRangeRejected(t *testing.T) {
	ip := New(dom.NewElement("container"))
	assert.ErrorIs(t, ip.AddChangeListRange(1, 4), ErrMisalignedRange)
	assert.ErrorIs(t, ip.AddChangeListRange(0, 3), ErrMisalignedRange)
}

// TestUnknownOpcodeIsProtocolError checks that an undefined opcode is
// reported as a fatal protocol violation.
func TestUnknownOpcodeIsProtocolError(t *testing.T) {
	ip := New(dom.NewElement("container"))
	b := &memBuilder{}
	b.word(uint32(opCount) + 10)
	apply2 := func() error {
		view, n := b.build()
		if err := ip.AddChangeListRange(0, n); err != nil {
			return err
		}
		return ip.ApplyChanges(view)
	}
	err := apply2()
	require.Error(t, err)
	var perr ProtocolError
	assert.ErrorAs(t, err, &perr)
}
