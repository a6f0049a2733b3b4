package changelist

import "fmt"

// ProtocolError is a fatal, non-recoverable defect in the opcode stream
// itself (bad opcode, bad operand, stack underflow, unknown string or
// template id), as opposed to a rejection raised by the DOM. Modeled as a
// string type so sentinel values can be compared directly.
type ProtocolError string

func (e ProtocolError) Error() string { return string(e) }

// ErrStackUnderflow indicates an opcode read or popped the traversal cursor
// while it was empty.
var ErrStackUnderflow = ProtocolError("changelist: stack underflow")

// ErrUnmounted indicates a public method was called, or an event fired,
// after Unmount.
var ErrUnmounted = ProtocolError("changelist: used after unmount")

// ErrMisalignedRange indicates a submitted (offset, length) pair was not a
// multiple of 4 bytes.
var ErrMisalignedRange = ProtocolError("changelist: range is not word-aligned")

func errUnknownOpcode(op opcode) error {
	return ProtocolError(fmt.Sprintf("changelist: unknown opcode %d", op))
}

func errUnknownString(id uint32) error {
	return ProtocolError(fmt.Sprintf("changelist: unknown cached string id %d", id))
}

func errUnknownTemplate(id uint32) error {
	return ProtocolError(fmt.Sprintf("changelist: unknown template id %d", id))
}

func errUnknownTemporary(id uint32) error {
	return ProtocolError(fmt.Sprintf("changelist: unset temporary slot %d", id))
}

func errOutOfRange() error {
	return ProtocolError("changelist: opcode stream truncated")
}
