// Package memory models the shared linear memory view the change-list
// protocol is defined in terms of: a contiguous byte buffer the WASM guest
// writes opcodes and strings into, which the host only ever reads.
package memory

import (
	"encoding/binary"
	"fmt"
	"strings"
	"unicode/utf8"
)

// View is a read-only window over the guest's linear memory.
type View struct {
	bytes []byte
}

// NewView wraps b. b is not copied; the caller is responsible for ensuring it
// is not mutated concurrently with interpreter use — the shared memory is
// read-only from the interpreter's perspective during a commit.
func NewView(b []byte) View {
	return View{bytes: b}
}

// Len returns the number of bytes in the view.
func (v View) Len() int { return len(v.bytes) }

// Word32 returns the little-endian 32-bit word at word index i (byte offset
// 4*i). Every change-list operand is a 32-bit word at a word-aligned offset.
func (v View) Word32(i int) uint32 {
	off := i * 4
	return binary.LittleEndian.Uint32(v.bytes[off : off+4])
}

// InBounds reports whether the word range [start, end) lies within the view.
func (v View) InBounds(start, end int) bool {
	return start >= 0 && end >= start && end*4 <= len(v.bytes)
}

// String decodes a UTF-8 string of the given byte length starting at the
// given byte pointer. Invalid UTF-8 is replaced using the standard
// replacement-character policy; this is the only place the interpreter
// tolerates malformed input without raising a protocol error.
func (v View) String(ptr, length uint32) string {
	end := int(ptr) + int(length)
	if end > len(v.bytes) || int(ptr) > end {
		panic(fmt.Errorf("memory: string operand (ptr=%d, length=%d) out of bounds", ptr, length))
	}
	raw := v.bytes[ptr:end]
	if utf8.Valid(raw) {
		return string(raw)
	}
	return strings.ToValidUTF8(string(raw), string(utf8.RuneError))
}
