package changelist

// opcodeNames maps each opcode to the name used by cmd/domvm's stats report;
// it has no role in dispatch itself.
var opcodeNames = [opCount]string{
	opSetText:                   "setText",
	opRemoveSelfAndNextSiblings: "removeSelfAndNextSiblings",
	opReplaceWith:               "replaceWith",
	opSetAttribute:              "setAttribute",
	opRemoveAttribute:           "removeAttribute",
	opPushFirstChild:            "pushFirstChild",
	opPopPushNextSibling:        "popPushNextSibling",
	opPop:                       "pop",
	opAppendChild:               "appendChild",
	opCreateTextNode:            "createTextNode",
	opCreateElement:             "createElement",
	opNewEventListener:          "newEventListener",
	opUpdateEventListener:       "updateEventListener",
	opRemoveEventListener:       "removeEventListener",
	opAddCachedString:           "addCachedString",
	opDropCachedString:          "dropCachedString",
	opCreateElementNS:           "createElementNS",
	opSetAttributeNS:            "setAttributeNS",
	opSaveChildrenToTemporaries: "saveChildrenToTemporaries",
	opPushChild:                 "pushChild",
	opPushTemporary:             "pushTemporary",
	opInsertBefore:              "insertBefore",
	opPopPushReverseChild:       "popPushReverseChild",
	opRemoveChild:               "removeChild",
	opSetClass:                  "setClass",
	opSaveTemplate:              "saveTemplate",
	opPushTemplate:              "pushTemplate",
}

// opcodeOperandWords is the fixed operand word count for each opcode:
// decoding the opcode alone always uniquely determines the number of operand
// words that follow. A text operand is always a (pointer, length) pair
// regardless of the string's actual length, since the bytes themselves live
// out of line — so every entry here is a compile-time constant, unlike a
// variable-length WebAssembly instruction stream.
var opcodeOperandWords = [opCount]int{
	opSetText:                   2,
	opRemoveSelfAndNextSiblings: 0,
	opReplaceWith:               0,
	opSetAttribute:              2,
	opRemoveAttribute:           1,
	opPushFirstChild:            0,
	opPopPushNextSibling:        0,
	opPop:                       0,
	opAppendChild:               0,
	opCreateTextNode:            2,
	opCreateElement:             1,
	opNewEventListener:          3,
	opUpdateEventListener:       3,
	opRemoveEventListener:       1,
	opAddCachedString:           3,
	opDropCachedString:          1,
	opCreateElementNS:           2,
	opSetAttributeNS:            2,
	opSaveChildrenToTemporaries: 3,
	opPushChild:                 1,
	opPushTemporary:             1,
	opInsertBefore:              0,
	opPopPushReverseChild:       1,
	opRemoveChild:               1,
	opSetClass:                  1,
	opSaveTemplate:              1,
	opPushTemplate:              1,
}

// OpcodeNames returns the display name of every opcode, indexed in opcode
// number order, for tools that report per-opcode statistics without running
// the interpreter (e.g. cmd/domvm's stats subcommand).
func OpcodeNames() []string {
	names := make([]string, opCount)
	copy(names, opcodeNames[:])
	return names
}

// CountOpcodes decodes the word range [offset/4, (offset+length)/4) without
// executing any handler, and returns how many times each opcode name
// appears. It is the read-only counterpart to dispatchRange: instead of
// running handlers, it skips each opcode's operands using
// opcodeOperandWords, which lists the same widths the handlers consume, for
// tools that want to report on a change-list stream without mutating any
// dom.Node.
func CountOpcodes(mem byteWordReader, offset, length int) (map[string]int, error) {
	start, end := offset/4, (offset+length)/4
	counts := make(map[string]int)

	i := start
	for i < end {
		if !mem.InBounds(i, i+1) {
			return nil, errOutOfRange()
		}
		op := opcode(mem.Word32(i))
		i++

		if int(op) >= opCount {
			return nil, errUnknownOpcode(op)
		}

		counts[opcodeNames[op]]++
		i += opcodeOperandWords[op]
	}
	return counts, nil
}

// byteWordReader is the subset of memory.View that CountOpcodes needs; kept
// as a local interface so this file does not import the memory package just
// to name its concrete type.
type byteWordReader interface {
	Word32(i int) uint32
	InBounds(start, end int) bool
}
