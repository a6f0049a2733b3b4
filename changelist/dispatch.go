package changelist

import "github.com/pgavlin/domvm/memory"

// opFunc is one opcode handler. i is the word index of the opcode's first
// operand (the opcode word itself has already been consumed by
// dispatchRange); the handler returns the word index just past its own
// operands. Decoding the opcode alone always uniquely determines the number
// of operand words that follow it.
type opFunc func(ip *Interpreter, mem memory.View, i int) (int, error)

// opTable is the dense dispatch table, indexed by opcode. An exhaustive,
// statically-sized function table (rather than a switch) keeps every
// handler's signature uniform and makes an out-of-range opcode a simple
// bounds check.
var opTable = [opCount]opFunc{
	opSetText:                   opFuncSetText,
	opRemoveSelfAndNextSiblings: opFuncRemoveSelfAndNextSiblings,
	opReplaceWith:               opFuncReplaceWith,
	opSetAttribute:              opFuncSetAttribute,
	opRemoveAttribute:           opFuncRemoveAttribute,
	opPushFirstChild:            opFuncPushFirstChild,
	opPopPushNextSibling:        opFuncPopPushNextSibling,
	opPop:                       opFuncPop,
	opAppendChild:               opFuncAppendChild,
	opCreateTextNode:            opFuncCreateTextNode,
	opCreateElement:             opFuncCreateElement,
	opNewEventListener:          opFuncNewEventListener,
	opUpdateEventListener:       opFuncUpdateEventListener,
	opRemoveEventListener:       opFuncRemoveEventListener,
	opAddCachedString:           opFuncAddCachedString,
	opDropCachedString:          opFuncDropCachedString,
	opCreateElementNS:           opFuncCreateElementNS,
	opSetAttributeNS:            opFuncSetAttributeNS,
	opSaveChildrenToTemporaries: opFuncSaveChildrenToTemporaries,
	opPushChild:                 opFuncPushChild,
	opPushTemporary:             opFuncPushTemporary,
	opInsertBefore:              opFuncInsertBefore,
	opPopPushReverseChild:       opFuncPopPushReverseChild,
	opRemoveChild:               opFuncRemoveChild,
	opSetClass:                  opFuncSetClass,
	opSaveTemplate:              opFuncSaveTemplate,
	opPushTemplate:              opFuncPushTemplate,
}

// dispatchRange interprets the words [start, end) of mem as a sequence of
// change-list instructions and executes each in turn.
func (ip *Interpreter) dispatchRange(mem memory.View, start, end int) error {
	i := start
	for i < end {
		if !mem.InBounds(i, i+1) {
			return errOutOfRange()
		}
		op := opcode(mem.Word32(i))
		i++

		if int(op) >= opCount {
			return errUnknownOpcode(op)
		}

		next, err := opTable[op](ip, mem, i)
		if err != nil {
			return err
		}
		i = next
	}
	return nil
}

// readText decodes the (pointer, length) text operand at word index i and
// returns the decoded string along with the index just past the operand.
func readText(mem memory.View, i int) (string, int) {
	ptr := mem.Word32(i)
	length := mem.Word32(i + 1)
	return mem.String(ptr, length), i + 2
}
