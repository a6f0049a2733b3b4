package changelist

// opcode identifies a single change-list instruction. Historical variants of
// this wire protocol have renumbered opcodes across versions; the numbering
// below is this repository's own, and every binary this interpreter accepts
// must use it.
type opcode uint32

const (
	opSetText                   opcode = 0
	opRemoveSelfAndNextSiblings opcode = 1
	opReplaceWith               opcode = 2
	opSetAttribute              opcode = 3
	opRemoveAttribute           opcode = 4
	opPushFirstChild            opcode = 5
	opPopPushNextSibling        opcode = 6
	opPop                       opcode = 7
	opAppendChild               opcode = 8
	opCreateTextNode            opcode = 9
	opCreateElement             opcode = 10
	opNewEventListener          opcode = 11
	opUpdateEventListener       opcode = 12
	opRemoveEventListener       opcode = 13
	opAddCachedString           opcode = 14
	opDropCachedString          opcode = 15
	opCreateElementNS           opcode = 16
	opSetAttributeNS            opcode = 17
	opSaveChildrenToTemporaries opcode = 18
	opPushChild                 opcode = 19
	opPushTemporary             opcode = 20
	opInsertBefore              opcode = 21
	opPopPushReverseChild       opcode = 22
	opRemoveChild               opcode = 23
	opSetClass                  opcode = 24
	opSaveTemplate              opcode = 25
	opPushTemplate              opcode = 26

	opCount = 27
)
