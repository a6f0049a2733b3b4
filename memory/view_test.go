package memory

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wordBuf(words ...uint32) []byte {
	buf := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(buf[i*4:], w)
	}
	return buf
}

func TestWord32(t *testing.T) {
	v := NewView(wordBuf(1, 2, 0xdeadbeef))
	assert.Equal(t, uint32(1), v.Word32(0))
	assert.Equal(t, uint32(2), v.Word32(1))
	assert.Equal(t, uint32(0xdeadbeef), v.Word32(2))
}

func TestInBounds(t *testing.T) {
	v := NewView(wordBuf(1, 2, 3))
	assert.True(t, v.InBounds(0, 3))
	assert.True(t, v.InBounds(1, 2))
	assert.False(t, v.InBounds(0, 4))
	assert.False(t, v.InBounds(-1, 2))
}

func TestStringDecode(t *testing.T) {
	buf := append([]byte{0, 0, 0, 0}, []byte("hello")...)
	v := NewView(buf)
	require.Equal(t, "hello", v.String(4, 5))
}

func TestStringDecodeReplacesInvalidUTF8(t *testing.T) {
	buf := []byte{'a', 0xff, 'b'}
	v := NewView(buf)
	s := v.String(0, 3)
	assert.Equal(t, "a�b", s)
}
