package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByteBuf(t *testing.T) {
	var b byteBuf
	assert.Equal(t, 0, b.len())
	assert.Equal(t, "", b.String())

	b.push('a')
	b.push('b')
	b.push('c')
	assert.Equal(t, 3, b.len())
	assert.Equal(t, "abc", b.String())
	assert.Equal(t, byte('b'), b.at(1))
	assert.Equal(t, []byte("abc"), b.Bytes())

	b.reset()
	assert.Equal(t, 0, b.len())
	assert.Equal(t, "", b.String())
}
