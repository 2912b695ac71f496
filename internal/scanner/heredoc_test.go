package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newFrame(delim string, isRaw, started, allowsIndent bool) *heredocFrame {
	f := &heredocFrame{isRaw: isRaw, started: started, allowsIndent: allowsIndent}
	for i := 0; i < len(delim); i++ {
		f.delimiter.push(delim[i])
	}
	return f
}

func TestHeredocStackPushPopTop(t *testing.T) {
	var s heredocStack
	assert.Equal(t, 0, s.len())
	assert.Nil(t, s.top())
	assert.Nil(t, s.current())

	a := newFrame("A", false, false, false)
	b := newFrame("B", false, false, false)
	s.push(a)
	s.push(b)
	assert.Equal(t, 2, s.len())
	// top is the most recently pushed (HEREDOC_START's fill target)...
	assert.Same(t, b, s.top())
	// ...but current is the oldest open frame (the FIFO body-consumption
	// target), per spec.md §4.2's ordering guarantee.
	assert.Same(t, a, s.current())

	s.pop()
	assert.Equal(t, 1, s.len())
	assert.Same(t, b, s.top())
	assert.Same(t, b, s.current())

	s.pop()
	assert.Equal(t, 0, s.len())
	assert.Nil(t, s.top())
	assert.Nil(t, s.current())

	s.pop() // popping an empty stack is a no-op
	assert.Equal(t, 0, s.len())
}

func TestHeredocStackEquals(t *testing.T) {
	var s1, s2 heredocStack
	s1.push(newFrame("EOF", true, false, true))
	s2.push(newFrame("EOF", true, false, true))
	assert.True(t, s1.equals(&s2))

	s2.top().started = true
	assert.False(t, s1.equals(&s2))

	var s3 heredocStack
	s3.push(newFrame("EOF", true, false, true))
	s3.push(newFrame("OTHER", false, false, false))
	assert.False(t, s1.equals(&s3))
}
