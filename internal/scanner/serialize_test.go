package scanner

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// heredocSnapshot reduces a heredoc stack to its exported-shape summary, the
// form go-cmp can diff without an AllowUnexported option for every internal
// scratch field.
func heredocSnapshot(st *State) []string {
	var out []string
	for _, f := range st.heredocs.frames {
		out = append(out, fmt.Sprintf("%s raw=%v started=%v indent=%v",
			f.delimiter.String(), f.isRaw, f.started, f.allowsIndent))
	}
	return out
}

func TestSerializeDeserializeEmptyState(t *testing.T) {
	sc := Create()
	buf := make([]byte, 64)
	n := sc.Serialize(buf)
	require.Greater(t, n, 0)

	restored := Create()
	restored.Deserialize(buf[:n])
	assert.True(t, sc.StateForTest().Equals(restored.StateForTest()))
}

func TestSerializeDeserializeWithHeredocStack(t *testing.T) {
	sc := Create()
	sc.state.lastGlobParenDepth = 3
	sc.state.extWasInDoubleQuote = true
	sc.state.heredocs.push(newFrame("EOF", true, false, true))
	sc.state.heredocs.push(newFrame("END", false, true, false))

	buf := make([]byte, 256)
	n := sc.Serialize(buf)
	require.Greater(t, n, 0)

	restored := Create()
	restored.Deserialize(buf[:n])
	assert.True(t, sc.StateForTest().Equals(restored.StateForTest()))
	assert.Equal(t, 2, restored.StateForTest().heredocs.len())
	if diff := cmp.Diff(heredocSnapshot(sc.StateForTest()), heredocSnapshot(restored.StateForTest())); diff != "" {
		t.Errorf("heredoc stack mismatch after round-trip (-want +got):\n%s", diff)
	}
}

func TestSerializeTooSmallBufferReturnsZero(t *testing.T) {
	sc := Create()
	sc.state.heredocs.push(newFrame("VERY_LONG_DELIMITER_NAME", false, false, false))

	buf := make([]byte, 4)
	assert.Equal(t, 0, sc.Serialize(buf))
}

func TestDeserializeEmptyBufferResets(t *testing.T) {
	sc := Create()
	sc.state.lastGlobParenDepth = 7
	sc.state.heredocs.push(newFrame("X", false, false, false))

	sc.Deserialize(nil)
	assert.Equal(t, uint8(0), sc.state.lastGlobParenDepth)
	assert.Equal(t, 0, sc.state.heredocs.len())
}
