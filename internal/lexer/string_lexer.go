package lexer

import "unicode/utf8"

// StringLexer is an in-memory Lexer over a byte slice. It is the model used
// by the scanner's unit tests and by the CLI harness, grounded on the
// teacher's stringReader/CloneableReader pattern (text/reader.go): a simple
// cursor over an in-memory buffer, with Clone provided for speculative-call
// simulation instead of retokenization after edits (the CLI harness does
// not call it).
type StringLexer struct {
	data   []byte
	pos    int // current lookahead byte offset
	end    int // marked end byte offset
	col    uint32
	endCol uint32 // column at the time of the last MarkEnd
}

// NewStringLexer constructs a lexer over s starting at byte offset 0.
func NewStringLexer(s string) *StringLexer {
	return &StringLexer{data: []byte(s)}
}

// Clone returns an independent lexer at the same position, the way a host
// incremental parser clones scanner+lexer state to explore a speculative
// parse path (spec.md §5).
func (l *StringLexer) Clone() *StringLexer {
	clone := *l
	return &clone
}

func (l *StringLexer) Lookahead() rune {
	if l.pos >= len(l.data) {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRune(l.data[l.pos:])
	return r
}

func (l *StringLexer) Advance(skip bool) {
	if l.pos >= len(l.data) {
		return
	}
	_, size := utf8.DecodeRune(l.data[l.pos:])
	atNewline := l.data[l.pos] == '\n'
	l.pos += size
	if atNewline {
		l.col = 0
	} else {
		l.col += uint32(size)
	}
	_ = skip // skipped bytes still move the cursor; only MarkEnd moves the token boundary
}

func (l *StringLexer) MarkEnd() {
	l.end = l.pos
	l.endCol = l.col
}

// ResetToMarkEnd rewinds the lookahead cursor to the last MarkEnd position.
// A real tree-sitter parser does this automatically before every scan call:
// a recognizer is free to Advance() past its own MarkEnd() to test a
// terminator or peek one character ahead (heredoc end matching, the
// speculative VARIABLE_NAME/FILE_DESCRIPTOR peeks), but none of that extra
// ground gets re-offered to the next recognizer in the same call, and the
// following Scan call must start exactly where the previous token ended.
// Callers driving a Scanner across multiple tokens (the CLI harness, and
// any test issuing more than one Scan per lexer) must call this between
// calls.
func (l *StringLexer) ResetToMarkEnd() {
	l.pos = l.end
	l.col = l.endCol
}

func (l *StringLexer) Column() uint32 {
	return l.col
}

func (l *StringLexer) EOF() bool {
	return l.pos >= len(l.data)
}

// Pos returns the current lookahead byte offset (test/harness introspection
// only; not part of the Lexer contract).
func (l *StringLexer) Pos() int { return l.pos }

// EndPos returns the last marked-end byte offset.
func (l *StringLexer) EndPos() int { return l.end }

// Text returns the bytes between two offsets, for assembling token text in
// tests and the CLI harness.
func (l *StringLexer) Text(startPos, endPos int) string {
	if startPos < 0 {
		startPos = 0
	}
	if endPos > len(l.data) {
		endPos = len(l.data)
	}
	if startPos >= endPos {
		return ""
	}
	return string(l.data[startPos:endPos])
}
