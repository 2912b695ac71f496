package scanner

import (
	"unicode/utf8"

	"github.com/aretext/bashscan/internal/lexer"
)

// advanceWord consumes a POSIX "word" (spec.md §4.2) and appends its
// unquoted bytes to into. This is an approximate implementation that skips
// IFS/substitution handling, matching the teacher's own
// editor/syntax/languages/bash.go findHeredocWord, generalized to also
// accept single- and double-quoted forms and backslash escapes per
// spec.md's "read to matching quote" / "\\<char> as a literal" rules.
func advanceWord(lex lexer.Lexer, into *byteBuf) bool {
	empty := true

	var quote rune
	if la := lex.Lookahead(); la == '\'' || la == '"' {
		quote = la
		lex.Advance(false)
	}

	for !lex.EOF() {
		la := lex.Lookahead()
		if quote != 0 {
			if la == quote {
				break
			}
		} else if isSpace(la) {
			break
		}

		if la == '\\' {
			lex.Advance(false)
			if lex.EOF() {
				return false
			}
			la = lex.Lookahead()
		}

		empty = false
		pushRune(into, la)
		lex.Advance(false)
	}

	if quote != 0 && lex.Lookahead() == quote {
		lex.Advance(false)
	}

	return !empty
}

func pushRune(b *byteBuf, r rune) {
	if r < utf8.RuneSelf {
		b.push(byte(r))
		return
	}
	var tmp [utf8.UTFMax]byte
	n := utf8.EncodeRune(tmp[:], r)
	for _, c := range tmp[:n] {
		b.push(c)
	}
}

// scanHeredocStart reads the terminator word after `<<`/`<<-` (spec.md
// §4.2, "Terminator parsing"). The frame was already pushed when the arrow
// token was emitted; this only fills in its delimiter and raw flag.
func scanHeredocStart(f *heredocFrame, lex lexer.Lexer) bool {
	for isSpace(lex.Lookahead()) && !lex.EOF() {
		lex.Advance(true)
	}

	la := lex.Lookahead()
	f.isRaw = la == '\'' || la == '"' || la == '\\'
	f.started = false
	f.delimiter.reset()

	found := advanceWord(lex, &f.delimiter)
	if !found {
		f.delimiter.reset()
		return false
	}
	lex.MarkEnd()
	return true
}

// scanHeredocEndIdentifier tests whether the text at the cursor starts with
// the frame's delimiter byte-for-byte (spec.md §4.2, "Terminator match").
// Only delimiter-length bytes are compared; what follows them on the line
// is not checked.
// currentLeadWord is scratch-only and is cleared on every call.
func scanHeredocEndIdentifier(f *heredocFrame, lex lexer.Lexer) bool {
	f.currentLeadWord.reset()

	delim := f.delimiter.Bytes()
	size := 0
	for {
		la := lex.Lookahead()
		if lex.EOF() || la == '\n' {
			break
		}
		if size >= len(delim) || byte(la) != delim[size] {
			break
		}
		size++
		if f.currentLeadWord.len() >= f.delimiter.len() {
			break
		}
		f.currentLeadWord.push(byte(la))
		lex.Advance(false)
	}
	return f.currentLeadWord.String() == f.delimiter.String()
}

// scanHeredocContent runs the heredoc body state machine (spec.md §4.2,
// "Body scanning") until it emits middleType (content continues) or
// endType (terminator matched / EOF reached after at least one advance).
func scanHeredocContent(sc *Scanner, f *heredocFrame, lex lexer.Lexer, middleType, endType Symbol) bool {
	didAdvance := false

	for {
		la := lex.Lookahead()
		switch {
		case lex.EOF():
			if didAdvance {
				f.started = false
				sc.resultSymbol = endType
				return true
			}
			return false

		case la == '\\':
			didAdvance = true
			lex.Advance(false)
			lex.Advance(false)

		case la == '$':
			if f.isRaw {
				didAdvance = true
				lex.Advance(false)
				continue
			}
			if didAdvance {
				lex.MarkEnd()
				sc.resultSymbol = middleType
				f.started = true
				lex.Advance(false)
				if isAlpha(lex.Lookahead()) || lex.Lookahead() == '{' {
					return true
				}
				continue
			}
			if middleType == HeredocBodyBeginning && lex.Column() == 0 {
				sc.resultSymbol = middleType
				f.started = true
				return true
			}
			return false

		case la == '\n':
			if !didAdvance {
				lex.Advance(true)
			} else {
				lex.Advance(false)
			}
			didAdvance = true
			if f.allowsIndent {
				for isSpace(lex.Lookahead()) {
					lex.Advance(false)
				}
			}
			if f.started {
				sc.resultSymbol = middleType
			} else {
				sc.resultSymbol = endType
			}
			lex.MarkEnd()
			if scanHeredocEndIdentifier(f, lex) {
				return true
			}

		default:
			if lex.Column() == 0 {
				for isSpace(lex.Lookahead()) {
					lex.Advance(didAdvance)
				}
				if endType != SimpleHeredocBody {
					sc.resultSymbol = middleType
					if scanHeredocEndIdentifier(f, lex) {
						return true
					}
				} else {
					sc.resultSymbol = endType
					lex.MarkEnd()
					if scanHeredocEndIdentifier(f, lex) {
						return true
					}
				}
			}
			didAdvance = true
			lex.Advance(false)
		}
	}
}
