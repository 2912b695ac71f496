package scanner

import "github.com/aretext/bashscan/internal/lexer"

// scanExtglobPattern recognizes an extglob body such as `?(a|b)` or
// `!(foo)` (spec.md §4.5), given that the caller has already consumed the
// leading sigil (`?`, `*`, `+`, `@`, or `!`) and is positioned on the
// opening `(`. last_glob_paren_depth is carried in scanner state so a
// pattern that spans multiple scan() invocations (the host may stop
// lexing mid-pattern while speculating) resumes at the right nesting
// level instead of restarting at zero.
func scanExtglobPattern(st *State, lex lexer.Lexer) bool {
	if lex.Lookahead() != '(' {
		return false
	}
	lex.Advance(false)
	st.lastGlobParenDepth++

	for st.lastGlobParenDepth > 0 {
		if lex.EOF() {
			return false
		}
		la := lex.Lookahead()
		switch la {
		case '(':
			st.lastGlobParenDepth++
			lex.Advance(false)
		case ')':
			st.lastGlobParenDepth--
			lex.Advance(false)
		case '\\':
			lex.Advance(false)
			if !lex.EOF() {
				lex.Advance(false)
			}
		default:
			lex.Advance(false)
		}
	}

	lex.MarkEnd()
	return true
}

// isExtglobSigil reports whether r begins an extglob pattern when followed
// by `(` (spec.md §4.5's five sigils).
func isExtglobSigil(r rune) bool {
	switch r {
	case '?', '*', '+', '@', '!':
		return true
	}
	return false
}
