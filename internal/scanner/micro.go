package scanner

import "github.com/aretext/bashscan/internal/lexer"

// scanConcat recognizes the zero-width CONCAT token emitted between two
// grammatically adjacent tokens (spec.md §4.5). It never advances the
// cursor: a concat token has no width of its own, only a position.
func scanConcat(sc *Scanner, lex lexer.Lexer, valid ValidSymbols) bool {
	if !valid.Has(Concat) || inErrorRecovery(valid) {
		return false
	}
	if lex.EOF() {
		return false
	}
	la := lex.Lookahead()
	if isSpace(la) {
		return false
	}
	switch la {
	case ')', ']', '}', ';', '&', '|', '\n':
		return false
	}
	lex.MarkEnd()
	sc.resultSymbol = Concat
	return true
}

// scanImmediateDoubleHash recognizes `##` in a parameter expansion
// (spec.md §4.5) as IMMEDIATE_DOUBLE_HASH, distinguishing the legal
// prefix-strip form `${var##pat}` from the syntax error `${var##}` by
// requiring the lookahead after both `#` characters not be `}`.
func scanImmediateDoubleHash(sc *Scanner, lex lexer.Lexer, valid ValidSymbols) bool {
	if !valid.Has(ImmediateDoubleHash) || inErrorRecovery(valid) {
		return false
	}
	if lex.Lookahead() != '#' {
		return false
	}
	lex.Advance(false)
	if lex.Lookahead() != '#' {
		return false
	}
	lex.Advance(false)
	if lex.Lookahead() == '}' {
		return false
	}
	lex.MarkEnd()
	sc.resultSymbol = ImmediateDoubleHash
	return true
}

// scanExternalExpansionSigil recognizes `#`, `!`, or `=` as an expansion
// operator sigil (spec.md §4.5) when, after skipping further sigils and
// whitespace, a `}` follows — e.g. the `!` in `${!}` or the `#` in `${#}`;
// `${!ref}` does not match, since `r` follows the sigil. sigil is the
// character this call looks for at the lookahead; any other lookahead
// declines.
func scanExternalExpansionSigil(sc *Scanner, lex lexer.Lexer, valid ValidSymbols, sigil rune, sym Symbol) bool {
	if !valid.Has(sym) || inErrorRecovery(valid) {
		return false
	}
	if lex.Lookahead() != sigil {
		return false
	}
	lex.Advance(false)
	lex.MarkEnd()

	for {
		la := lex.Lookahead()
		if la == '}' {
			sc.resultSymbol = sym
			return true
		}
		if isSpace(la) || la == '#' || la == '!' || la == '=' {
			lex.Advance(false)
			continue
		}
		return false
	}
}

// scanEmptyValue recognizes EMPTY_VALUE (spec.md §4.5): an assignment's
// right-hand side is empty when whitespace, EOF, `;`, or `&` follows the
// `=`/`+=` the grammar has already consumed.
func scanEmptyValue(sc *Scanner, lex lexer.Lexer, valid ValidSymbols) bool {
	if !valid.Has(EmptyValue) || inErrorRecovery(valid) {
		return false
	}
	if lex.EOF() {
		lex.MarkEnd()
		sc.resultSymbol = EmptyValue
		return true
	}
	la := lex.Lookahead()
	if isSpace(la) || la == ';' || la == '&' {
		lex.MarkEnd()
		sc.resultSymbol = EmptyValue
		return true
	}
	return false
}

// scanBareDollar recognizes BARE_DOLLAR (spec.md §4.5): a `$` followed by
// whitespace, EOF, or `"` — i.e. a literal dollar sign.
// Leading non-newline whitespace before the `$` is skipped, mirroring
// original_source/src/scanner.c's scan_bare_dollar.
func scanBareDollar(sc *Scanner, lex lexer.Lexer, valid ValidSymbols) bool {
	if !valid.Has(BareDollar) || inErrorRecovery(valid) {
		return false
	}
	for isSpace(lex.Lookahead()) && lex.Lookahead() != '\n' {
		lex.Advance(true)
	}
	if lex.Lookahead() != '$' {
		return false
	}
	lex.Advance(false)
	la := lex.Lookahead()
	if isSpace(la) || lex.EOF() || la == '"' {
		lex.MarkEnd()
		sc.resultSymbol = BareDollar
		return true
	}
	return false
}

// scanBraceStart recognizes the literal brace-range form `{N..M}`
// (spec.md §4.5) as BRACE_START: `{`, optional digits, `..`, optional
// digits, `}`.
func scanBraceStart(sc *Scanner, lex lexer.Lexer, valid ValidSymbols) bool {
	if !valid.Has(BraceStart) || inErrorRecovery(valid) {
		return false
	}
	if lex.Lookahead() != '{' {
		return false
	}
	lex.Advance(false)

	for isDigit(lex.Lookahead()) {
		lex.Advance(false)
	}
	if lex.Lookahead() != '.' {
		return false
	}
	lex.Advance(false)
	if lex.Lookahead() != '.' {
		return false
	}
	lex.Advance(false)
	for isDigit(lex.Lookahead()) {
		lex.Advance(false)
	}
	if lex.Lookahead() != '}' {
		return false
	}
	lex.Advance(false)
	lex.MarkEnd()
	sc.resultSymbol = BraceStart
	return true
}

// identifierContinuation reports which of VARIABLE_NAME, FILE_DESCRIPTOR
// the run of word characters the caller just consumed should resolve to,
// by peeking at the character(s) immediately following (spec.md §4.5).
// inBraceOrParen reflects whether the identifier sits directly inside
// `{…}`/`(…)`, which changes whether `:` counts as an assignment
// continuation.
func identifierContinuation(lex lexer.Lexer, allDigits, inBraceOrParen bool) Symbol {
	la := lex.Lookahead()

	if allDigits && (la == '<' || la == '>') {
		return FileDescriptor
	}

	switch la {
	case '=', '[', '@':
		return VariableName
	case ':':
		if !inBraceOrParen {
			return VariableName
		}
	case '%':
		return VariableName
	case '#':
		if !allDigits {
			return VariableName
		}
	case '-':
		if inBraceOrParen {
			return VariableName
		}
	case '+':
		lex.Advance(false)
		switch lex.Lookahead() {
		case '=', ':', '}':
			return VariableName
		}
	case '?':
		lex.Advance(false)
		if isAlpha(lex.Lookahead()) {
			return VariableName
		}
	}
	return numSymbols // sentinel: no continuation recognized
}

// scanHeredocArrow recognizes `<<`/`<<-` (spec.md §4.5), refusing to match
// `<<<` (herestring) or `<<=`. It reports committed=true as soon as the
// first '<' is consumed: from that point on, a non-match can no longer
// leave the cursor where it found it, so the caller must decline the
// entire Scan call rather than let a later recognizer run against a
// lexer positioned one or two characters past where it started — exactly
// the effect of the original scanner's flat dispatch function returning
// false outright from this branch instead of falling through.
func scanHeredocArrow(sc *Scanner, st *State, lex lexer.Lexer, valid ValidSymbols) (matched, committed bool) {
	if !valid.Has(HeredocArrow) && !valid.Has(HeredocArrowDash) {
		return false, false
	}
	if lex.Lookahead() != '<' {
		return false, false
	}
	lex.Advance(false)
	if lex.Lookahead() != '<' {
		return false, true
	}
	lex.Advance(false)
	switch lex.Lookahead() {
	case '<', '=':
		return false, true // herestring or <<= : not a heredoc arrow
	case '-':
		if valid.Has(HeredocArrowDash) {
			lex.Advance(false)
			lex.MarkEnd()
			st.heredocs.push(&heredocFrame{allowsIndent: true})
			sc.resultSymbol = HeredocArrowDash
			return true, true
		}
		return false, true
	default:
		if valid.Has(HeredocArrow) {
			lex.MarkEnd()
			st.heredocs.push(&heredocFrame{})
			sc.resultSymbol = HeredocArrow
			return true, true
		}
		return false, true
	}
}

// scanIdentifierContinuation recognizes VARIABLE_NAME and FILE_DESCRIPTOR
// (spec.md §4.5): one POSIX identifier (letters, digits, underscore)
// followed by a disambiguating character.
func scanIdentifierContinuation(sc *Scanner, st *State, lex lexer.Lexer, valid ValidSymbols, inBraceOrParen bool) bool {
	if inErrorRecovery(valid) {
		return false
	}

	if !valid.Has(VariableName) && !valid.Has(FileDescriptor) {
		return false
	}

	if !isAlpha(lex.Lookahead()) && lex.Lookahead() != '_' && !isDigit(lex.Lookahead()) {
		return false
	}

	allDigits := true
	var buf byteBuf
	for isAlnum(lex.Lookahead()) || lex.Lookahead() == '_' {
		la := lex.Lookahead()
		if !isDigit(la) {
			allDigits = false
		}
		buf.push(byte(la))
		lex.Advance(false)
	}
	if buf.len() == 0 {
		return false
	}

	sym := identifierContinuation(lex, allDigits, inBraceOrParen)
	if sym == numSymbols {
		return false
	}
	if !valid.Has(sym) {
		return false
	}
	lex.MarkEnd()
	sc.resultSymbol = sym
	return true
}

// scanTestOperator recognizes TEST_OPERATOR (spec.md §4.5): a `-`-prefixed
// alphabetic flag inside `[[ … ]]`, terminated by whitespace. A
// backslash-newline continuation inside the flag falls through to the
// extglob/regex-no-space recognizers instead (it is the original's
// documented goto into those labels, supplemented from
// original_source/src/scanner.c), so this returns false rather than
// matching when that shape is seen.
func scanTestOperator(sc *Scanner, lex lexer.Lexer, valid ValidSymbols) bool {
	if !valid.Has(TestOperator) || inErrorRecovery(valid) {
		return false
	}
	if lex.Lookahead() != '-' {
		return false
	}
	lex.Advance(false)
	if !isAlpha(lex.Lookahead()) {
		return false
	}

	for isAlpha(lex.Lookahead()) {
		lex.Advance(false)
	}
	if lex.Lookahead() == '\\' {
		return false
	}
	if !isSpace(lex.Lookahead()) && !lex.EOF() {
		return false
	}
	lex.MarkEnd()
	sc.resultSymbol = TestOperator
	return true
}
