package scanner

import "github.com/aretext/bashscan/internal/lexer"

// Scan attempts to produce one token (spec.md §4.1, the dispatch core).
// Recognizer order is semantically significant: earlier recognizers take
// priority whenever their symbol is valid, and a rewrite must not reorder
// this list without re-verifying every scenario in spec.md §8 still holds.
func (sc *Scanner) Scan(lex lexer.Lexer, valid ValidSymbols) bool {
	st := &sc.state

	if scanConcat(sc, lex, valid) {
		return true
	}

	if scanImmediateDoubleHash(sc, lex, valid) {
		return true
	}

	if scanExternalExpansionSigil(sc, lex, valid, '#', ExternalExpansionSymHash) {
		return true
	}
	if scanExternalExpansionSigil(sc, lex, valid, '!', ExternalExpansionSymBang) {
		return true
	}
	if scanExternalExpansionSigil(sc, lex, valid, '=', ExternalExpansionSymEqual) {
		return true
	}

	if scanEmptyValue(sc, lex, valid) {
		return true
	}

	if !inErrorRecovery(valid) {
		// Body-beginning/content/end scanning always targets the oldest
		// open frame (FIFO order, spec.md §4.2 "Ordering guarantees"), even
		// though later arrows may already have pushed further frames behind
		// it for the same command line.
		if cur := st.heredocs.current(); cur != nil {
			if !cur.started {
				if valid.Has(HeredocBodyBeginning) || valid.Has(SimpleHeredocBody) {
					if scanHeredocBodyStart(sc, cur, lex, valid) {
						return true
					}
				}
			}

			if valid.Has(HeredocEnd) {
				if scanHeredocEndAtLineStart(sc, st, cur, lex) {
					return true
				}
			}

			if cur.started && valid.Has(HeredocContent) {
				if scanHeredocContent(sc, cur, lex, HeredocContent, HeredocEnd) {
					if sc.resultSymbol == HeredocEnd {
						st.heredocs.pop()
					}
					return true
				}
			}
		}

		// HEREDOC_START fills in whichever frame was most recently pushed
		// by a HEREDOC_ARROW[_DASH] — the stack's LIFO top, not the FIFO
		// body-consumption front.
		if top := st.heredocs.top(); top != nil && valid.Has(HeredocStart) {
			if scanHeredocStart(top, lex) {
				sc.resultSymbol = HeredocStart
				return true
			}
		}
	}

	if scanTestOperator(sc, lex, valid) {
		return true
	}

	// scanHeredocArrow may consume a lone '<' before discovering it doesn't
	// form '<<': once that happens, committed is true and the cursor can no
	// longer be handed to a later recognizer, so the whole call must decline
	// immediately rather than fall through (see scanHeredocArrow's doc).
	if matched, committed := scanHeredocArrow(sc, st, lex, valid); matched {
		return true
	} else if committed {
		return false
	}

	if scanIdentifierContinuation(sc, st, lex, valid, false) {
		return true
	}

	if scanBareDollar(sc, lex, valid) {
		return true
	}

	if ok, sym := regexSymbolFor(valid); ok {
		if scanRegexDispatch(sc, lex, sym) {
			return true
		}
	}

	if valid.Has(ExtglobPattern) && !inErrorRecovery(valid) {
		if isExtglobSigil(lex.Lookahead()) {
			lex.Advance(false)
			if lex.Lookahead() == '(' {
				if scanExtglobPattern(st, lex) {
					sc.resultSymbol = ExtglobPattern
					return true
				}
			}
		}
	}

	if valid.Has(ExpansionWord) && !inErrorRecovery(valid) {
		if scanExpansionWord(lex, expansionVariable) {
			sc.resultSymbol = ExpansionWord
			return true
		}
	}

	if scanBraceStart(sc, lex, valid) {
		return true
	}

	return false
}

// scanHeredocBodyStart decides between SIMPLE_HEREDOC_BODY (no expansion in
// the body) and HEREDOC_BODY_BEGINNING (body opens with an expansion),
// per spec.md §4.2 "Body start". This is a single state-machine pass, not
// two speculative attempts: passing SimpleHeredocBody as the end type lets
// scanHeredocContent itself decide which of the two gets emitted, based on
// whether a '$' is encountered before the terminator line.
func scanHeredocBodyStart(sc *Scanner, f *heredocFrame, lex lexer.Lexer, valid ValidSymbols) bool {
	return scanHeredocContent(sc, f, lex, HeredocBodyBeginning, SimpleHeredocBody)
}

// scanHeredocEndAtLineStart tests the terminator of f, the oldest open
// frame that Scan passes in (spec.md §4.2
// "Terminator match") outside of an active content scan, e.g. when the
// parser asks for HEREDOC_END directly after a prior token's MarkEnd left
// the cursor sitting right where a terminator line would begin. No column
// gate is needed: scanHeredocEndIdentifier only succeeds on an exact,
// full-length match against the delimiter.
func scanHeredocEndAtLineStart(sc *Scanner, st *State, f *heredocFrame, lex lexer.Lexer) bool {
	if !scanHeredocEndIdentifier(f, lex) {
		return false
	}
	lex.MarkEnd()
	sc.resultSymbol = HeredocEnd
	st.heredocs.pop()
	return true
}

// regexSymbolFor picks which regex flavor symbol (if any) is valid at this
// call, preferring the most specific (REGEX_NO_SPACE) per spec.md §9's
// note that REGEX_NO_SLASH vs VARIABLE_NAME on `$` is precedence-sensitive.
func regexSymbolFor(valid ValidSymbols) (bool, Symbol) {
	switch {
	case valid.Has(RegexNoSpace):
		return true, RegexNoSpace
	case valid.Has(RegexNoSlash):
		return true, RegexNoSlash
	case valid.Has(Regex):
		return true, Regex
	}
	return false, 0
}

// scanRegexDispatch runs scanRegex for sym's flavor and, on success, writes
// the result symbol.
func scanRegexDispatch(sc *Scanner, lex lexer.Lexer, sym Symbol) bool {
	var flavor regexFlavor
	switch sym {
	case Regex:
		flavor = regexFlavorSlash
	case RegexNoSlash:
		flavor = regexFlavorNoSlash
	case RegexNoSpace:
		flavor = regexFlavorNoSpace
	default:
		return false
	}
	if !scanRegex(lex, flavor) {
		return false
	}
	sc.resultSymbol = sym
	return true
}
