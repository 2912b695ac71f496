package scanner

import "github.com/aretext/bashscan/internal/lexer"

// regexFlavor selects which of the three `=~` operand grammars (spec.md
// §4.3) scanRegex terminates on. All three share one state machine and
// terminate on an unmatched ')', ']', or '}'; NoSlash and NoSpace add
// progressively more terminators.
type regexFlavor int

const (
	regexFlavorSlash   regexFlavor = iota // REGEX: terminates on unmatched )/]/}, or EOF
	regexFlavorNoSlash                    // REGEX_NO_SLASH: as REGEX, plus an unescaped '/'
	regexFlavorNoSpace                    // REGEX_NO_SPACE: as REGEX_NO_SLASH, plus whitespace at depth 0
)

// scanRegex recognizes the right-hand operand of `[[ x =~ PATTERN ]]`
// (spec.md §4.3), tracking paren/bracket/brace nesting so that depth>0
// occurrences of the terminator characters don't end the token early, and
// trimming trailing whitespace from the emitted token: whitespace at depth
// zero is consumed without MarkEnd(), while every other consumed character
// (including whitespace inside a nesting or a single-quoted run) is marked.
func scanRegex(lex lexer.Lexer, flavor regexFlavor) bool {
	var parenDepth, bracketDepth, braceDepth int
	inSingleQuote := false
	sawContent := false

	for !lex.EOF() {
		la := lex.Lookahead()

		if inSingleQuote {
			if la == '\'' {
				inSingleQuote = false
			}
			sawContent = true
			lex.Advance(false)
			lex.MarkEnd()
			continue
		}

		atDepthZero := parenDepth == 0 && bracketDepth == 0 && braceDepth == 0

		if atDepthZero {
			switch la {
			case ')', ']', '}':
				if !sawContent {
					return false
				}
				return true
			case '/':
				if flavor != regexFlavorSlash {
					if !sawContent {
						return false
					}
					return true
				}
			default:
				if isSpace(la) && flavor == regexFlavorNoSpace {
					if !sawContent {
						return false
					}
					return true
				}
				if isSpace(la) {
					// REGEX / REGEX_NO_SLASH: whitespace is consumed but not
					// marked as part of the token until non-whitespace
					// follows, so a trailing run is excluded from the span.
					lex.Advance(false)
					continue
				}
			}
		}

		switch la {
		case '\'':
			inSingleQuote = true
		case '(':
			parenDepth++
		case ')':
			if parenDepth > 0 {
				parenDepth--
			}
		case '[':
			bracketDepth++
		case ']':
			if bracketDepth > 0 {
				bracketDepth--
			}
		case '{':
			braceDepth++
		case '}':
			if braceDepth > 0 {
				braceDepth--
			}
		case '\\':
			lex.Advance(false)
			if !lex.EOF() {
				lex.Advance(false)
			}
			lex.MarkEnd()
			sawContent = true
			continue
		}

		sawContent = true
		lex.Advance(false)
		lex.MarkEnd()
	}

	return sawContent
}
