package main

import (
	"github.com/aretext/bashscan/internal/lexer"
	"github.com/aretext/bashscan/internal/scanner"
)

// Token is one emitted scan result, recorded for CLI display.
type Token struct {
	Symbol scanner.Symbol `json:"symbol"`
	Text   string         `json:"text"`
	Start  int            `json:"start"`
	End    int            `json:"end"`
}

// permissiveValidSymbols enables every symbol except ERROR_RECOVERY: a
// real host narrows this set per parse position, but outside of a grammar
// driver the harness instead relies on the scanner's own dispatch order
// and heredoc-stack state to decide what can match.
func permissiveValidSymbols() scanner.ValidSymbols {
	var v scanner.ValidSymbols
	for sym := scanner.Symbol(0); sym < scanner.ErrorRecovery; sym++ {
		v.Set(sym)
	}
	return v
}

// tokenize runs sc.Scan repeatedly over lex until no recognizer matches and
// no further progress is possible, collecting every emitted token. It mimics
// what an incremental parser driver does across a full file, without any
// grammar context: good enough for exploring the scanner standalone, not a
// substitute for being embedded in a real parse.
func tokenize(sc *scanner.Scanner, lex *lexer.StringLexer) []Token {
	var tokens []Token
	valid := permissiveValidSymbols()

	for !lex.EOF() {
		startPos := lex.Pos()
		if !sc.Scan(lex, valid) {
			// No recognizer matched; advance one codepoint to make progress,
			// mirroring how a host parser falls back to its own lexical
			// rules when the external scanner declines.
			lex.Advance(true)
			continue
		}
		endPos := lex.EndPos()
		tokens = append(tokens, Token{
			Symbol: sc.ResultSymbol(),
			Text:   lex.Text(startPos, endPos),
			Start:  startPos,
			End:    endPos,
		})
		// A recognizer may have advanced past its own MarkEnd to test a
		// terminator or peek ahead; rewind to where the token actually
		// ended before the next Scan call, matching what a real host
		// parser does between external-scanner invocations.
		lex.ResetToMarkEnd()
		if endPos == startPos {
			// Zero-width token (e.g. CONCAT) that also made no cursor
			// progress: force an advance so the loop terminates.
			lex.Advance(true)
		}
	}
	return tokens
}
