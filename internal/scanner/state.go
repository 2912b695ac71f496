package scanner

// State is the scanner's serializable state (spec.md §3, "Scanner state"):
// everything that must round-trip through Serialize/Deserialize for two
// scanner instances derived from the same bytes to behave identically on
// the same input (spec.md §5). Modeled on the teacher's
// editor/syntax/parser.State interface, which threads a serializable state
// value through an incrementally-invoked parse function the same way a host
// parser threads scanner state across speculative calls.
type State struct {
	lastGlobParenDepth uint8
	extWasInDoubleQuote bool
	extSawOutsideQuote  bool
	heredocs            heredocStack
}

// Equals reports whether two states would cause identical future scans.
// current_leading_word is deliberately excluded: it is scratch, reset at
// the entry to every recognizer that uses it, and carries no semantics
// between calls (spec.md §3, §9).
func (s *State) Equals(other *State) bool {
	if s.lastGlobParenDepth != other.lastGlobParenDepth {
		return false
	}
	if s.extWasInDoubleQuote != other.extWasInDoubleQuote {
		return false
	}
	if s.extSawOutsideQuote != other.extSawOutsideQuote {
		return false
	}
	return s.heredocs.equals(&other.heredocs)
}

// reset restores an empty, zeroed state, used when deserializing an
// empty buffer and when constructing a fresh scanner.
func (s *State) reset() {
	s.lastGlobParenDepth = 0
	s.extWasInDoubleQuote = false
	s.extSawOutsideQuote = false
	s.heredocs.frames = nil
}

// Scanner is the external scanner: a single lookahead cursor shared by five
// recognizers, dispatched in the fixed order spec.md §4.1 requires. One
// Scanner is created per parse and destroyed at end (spec.md §3,
// "Lifecycles"); it is strictly single-threaded and not reentrant with
// respect to its own instance (spec.md §5).
type Scanner struct {
	state        State
	resultSymbol Symbol
}

// Create allocates a scanner with an empty heredoc stack and zeroed flags.
func Create() *Scanner {
	return &Scanner{}
}

// Destroy releases all heredoc frames. Go's GC reclaims the memory, but the
// method is kept to mirror the host operation table (spec.md §6) and to
// give callers an explicit point to drop the last reference.
func (sc *Scanner) Destroy() {
	sc.state.reset()
}

// ResultSymbol returns the token id written by the most recent successful
// Scan call (spec.md §6, "result_symbol (write)").
func (sc *Scanner) ResultSymbol() Symbol {
	return sc.resultSymbol
}

// StateForTest exposes the internal state for white-box tests; it is not
// part of the host contract.
func (sc *Scanner) StateForTest() *State {
	return &sc.state
}
