package interp

import "unicode"

// Scanner holds the single piece of ambient state the language's
// scan-and-evaluate design needs: the text of the line currently being
// parsed, a cursor into it, and the last token matched. Unlike the
// reference implementation this spec is modeled on, which keeps this
// triple as module-level globals, it is a plain struct so the evaluator
// can save and restore it wholesale around user-defined function calls
// (see Interpreter.callUserFunction).
//
// Cursor positions are rune offsets, not byte offsets, so error columns
// stay meaningful in the presence of multi-byte input.
type Scanner struct {
	line   []rune
	cursor int
	Token  string
}

// NewScanner creates a Scanner positioned at the start of line.
func NewScanner(line string) *Scanner {
	return &Scanner{line: []rune(line)}
}

// SetLine installs a new line of text, resets the cursor to zero, and
// clears the last-matched token.
func (s *Scanner) SetLine(line string) {
	s.line = []rune(line)
	s.cursor = 0
	s.Token = ""
}

// Text returns the full text of the current line.
func (s *Scanner) Text() string { return string(s.line) }

// Cursor returns the current cursor position, in runes.
func (s *Scanner) Cursor() int { return s.cursor }

// Len returns the length of the current line, in runes.
func (s *Scanner) Len() int { return len(s.line) }

// AtEnd reports whether the cursor has reached the end of the line
// (without skipping trailing whitespace first).
func (s *Scanner) AtEnd() bool { return s.cursor >= len(s.line) }

// SkipWhitespace advances the cursor over any run of Unicode whitespace.
func (s *Scanner) SkipWhitespace() {
	for s.cursor < len(s.line) && unicode.IsSpace(s.line[s.cursor]) {
		s.cursor++
	}
}

// MatchKeyword recognizes a maximal run of letters starting exactly at
// the cursor (it does not skip leading whitespace — callers that need
// that skip it themselves, matching the statement and expression
// grammar's own whitespace discipline). On success it sets Token and
// advances the cursor.
func (s *Scanner) MatchKeyword() bool {
	if s.cursor >= len(s.line) || !unicode.IsLetter(s.line[s.cursor]) {
		return false
	}
	mark := s.cursor
	for s.cursor < len(s.line) && unicode.IsLetter(s.line[s.cursor]) {
		s.cursor++
	}
	s.Token = string(s.line[mark:s.cursor])
	return true
}

// MatchVarname recognizes an identifier: a letter followed by letters
// or digits, greedy. Leading whitespace is skipped first.
func (s *Scanner) MatchVarname() bool {
	s.SkipWhitespace()
	if s.cursor >= len(s.line) || !unicode.IsLetter(s.line[s.cursor]) {
		return false
	}
	mark := s.cursor
	for s.cursor < len(s.line) && (unicode.IsLetter(s.line[s.cursor]) || unicode.IsDigit(s.line[s.cursor])) {
		s.cursor++
	}
	s.Token = string(s.line[mark:s.cursor])
	return true
}

// MatchNumber recognizes a number literal: one or more digits, with an
// optional '.' and more digits. No sign, no exponent.
func (s *Scanner) MatchNumber() bool {
	s.SkipWhitespace()
	if s.cursor >= len(s.line) || !unicode.IsDigit(s.line[s.cursor]) {
		return false
	}
	mark := s.cursor
	for s.cursor < len(s.line) && unicode.IsDigit(s.line[s.cursor]) {
		s.cursor++
	}
	if s.cursor < len(s.line) && s.line[s.cursor] == '.' {
		s.cursor++
		for s.cursor < len(s.line) && unicode.IsDigit(s.line[s.cursor]) {
			s.cursor++
		}
	}
	s.Token = string(s.line[mark:s.cursor])
	return true
}

// MatchString recognizes a double-quoted string literal with no escape
// syntax. Token is set to the content without the surrounding quotes. An
// unterminated literal is reported through ok=false, unclosed=true so the
// caller can raise an Index error.
func (s *Scanner) MatchString() (ok bool, unclosed bool) {
	s.SkipWhitespace()
	if s.cursor >= len(s.line) || s.line[s.cursor] != '"' {
		return false, false
	}
	start := s.cursor + 1
	i := start
	for i < len(s.line) && s.line[i] != '"' {
		i++
	}
	if i >= len(s.line) {
		return false, true
	}
	s.Token = string(s.line[start:i])
	s.cursor = i + 1
	return true, false
}

// Match consumes the literal text if it appears starting at the cursor
// (after skipping whitespace). It is used for fixed punctuation such as
// "=", "(", ")", ",", ";".
func (s *Scanner) Match(text string) bool {
	s.SkipWhitespace()
	t := []rune(text)
	if !hasPrefixAt(s.line, s.cursor, t) {
		return false
	}
	s.cursor += len(t)
	return true
}

// MatchEOL reports whether, after skipping whitespace, the cursor sits
// at the end of the line.
func (s *Scanner) MatchEOL() bool {
	s.SkipWhitespace()
	return s.cursor >= len(s.line)
}

// MatchNocase attempts to match kw as a keyword, case-insensitively,
// restoring the cursor on failure so the attempt is atomic.
func (s *Scanner) MatchNocase(kw string) bool {
	mark := s.cursor
	s.SkipWhitespace()
	if !s.MatchKeyword() {
		s.cursor = mark
		return false
	}
	if !equalFold(s.Token, kw) {
		s.cursor = mark
		return false
	}
	return true
}

// relops lists the relational operators in the order they must be
// tried: longer forms before any shorter form that is a prefix of them
// ("<=" before "<", ">=" before ">", "<>" before "<").
var relops = []string{"=", "<>", "<=", ">=", "<", ">"}

// MatchRelation recognizes one of the relational operators without
// requiring surrounding whitespace beyond the usual leading skip.
func (s *Scanner) MatchRelation() bool {
	s.SkipWhitespace()
	for _, op := range relops {
		r := []rune(op)
		if hasPrefixAt(s.line, s.cursor, r) {
			s.Token = op
			s.cursor += len(r)
			return true
		}
	}
	return false
}

// MatchLineNumber recognizes a run of digits at the cursor (after
// skipping leading whitespace) and parses it as a line number. It
// reports false, leaving the cursor just past that leading whitespace,
// if no digit is found — the case that means "this line is direct mode,
// not a stored line".
func (s *Scanner) MatchLineNumber() (int, bool) {
	s.SkipWhitespace()
	mark := s.cursor
	for s.cursor < len(s.line) && unicode.IsDigit(s.line[s.cursor]) {
		s.cursor++
	}
	if s.cursor == mark {
		return 0, false
	}
	n := 0
	for _, r := range s.line[mark:s.cursor] {
		n = n*10 + int(r-'0')
	}
	return n, true
}

// Rest returns the remainder of the line from the current cursor
// position to the end, as a string.
func (s *Scanner) Rest() string {
	return string(s.line[s.cursor:])
}

// SkipToEnd advances the cursor to the end of the line, discarding
// whatever text remains. REM and the untaken branch of IF use it to
// discard a trailing comment or statement without parsing it.
func (s *Scanner) SkipToEnd() {
	s.cursor = len(s.line)
}

func hasPrefixAt(line []rune, pos int, prefix []rune) bool {
	if pos+len(prefix) > len(line) {
		return false
	}
	for i, r := range prefix {
		if line[pos+i] != r {
			return false
		}
	}
	return true
}

func equalFold(a, b string) bool {
	ra, rb := []rune(a), []rune(b)
	if len(ra) != len(rb) {
		return false
	}
	for i := range ra {
		if unicode.ToLower(ra[i]) != unicode.ToLower(rb[i]) {
			return false
		}
	}
	return true
}
