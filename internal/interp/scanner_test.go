package interp

import "testing"

func TestMatchKeywordDoesNotSkipWhitespace(t *testing.T) {
	s := NewScanner("  PRINT")
	if s.MatchKeyword() {
		t.Fatal("MatchKeyword should not skip leading whitespace")
	}
	s.SkipWhitespace()
	if !s.MatchKeyword() || s.Token != "PRINT" {
		t.Fatalf("got token %q, ok=%v", s.Token, true)
	}
}

func TestMatchVarnameSkipsWhitespaceAndAllowsDigits(t *testing.T) {
	s := NewScanner("   a1b2 ")
	if !s.MatchVarname() || s.Token != "a1b2" {
		t.Fatalf("Token = %q", s.Token)
	}
}

func TestMatchNumberIntegerAndFloat(t *testing.T) {
	s := NewScanner("123")
	if !s.MatchNumber() || s.Token != "123" {
		t.Fatalf("Token = %q", s.Token)
	}
	s = NewScanner("3.14")
	if !s.MatchNumber() || s.Token != "3.14" {
		t.Fatalf("Token = %q", s.Token)
	}
}

func TestMatchStringLiteral(t *testing.T) {
	s := NewScanner(`"hello world" rest`)
	ok, unclosed := s.MatchString()
	if !ok || unclosed {
		t.Fatalf("ok=%v unclosed=%v", ok, unclosed)
	}
	if s.Token != "hello world" {
		t.Fatalf("Token = %q", s.Token)
	}
	if !s.Match("rest") {
		t.Fatal("expected remainder to still parse")
	}
}

func TestMatchStringUnclosed(t *testing.T) {
	s := NewScanner(`"oops`)
	ok, unclosed := s.MatchString()
	if ok || !unclosed {
		t.Fatalf("ok=%v unclosed=%v, want ok=false unclosed=true", ok, unclosed)
	}
}

func TestMatchRelationPrefersLongerForms(t *testing.T) {
	cases := map[string]string{
		"<=": "<=",
		"<>": "<>",
		">=": ">=",
		"<":  "<",
		">":  ">",
		"=":  "=",
	}
	for input, want := range cases {
		s := NewScanner(input)
		if !s.MatchRelation() || s.Token != want {
			t.Errorf("input %q: Token = %q, want %q", input, s.Token, want)
		}
	}
}

func TestMatchNocaseRestoresCursorOnFailure(t *testing.T) {
	s := NewScanner("then")
	if s.MatchNocase("else") {
		t.Fatal("unexpected match")
	}
	if s.Cursor() != 0 {
		t.Fatalf("cursor = %d, want 0 after failed MatchNocase", s.Cursor())
	}
	if !s.MatchNocase("THEN") {
		t.Fatal("expected case-insensitive match")
	}
}

func TestMatchLineNumberAndRest(t *testing.T) {
	s := NewScanner("  10 PRINT X")
	n, ok := s.MatchLineNumber()
	if !ok || n != 10 {
		t.Fatalf("n=%d ok=%v", n, ok)
	}
	s.SkipWhitespace()
	if s.Rest() != "PRINT X" {
		t.Fatalf("Rest() = %q", s.Rest())
	}
}

func TestMatchLineNumberAbsentLeavesCursor(t *testing.T) {
	s := NewScanner("PRINT 5")
	if _, ok := s.MatchLineNumber(); ok {
		t.Fatal("unexpected line number match")
	}
	if s.Cursor() != 0 {
		t.Fatalf("cursor moved to %d on failed match", s.Cursor())
	}
}

func TestSkipToEnd(t *testing.T) {
	s := NewScanner("anything at all")
	s.SkipToEnd()
	if !s.AtEnd() {
		t.Fatal("expected AtEnd after SkipToEnd")
	}
}
