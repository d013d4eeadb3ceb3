// Package errors provides located-error formatting for the tinycat-basic
// interpreter. It turns a bare message plus cursor column (and, inside
// RUN/CONTINUE, a line number) into the two presentations the REPL and the
// CLI use: a compact one-liner and a source-context form with a caret.
package errors

import (
	"fmt"
	"strings"
)

// Kind classifies a language error per the error-kind taxonomy of the
// interpreter's error design: Syntax, Name, Value, Runtime, Index.
type Kind int

const (
	// Syntax covers missing tokens, unknown statements, malformed constructs.
	Syntax Kind = iota
	// Name covers unknown variables or functions.
	Name
	// Value covers line numbers absent from the program, bad INPUT fields,
	// and a zero FOR step.
	Value
	// Runtime covers stack underflow and bad argument counts.
	Runtime
	// Index covers an unclosed string literal.
	Index
)

func (k Kind) String() string {
	switch k {
	case Syntax:
		return "Syntax error"
	case Name:
		return "Name error"
	case Value:
		return "Value error"
	case Runtime:
		return "Runtime error"
	case Index:
		return "Index error"
	default:
		return "Error"
	}
}

// Located is an error tied to a cursor column within the current input
// line and, when raised while a stored program is executing, the line
// number and text of that line.
type Located struct {
	Kind    Kind
	Message string
	Column  int

	// LineNumber is the stored program line being executed, or 0 in
	// direct mode (no stored-program context).
	LineNumber int
	// Source is the text of the line being parsed when the error was
	// raised, used only to render the caret form.
	Source string
}

// New creates a Located error with no line-number context (direct mode).
func New(kind Kind, column int, format string, args ...any) *Located {
	return &Located{Kind: kind, Message: fmt.Sprintf(format, args...), Column: column}
}

// WithLine returns a copy of e annotated with the stored-program line
// number and source text it was raised from.
func (e *Located) WithLine(lineNumber int, source string) *Located {
	cp := *e
	cp.LineNumber = lineNumber
	cp.Source = source
	return &cp
}

// Error implements the error interface with the compact, single-line form:
// "<kind>: <message> in line <n> column <c>" (the "in line <n>" clause is
// omitted in direct mode).
func (e *Located) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.String())
	sb.WriteString(": ")
	sb.WriteString(e.Message)
	if e.LineNumber > 0 {
		fmt.Fprintf(&sb, " in line %d", e.LineNumber)
	}
	fmt.Fprintf(&sb, " column %d", e.Column)
	return sb.String()
}

// FormatWithContext renders the multi-line form: the failing source line
// prefixed with its line number (when known), followed by a caret line
// pointing at the column, followed by the message.
func (e *Located) FormatWithContext() string {
	if e.Source == "" {
		return e.Error()
	}

	var sb strings.Builder
	var prefix string
	if e.LineNumber > 0 {
		prefix = fmt.Sprintf("%4d | ", e.LineNumber)
	} else {
		prefix = "    | "
	}
	sb.WriteString(prefix)
	sb.WriteString(e.Source)
	sb.WriteString("\n")

	col := e.Column
	if col < 1 {
		col = 1
	}
	sb.WriteString(strings.Repeat(" ", len(prefix)+col-1))
	sb.WriteString("^\n")
	sb.WriteString(e.Kind.String())
	sb.WriteString(": ")
	sb.WriteString(e.Message)

	return sb.String()
}
