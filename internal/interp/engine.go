// Package interp implements the scanner, recursive-descent parser, and
// control-flow engine for the line-numbered BASIC dialect this project
// embeds: a single pass of scan-and-evaluate cooperating with a
// cross-line control-flow stack for GOTO/GOSUB/RETURN, DO/LOOP, FOR/NEXT,
// and user-defined single-expression functions.
package interp

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	langerr "github.com/cwbudde/tinycat-basic/internal/errors"
)

// Interpreter holds every piece of process-wide interpreter state: the
// program store, the global variable map, the function table, the
// runtime control-flow stack, the scanner triple, and the program
// counter. NEW and CLEAR reset subsets of it; nothing here outlives the
// Interpreter value itself, so embedding multiple independent
// interpreters in one process is safe.
type Interpreter struct {
	Program *Program
	Vars    map[string]Number
	Funcs   *FunctionTable
	Stack   Stack

	scanner *Scanner
	addr    []int
	pc      int
	running bool
	stopped bool

	out   io.Writer
	in    *bufio.Reader
	rng   *rand.Rand
	start time.Time

	// Trace, when set, makes Run/Continue write the line number of each
	// executed statement to Tracer before running it.
	Trace  bool
	Tracer io.Writer
}

// New returns an Interpreter that writes PRINT output to out and reads
// INPUT lines from in. in is taken as an already-buffered reader, not a
// bare io.Reader, so a caller that also reads command lines from the
// same stream (the REPL shell) can share one bufio.Reader instead of
// racing two independent buffers against each other.
func New(out io.Writer, in *bufio.Reader) *Interpreter {
	return &Interpreter{
		Program: NewProgram(),
		Vars:    make(map[string]Number),
		Funcs:   NewFunctionTable(),
		scanner: NewScanner(""),
		out:     out,
		in:      in,
		rng:     rand.New(rand.NewSource(1)),
		start:   time.Now(),
		Tracer:  io.Discard,
	}
}

func (i *Interpreter) elapsedSeconds() float64 {
	return time.Since(i.start).Seconds()
}

// Randomize reseeds the random source. A nil seed seeds from the
// current time, matching RANDOMIZE with no argument.
func (i *Interpreter) Randomize(seed *int64) {
	if seed == nil {
		i.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		return
	}
	i.rng = rand.New(rand.NewSource(*seed))
}

// New empties the program store (the NEW command).
func (i *Interpreter) New() {
	i.Program.Clear()
}

// Clear empties the variable map (the CLEAR command).
func (i *Interpreter) Clear() {
	i.Vars = make(map[string]Number)
}

// List returns the stored program in ascending line-number order.
func (i *Interpreter) List() []Listing {
	return i.Program.List()
}

// ParseLine is the single entry point for one physical line of text
// fed into the interpreter from outside a running program: interactive
// input and LOAD both funnel through it. A leading integer stores the
// remainder as a program line; otherwise the line is parsed and
// executed immediately (direct mode).
func (i *Interpreter) ParseLine(line string) error {
	i.scanner.SetLine(line)

	if lineNumber, ok := i.scanner.MatchLineNumber(); ok {
		i.scanner.SkipWhitespace()
		i.Program.Set(lineNumber, i.scanner.Rest())
		return nil
	}

	return i.execStatement()
}

// execStatement parses and runs exactly one statement starting at the
// scanner's current cursor position.
func (i *Interpreter) execStatement() error {
	if !i.scanner.MatchKeyword() {
		return i.errSyntax("Statement expected")
	}
	kw := lower(i.scanner.Token)
	handler, ok := statementTable[kw]
	if !ok {
		return i.errSyntax("Unknown statement: %s", kw)
	}
	return handler(i)
}

// Run rebuilds the sorted address vector, clears the runtime stack,
// drops user-defined functions (keeping built-ins), and enters the
// execution loop from the first stored line.
func (i *Interpreter) Run() error {
	i.addr = i.Program.SortedAddresses()
	i.pc = 0
	i.Stack.Clear()
	i.Funcs.ResetUser()
	i.running = true
	return i.Continue()
}

// Continue clears the stop flag and resumes execution from the current
// program counter, without touching variables, the stack, or the
// program store.
func (i *Interpreter) Continue() error {
	i.stopped = false
	for i.pc < len(i.addr) && !i.stopped {
		lineNumber := i.addr[i.pc]
		body, _ := i.Program.Get(lineNumber)
		i.pc++

		if i.Trace {
			writeTrace(i.Tracer, lineNumber)
		}

		i.scanner.SetLine(body)
		if err := i.execStatement(); err != nil {
			if located, ok := err.(*langerr.Located); ok {
				return located.WithLine(lineNumber, body)
			}
			return err
		}
	}
	return nil
}

// Stopped reports whether the last Run/Continue exited because of STOP
// rather than running off the end of the program.
func (i *Interpreter) Stopped() bool { return i.stopped }

func lower(s string) string { return strings.ToLower(s) }

func writeTrace(w io.Writer, lineNumber int) {
	fmt.Fprintf(w, "[%d]\n", lineNumber)
}
