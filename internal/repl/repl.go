// Package repl implements the interactive command loop: direct-mode
// statements and stored-program lines are handed to the interpreter
// unchanged, while a fixed set of session commands (BYE, LIST, RUN,
// CONTINUE, NEW, CLEAR, DELETE, SAVE, LOAD, VARS) are intercepted here
// since they sit outside the language grammar itself.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/maruel/natural"

	"github.com/cwbudde/tinycat-basic/internal/config"
	"github.com/cwbudde/tinycat-basic/internal/interp"
)

// REPL owns the single buffered reader shared between its own
// command-line reads and the interpreter's INPUT statement, so the two
// never race over the same underlying stream.
type REPL struct {
	interp *interp.Interpreter
	cfg    config.Config
	out    io.Writer
	reader *bufio.Reader
}

// New builds a REPL with a fresh Interpreter that writes to out and
// reads both session commands and INPUT data from in. When cfg.Trace is
// set, executed line numbers are written to stderr.
func New(out io.Writer, in io.Reader, cfg config.Config) *REPL {
	reader := bufio.NewReader(in)
	i := interp.New(out, reader)
	if cfg.Trace {
		i.Trace = true
		i.Tracer = os.Stderr
	}
	return &REPL{
		interp: i,
		cfg:    cfg,
		out:    out,
		reader: reader,
	}
}

// Resume builds a REPL around an Interpreter that already has program
// and variable state (typically one that just hit STOP while running a
// file passed on the command line), sharing its existing buffered
// reader so INPUT continues reading from the same stream the session
// commands do.
func Resume(out io.Writer, reader *bufio.Reader, cfg config.Config, i *interp.Interpreter) *REPL {
	return &REPL{interp: i, cfg: cfg, out: out, reader: reader}
}

// Run drives the loop until BYE is entered or the input stream ends.
func (r *REPL) Run() error {
	if r.cfg.Banner != "" {
		fmt.Fprintln(r.out, r.cfg.Banner)
	}
	for {
		fmt.Fprint(r.out, r.cfg.Prompt)
		line, err := r.reader.ReadString('\n')
		if line = strings.TrimRight(line, "\r\n"); line != "" {
			quit, derr := r.dispatch(line)
			if derr != nil {
				if located, ok := derr.(interface{ FormatWithContext() string }); ok {
					fmt.Fprintln(r.out, located.FormatWithContext())
				} else {
					fmt.Fprintln(r.out, derr.Error())
				}
			}
			if quit {
				return nil
			}
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}

// dispatch recognizes a session command at the start of line and runs
// it, falling back to Interpreter.ParseLine for anything else (a
// program line or a direct-mode statement).
func (r *REPL) dispatch(line string) (quit bool, err error) {
	sc := interp.NewScanner(line)

	switch {
	case sc.MatchNocase("bye") && sc.MatchEOL():
		return true, nil
	case sc.MatchNocase("list") && sc.MatchEOL():
		r.printListing()
		return false, nil
	case sc.MatchNocase("run") && sc.MatchEOL():
		return false, r.interp.Run()
	case sc.MatchNocase("continue") && sc.MatchEOL():
		return false, r.interp.Continue()
	case sc.MatchNocase("new") && sc.MatchEOL():
		r.interp.New()
		return false, nil
	case sc.MatchNocase("clear") && sc.MatchEOL():
		r.interp.Clear()
		return false, nil
	case sc.MatchNocase("vars") && sc.MatchEOL():
		r.printVars()
		return false, nil
	case sc.MatchNocase("delete"):
		return false, r.execDelete(sc)
	case sc.MatchNocase("save"):
		return false, r.execSave(sc)
	case sc.MatchNocase("load"):
		return false, r.execLoad(sc)
	}

	return false, r.interp.ParseLine(line)
}

func (r *REPL) printListing() {
	for _, l := range r.interp.List() {
		fmt.Fprintf(r.out, "%d\t%s\n", l.LineNumber, l.Body)
	}
}

func (r *REPL) printVars() {
	names := make([]string, 0, len(r.interp.Vars))
	for name := range r.interp.Vars {
		names = append(names, name)
	}
	natural.Sort(names)
	for _, name := range names {
		fmt.Fprintf(r.out, "%s\t%s\n", name, r.interp.Vars[name].Display())
	}
}

func (r *REPL) execDelete(sc *interp.Scanner) error {
	sc.SkipWhitespace()
	rest := strings.TrimSpace(sc.Rest())
	if rest == "" {
		return fmt.Errorf("DELETE: line number expected")
	}
	parts := strings.SplitN(rest, ",", 2)
	from, err := r.interp.EvalExpression(strings.TrimSpace(parts[0]))
	if err != nil {
		return err
	}
	to := from
	if len(parts) == 2 {
		to, err = r.interp.EvalExpression(strings.TrimSpace(parts[1]))
		if err != nil {
			return err
		}
	}
	r.interp.DeleteLines(int(from), int(to))
	return nil
}

func (r *REPL) execSave(sc *interp.Scanner) error {
	name, err := r.filenameArg(sc)
	if err != nil {
		return err
	}
	return interp.SaveProgram(r.interp.Program, name)
}

func (r *REPL) execLoad(sc *interp.Scanner) error {
	name, err := r.filenameArg(sc)
	if err != nil {
		return err
	}
	r.interp.New()
	return interp.LoadProgram(r.interp, name)
}

func (r *REPL) filenameArg(sc *interp.Scanner) (string, error) {
	if ok, unclosed := sc.MatchString(); unclosed {
		return "", fmt.Errorf("unclosed filename string")
	} else if ok {
		return sc.Token, nil
	}
	name := strings.TrimSpace(sc.Rest())
	if name == "" {
		return "", fmt.Errorf("filename expected")
	}
	return name, nil
}
