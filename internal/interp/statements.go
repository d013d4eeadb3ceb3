package interp

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// statementHandler parses and executes one statement, starting right
// after its keyword has already been consumed from the scanner.
type statementHandler func(*Interpreter) error

// statementTable is the dispatch table described by the statement
// parser's design: lookup by lowercased keyword. It only holds language
// statements that can appear in a stored program line or in direct
// mode — the REPL-only meta-commands (LIST, RUN, DELETE, SAVE, …) are
// handled by the REPL shell itself, never by this table.
var statementTable = map[string]statementHandler{
	"let":       (*Interpreter).execLet,
	"print":     (*Interpreter).execPrint,
	"input":     (*Interpreter).execInput,
	"if":        (*Interpreter).execIf,
	"goto":      (*Interpreter).execGoto,
	"gosub":     (*Interpreter).execGosub,
	"return":    (*Interpreter).execReturn,
	"end":       (*Interpreter).execEnd,
	"stop":      (*Interpreter).execStop,
	"rem":       (*Interpreter).execRem,
	"do":        (*Interpreter).execDo,
	"loop":      (*Interpreter).execLoop,
	"for":       (*Interpreter).execFor,
	"next":      (*Interpreter).execNext,
	"def":       (*Interpreter).execDef,
	"randomize": (*Interpreter).execRandomize,
}

func (i *Interpreter) execLet() error {
	if !i.scanner.MatchVarname() {
		return i.errSyntax("Variable expected")
	}
	name := lower(i.scanner.Token)
	if !i.scanner.Match("=") {
		return i.errSyntax("'=' expected")
	}
	value, err := i.evalDisjunction()
	if err != nil {
		return err
	}
	i.Vars[name] = value
	return nil
}

func (i *Interpreter) execPrint() error {
	if i.scanner.MatchEOL() {
		fmt.Fprintln(i.out)
		return nil
	}

	var sb strings.Builder
	suppress := false
	for {
		ok, unclosed := i.scanner.MatchString()
		if unclosed {
			return i.errIndex("Unclosed string")
		}
		if ok {
			sb.WriteString(i.scanner.Token)
		} else {
			v, err := i.evalDisjunction()
			if err != nil {
				return err
			}
			sb.WriteString(v.Display())
		}
		if i.scanner.Match(",") {
			continue
		}
		if i.scanner.Match(";") {
			if i.scanner.MatchEOL() {
				suppress = true
				break
			}
			continue
		}
		break
	}

	fmt.Fprint(i.out, sb.String())
	if !suppress {
		fmt.Fprintln(i.out)
	}
	return nil
}

func (i *Interpreter) execInput() error {
	var prompt string
	ok, unclosed := i.scanner.MatchString()
	if unclosed {
		return i.errIndex("Unclosed string")
	}
	if ok {
		prompt = i.scanner.Token
		if !i.scanner.Match(",") {
			return i.errSyntax("Comma expected")
		}
	}

	names, err := i.parseVarList()
	if err != nil {
		return err
	}

	if prompt != "" {
		fmt.Fprint(i.out, prompt)
	}
	line, _ := i.in.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	fields := strings.Split(line, ",")

	for idx, name := range names {
		if idx >= len(fields) {
			i.Vars[name] = 0
			continue
		}
		text := strings.TrimSpace(fields[idx])
		if text == "" {
			i.Vars[name] = 0
			continue
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return i.errValue("Invalid input for %s: %q", name, text)
		}
		i.Vars[name] = Number(f)
	}
	return nil
}

// parseVarList implements varlist := varname { ',' varname }, used by
// INPUT and, between the parentheses that execDef matches itself, by
// DEF FN's argument list.
func (i *Interpreter) parseVarList() ([]string, error) {
	if !i.scanner.MatchVarname() {
		return nil, i.errSyntax("Var expected")
	}
	names := []string{lower(i.scanner.Token)}
	for i.scanner.Match(",") {
		if !i.scanner.MatchVarname() {
			return nil, i.errSyntax("Var expected")
		}
		names = append(names, lower(i.scanner.Token))
	}
	return names, nil
}

func (i *Interpreter) execIf() error {
	cond, err := i.evalDisjunction()
	if err != nil {
		return err
	}
	if !i.scanner.MatchNocase("then") {
		return i.errSyntax("IF without THEN")
	}
	if !Truthy(cond) {
		i.scanner.SkipToEnd()
		return nil
	}
	i.scanner.SkipWhitespace()
	return i.execStatement()
}

func (i *Interpreter) resolveLineTarget() (int, error) {
	n, err := i.evalExpression()
	if err != nil {
		return 0, err
	}
	target := int(n)
	idx := sort.SearchInts(i.addr, target)
	if idx >= len(i.addr) || i.addr[idx] != target {
		return 0, i.errValue("Line not found: %d", target)
	}
	return idx, nil
}

func (i *Interpreter) execGoto() error {
	idx, err := i.resolveLineTarget()
	if err != nil {
		return err
	}
	i.pc = idx
	return nil
}

func (i *Interpreter) execGosub() error {
	returnTo := i.pc
	idx, err := i.resolveLineTarget()
	if err != nil {
		return err
	}
	i.Stack.Push(GoSubFrame{ReturnTo: returnTo})
	i.pc = idx
	return nil
}

func (i *Interpreter) execReturn() error {
	frame, ok := i.Stack.PopGoSub()
	if !ok {
		return i.errRuntime("Stack underflow")
	}
	i.pc = frame.ReturnTo
	return nil
}

func (i *Interpreter) execEnd() error {
	i.pc = len(i.addr)
	return nil
}

func (i *Interpreter) execStop() error {
	i.stopped = true
	return nil
}

func (i *Interpreter) execRem() error {
	i.scanner.SkipToEnd()
	return nil
}

func (i *Interpreter) execDo() error {
	i.Stack.Push(DoFrame{ReturnTo: i.pc})
	return nil
}

func (i *Interpreter) execLoop() error {
	var wantExitOnTrue bool
	switch {
	case i.scanner.MatchNocase("while"):
		wantExitOnTrue = false
	case i.scanner.MatchNocase("until"):
		wantExitOnTrue = true
	default:
		return i.errSyntax("Condition expected")
	}

	cond, err := i.evalDisjunction()
	if err != nil {
		return err
	}

	top, ok := i.Stack.Top()
	do, ok2 := top.(DoFrame)
	if !ok || !ok2 {
		return i.errRuntime("Stack underflow")
	}

	exit := Truthy(cond) == wantExitOnTrue
	if exit {
		i.Stack.Pop()
		return nil
	}
	i.pc = do.ReturnTo
	return nil
}

func (i *Interpreter) execFor() error {
	if !i.scanner.MatchVarname() {
		return i.errSyntax("Variable expected")
	}
	name := lower(i.scanner.Token)
	if !i.scanner.Match("=") {
		return i.errSyntax("'=' expected")
	}
	initial, err := i.evalExpression()
	if err != nil {
		return err
	}
	if !i.scanner.MatchNocase("to") {
		return i.errSyntax("'to' expected")
	}
	limit, err := i.evalExpression()
	if err != nil {
		return err
	}
	step := Number(1)
	if i.scanner.MatchNocase("step") {
		step, err = i.evalExpression()
		if err != nil {
			return err
		}
		if step == 0 {
			return i.errValue("Infinite loop")
		}
	}

	i.Vars[name] = initial
	i.Stack.Push(ForFrame{ReturnTo: i.pc, Limit: limit, Step: step})
	return nil
}

func (i *Interpreter) execNext() error {
	if !i.scanner.MatchVarname() {
		return i.errSyntax("Variable expected")
	}
	name := lower(i.scanner.Token)
	if _, ok := i.Vars[name]; !ok {
		return i.errName("Var not found: %s", name)
	}

	top, ok := i.Stack.Top()
	forFrame, ok2 := top.(ForFrame)
	if !ok || !ok2 {
		return i.errRuntime("Stack underflow")
	}

	i.Vars[name] += forFrame.Step
	var done bool
	if forFrame.Step > 0 {
		done = i.Vars[name] > forFrame.Limit
	} else {
		done = i.Vars[name] < forFrame.Limit
	}

	if done {
		i.Stack.Pop()
		return nil
	}
	i.pc = forFrame.ReturnTo
	return nil
}

func (i *Interpreter) execDef() error {
	if !i.scanner.MatchNocase("fn") {
		return i.errSyntax("Missing 'fn'")
	}
	if !i.scanner.MatchVarname() {
		return i.errSyntax("Name expected")
	}
	name := lower(i.scanner.Token)

	if !i.scanner.Match("(") {
		return i.errSyntax("Missing '('")
	}
	var argNames []string
	if !i.scanner.Match(")") {
		names, err := i.parseVarList()
		if err != nil {
			return err
		}
		argNames = names
		if !i.scanner.Match(")") {
			return i.errSyntax("Missing ')'")
		}
	}

	if !i.scanner.Match("=") {
		return i.errSyntax("Missing '='")
	}
	body := i.scanner.Rest()
	i.scanner.SkipToEnd()

	if err := i.Funcs.Define(name, argNames, body); err != nil {
		return i.errRuntime("%s", err.Error())
	}
	return nil
}

func (i *Interpreter) execRandomize() error {
	if i.scanner.MatchEOL() {
		i.Randomize(nil)
		return nil
	}
	n, err := i.evalExpression()
	if err != nil {
		return err
	}
	seed := int64(n)
	i.Randomize(&seed)
	return nil
}
