package interp

// EvalExpression evaluates text as a standalone arithmetic expression
// (the 'expression' grammar rule, not the full boolean disjunction),
// swapping the scanner out for the duration exactly as a nested
// function call does. It exists for callers outside this package — the
// REPL shell's DELETE command — that need to evaluate a line-number
// argument without reaching into interpreter internals.
func (i *Interpreter) EvalExpression(text string) (Number, error) {
	saved := i.scanner
	defer func() { i.scanner = saved }()
	i.scanner = NewScanner(text)
	return i.evalExpression()
}

// DeleteLines removes every program line between from and to inclusive
// (in either order), or the single line from==to. It backs the REPL's
// DELETE command.
func (i *Interpreter) DeleteLines(from, to int) {
	if from == to {
		i.Program.Delete(from)
		return
	}
	lo, hi := from, to
	if lo > hi {
		lo, hi = hi, lo
	}
	i.Program.DeleteRange(lo, hi)
}
