package interp

import (
	"math"
	"strconv"

	langerr "github.com/cwbudde/tinycat-basic/internal/errors"
)

// evalDisjunction implements the lowest-precedence rule of the
// expression grammar: disjunction := conjunction { OR conjunction }.
// OR is non-short-circuit: both sides are always evaluated.
func (i *Interpreter) evalDisjunction() (Number, error) {
	lside, err := i.evalConjunction()
	if err != nil {
		return 0, err
	}
	for i.scanner.MatchNocase("or") {
		rside, err := i.evalConjunction()
		if err != nil {
			return 0, err
		}
		lside = BoolNumber(Truthy(lside) || Truthy(rside))
	}
	return lside, nil
}

// evalConjunction implements conjunction := negation { AND negation },
// also non-short-circuit.
func (i *Interpreter) evalConjunction() (Number, error) {
	lside, err := i.evalNegation()
	if err != nil {
		return 0, err
	}
	for i.scanner.MatchNocase("and") {
		rside, err := i.evalNegation()
		if err != nil {
			return 0, err
		}
		lside = BoolNumber(Truthy(lside) && Truthy(rside))
	}
	return lside, nil
}

// evalNegation implements negation := NOT comparison | comparison.
func (i *Interpreter) evalNegation() (Number, error) {
	if i.scanner.MatchNocase("not") {
		v, err := i.evalComparison()
		if err != nil {
			return 0, err
		}
		return BoolNumber(!Truthy(v)), nil
	}
	return i.evalComparison()
}

// evalComparison implements comparison := expression [ relop expression
// ], yielding the operand unchanged when no relational operator follows.
func (i *Interpreter) evalComparison() (Number, error) {
	lside, err := i.evalExpression()
	if err != nil {
		return 0, err
	}
	if !i.scanner.MatchRelation() {
		return lside, nil
	}
	op := i.scanner.Token
	rside, err := i.evalExpression()
	if err != nil {
		return 0, err
	}
	switch op {
	case "=":
		return BoolNumber(lside == rside), nil
	case "<>":
		return BoolNumber(lside != rside), nil
	case "<=":
		return BoolNumber(lside <= rside), nil
	case ">=":
		return BoolNumber(lside >= rside), nil
	case "<":
		return BoolNumber(lside < rside), nil
	case ">":
		return BoolNumber(lside > rside), nil
	}
	return 0, i.errSyntax("Unknown relational operator: %s", op)
}

// evalExpression implements expression := term { ('+'|'-') term }.
func (i *Interpreter) evalExpression() (Number, error) {
	t1, err := i.evalTerm()
	if err != nil {
		return 0, err
	}
	for {
		if i.scanner.Match("+") {
			t2, err := i.evalTerm()
			if err != nil {
				return 0, err
			}
			t1 += t2
		} else if i.scanner.Match("-") {
			t2, err := i.evalTerm()
			if err != nil {
				return 0, err
			}
			t1 -= t2
		} else {
			return t1, nil
		}
	}
}

// evalTerm implements term := power { ('*'|'/'|'\\') power }. '/' is
// true division; '\' is floor division toward negative infinity.
func (i *Interpreter) evalTerm() (Number, error) {
	t1, err := i.evalPower()
	if err != nil {
		return 0, err
	}
	for {
		switch {
		case i.scanner.Match("*"):
			t2, err := i.evalPower()
			if err != nil {
				return 0, err
			}
			t1 *= t2
		case i.scanner.Match("/"):
			t2, err := i.evalPower()
			if err != nil {
				return 0, err
			}
			t1 /= t2
		case i.scanner.Match(`\`):
			t2, err := i.evalPower()
			if err != nil {
				return 0, err
			}
			t1 = Number(math.Floor(float64(t1) / float64(t2)))
		default:
			return t1, nil
		}
	}
}

// evalPower implements power := factor [ '^' power ], right-associative.
func (i *Interpreter) evalPower() (Number, error) {
	base, err := i.evalFactor()
	if err != nil {
		return 0, err
	}
	if i.scanner.Match("^") {
		exp, err := i.evalPower()
		if err != nil {
			return 0, err
		}
		return Number(math.Pow(float64(base), float64(exp))), nil
	}
	return base, nil
}

// evalFactor implements:
//
//	factor := ['-'] ( number | varname ['(' args ')'] | '(' disjunction ')' )
//
// Unary minus is applied here, outside of power, so it binds only to
// the immediately following factor: -2^2 is (-2)^2, not -(2^2).
func (i *Interpreter) evalFactor() (Number, error) {
	signum := Number(1)
	if i.scanner.Match("-") {
		signum = -1
	}

	if i.scanner.MatchNumber() {
		f, err := strconv.ParseFloat(i.scanner.Token, 64)
		if err != nil {
			return 0, i.errSyntax("Invalid number: %s", i.scanner.Token)
		}
		return Number(f) * signum, nil
	}

	if i.scanner.MatchVarname() {
		name := lower(i.scanner.Token)
		if entry, ok := i.Funcs.Lookup(name); ok {
			args, err := i.evalArgs()
			if err != nil {
				return 0, err
			}
			if len(args) != entry.Arity {
				return 0, i.errRuntime("Bad argument count for %s: expected %d, got %d", name, entry.Arity, len(args))
			}
			var result Number
			if entry.IsUser() {
				result, err = i.callUserFunction(entry, args)
				if err != nil {
					return 0, err
				}
			} else {
				result = entry.Fn(i, args)
			}
			return result * signum, nil
		}
		if v, ok := i.Vars[name]; ok {
			return v * signum, nil
		}
		return 0, i.errName("Var not found: %s", name)
	}

	if i.scanner.Match("(") {
		value, err := i.evalDisjunction()
		if err != nil {
			return 0, err
		}
		if !i.scanner.Match(")") {
			return 0, i.errSyntax("Missing ')'")
		}
		return value * signum, nil
	}

	return 0, i.errSyntax("Expression expected")
}

// evalArgs implements args := [ disjunction { ',' disjunction } ],
// wrapped in parentheses. An absent '(' yields zero arguments; the
// caller is responsible for checking that against the callee's arity.
func (i *Interpreter) evalArgs() ([]Number, error) {
	if !i.scanner.Match("(") {
		return nil, nil
	}
	if i.scanner.Match(")") {
		return []Number{}, nil
	}
	var args []Number
	v, err := i.evalDisjunction()
	if err != nil {
		return nil, err
	}
	args = append(args, v)
	for i.scanner.Match(",") {
		v, err := i.evalDisjunction()
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	if !i.scanner.Match(")") {
		return nil, i.errSyntax("Missing ')'")
	}
	return args, nil
}

// newLocated builds a Located error already carrying the current
// line's text, so FormatWithContext has a caret line to render even
// for a direct-mode statement that never passes through
// Interpreter.Continue's WithLine annotation.
func (i *Interpreter) newLocated(kind langerr.Kind, format string, args ...any) *langerr.Located {
	return langerr.New(kind, i.scanner.Cursor()+1, format, args...).WithLine(0, i.scanner.Text())
}

func (i *Interpreter) errSyntax(format string, args ...any) *langerr.Located {
	return i.newLocated(langerr.Syntax, format, args...)
}

func (i *Interpreter) errName(format string, args ...any) *langerr.Located {
	return i.newLocated(langerr.Name, format, args...)
}

func (i *Interpreter) errValue(format string, args ...any) *langerr.Located {
	return i.newLocated(langerr.Value, format, args...)
}

func (i *Interpreter) errRuntime(format string, args ...any) *langerr.Located {
	return i.newLocated(langerr.Runtime, format, args...)
}

func (i *Interpreter) errIndex(format string, args ...any) *langerr.Located {
	return i.newLocated(langerr.Index, format, args...)
}
