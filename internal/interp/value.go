package interp

import "strconv"

// Value is a printable value: either a number or a string. Strings arise
// only from string literals in source and flow only through PRINT and
// as the prompt argument of INPUT — there are no string variables.
type Value interface {
	isValue()
	// Display renders the value the way PRINT renders it.
	Display() string
}

// Number is the language's only variable type: a double-precision float.
// Booleans are numbers under the -1/0 encoding described in the data
// model; there is no distinct boolean value.
type Number float64

func (Number) isValue() {}

// Display formats n the way PRINT formats a numeric item: the general
// floating format at the default precision of 6 significant digits, with
// no trailing ".0" for integral values. This matches "{:g}".format(...)
// in the reference implementation, not Go's shortest-round-trip 'g'
// (precision -1), so large and fractional values switch to exponential
// form and truncate at the same point the reference does.
func (n Number) Display() string {
	return strconv.FormatFloat(float64(n), 'g', 6, 64)
}

// String is a string literal value, printable only — it can never be
// assigned to a variable.
type String string

func (String) isValue() {}

// Display returns the string unchanged; PRINT concatenates items with
// no added quoting or separator.
func (s String) Display() string { return string(s) }

// Truthy applies the language's boolean coercion: any non-zero number
// is true.
func Truthy(n Number) bool { return n != 0 }

// BoolNumber encodes a Go boolean using the language's -1/0 convention.
func BoolNumber(b bool) Number {
	if b {
		return -1
	}
	return 0
}
