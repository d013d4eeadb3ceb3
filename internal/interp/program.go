package interp

import "sort"

// Program is the mapping from line number to the textual body of that
// line. Keys are strictly positive integers; a bare line number with no
// body stores an empty string rather than deleting the entry.
type Program struct {
	lines map[int]string
}

// NewProgram returns an empty program store.
func NewProgram() *Program {
	return &Program{lines: make(map[int]string)}
}

// Set stores body under lineNumber, replacing any prior body.
func (p *Program) Set(lineNumber int, body string) {
	p.lines[lineNumber] = body
}

// Get returns the body stored at lineNumber, and false if nothing is
// stored there.
func (p *Program) Get(lineNumber int) (string, bool) {
	b, ok := p.lines[lineNumber]
	return b, ok
}

// Delete removes the single entry at lineNumber.
func (p *Program) Delete(lineNumber int) {
	delete(p.lines, lineNumber)
}

// DeleteRange removes every entry with from <= key <= to.
func (p *Program) DeleteRange(from, to int) {
	for k := range p.lines {
		if k >= from && k <= to {
			delete(p.lines, k)
		}
	}
}

// Clear empties the program store (NEW).
func (p *Program) Clear() {
	p.lines = make(map[int]string)
}

// SortedAddresses returns every stored line number in ascending order.
// RUN rebuilds the program counter's address vector from this at the
// start of every run.
func (p *Program) SortedAddresses() []int {
	addrs := make([]int, 0, len(p.lines))
	for k := range p.lines {
		addrs = append(addrs, k)
	}
	sort.Ints(addrs)
	return addrs
}

// Listing is one LIST line: a stored line number and its body.
type Listing struct {
	LineNumber int
	Body       string
}

// List returns every stored line in ascending numeric order, the order
// LIST enumerates them in.
func (p *Program) List() []Listing {
	addrs := p.SortedAddresses()
	out := make([]Listing, len(addrs))
	for i, a := range addrs {
		out[i] = Listing{LineNumber: a, Body: p.lines[a]}
	}
	return out
}
