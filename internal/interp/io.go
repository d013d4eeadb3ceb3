package interp

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// SaveProgram writes p to path. A ".json" extension selects the JSON
// interchange format; anything else gets the canonical tab-separated
// text format, which is byte-for-byte what LIST prints.
func SaveProgram(p *Program, path string) error {
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		return saveProgramJSON(p, path)
	}
	return saveProgramText(p, path)
}

func saveProgramText(p *Program, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, l := range p.List() {
		if _, err := fmt.Fprintf(w, "%d\t%s\n", l.LineNumber, l.Body); err != nil {
			return err
		}
	}
	return w.Flush()
}

// saveProgramJSON builds a JSON array of {"line":N,"body":"..."}
// objects with sjson rather than marshaling a Go struct, so the file's
// field order matches List()'s line-number order exactly.
func saveProgramJSON(p *Program, path string) error {
	doc := "[]"
	for idx, l := range p.List() {
		var err error
		doc, err = sjson.Set(doc, fmt.Sprintf("%d.line", idx), l.LineNumber)
		if err != nil {
			return err
		}
		doc, err = sjson.Set(doc, fmt.Sprintf("%d.body", idx), l.Body)
		if err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(doc), 0o644)
}

// LoadProgram reads a saved program from path into i's program store.
// Each text line is trimmed and handed to Interpreter.ParseLine, the
// same path interactive entry takes. It does not clear the store first;
// the REPL's LOAD command calls Interpreter.New before loading, so that
// command replaces the resident program rather than merging into it.
func LoadProgram(i *Interpreter, path string) error {
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		return loadProgramJSON(i, path)
	}
	return loadProgramText(i, path)
}

func loadProgramText(i *Interpreter, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	for scanner.Scan() {
		line := scanner.Text()
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := i.ParseLine(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func loadProgramJSON(i *Interpreter, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("malformed program file: %s", path)
	}
	gjson.ParseBytes(data).ForEach(func(_, entry gjson.Result) bool {
		lineNumber := int(entry.Get("line").Int())
		body := entry.Get("body").String()
		i.Program.Set(lineNumber, body)
		return true
	})
	return nil
}
