package gosiemesh

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxLineLength bounds a single directive line. Faces with thousands of
// corners still fit.
const maxLineLength = 16 << 20

// Tokenize splits one line into its whitespace separated tokens.
// A blank line yields no tokens.
func Tokenize(line string) []string {
	return strings.Fields(line)
}

// scanLines calls fn for every non-blank, non-comment line of r with its
// 1-based line number and its tokens.
func scanLines(r io.Reader, fn func(lineNo int, fields []string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := Tokenize(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		fn(lineNo, fields)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading line %d: %w", lineNo+1, err)
	}
	return nil
}

// parseFloats parses every token of fields as a float32.
func parseFloats(fields []string) ([]float32, error) {
	vals := make([]float32, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return nil, fmt.Errorf("could not parse float value '%s'", f)
		}
		vals[i] = float32(v)
	}
	return vals, nil
}

// joinName rebuilds a name that may contain spaces from its tokens.
func joinName(fields []string) string {
	return strings.Join(fields, " ")
}
