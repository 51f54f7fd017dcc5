package gosiemesh

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	testCases := []struct {
		name     string
		line     string
		expected []string
	}{
		{name: "Blank line", line: "", expected: []string{}},
		{name: "Whitespace only", line: " \t  ", expected: []string{}},
		{name: "Vertex", line: "v 1 2 3", expected: []string{"v", "1", "2", "3"}},
		{name: "Mixed separators", line: "\tf  1/2/3\t4//6 ", expected: []string{"f", "1/2/3", "4//6"}},
		{name: "Windows line ending", line: "vt 0.5 0.25\r", expected: []string{"vt", "0.5", "0.25"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Tokenize(tc.line))
		})
	}
}

func TestScanLinesSkipsBlankAndComments(t *testing.T) {
	src := "# header\n\nv 1 2 3\n   \n#v 9 9 9\nf 1 2 3\n"

	var lines []int
	var heads []string
	err := scanLines(strings.NewReader(src), func(lineNo int, fields []string) {
		lines = append(lines, lineNo)
		heads = append(heads, fields[0])
	})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 6}, lines)
	assert.Equal(t, []string{"v", "f"}, heads)
}

func TestScanLinesLongLine(t *testing.T) {
	// well past bufio's default 64KiB token size
	var b strings.Builder
	b.WriteString("f")
	for i := 1; i <= 20000; i++ {
		b.WriteString(" 1")
	}
	count := 0
	err := scanLines(strings.NewReader(b.String()), func(_ int, fields []string) {
		count = len(fields)
	})
	require.NoError(t, err)
	assert.Equal(t, 20001, count)
}

func TestParseFloats(t *testing.T) {
	vals, err := parseFloats([]string{"1", "-2.5", "3e2"})
	require.NoError(t, err)
	assert.Equal(t, []float32{1, -2.5, 300}, vals)

	_, err = parseFloats([]string{"1", "x"})
	assert.EqualError(t, err, "could not parse float value 'x'")
}
