package gosiemesh

import (
	"math"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

const float32EqualityThreshold = 1e-5

func almostEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) <= float32EqualityThreshold
}

func almostEqualSlice(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !almostEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// quietLogger discards output but keeps entries for assertions.
func quietLogger() (*logrus.Logger, *test.Hook) {
	return test.NewNullLogger()
}

func parseString(t *testing.T, src string, opts ...Option) (*Registry, string, []*Diagnostic, error) {
	t.Helper()
	log, _ := quietLogger()
	return ParseMeshes(strings.NewReader(src), 1, append([]Option{WithLogger(log)}, opts...)...)
}
