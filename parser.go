package gosiemesh

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// ParseMeshes reads OBJ geometry from r and returns the finished meshes in
// first-seen order, the last mtllib name, and the line-level diagnostics.
// Positions are multiplied by scale. An error is returned only when r
// cannot be read or holds no geometry at all.
func ParseMeshes(r io.Reader, scale float32, opts ...Option) (*Registry, string, []*Diagnostic, error) {
	o := buildOptions(opts)
	rep := &reporter{source: o.sourceName, log: o.log}
	acc := newAccumulator(scale, o, rep)

	if err := scanLines(r, acc.handleLine); err != nil {
		return nil, "", rep.diags, fmt.Errorf("parsing meshes: %w", err)
	}
	acc.flush()

	if acc.directives == 0 {
		return nil, "", rep.diags, fmt.Errorf("parsing meshes from %q: %w", o.sourceName, ErrEmptyInput)
	}

	o.log.WithFields(logrus.Fields{
		"source":      o.sourceName,
		"meshes":      acc.registry.Len(),
		"diagnostics": len(rep.diags),
	}).Debug("Parsed meshes")
	return acc.registry, acc.matlib, rep.diags, nil
}
