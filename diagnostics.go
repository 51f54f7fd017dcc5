package gosiemesh

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

var (
	// ErrMalformedReference marks a face corner that is not a positive
	// integer reference or that falls outside its sub-object's pools.
	ErrMalformedReference = errors.New("malformed face reference")
	// ErrMissingMaterial marks a material name with no record in the table.
	ErrMissingMaterial = errors.New("missing material")
	// ErrDegenerateGeometry marks vertices whose synthesized normal had zero length.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
	// ErrMalformedDirective marks a recognized directive with unusable fields.
	ErrMalformedDirective = errors.New("malformed directive")
	// ErrEmptyInput is returned when a mesh source holds no geometry at all.
	ErrEmptyInput = errors.New("empty input")
)

// Diagnostic is a line-level condition found while loading. None of them
// stop a load; they are collected and handed back with the result.
type Diagnostic struct {
	Kind   error
	Source string
	Line   int
	Object string
	Msg    string
}

func (d *Diagnostic) Error() string {
	msg := fmt.Sprintf("%v: %s", d.Kind, d.Msg)
	if d.Object != "" {
		msg = fmt.Sprintf("%v in object %q: %s", d.Kind, d.Object, d.Msg)
	}

	loc := d.Source
	if d.Line > 0 {
		loc = fmt.Sprintf("%s:%d", d.Source, d.Line)
	}
	if loc == "" {
		return msg
	}
	return loc + ": " + msg
}

func (d *Diagnostic) Unwrap() error {
	return d.Kind
}

func (d *Diagnostic) fields() logrus.Fields {
	f := logrus.Fields{"kind": d.Kind.Error()}
	if d.Source != "" {
		f["source"] = d.Source
	}
	if d.Line > 0 {
		f["line"] = d.Line
	}
	if d.Object != "" {
		f["object"] = d.Object
	}
	return f
}

// reporter collects diagnostics for one source and mirrors them to the log.
type reporter struct {
	source string
	log    logrus.FieldLogger
	diags  []*Diagnostic
}

func (r *reporter) report(kind error, line int, object, format string, args ...any) {
	d := &Diagnostic{
		Kind:   kind,
		Source: r.source,
		Line:   line,
		Object: object,
		Msg:    fmt.Sprintf(format, args...),
	}
	r.diags = append(r.diags, d)
	r.log.WithFields(d.fields()).Warn(d.Msg)
}
