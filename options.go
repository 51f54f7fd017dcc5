package gosiemesh

import "github.com/sirupsen/logrus"

type options struct {
	log            logrus.FieldLogger
	trackMaterials bool
	sourceName     string
}

// Option configures parsing and loading.
type Option func(*options)

// WithLogger routes diagnostics and progress logging to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithMaterialTracking controls whether meshes carry FaceMaterials.
// Tracking is on by default.
func WithMaterialTracking(on bool) Option {
	return func(o *options) {
		o.trackMaterials = on
	}
}

// withSourceName labels diagnostics; Load sets it from the Source.
func withSourceName(name string) Option {
	return func(o *options) {
		o.sourceName = name
	}
}

func buildOptions(opts []Option) *options {
	o := &options{
		log:            logrus.StandardLogger(),
		trackMaterials: true,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
