package zzfa

import (
	"fmt"
	"io"
)

// Option functions optionally alter how Determinize operates.
type Option = func(*config)

type config struct {
	traceLogger io.Writer
}

// WithTraceLogs logs debugging information about the construction to the
// provided writer. Disabled by default.
func WithTraceLogs(out io.Writer) Option {
	return func(cfg *config) {
		cfg.traceLogger = out
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{}
	for _, o := range opts {
		if o == nil {
			continue
		}
		o(cfg)
	}
	return cfg
}

func (cfg *config) logf(f string, v ...any) {
	if cfg.traceLogger == nil {
		return
	}
	fmt.Fprintf(cfg.traceLogger, f, v...)
}
