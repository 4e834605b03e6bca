// SPDX-License-Identifier: MIT

package triplet

import "log/slog"

// Option customizes Parse, ParseLines and ParseFile.
type Option func(*options)

type options struct {
	logger *slog.Logger
	mmap   bool
}

// WithLogger logs every skipped line at Warn level. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMmap makes ParseFile read through a read-only memory map instead of a
// buffered file reader. Parse and ParseLines ignore it.
func WithMmap(on bool) Option {
	return func(o *options) { o.mmap = on }
}

func gatherOptions(opts ...Option) options {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
