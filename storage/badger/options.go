package badger

import (
	"log/slog"

	"github.com/poiesic/wallkit/core"
)

// repoOptions holds settings shared by every repository.
type repoOptions struct {
	logger *slog.Logger
	clock  core.Clock
}

// Option configures a repository.
type Option func(*repoOptions)

// WithLogger sets the logger for the repository.
func WithLogger(logger *slog.Logger) Option {
	return func(o *repoOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithClock sets the clock used to stamp dates and timestamps.
func WithClock(clock core.Clock) Option {
	return func(o *repoOptions) {
		if clock != nil {
			o.clock = clock
		}
	}
}

func applyOptions(opts []Option) repoOptions {
	o := repoOptions{
		logger: slog.Default(),
		clock:  core.MonotonicClock(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
