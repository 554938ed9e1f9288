package sequence

import (
	"log/slog"
	"math/rand/v2"
)

// Option configures a Store.
type Option func(*Store)

// WithRand sets the random source used by Generate.
func WithRand(r *rand.Rand) Option {
	return func(s *Store) {
		if r != nil {
			s.rng = r
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}
