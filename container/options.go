package container

import (
	"log/slog"
)

// Option configures a Store at construction time.
type Option func(*Store)

// WithLogger sets the logger the store (and its cursors) write debug output to.
// When not provided, the store uses logger.Get().
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		s.log = log
	}
}

// WithElements seeds the store with the given values. They are sorted once
// the store has been built, exactly as if AddAll had been called.
func WithElements(values ...int) Option {
	return func(s *Store) {
		s.elements = append(s.elements, values...)
	}
}
