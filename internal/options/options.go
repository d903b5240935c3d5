// Package options implements a small generic functional-options pattern
// used to build validated configuration structs (query.Config) from a
// slice of With* option values.
package options

// Option wraps a configuration step that may fail.
type Option[T any] struct {
	apply func(T) error
}

// New wraps a configuration function that can return an error.
func New[T any](fn func(T) error) Option[T] {
	return Option[T]{apply: fn}
}

// NoError wraps a configuration function that cannot fail.
func NoError[T any](fn func(T)) Option[T] {
	return Option[T]{apply: func(t T) error {
		fn(t)
		return nil
	}}
}

// Apply runs every option against target in order, stopping at the first
// error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
