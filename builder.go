// Package lazyvec provides a lazily initialized, copy-on-write vector.
//
// This file implements the fluent builder API for creating LazyVec instances
// in one expression. The builder is immutable - each method returns a new
// builder with the updated configuration.
package lazyvec

// Of creates a builder for a LazyVec sharing the given default value. The
// builder declares the default, element type, label and optional capacity in
// one expression; it is sugar over New/WithLen and carries no independent
// semantics.
//
// Example:
//
//	var def = lazyvec.SharedDefault(func() string { return "pending" })
//
//	v := lazyvec.Of(def()).
//	    Named("jobs").
//	    WithLen(1024).
//	    Build()
//
// Build produces a LazyVec indexed by Offset. Callers needing a domain index
// newtype use New or WithLen directly.
func Of[T any](def *T) Builder[T] {
	return Builder[T]{
		def:      def,
		capacity: DefaultCapacity,
	}
}

// Builder is an immutable fluent builder for creating LazyVec instances.
// Each method returns a new builder with the updated configuration.
type Builder[T any] struct {
	def      *T
	label    string
	capacity int
	opts     []Option[T]
}

// Named sets the diagnostic label.
func (b Builder[T]) Named(label string) Builder[T] {
	b.label = label
	return b
}

// WithLen sets the physical capacity.
func (b Builder[T]) WithLen(capacity int) Builder[T] {
	b.capacity = capacity
	return b
}

// Logger sets the logger used for grow/reinit duration logging.
func (b Builder[T]) Logger(l *Logger) Builder[T] {
	b.opts = append(b.opts[:len(b.opts):len(b.opts)], WithLogger[T](l))
	return b
}

// Metrics sets the metrics collector.
func (b Builder[T]) Metrics(m MetricsCollector) Builder[T] {
	b.opts = append(b.opts[:len(b.opts):len(b.opts)], WithMetricsCollector[T](m))
	return b
}

// CloneFunc sets the promotion clone function.
func (b Builder[T]) CloneFunc(fn func(T) T) Builder[T] {
	b.opts = append(b.opts[:len(b.opts):len(b.opts)], WithCloneFunc[T](fn))
	return b
}

// Build creates the LazyVec.
func (b Builder[T]) Build() *LazyVec[T, Offset] {
	return WithLen[T, Offset](b.label, b.capacity, b.def, b.opts...)
}
