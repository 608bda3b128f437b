package lazyvec

type options[T any] struct {
	logger  *Logger
	metrics MetricsCollector
	cloneFn func(T) T
}

func defaultOptions[T any]() options[T] {
	return options[T]{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
}

// Option configures LazyVec constructor behavior.
//
// Options primarily exist to avoid exploding the constructor surface
// (logger-specific and metrics-specific variants).
type Option[T any] func(*options[T])

// WithLogger configures the logger used for grow/reinit duration logging.
// If nil is passed, logging is disabled.
func WithLogger[T any](l *Logger) Option[T] {
	return func(o *options[T]) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &lazyvec.BasicMetricsCollector{}
//	v := lazyvec.New[string, lazyvec.Offset]("jobs", def(),
//	    lazyvec.WithMetricsCollector[string](metrics))
func WithMetricsCollector[T any](m MetricsCollector) Option[T] {
	return func(o *options[T]) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}

// WithCloneFunc configures how the default value is copied into a cell on
// promotion (and how owned cells are copied by Clone). Without it, promotion
// is a plain value copy, which aliases reference-typed fields (slices, maps)
// with the shared default. Set a clone function whenever T carries such
// fields and cells must not share backing storage with the default.
func WithCloneFunc[T any](fn func(T) T) Option[T] {
	return func(o *options[T]) {
		o.cloneFn = fn
	}
}
