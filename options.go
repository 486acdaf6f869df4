package compvec

type options struct {
	logger *Logger
}

func defaultOptions() options {
	return options{
		logger: NoopLogger(),
	}
}

// Option configures construction behavior on NewBuilder.
//
// Options exist to avoid exploding the builder surface; today the only
// concern they carry is logging.
type Option func(*options)

// WithLogger configures the logger used to trace layout construction at
// debug level.
//
// If nil is passed, the noop logger is used.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
