package midi

import "go.uber.org/zap"

type options struct {
	backend    string
	logger     *zap.Logger
	maxPending int
}

// Option configures a Decoder.
type Option func(*options)

// WithBackend selects the message backend by name. See Backends.
func WithBackend(name string) Option {
	return func(o *options) {
		o.backend = name
	}
}

// WithLogger sets the logger for decoder debug output.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxPending bounds the nibbles a decoder keeps between calls. When a
// call leaves more than n pending, they are dropped as rejected and the
// report is marked Desync. Zero means no bound.
func WithMaxPending(n int) Option {
	return func(o *options) {
		o.maxPending = n
	}
}

func defaultOptions() options {
	return options{
		backend: BackendNative,
		logger:  zap.NewNop(),
	}
}
