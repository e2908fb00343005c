package unitgo

import (
	"github.com/hupe1980/unitgo/codec"
)

type options struct {
	codec  codec.Codec
	logger *Logger
}

// Option configures snapshot Encode/Decode behavior.
type Option func(*options)

func defaultOptions() options {
	return options{
		codec:  codec.Default,
		logger: NoopLogger(),
	}
}

// WithCodec configures the codec used to encode the snapshot body.
//
// If nil is passed, codec.Default is used. Decode ignores this option
// and always selects the codec recorded in the snapshot header.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithLogger configures the logger used by Encode/Decode.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}
