package anyjson

import (
	"github.com/thoas/anyjson/logging"
)

// Options is the anyjson options.
type Options struct {
	Priority  []string
	Logger    logging.Logger
	Prefix    string
	Indent    string
	UseNumber bool
}

func newOptions() *Options {
	return &Options{
		Priority: DefaultPriority(),
		Logger:   logging.NewNopLogger(),
	}
}

// merge returns a copy of the options with the given option units
// applied, leaving the receiver untouched.
func (o *Options) merge(options []Option) *Options {
	if len(options) == 0 {
		return o
	}

	opts := *o
	for i := range options {
		options[i](&opts)
	}

	return &opts
}

// Option is an option unit.
type Option func(opts *Options)

// WithPriority defines the backend preference order.
func WithPriority(names ...string) Option {
	return func(opts *Options) {
		opts.Priority = names
	}
}

// WithLogger defines the Logger.
func WithLogger(logger logging.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// WithIndent defines the prefix and indentation applied when encoding.
func WithIndent(prefix, indent string) Option {
	return func(opts *Options) {
		opts.Prefix = prefix
		opts.Indent = indent
	}
}

// WithUseNumber decodes numbers as json.Number instead of float64.
func WithUseNumber() Option {
	return func(opts *Options) {
		opts.UseNumber = true
	}
}
