package rdf

import "context"

const (
	// DefaultMaxDepth bounds element nesting for RDF/XML input.
	DefaultMaxDepth = 256
	// DefaultMaxTriples is zero: no triple limit unless configured.
	DefaultMaxTriples = 0
)

// Option configures reader behavior.
type Option func(*Options)

// Options configures parser behavior.
type Options struct {
	// Context for cancellation.
	Context context.Context

	// BaseIRI resolves relative IRIs when the input has no xml:base.
	BaseIRI string

	// Security limits for untrusted input. Zero or negative disables a limit.
	MaxDepth   int
	MaxTriples int64
}

// OptContext sets the context for cancellation and timeouts.
func OptContext(ctx context.Context) Option {
	return func(opts *Options) {
		opts.Context = ctx
	}
}

// OptBaseIRI sets the base IRI used to resolve relative references.
func OptBaseIRI(base string) Option {
	return func(opts *Options) {
		opts.BaseIRI = base
	}
}

// OptMaxDepth sets the maximum nesting depth limit.
func OptMaxDepth(maxDepth int) Option {
	return func(opts *Options) {
		opts.MaxDepth = maxDepth
	}
}

// OptMaxTriples sets the maximum number of triples to process.
func OptMaxTriples(maxTriples int64) Option {
	return func(opts *Options) {
		opts.MaxTriples = maxTriples
	}
}

// OptSafeLimits applies limits suitable for untrusted input.
func OptSafeLimits() Option {
	return func(opts *Options) {
		opts.MaxDepth = 64
		opts.MaxTriples = 1_000_000
	}
}

func defaultOptions() Options {
	return Options{
		Context:    context.Background(),
		MaxDepth:   DefaultMaxDepth,
		MaxTriples: DefaultMaxTriples,
	}
}

func buildOptions(opts []Option) Options {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.Context == nil {
		options.Context = context.Background()
	}
	return options
}
