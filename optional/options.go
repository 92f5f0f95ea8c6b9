package optional

// Option configures unwrap functions.
type Option func(*params)

type params struct {
	err  error
	skip int
}

// Throwing makes unwrap functions return err instead of *AbsentError or *CastError.
// The error is returned as is, without wrapping.
func Throwing(err error) Option {
	return func(p *params) {
		p.err = err
	}
}

// WithCallerSkip attributes failures to a caller skip frames above the direct caller.
// Useful for helpers built on top of this package.
func WithCallerSkip(skip int) Option {
	return func(p *params) {
		p.skip += skip
	}
}

func newParams(opts []Option) params {
	var p params
	for _, opt := range opts {
		opt(&p)
	}
	return p
}
