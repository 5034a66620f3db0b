package gaussseidel

import (
	"github.com/notargets/gaussfit/types"
)

const (
	DefaultTolerance     = 1.e-6
	DefaultMaxIterations = 100
)

type Options struct {
	Tolerance     float64
	ErrorType     types.ErrorType
	MaxIterations int
	// InitialGuess defaults to the zero vector when nil
	InitialGuess []float64
}

func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		ErrorType:     types.Absolute,
		MaxIterations: DefaultMaxIterations,
	}
}

type Option func(o *Options)

func WithTolerance(tol float64) Option {
	return func(o *Options) { o.Tolerance = tol }
}

func WithErrorType(et types.ErrorType) Option {
	return func(o *Options) { o.ErrorType = et }
}

func WithMaxIterations(maxIter int) Option {
	return func(o *Options) { o.MaxIterations = maxIter }
}

// WithInitialGuess copies x0
func WithInitialGuess(x0 []float64) Option {
	return func(o *Options) {
		o.InitialGuess = append([]float64(nil), x0...)
	}
}

// WithOptions replaces every setting at once
func WithOptions(opts Options) Option {
	return func(o *Options) {
		*o = opts
		o.InitialGuess = append([]float64(nil), opts.InitialGuess...)
		if len(opts.InitialGuess) == 0 {
			o.InitialGuess = nil
		}
	}
}
