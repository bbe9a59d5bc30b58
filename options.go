package rampcache

import "log/slog"

// RetainedCount is the default maximum number of distinct gradients a
// Cache keeps in steady state.
const RetainedCount = 64

// Option configures a Cache during creation.
//
// Example:
//
//	// Default cache: 64 retained ramps, sRGB interpolation.
//	c := rampcache.New()
//
//	// Linear-light blending with a smaller budget.
//	c := rampcache.New(
//	    rampcache.WithRetainedCount(16),
//	    rampcache.WithInterpolation(rampcache.InterpolateLinearSRGB),
//	)
type Option func(*options)

// options holds optional configuration for Cache creation.
type options struct {
	retained int
	interp   Interpolation
	logger   *slog.Logger
}

// defaultOptions returns the default cache options.
func defaultOptions() options {
	return options{
		retained: RetainedCount,
		interp:   InterpolateSRGB,
		logger:   nil, // falls back to the package logger
	}
}

// WithRetainedCount sets how many ramps the cache keeps in steady state.
// Values below 1 keep the default of RetainedCount.
func WithRetainedCount(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.retained = n
		}
	}
}

// WithInterpolation sets the color space in which stops are blended.
func WithInterpolation(i Interpolation) Option {
	return func(o *options) {
		o.interp = i
	}
}

// WithLogger sets a logger for this cache only, overriding the package
// logger configured with SetLogger. A nil logger restores the package
// logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
