// Package rampcache caches precomputed gradient ramps for GPU rendering.
//
// # Overview
//
// A gradient is an ordered list of color stops. Rendering it on the GPU is
// cheapest when the gradient has been sampled once into a strip of colors
// that a shader can index. rampcache does that sampling, keeps every ramp
// in one shared buffer, and hands back a slot id: the row of that buffer
// holding the gradient. A gradient seen again returns the same id without
// resampling.
//
// # Quick Start
//
//	cache := rampcache.New()
//
//	for frame := range frames {
//	    for _, g := range frame.Gradients {
//	        g.Slot = cache.Add(g.Stops) // row in the ramp texture
//	    }
//	    tex, err := uploader.Upload(cache) // or cache.Ramps() for raw data
//	    ...
//	    cache.Maintain()
//	}
//
// # Memory Bound
//
// The cache keeps RetainedCount ramps of SamplesPerRamp samples. Once full,
// a new gradient takes over the slot of the least recently used one, but
// only if that gradient went unused for at least two Maintain calls. If
// every ramp is still in use the buffer grows past the bound instead, and
// later Maintain calls cut it back once the extra ramps go stale.
//
// # Colors
//
// Stops carry straight-alpha colors. Every stored sample is premultiplied.
// Stops are compared by exact value: gradients that differ only by float
// rounding are different cache entries.
//
// # Thread Safety
//
// Cache and Uploader are not safe for concurrent use. A rendering pipeline
// owns one Cache and drives it from a single goroutine.
package rampcache
