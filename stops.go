package rampcache

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Validation errors returned by Stops.Validate.
var (
	// ErrNoStops is returned for a gradient without any color stop.
	ErrNoStops = errors.New("rampcache: gradient has no color stops")

	// ErrOffsetRange is returned when a stop offset is NaN or outside [0, 1].
	ErrOffsetRange = errors.New("rampcache: stop offset outside [0, 1]")

	// ErrUnsortedStops is returned when stop offsets are not ascending.
	ErrUnsortedStops = errors.New("rampcache: stop offsets are not ascending")
)

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Straight-alpha color at this position
}

// Stops is an ordered gradient definition and the key the cache resolves
// ramps by.
//
// Two Stops are the same key when they hold the same stops in the same
// order. Offsets and color components are compared by their exact bit
// pattern, so gradients that differ by any epsilon are distinct keys.
type Stops []ColorStop

// stopBytes is the encoded size of one stop: offset plus four components.
const stopBytes = 5 * 8

// Equal reports whether s and other are bit-for-bit the same gradient.
func (s Stops) Equal(other Stops) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if !s[i].identical(other[i]) {
			return false
		}
	}
	return true
}

func (cs ColorStop) identical(o ColorStop) bool {
	return math.Float64bits(cs.Offset) == math.Float64bits(o.Offset) &&
		math.Float64bits(cs.Color.R) == math.Float64bits(o.Color.R) &&
		math.Float64bits(cs.Color.G) == math.Float64bits(o.Color.G) &&
		math.Float64bits(cs.Color.B) == math.Float64bits(o.Color.B) &&
		math.Float64bits(cs.Color.A) == math.Float64bits(o.Color.A)
}

// Hash returns a deterministic 64-bit hash of the stop sequence.
// Equal stops always hash equal; the hash is stable across processes.
func (s Stops) Hash() uint64 {
	return s.hashWith(xxhash.New())
}

// hashWith resets d and feeds it the bit patterns of every stop, in order.
func (s Stops) hashWith(d *xxhash.Digest) uint64 {
	d.Reset()
	var buf [stopBytes]byte
	for _, cs := range s {
		binary.LittleEndian.PutUint64(buf[0:], math.Float64bits(cs.Offset))
		binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(cs.Color.R))
		binary.LittleEndian.PutUint64(buf[16:], math.Float64bits(cs.Color.G))
		binary.LittleEndian.PutUint64(buf[24:], math.Float64bits(cs.Color.B))
		binary.LittleEndian.PutUint64(buf[32:], math.Float64bits(cs.Color.A))
		_, _ = d.Write(buf[:]) // xxhash.Digest.Write never returns an error
	}
	return d.Sum64()
}

// Clone returns a copy of s that does not share memory with it.
func (s Stops) Clone() Stops {
	if s == nil {
		return nil
	}
	out := make(Stops, len(s))
	copy(out, s)
	return out
}

// Validate checks the preconditions the sampler relies on: at least one
// stop, offsets within [0, 1], and offsets in ascending order.
//
// The cache itself never validates; a malformed gradient produces an
// unspecified ramp rather than an error. Callers that want to fail fast
// call Validate before Cache.Add.
func (s Stops) Validate() error {
	if len(s) == 0 {
		return ErrNoStops
	}
	prev := 0.0
	for i, cs := range s {
		if math.IsNaN(cs.Offset) || cs.Offset < 0 || cs.Offset > 1 {
			return fmt.Errorf("stop %d (offset %v): %w", i, cs.Offset, ErrOffsetRange)
		}
		if cs.Offset < prev {
			return fmt.Errorf("stop %d (offset %v after %v): %w", i, cs.Offset, prev, ErrUnsortedStops)
		}
		prev = cs.Offset
	}
	return nil
}
