package rampcache

import (
	"log/slog"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// Cache memoizes gradient ramps in one shared sample buffer and hands out
// stable slot ids that address a ramp's row in that buffer.
//
// A Cache is driven once per frame: any number of Add calls, then one
// Maintain call. The epoch advanced by Maintain is the only notion of time;
// an entry not used for two full Maintain cycles is stale and its slot may
// be reclaimed by a new gradient.
//
// Cache is not safe for concurrent use. The owner must serialize all calls.
type Cache struct {
	epoch    uint64
	buckets  map[uint64][]*entry // Stops.Hash -> entries with that hash
	count    int
	recent   recencyList
	data     []RGBA
	free     []uint32 // holes left by trimming, ascending
	retained int
	interp   Interpolation
	logger   *slog.Logger
	digest   *xxhash.Digest

	// Rows written since the last MarkUploaded, as [dirtyLo, dirtyHi).
	dirtyLo, dirtyHi uint32

	stats Stats
}

// entry is one resolved gradient.
type entry struct {
	stops Stops
	hash  uint64
	slot  uint32
	epoch uint64 // epoch of last use

	prev, next *entry // recencyList links
}

// Stats contains cache statistics for monitoring.
type Stats struct {
	// Entries is the number of live gradients.
	Entries int
	// Height is the number of ramp rows in the sample buffer.
	Height int
	// Retained is the configured steady-state capacity.
	Retained int
	// Epoch is the current epoch.
	Epoch uint64
	// Hits is the number of Add calls that found an existing ramp.
	Hits uint64
	// Misses is the number of Add calls that sampled a new ramp.
	Misses uint64
	// Reclaims is the number of misses served by reusing a stale slot.
	Reclaims uint64
	// Overruns is the number of misses that allocated a slot past capacity.
	Overruns uint64
	// Trimmed is the number of entries dropped by Maintain.
	Trimmed uint64
}

// HitRate returns the fraction of Add calls that were hits, 0.0 to 1.0.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// New creates an empty cache at epoch 0.
func New(opts ...Option) *Cache {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Cache{
		buckets:  make(map[uint64][]*entry),
		retained: o.retained,
		interp:   o.interp,
		logger:   o.logger,
		digest:   xxhash.New(),
	}
}

// Maintain advances the epoch by one. Call it once per frame, after the
// frame's Add calls.
//
// When slots were allocated past capacity, Maintain also trims: entries in
// those overflow slots that are stale are dropped and the buffer is cut
// back, never below the retained capacity and never below the highest slot
// still in use. A slot handed out since the previous Maintain is never
// trimmed, so ids given to the frame just encoded stay valid.
func (c *Cache) Maintain() {
	c.epoch++
	if c.height() <= uint32(c.retained) {
		return
	}

	var victims []*entry
	for _, bucket := range c.buckets {
		for _, e := range bucket {
			if e.slot >= uint32(c.retained) && c.stale(e) {
				victims = append(victims, e)
			}
		}
	}
	if len(victims) == 0 {
		return
	}
	for _, e := range victims {
		c.remove(e)
		c.free = append(c.free, e.slot)
	}

	before := c.height()
	c.shrink()
	c.stats.Trimmed += uint64(len(victims))

	c.log().Debug("rampcache: trimmed overflow",
		"epoch", c.epoch,
		"entries", len(victims),
		"rows_before", before,
		"rows_after", c.height())
}

// Add resolves stops to a slot id, sampling a new ramp on a miss.
//
// A hit refreshes the entry's epoch and leaves the buffer untouched. A miss
// below capacity appends a row. A miss at capacity reuses the least
// recently used slot if that entry is stale, and otherwise allocates past
// capacity rather than overwrite a ramp still in use.
//
// stops should satisfy Stops.Validate; malformed input yields an
// unspecified ramp, not an error. The cache keeps its own copy of stops.
func (c *Cache) Add(stops Stops) uint32 {
	h := stops.hashWith(c.digest)
	if e := c.lookup(h, stops); e != nil {
		e.epoch = c.epoch
		c.recent.MoveToFront(e)
		c.stats.Hits++
		return e.slot
	}
	c.stats.Misses++

	var slot uint32
	switch {
	case c.count < c.retained:
		slot = c.alloc()
	case c.reclaimable():
		victim := c.recent.Oldest()
		c.remove(victim)
		slot = victim.slot
		c.stats.Reclaims++
		c.log().Debug("rampcache: reclaimed stale slot",
			"slot", slot,
			"last_used", victim.epoch,
			"epoch", c.epoch)
	default:
		slot = c.alloc()
		c.stats.Overruns++
		c.log().Debug("rampcache: capacity overrun",
			"slot", slot,
			"entries", c.count,
			"retained", c.retained,
			"epoch", c.epoch)
	}

	makeRamp(stops, c.row(slot), c.interp)
	c.markDirty(slot)

	e := &entry{
		stops: stops.Clone(),
		hash:  h,
		slot:  slot,
		epoch: c.epoch,
	}
	c.buckets[h] = append(c.buckets[h], e)
	c.recent.PushFront(e)
	c.count++
	return slot
}

// Ramps returns a read-only view of the whole sample buffer. The view
// aliases the cache's memory and is valid until the next Add, Maintain or
// Reset call.
func (c *Cache) Ramps() Ramps {
	return Ramps{
		Data:    c.data,
		Width:   SamplesPerRamp,
		Height:  c.height(),
		dirtyLo: c.dirtyLo,
		dirtyHi: c.dirtyHi,
	}
}

// MarkUploaded records that every row has been uploaded, clearing the
// dirty range reported by Ramps.
func (c *Cache) MarkUploaded() {
	c.dirtyLo, c.dirtyHi = 0, 0
}

// Len returns the number of live gradients.
func (c *Cache) Len() int {
	return c.count
}

// Epoch returns the current epoch.
func (c *Cache) Epoch() uint64 {
	return c.epoch
}

// Stats returns cache statistics.
func (c *Cache) Stats() Stats {
	s := c.stats
	s.Entries = c.count
	s.Height = int(c.height())
	s.Retained = c.retained
	s.Epoch = c.epoch
	return s
}

// Reset drops every gradient and the sample buffer. The epoch keeps
// counting so staleness stays monotonic; statistics are kept.
func (c *Cache) Reset() {
	clear(c.buckets)
	c.recent.Clear()
	c.count = 0
	c.data = c.data[:0]
	c.free = c.free[:0]
	c.dirtyLo, c.dirtyHi = 0, 0
}

func (c *Cache) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return Logger()
}

func (c *Cache) height() uint32 {
	return uint32(len(c.data) / SamplesPerRamp)
}

func (c *Cache) row(slot uint32) []RGBA {
	start := int(slot) * SamplesPerRamp
	return c.data[start : start+SamplesPerRamp : start+SamplesPerRamp]
}

// stale reports whether e went unused for at least two epochs.
func (c *Cache) stale(e *entry) bool {
	return e.epoch+2 <= c.epoch
}

// reclaimable reports whether the least recently used entry is stale.
// The tail of the recency list has the smallest epoch, so if it is not
// stale no entry is.
func (c *Cache) reclaimable() bool {
	oldest := c.recent.Oldest()
	return oldest != nil && c.stale(oldest)
}

func (c *Cache) lookup(h uint64, stops Stops) *entry {
	for _, e := range c.buckets[h] {
		if e.stops.Equal(stops) {
			return e
		}
	}
	return nil
}

// remove unlinks e from the index and recency list. Its row is untouched.
func (c *Cache) remove(e *entry) {
	bucket := c.buckets[e.hash]
	if i := slices.Index(bucket, e); i >= 0 {
		bucket = slices.Delete(bucket, i, i+1)
	}
	if len(bucket) == 0 {
		delete(c.buckets, e.hash)
	} else {
		c.buckets[e.hash] = bucket
	}
	c.recent.Remove(e)
	c.count--
}

// alloc returns a free row: the lowest hole left by trimming, or a new row
// appended to the buffer.
func (c *Cache) alloc() uint32 {
	if len(c.free) > 0 {
		slot := c.free[0]
		c.free = c.free[1:]
		return slot
	}
	slot := c.height()
	c.data = slices.Grow(c.data, SamplesPerRamp)
	c.data = c.data[:len(c.data)+SamplesPerRamp]
	return slot
}

// shrink truncates the buffer after a trim to the highest live slot, but
// not below the retained capacity, and forgets holes past the new end.
func (c *Cache) shrink() {
	rows := uint32(c.retained)
	for _, bucket := range c.buckets {
		for _, e := range bucket {
			rows = max(rows, e.slot+1)
		}
	}
	rows = min(rows, c.height())
	c.data = c.data[:int(rows)*SamplesPerRamp]

	slices.Sort(c.free)
	c.free = slices.DeleteFunc(c.free, func(slot uint32) bool { return slot >= rows })

	if c.dirtyHi > rows {
		c.dirtyHi = rows
	}
	if c.dirtyLo >= c.dirtyHi {
		c.dirtyLo, c.dirtyHi = 0, 0
	}
}

func (c *Cache) markDirty(slot uint32) {
	if c.dirtyLo == c.dirtyHi {
		c.dirtyLo, c.dirtyHi = slot, slot+1
		return
	}
	c.dirtyLo = min(c.dirtyLo, slot)
	c.dirtyHi = max(c.dirtyHi, slot+1)
}
