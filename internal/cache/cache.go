package cache

import (
	"errors"
	"fmt"
	"math"
)

// ErrAllocation is returned by EnsureValid when the buffers for the
// requested size cannot be allocated.
var ErrAllocation = errors.New("cache: bitmap allocation failed")

// Outcome reports what EnsureValid decided.
type Outcome struct {
	// Reused is true when the existing bitmap matches the key and size and
	// can be used verbatim.
	Reused bool

	// NeedsClear is true when the buffers were kept but hold content from a
	// different key; the caller must zero the bitmap before rendering.
	NeedsClear bool
}

// Fresh reports whether the buffers were newly allocated.
func (o Outcome) Fresh() bool {
	return !o.Reused && !o.NeedsClear
}

// String returns "reused", "stale" or "fresh".
func (o Outcome) String() string {
	switch {
	case o.Reused:
		return "reused"
	case o.NeedsClear:
		return "stale"
	default:
		return "fresh"
	}
}

// Entry is a single-slot bitmap cache keyed by K.
//
// The zero value is an empty entry ready for use.
// Entry must not be copied after first use.
type Entry[K comparable] struct {
	bitmap  []uint8
	scratch []uint8

	allocW, allocH int // dimensions the buffers were allocated for
	width, height  int // dimensions of the current content, stride == width

	key     K
	pending K
	valid   bool // key describes the bitmap content

	stats Stats
}

// EnsureValid prepares the entry for a width x height bitmap rendered with
// key. Width and height must be positive.
//
// The entry is only considered rendered for key after Commit; a render
// that is abandoned between EnsureValid and Commit leaves the entry stale.
func (e *Entry[K]) EnsureValid(width, height int, key K) (Outcome, error) {
	if width <= 0 || height <= 0 {
		return Outcome{}, fmt.Errorf("cache: invalid bitmap size %dx%d", width, height)
	}

	if e.needsRealloc(width, height) {
		if err := e.allocate(width, height); err != nil {
			return Outcome{}, err
		}
		e.width, e.height = width, height
		e.valid = false
		e.pending = key
		e.stats.Allocations++
		return Outcome{}, nil
	}

	sameSize := e.width == width && e.height == height
	if e.valid && sameSize && e.key == key {
		e.stats.Hits++
		return Outcome{Reused: true}, nil
	}

	e.width, e.height = width, height
	e.valid = false
	e.pending = key
	e.stats.Redraws++
	return Outcome{NeedsClear: true}, nil
}

// Commit records that the bitmap now holds the content for the key passed
// to the last EnsureValid.
func (e *Entry[K]) Commit() {
	e.key = e.pending
	e.valid = true
}

// Invalidate forgets the committed key; the next EnsureValid re-renders.
func (e *Entry[K]) Invalidate() {
	e.valid = false
}

// Reset releases both buffers.
func (e *Entry[K]) Reset() {
	var zero K
	e.bitmap = nil
	e.scratch = nil
	e.allocW, e.allocH = 0, 0
	e.width, e.height = 0, 0
	e.key, e.pending = zero, zero
	e.valid = false
}

// Clear zeroes the current bitmap area.
func (e *Entry[K]) Clear() {
	clear(e.Bitmap())
}

// Bitmap returns the current bitmap, width*height bytes with stride Width.
func (e *Entry[K]) Bitmap() []uint8 {
	return e.bitmap[:e.width*e.height]
}

// Scratch returns the scratch buffer, the same size as Bitmap.
func (e *Entry[K]) Scratch() []uint8 {
	return e.scratch[:e.width*e.height]
}

// Size returns the dimensions of the current bitmap.
func (e *Entry[K]) Size() (width, height int) {
	return e.width, e.height
}

// Allocated returns the dimensions the buffers were allocated for.
func (e *Entry[K]) Allocated() (width, height int) {
	return e.allocW, e.allocH
}

// Stats returns counters for EnsureValid outcomes.
func (e *Entry[K]) Stats() Stats {
	return e.stats
}

// needsRealloc reports whether the buffers cannot hold width x height, or
// are more than twice as large as needed in either dimension.
func (e *Entry[K]) needsRealloc(width, height int) bool {
	if e.bitmap == nil {
		return true
	}
	if e.allocW < width || e.allocH < height {
		return true
	}
	return e.allocW > 2*width || e.allocH > 2*height
}

// allocate replaces both buffers. A runtime allocation panic (size out of
// range) is reported as ErrAllocation and leaves the entry empty.
func (e *Entry[K]) allocate(width, height int) (err error) {
	e.Reset()

	defer func() {
		if r := recover(); r != nil {
			e.Reset()
			err = fmt.Errorf("%w: %dx%d: %v", ErrAllocation, width, height, r)
		}
	}()

	if width > math.MaxInt/height {
		return fmt.Errorf("%w: %dx%d overflows", ErrAllocation, width, height)
	}
	n := width * height
	e.bitmap = make([]uint8, n)
	e.scratch = make([]uint8, n)
	e.allocW, e.allocH = width, height
	return nil
}

// Stats contains cache statistics.
type Stats struct {
	// Hits is the number of EnsureValid calls that reused the bitmap.
	Hits uint64
	// Redraws is the number of calls that kept the buffers but re-rendered.
	Redraws uint64
	// Allocations is the number of calls that (re)allocated the buffers.
	Allocations uint64
}
