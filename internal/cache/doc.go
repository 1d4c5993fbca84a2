// Package cache holds the single retained shadow bitmap of a renderer.
//
// An Entry owns a bitmap and a same-size scratch buffer together with the
// key snapshot that produced the bitmap's current content. EnsureValid
// answers the per-frame question "can the last bitmap be reused?" with one
// of three outcomes:
//
//   - fresh: buffers were (re)allocated, nothing to clear, must render
//   - stale: buffers kept, old content must be cleared, must render
//   - reused: key unchanged, skip rendering entirely
//
// Buffers only shrink when the requested size drops below half of the
// allocation in either dimension, so small size jitter does not churn memory.
//
// # Thread Safety
//
// Entry is not safe for concurrent use. It is owned by exactly one shadow
// and accessed only from the goroutine that draws it.
package cache
