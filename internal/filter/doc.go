// Package filter provides the blur kernel used by the shadow renderers.
//
// All routines work on single-channel 8-bit alpha buffers addressed by a
// stride, and only touch a caller-supplied sub-rectangle:
//   - Box blur (sliding window, O(1) per output pixel, edges clamped)
//   - Two-pass Gaussian approximation over an owned buffer pair
//
// The arithmetic is integer only so results are deterministic and
// reflection-symmetric, which the rectangle renderer relies on when it
// mirrors a single blurred corner tile.
package filter
