// Package blend implements the Porter-Duff operators used by the software
// canvas.
//
// All operations work with premultiplied alpha values in the range 0-255.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Mode represents a Porter-Duff compositing operation.
type Mode uint8

const (
	SourceOver      Mode = iota // S + D*(1-Sa) [default]
	Clear                       // 0
	Source                      // S
	DestinationOver             // S*(1-Da) + D
	DestinationIn               // D*Sa
	DestinationOut              // D*(1-Sa)
	Plus                        // S + D, clamped
)

// String returns the CSS-style operator name.
func (m Mode) String() string {
	switch m {
	case SourceOver:
		return "source-over"
	case Clear:
		return "clear"
	case Source:
		return "copy"
	case DestinationOver:
		return "destination-over"
	case DestinationIn:
		return "destination-in"
	case DestinationOut:
		return "destination-out"
	case Plus:
		return "lighter"
	default:
		return "unknown"
	}
}

// Func is the signature for blend operations.
// All values are premultiplied alpha, 0-255.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// GetFunc returns the blend function for the mode.
// Returns the source-over function for unknown modes.
func GetFunc(m Mode) Func {
	switch m {
	case Clear:
		return blendClear
	case Source:
		return blendSource
	case DestinationOver:
		return blendDestinationOver
	case DestinationIn:
		return blendDestinationIn
	case DestinationOut:
		return blendDestinationOut
	case Plus:
		return blendPlus
	default:
		return blendSourceOver
	}
}

// Pixel composites the premultiplied source color s onto the 4-byte
// premultiplied destination pixel dst using f, weighted by coverage cov.
// Partial coverage interpolates between the untouched destination and the
// full result, so every operator degrades smoothly along anti-aliased edges.
func Pixel(f Func, dst []uint8, s [4]uint8, cov uint8) {
	if cov == 0 {
		return
	}
	dr, dg, db, da := dst[0], dst[1], dst[2], dst[3]
	r, g, b, a := f(s[0], s[1], s[2], s[3], dr, dg, db, da)
	if cov == 255 {
		dst[0], dst[1], dst[2], dst[3] = r, g, b, a
		return
	}
	dst[0] = lerp(dr, r, cov)
	dst[1] = lerp(dg, g, cov)
	dst[2] = lerp(db, b, cov)
	dst[3] = lerp(da, a, cov)
}

func blendClear(_, _, _, _, _, _, _, _ byte) (byte, byte, byte, byte) {
	return 0, 0, 0, 0
}

func blendSource(sr, sg, sb, sa, _, _, _, _ byte) (byte, byte, byte, byte) {
	return sr, sg, sb, sa
}

func blendSourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addClamp(sr, mulDiv255(dr, invSa)),
		addClamp(sg, mulDiv255(dg, invSa)),
		addClamp(sb, mulDiv255(db, invSa)),
		addClamp(sa, mulDiv255(da, invSa))
}

func blendDestinationOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invDa := 255 - da
	return addClamp(mulDiv255(sr, invDa), dr),
		addClamp(mulDiv255(sg, invDa), dg),
		addClamp(mulDiv255(sb, invDa), db),
		addClamp(mulDiv255(sa, invDa), da)
}

func blendDestinationIn(_, _, _, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return mulDiv255(dr, sa), mulDiv255(dg, sa), mulDiv255(db, sa), mulDiv255(da, sa)
}

func blendDestinationOut(_, _, _, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return mulDiv255(dr, invSa), mulDiv255(dg, invSa), mulDiv255(db, invSa), mulDiv255(da, invSa)
}

func blendPlus(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return addClamp(sr, dr), addClamp(sg, dg), addClamp(sb, db), addClamp(sa, da)
}
