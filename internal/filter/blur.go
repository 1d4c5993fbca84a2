package filter

// BoxBlurH applies one horizontal box blur pass of half-width radius to the
// region [x0, x0+w) x [y0, y0+h) of src and writes the result to the same
// region of dst. Both buffers are addressed with stride.
//
// Samples left or right of the region are clamped to the first or last
// column of the region (edge extension), so the pass never reads outside
// it. src and dst must not alias. For radius <= 0 the region is copied.
func BoxBlurH(src, dst []uint8, stride, x0, y0, w, h, radius int) {
	if w <= 0 || h <= 0 {
		return
	}
	if radius <= 0 {
		copyRegion(src, dst, stride, x0, y0, w, h)
		return
	}

	window := WindowSize(radius)
	last := w - 1

	for y := y0; y < y0+h; y++ {
		row := y*stride + x0
		s := src[row : row+w]
		d := dst[row : row+w]

		sum := 0
		for i := -radius; i <= radius; i++ {
			sum += int(s[clampIndex(i, last)])
		}

		for x := 0; x < w; x++ {
			d[x] = divRound(sum, window)
			sum += int(s[clampIndex(x+radius+1, last)]) - int(s[clampIndex(x-radius, last)])
		}
	}
}

// BoxBlurV applies one vertical box blur pass of half-width radius to the
// region [x0, x0+w) x [y0, y0+h) of src and writes the result to dst.
// Edge handling matches BoxBlurH.
func BoxBlurV(src, dst []uint8, stride, x0, y0, w, h, radius int) {
	if w <= 0 || h <= 0 {
		return
	}
	if radius <= 0 {
		copyRegion(src, dst, stride, x0, y0, w, h)
		return
	}

	window := WindowSize(radius)
	last := h - 1
	base := y0 * stride

	for x := x0; x < x0+w; x++ {
		at := func(i int) int {
			return int(src[base+clampIndex(i, last)*stride+x])
		}

		sum := 0
		for i := -radius; i <= radius; i++ {
			sum += at(i)
		}

		for y := 0; y < h; y++ {
			dst[base+y*stride+x] = divRound(sum, window)
			sum += at(y+radius+1) - at(y-radius)
		}
	}
}

// Pair is two same-size alpha buffers used as ping-pong targets.
// Every blur method on Pair leaves its result in Front; Back is scratch.
type Pair struct {
	Front  []uint8
	Back   []uint8
	Stride int
}

// BlurX approximates a horizontal Gaussian of the given radius with two
// consecutive box passes of half-width radius/2 (Front -> Back -> Front).
func (p *Pair) BlurX(x0, y0, w, h, radius int) {
	r := PassRadius(radius)
	if r == 0 {
		return
	}
	BoxBlurH(p.Front, p.Back, p.Stride, x0, y0, w, h, r)
	BoxBlurH(p.Back, p.Front, p.Stride, x0, y0, w, h, r)
}

// BlurY is the vertical counterpart of BlurX.
func (p *Pair) BlurY(x0, y0, w, h, radius int) {
	r := PassRadius(radius)
	if r == 0 {
		return
	}
	BoxBlurV(p.Front, p.Back, p.Stride, x0, y0, w, h, r)
	BoxBlurV(p.Back, p.Front, p.Stride, x0, y0, w, h, r)
}

// Blur blurs the region horizontally then vertically.
func (p *Pair) Blur(x0, y0, w, h, radius int) {
	p.BlurX(x0, y0, w, h, radius)
	p.BlurY(x0, y0, w, h, radius)
}

// copyRegion copies the region from src to dst.
func copyRegion(src, dst []uint8, stride, x0, y0, w, h int) {
	for y := y0; y < y0+h; y++ {
		row := y*stride + x0
		copy(dst[row:row+w], src[row:row+w])
	}
}
