package shadow

import (
	"github.com/gogpu/shadow/internal/filter"
	"github.com/gogpu/shadow/internal/raster"
)

// renderRect draws the shadow of a w x h rectangle into p.Front, a
// bitmapSize() buffer, by blurring only its top-left corner tile and
// assembling the rest from it. Requires l.fitsCornerTile().
//
// The tile is (m+2k+1) pixels square and lies at the top-left of the
// bitmap; its bottom-right (2k+1) square is inside the rectangle. Every
// other bitmap pixel is a mirror of a tile pixel, a copy of the tile's
// last column or row, or fully opaque.
func renderRect(p *filter.Pair, l layout) {
	bw, bh := l.bitmapSize()
	m, k := l.margin, l.passRadius()
	tile := m + 2*k + 1
	bmp := p.Front

	raster.FillRect(bmp, bw, bw, bh, 0, 0, tile, tile, 0)
	raster.FillRect(bmp, bw, bw, bh, m, m, tile, tile, 255)

	if k > 0 {
		x0 := m - 2*k
		p.BlurX(x0, m, tile-x0, tile-m, l.active)
		p.BlurY(x0, x0, tile-x0, tile-x0, l.active)
	}

	assembleRect(bmp, bw, bh, tile)
}

// assembleRect fills a bw x bh bitmap from the tile x tile area at its
// top-left corner. Pieces may overlap when the rectangle is small; they
// agree on every shared pixel, so the order of writes does not matter.
func assembleRect(bmp []uint8, bw, bh, tile int) {
	at := func(x, y int) uint8 { return bmp[y*bw+x] }
	set := func(x, y int, v uint8) { bmp[y*bw+x] = v }

	// Corners, mirrored.
	for y := range tile {
		for x := range tile {
			v := at(x, y)
			set(bw-1-x, y, v)
			set(x, bh-1-y, v)
			set(bw-1-x, bh-1-y, v)
		}
	}

	// Top and bottom edges repeat the tile's innermost column.
	for y := range tile {
		v := at(tile-1, y)
		raster.FillRect(bmp, bw, bw, bh, tile, y, bw-tile, y+1, v)
		raster.FillRect(bmp, bw, bw, bh, tile, bh-1-y, bw-tile, bh-y, v)
	}

	// Left and right edges repeat the tile's innermost row.
	for x := range tile {
		v := at(x, tile-1)
		raster.FillRect(bmp, bw, bw, bh, x, tile, x+1, bh-tile, v)
		raster.FillRect(bmp, bw, bw, bh, bw-1-x, tile, bw-x, bh-tile, v)
	}

	raster.FillRect(bmp, bw, bw, bh, tile, tile, bw-tile, bh-tile, at(tile-1, tile-1))
}
