package gallery

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"

	"galgen/config"
)

// AtlasBuilder packs fixed size thumbnail cells into row-major grid pages.
// Cell 0 lands at the top-left corner, cells fill left to right then top to
// bottom. Every page canvas is allocated at full (cols*cellW, rows*cellH)
// size regardless of how many cells it ends up holding, unused area stays
// background colored.
type AtlasBuilder struct {
	cellW, cellH int
	cols, rows   int
	maxPages     int // 0 - unlimited
	bg           color.NRGBA
	pages        []*image.NRGBA
	count        int // cells accepted so far
	dropped      int // cells silently dropped past the page cap
}

func NewAtlasBuilder(cell config.CellConfig, grid config.GridConfig, bg color.NRGBA, maxPages int) *AtlasBuilder {
	return &AtlasBuilder{
		cellW:    cell.Width,
		cellH:    cell.Height,
		cols:     grid.Columns,
		rows:     grid.Rows,
		maxPages: maxPages,
		bg:       bg,
	}
}

// Capacity returns number of cells on one full page.
func (b *AtlasBuilder) Capacity() int {
	return b.cols * b.rows
}

// Add places the next cell. Cells beyond maxPages*capacity are dropped.
func (b *AtlasBuilder) Add(cell image.Image) {
	pos := b.count % b.Capacity()
	if pos == 0 {
		if b.maxPages > 0 && len(b.pages) == b.maxPages {
			b.dropped++
			return
		}
		b.pages = append(b.pages, imaging.New(b.cols*b.cellW, b.rows*b.cellH, b.bg))
	}
	page := b.pages[len(b.pages)-1]
	x := (pos % b.cols) * b.cellW
	y := (pos / b.cols) * b.cellH
	draw.Draw(page, image.Rect(x, y, x+b.cellW, y+b.cellH), cell, cell.Bounds().Min, draw.Src)
	b.count++
}

// Pages returns accumulated page canvases in order.
func (b *AtlasBuilder) Pages() []*image.NRGBA {
	return b.pages
}

// Dropped reports how many cells were discarded due to the page cap.
func (b *AtlasBuilder) Dropped() int {
	return b.dropped
}
