package gallery

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"

	"galgen/config"
)

func TestAtlasBuilder_PageCount(t *testing.T) {
	cell := config.CellConfig{Width: 8, Height: 4}
	grid := config.GridConfig{Columns: 4, Rows: 4}
	bg := color.NRGBA{A: 255}

	cases := []struct {
		total, maxPages, wantPages, wantDropped int
	}{
		{0, 0, 0, 0},
		{1, 0, 1, 0},
		{16, 0, 1, 0},
		{17, 0, 2, 0},
		{40, 0, 3, 0},
		{40, 2, 2, 8},
		{16, 1, 1, 0},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("total_%d_max_%d", c.total, c.maxPages), func(t *testing.T) {
			b := NewAtlasBuilder(cell, grid, bg, c.maxPages)
			for range c.total {
				b.Add(imaging.New(8, 4, color.NRGBA{R: 255, A: 255}))
			}
			if got := len(b.Pages()); got != c.wantPages {
				t.Errorf("got %d pages, want %d", got, c.wantPages)
			}
			if got := b.Dropped(); got != c.wantDropped {
				t.Errorf("got %d dropped cells, want %d", got, c.wantDropped)
			}
		})
	}
}

func TestAtlasBuilder_RowMajorPlacement(t *testing.T) {
	cell := config.CellConfig{Width: 2, Height: 2}
	grid := config.GridConfig{Columns: 3, Rows: 2}
	bg := color.NRGBA{A: 255}

	b := NewAtlasBuilder(cell, grid, bg, 0)
	// distinct red value per cell
	for i := range 5 {
		b.Add(imaging.New(2, 2, color.NRGBA{R: uint8(i + 1), A: 255}))
	}

	pages := b.Pages()
	if len(pages) != 1 {
		t.Fatalf("got %d pages, want 1", len(pages))
	}
	page := pages[0]
	if w, h := page.Bounds().Dx(), page.Bounds().Dy(); w != 6 || h != 4 {
		t.Fatalf("page size %dx%d, want 6x4", w, h)
	}

	// cell i sits at column i%3, row i/3
	for i := range 5 {
		x := (i % 3) * 2
		y := (i / 3) * 2
		got := page.NRGBAAt(x, y)
		want := color.NRGBA{R: uint8(i + 1), A: 255}
		if got != want {
			t.Errorf("cell %d pixel at (%d,%d) = %v, want %v", i, x, y, got, want)
		}
	}

	// slot 5 was never filled, background shows through
	if got := page.NRGBAAt(4, 2); got != bg {
		t.Errorf("unused slot pixel = %v, want background %v", got, bg)
	}
}

func TestAtlasBuilder_LastPagePartiallyFilled(t *testing.T) {
	cell := config.CellConfig{Width: 2, Height: 2}
	grid := config.GridConfig{Columns: 2, Rows: 2}
	bg := color.NRGBA{B: 9, A: 255}

	b := NewAtlasBuilder(cell, grid, bg, 0)
	for range 5 {
		b.Add(imaging.New(2, 2, color.NRGBA{G: 200, A: 255}))
	}

	pages := b.Pages()
	if len(pages) != 2 {
		t.Fatalf("got %d pages, want 2", len(pages))
	}
	last := pages[1]
	if got := last.NRGBAAt(0, 0); got != (color.NRGBA{G: 200, A: 255}) {
		t.Errorf("first slot of last page = %v, want cell color", got)
	}
	for _, pt := range [][2]int{{2, 0}, {0, 2}, {2, 2}} {
		if got := last.NRGBAAt(pt[0], pt[1]); got != bg {
			t.Errorf("empty slot pixel at (%d,%d) = %v, want background %v", pt[0], pt[1], got, bg)
		}
	}
}
