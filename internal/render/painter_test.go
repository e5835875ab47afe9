//go:build ebiten

package render

import "testing"

func TestGridPainterResize(t *testing.T) {
	gp := NewGridPainter(4, 3, 5, DefaultPalette)
	if w, h := gp.Size(); w != 25 || h != 19 {
		t.Fatalf("Size() = %dx%d, want 25x19", w, h)
	}
	img := gp.img

	gp.Resize(4, 3, 5)
	if gp.img != img {
		t.Fatal("unchanged layout reallocated the image")
	}

	gp.Resize(8, 3, 5)
	if gp.img == img {
		t.Fatal("new layout kept the old image")
	}
	if w, h := gp.Size(); w != 49 || h != 19 {
		t.Fatalf("Size() after resize = %dx%d, want 49x19", w, h)
	}
	if got, want := len(gp.buf), 4*49*19; got != want {
		t.Fatalf("buffer holds %d bytes, want %d", got, want)
	}

	gp.Resize(8, 3, 1)
	if w, h := gp.Size(); w != 8 || h != 3 {
		t.Fatalf("Size() without grid lines = %dx%d, want 8x3", w, h)
	}
}

func TestGridPainterEmptyGrid(t *testing.T) {
	gp := NewGridPainter(0, 0, 1, DefaultPalette)
	if gp.img != nil {
		t.Fatal("empty grid allocated an image")
	}
	gp.Resize(2, 2, 1)
	if gp.img == nil {
		t.Fatal("resize from empty did not allocate")
	}
}
