package main

import (
	"image"
	stdcolor "image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestDrawPreview(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer screen.Fini()
	screen.SetSize(8, 4)

	// 16x16 image: left half red, right half transparent.
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := range 16 {
		for x := range 8 {
			img.SetNRGBA(x, y, stdcolor.NRGBA{R: 255, A: 255})
		}
	}

	drawPreview(screen, img)
	screen.Show()

	cells, w, h := screen.GetContents()
	if w != 8 || h != 4 {
		t.Fatalf("screen size = %dx%d, want 8x4", w, h)
	}
	for cy := range h {
		for cx := range w {
			c := cells[cy*w+cx]
			if len(c.Runes) == 0 || c.Runes[0] != halfBlock {
				t.Errorf("cell (%d, %d) = %q, want half block", cx, cy, c.Runes)
			}
		}
	}
}

func TestCellColor(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, stdcolor.NRGBA{R: 200, G: 100, B: 50, A: 255})
	img.SetNRGBA(1, 0, stdcolor.NRGBA{R: 200, G: 100, B: 50, A: 0})

	if r, g, b := cellColor(img, 0, 0).RGB(); r != 200 || g != 100 || b != 50 {
		t.Errorf("opaque cell = %d %d %d, want 200 100 50", r, g, b)
	}
	if r, g, b := cellColor(img, 1, 0).RGB(); r != 0 || g != 0 || b != 0 {
		t.Errorf("transparent cell = %d %d %d, want black", r, g, b)
	}
}
