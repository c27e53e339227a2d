package main

import (
	"fmt"
	"image"

	"github.com/gdamore/tcell/v2"
)

// halfBlock draws the upper pixel as foreground and the lower one as
// background, so each terminal cell shows two pixel rows.
const halfBlock = '▀'

// drawPreview paints img onto screen, sampling the nearest pixel so the
// whole image fits. Colors are composited over black.
func drawPreview(screen tcell.Screen, img *image.NRGBA) {
	screen.Clear()
	cols, rows := screen.Size()
	b := img.Bounds()
	if cols <= 0 || rows <= 0 || b.Empty() {
		return
	}

	step := max(
		(b.Dx()+cols-1)/cols,
		(b.Dy()+2*rows-1)/(2*rows),
		1,
	)

	for cy := 0; cy < rows; cy++ {
		top := b.Min.Y + 2*cy*step
		if top >= b.Max.Y {
			break
		}
		bottom := top + step
		for cx := 0; cx < cols; cx++ {
			x := b.Min.X + cx*step
			if x >= b.Max.X {
				break
			}
			style := tcell.StyleDefault.Foreground(cellColor(img, x, top))
			if bottom < b.Max.Y {
				style = style.Background(cellColor(img, x, bottom))
			} else {
				style = style.Background(tcell.ColorBlack)
			}
			screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}
}

func cellColor(img *image.NRGBA, x, y int) tcell.Color {
	c := img.NRGBAAt(x, y)
	a := int32(c.A)
	return tcell.NewRGBColor(int32(c.R)*a/255, int32(c.G)*a/255, int32(c.B)*a/255)
}

// preview shows img in the terminal until a key is pressed.
func preview(img *image.NRGBA) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	defer screen.Fini()

	drawPreview(screen, img)
	screen.Show()
	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			drawPreview(screen, img)
			screen.Show()
		case *tcell.EventKey, nil:
			return nil
		}
	}
}
