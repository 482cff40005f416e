// internal/ui/text.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

const lineHeight = 16

// whitePixel — источник для заливки треугольников.
var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// Face — общий моноширинный шрифт интерфейса.
var Face = text.NewGoXFace(basicfont.Face7x13)

// DrawText рисует строку с левым верхним углом в (x, y).
func DrawText(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, Face, op)
}

// DrawTextCentered центрирует строку относительно (cx, cy).
func DrawTextCentered(dst *ebiten.Image, s string, cx, cy float64, clr color.Color) {
	w, h := text.Measure(s, Face, lineHeight)
	DrawText(dst, s, cx-w/2, cy-h/2, clr)
}

// DrawTextOutlined рисует текст с обводкой в thickness пикселей.
func DrawTextOutlined(dst *ebiten.Image, s string, x, y float64, clr, outline color.Color, thickness int) {
	for dy := -thickness; dy <= thickness; dy++ {
		for dx := -thickness; dx <= thickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			DrawText(dst, s, x+float64(dx), y+float64(dy), outline)
		}
	}
	DrawText(dst, s, x, y, clr)
}

// TextWidth — ширина строки в пикселях.
func TextWidth(s string) float64 {
	return text.Advance(s, Face)
}
