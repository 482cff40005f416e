// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-wave-defense/internal/config"
)

var (
	buttonColor         = color.RGBA{52, 73, 94, 255}
	buttonHoverColor    = color.RGBA{69, 98, 125, 255}
	buttonActiveColor   = color.RGBA{39, 174, 96, 255}
	buttonDisabledColor = color.RGBA{44, 48, 58, 255}
	buttonBorderColor   = color.RGBA{26, 37, 47, 255}
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect     image.Rectangle
	Text     string
	Disabled bool
	Active   bool // подсвечена как выбранная
	Accent   color.Color
}

// NewButton создает новую кнопку.
func NewButton(x, y, w, h int, label string) *Button {
	return &Button{
		Rect: image.Rect(x, y, x+w, y+h),
		Text: label,
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Clicked — клик по активной кнопке.
func (b *Button) Clicked(x, y int) bool {
	return !b.Disabled && b.Contains(x, y)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image) {
	bg := buttonColor
	switch {
	case b.Disabled:
		bg = buttonDisabledColor
	case b.Active:
		bg = buttonActiveColor
	case b.Contains(ebiten.CursorPosition()):
		bg = buttonHoverColor
	}

	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 2, buttonBorderColor, false)
	if b.Accent != nil {
		vector.DrawFilledRect(screen, x+2, y+2, 4, h-4, b.Accent, false)
	}

	fg := color.Color(config.TextLightColor)
	if b.Disabled {
		fg = config.TextDimColor
	}
	cx := float64(b.Rect.Min.X) + float64(b.Rect.Dx())/2
	cy := float64(b.Rect.Min.Y) + float64(b.Rect.Dy())/2
	DrawTextCentered(screen, b.Text, cx, cy, fg)
}
