// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpeedButton переключает ускорение: число тиков симуляции за кадр.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	StateColors   []color.Color
	CurrentState  int
}

func NewSpeedButton(x, y, size float32, stateColors []color.Color) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

// Multiplier — сколько тиков делать за кадр (1, 2, 3...).
func (b *SpeedButton) Multiplier() int {
	return b.CurrentState + 1
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	triangleSize := b.Size * float32(scale)

	clr := b.StateColors[b.CurrentState]

	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8

	// Левый и правый треугольники
	for _, shift := range []float32{0, offset} {
		var path vector.Path
		path.MoveTo(b.X-width+shift, b.Y-height/2)
		path.LineTo(b.X+shift, b.Y)
		path.LineTo(b.X-width+shift, b.Y+height/2)
		path.Close()
		fillPath(screen, &path, clr)
	}
	DrawText(screen, "x"+strconv.Itoa(b.Multiplier()), float64(b.X+offset+4), float64(b.Y-6), color.White)
}

func (b *SpeedButton) IsClicked(x, y int) bool {
	// Круг вместо сложной формы
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

func (b *SpeedButton) ToggleState() {
	b.CurrentState = (b.CurrentState + 1) % len(b.StateColors)
	b.LastClickTime = time.Now()
}
