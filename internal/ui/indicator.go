// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-wave-defense/internal/component"
)

// PhaseIndicator — круглая кнопка фазы: цвет показывает фазу,
// клик в фазе ожидания запускает волну.
type PhaseIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewPhaseIndicator(x, y, radius float32) *PhaseIndicator {
	return &PhaseIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// PhaseColor — цвет индикатора для фазы.
func PhaseColor(phase component.GamePhase) color.RGBA {
	switch phase {
	case component.PhaseIdle:
		return color.RGBA{46, 204, 113, 255}
	case component.PhaseSpawning:
		return color.RGBA{230, 126, 34, 255}
	case component.PhaseDraining:
		return color.RGBA{52, 152, 219, 255}
	case component.PhaseGameOver:
		return color.RGBA{192, 57, 43, 255}
	}
	return color.RGBA{127, 140, 141, 255}
}

// Draw отрисовывает индикатор
func (i *PhaseIndicator) Draw(screen *ebiten.Image, phase component.GamePhase) {
	elapsed := time.Since(i.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	currentRadius := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, currentRadius, PhaseColor(phase), true)
	vector.StrokeCircle(screen, i.X, i.Y, currentRadius, 1, color.White, true)
}

// IsClicked проверяет, был ли клик внутри индикатора
func (i *PhaseIndicator) IsClicked(x, y int) bool {
	dx := float32(x) - i.X
	dy := float32(y) - i.Y
	return dx*dx+dy*dy <= i.Radius*i.Radius
}

// HandleClick обрабатывает клик
func (i *PhaseIndicator) HandleClick() {
	i.LastClickTime = time.Now()
}
