// internal/ui/lives_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	LivesCols          = 10
	LivesCircleRadius  = 6.0
	LivesCircleSpacing = 3.0
)

var (
	lifeFullColor  = color.RGBA{52, 152, 219, 255}
	lifeLowColor   = color.RGBA{231, 76, 60, 255}
	lifeEmptyColor = color.RGBA{0, 0, 0, 255}
)

// LivesIndicator отображает жизни сеткой кружков.
type LivesIndicator struct {
	X, Y float32
}

func NewLivesIndicator(x, y float32) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y}
}

// lifeColor: пока жизней больше половины, полные ячейки синие, потом красные.
func lifeColor(j, lives, maxLives int) color.RGBA {
	if j >= lives {
		return lifeEmptyColor
	}
	if lives <= maxLives/2 {
		return lifeLowColor
	}
	return lifeFullColor
}

// Draw рисует число жизней и сетку под ним.
func (i *LivesIndicator) Draw(screen *ebiten.Image, lives, maxLives int) {
	DrawText(screen, "Lives "+strconv.Itoa(lives)+"/"+strconv.Itoa(maxLives), float64(i.X), float64(i.Y), color.White)

	top := i.Y + lineHeight + 4
	step := float32(LivesCircleRadius*2 + LivesCircleSpacing)
	for j := 0; j < maxLives; j++ {
		row := j / LivesCols
		col := j % LivesCols
		cx := i.X + float32(col)*step + LivesCircleRadius
		cy := top + float32(row)*step + LivesCircleRadius
		vector.DrawFilledCircle(screen, cx, cy, LivesCircleRadius, lifeColor(j, lives, maxLives), true)
		vector.StrokeCircle(screen, cx, cy, LivesCircleRadius, 1, color.White, true)
	}
}

// Height — высота индикатора при maxLives ячейках.
func (i *LivesIndicator) Height(maxLives int) float32 {
	rows := (maxLives + LivesCols - 1) / LivesCols
	return lineHeight + 4 + float32(rows)*(LivesCircleRadius*2+LivesCircleSpacing)
}
