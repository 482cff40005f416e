// pkg/render/world_renderer.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-wave-defense/internal/app"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/system"
)

const (
	healthBarHeight = 5
	impactFrames    = 12
)

type flash struct {
	impact system.Impact
	left   int
}

// WorldRenderer рисует динамические сущности поверх карты.
type WorldRenderer struct {
	flashes []flash
}

func NewWorldRenderer() *WorldRenderer {
	return &WorldRenderer{}
}

// Update запоминает свежие попадания и гасит старые вспышки.
func (r *WorldRenderer) Update(impacts []system.Impact) {
	alive := r.flashes[:0]
	for _, f := range r.flashes {
		f.left--
		if f.left > 0 {
			alive = append(alive, f)
		}
	}
	for _, imp := range impacts {
		alive = append(alive, flash{impact: imp, left: impactFrames})
	}
	r.flashes = alive
}

// Reset сбрасывает вспышки (смена карты).
func (r *WorldRenderer) Reset() {
	r.flashes = nil
}

func (r *WorldRenderer) Draw(screen *ebiten.Image, snap app.Snapshot) {
	for _, t := range snap.Towers {
		if t.Selected {
			drawRange(screen, float32(t.Pos.X), float32(t.Pos.Y), float32(t.Range))
		}
	}
	for _, t := range snap.Towers {
		drawTower(screen, t)
	}
	for _, e := range snap.Enemies {
		drawEnemy(screen, e)
	}
	for _, p := range snap.Projectiles {
		drawProjectile(screen, p)
	}
	for _, f := range r.flashes {
		drawFlash(screen, f)
	}
}

// DrawPlacementGhost рисует силуэт башни под курсором: зона действия и
// корпус, красный если место недоступно.
func DrawPlacementGhost(screen *ebiten.Image, x, y, towerRange, radius float64, valid bool) {
	fx, fy := float32(x), float32(y)
	drawRange(screen, fx, fy, float32(towerRange))
	body := color.NRGBA{255, 255, 255, 90}
	if !valid {
		body = config.InvalidColor
	}
	vector.DrawFilledCircle(screen, fx, fy, float32(radius), body, true)
}

func drawRange(screen *ebiten.Image, x, y, r float32) {
	vector.DrawFilledCircle(screen, x, y, r, config.RangeFillColor, true)
	vector.StrokeCircle(screen, x, y, r, float32(config.StrokeWidth), color.NRGBA{255, 255, 255, 200}, true)
}

func drawTower(screen *ebiten.Image, t app.TowerView) {
	x, y, r := float32(t.Pos.X), float32(t.Pos.Y), float32(t.Radius)

	// Тень
	vector.DrawFilledCircle(screen, x+3, y+3, r, color.NRGBA{0, 0, 0, 76}, true)
	vector.DrawFilledCircle(screen, x, y, r, config.TowerBaseColor, true)
	stroke := config.TowerStrokeColor
	if t.Selected {
		stroke = config.SelectionColor
	}
	vector.StrokeCircle(screen, x, y, r, 3, stroke, true)

	// Турель смотрит на цель
	vector.DrawFilledCircle(screen, x, y, r*0.55, t.Color, true)
	sin, cos := math.Sincos(t.Angle)
	bx := x + float32(cos)*r*1.1
	by := y + float32(sin)*r*1.1
	vector.StrokeLine(screen, x, y, bx, by, 5, DarkenColor(t.Color), true)

	// Точки уровня
	for i := 0; i < t.Level; i++ {
		px := x - r*0.5 + float32(i)*r*0.5
		vector.DrawFilledCircle(screen, px, y+r+6, 2.5, config.SelectionColor, true)
	}
}

func drawEnemy(screen *ebiten.Image, e app.EnemyView) {
	x, y, r := float32(e.Pos.X), float32(e.Pos.Y), float32(e.Radius)

	vector.DrawFilledCircle(screen, x, y, r, e.Color, true)
	vector.StrokeCircle(screen, x, y, r, 1.5, DarkenColor(e.Color), true)

	// Глаза по направлению движения
	sin, cos := math.Sincos(e.Angle)
	fx, fy := float32(cos), float32(sin)
	eye := r * 0.18
	if eye < 2 {
		eye = 2
	}
	vector.DrawFilledCircle(screen, x+fx*r*0.4-fy*r*0.3, y+fy*r*0.4+fx*r*0.3, eye, color.RGBA{255, 60, 60, 255}, true)
	vector.DrawFilledCircle(screen, x+fx*r*0.4+fy*r*0.3, y+fy*r*0.4-fx*r*0.3, eye, color.RGBA{255, 60, 60, 255}, true)

	if e.Slowed {
		vector.StrokeCircle(screen, x, y, r+4, 3, config.SlowRingColor, true)
	}

	// Полоска здоровья
	barW := r * 2
	barY := y - r - 12
	vector.DrawFilledRect(screen, x-r, barY, barW, healthBarHeight, config.HealthBackColor, false)
	vector.DrawFilledRect(screen, x-r, barY, barW*float32(e.HealthFraction), healthBarHeight, HealthColor(e.HealthFraction), false)
	vector.StrokeRect(screen, x-r, barY, barW, healthBarHeight, 1, color.RGBA{34, 34, 34, 255}, false)
}

func drawProjectile(screen *ebiten.Image, p app.ProjectileView) {
	x, y := float32(p.Pos.X), float32(p.Pos.Y)
	switch {
	case p.Splash:
		vector.DrawFilledCircle(screen, x, y, config.ProjectileRadius+2, config.SplashShellColor, true)
	case p.Slows:
		vector.DrawFilledCircle(screen, x, y, config.ProjectileRadius+1, config.SlowRingColor, true)
	default:
		sin, cos := math.Sincos(p.Angle)
		tx := x - float32(cos)*8
		ty := y - float32(sin)*8
		vector.StrokeLine(screen, tx, ty, x, y, 2, p.Color, true)
		vector.DrawFilledCircle(screen, x, y, config.ProjectileRadius, p.Color, true)
	}
}

func drawFlash(screen *ebiten.Image, f flash) {
	alpha := uint8(200 * f.left / impactFrames)
	x, y := float32(f.impact.Pos.X), float32(f.impact.Pos.Y)
	if f.impact.Radius > 0 {
		vector.DrawFilledCircle(screen, x, y, float32(f.impact.Radius), color.NRGBA{230, 126, 34, alpha / 2}, true)
		return
	}
	vector.DrawFilledCircle(screen, x, y, config.ProjectileRadius*2, color.NRGBA{255, 255, 255, alpha}, true)
}
