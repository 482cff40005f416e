// pkg/render/map_renderer.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-wave-defense/pkg/pathmap"
)

var (
	entryColor = color.RGBA{46, 204, 113, 255}
	exitColor  = color.RGBA{231, 76, 60, 255}
)

// MapRenderer рисует статичный задник карты: фон, сетку и коридор пути.
type MapRenderer struct {
	path     *pathmap.Path
	colors   MapColors
	tileSize float64
	mapImage *ebiten.Image // Предрендеренная карта
}

func NewMapRenderer(path *pathmap.Path, colors MapColors, tileSize float64, width, height int) *MapRenderer {
	r := &MapRenderer{
		path:     path,
		colors:   colors,
		tileSize: tileSize,
		mapImage: ebiten.NewImage(width, height),
	}
	r.RenderMapImage()
	return r
}

// RenderMapImage создаёт предрендеренное изображение задника
func (r *MapRenderer) RenderMapImage() {
	r.mapImage.Clear()
	r.mapImage.Fill(r.colors.BackgroundColor)

	bounds := r.mapImage.Bounds()
	w, h := float32(bounds.Dx()), float32(bounds.Dy())
	if r.tileSize > 0 {
		step := float32(r.tileSize)
		for x := step; x < w; x += step {
			vector.StrokeLine(r.mapImage, x, 0, x, h, 1, r.colors.GridColor, false)
		}
		for y := step; y < h; y += step {
			vector.StrokeLine(r.mapImage, 0, y, w, y, 1, r.colors.GridColor, false)
		}
	}

	if r.path == nil {
		return
	}
	// Сначала окантовка, поверх неё сам коридор
	r.strokePath(r.colors.PathWidth+2*r.colors.StrokeWidth+2, r.colors.PathBorderColor)
	r.strokePath(r.colors.PathWidth, r.colors.PathColor)

	start := r.path.Start()
	end := r.path.Point(r.path.Len() - 1)
	vector.DrawFilledCircle(r.mapImage, float32(start.X), float32(start.Y), 6, entryColor, true)
	vector.DrawFilledCircle(r.mapImage, float32(end.X), float32(end.Y), 6, exitColor, true)
}

// strokePath рисует ломаную пути; круги в вершинах скругляют стыки.
func (r *MapRenderer) strokePath(width float32, clr color.Color) {
	pts := r.path.Points()
	for i, p := range pts {
		vector.DrawFilledCircle(r.mapImage, float32(p.X), float32(p.Y), width/2, clr, true)
		if i == 0 {
			continue
		}
		prev := pts[i-1]
		vector.StrokeLine(r.mapImage, float32(prev.X), float32(prev.Y), float32(p.X), float32(p.Y), width, clr, true)
	}
}

// Draw рисует предрендеренную карту одним вызовом
func (r *MapRenderer) Draw(screen *ebiten.Image) {
	screen.DrawImage(r.mapImage, nil)
}

// Dispose освобождает текстуру карты.
func (r *MapRenderer) Dispose() {
	r.mapImage.Deallocate()
}
