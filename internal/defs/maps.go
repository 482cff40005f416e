// internal/defs/maps.go
package defs

import (
	"go-wave-defense/pkg/pathmap"
)

// MapDefinition — карта: ломаная коридора и цвета отрисовки.
type MapDefinition struct {
	Name       string       `json:"name"`
	Waypoints  [][2]float64 `json:"waypoints"`
	Background HexColor     `json:"background"`
	PathColor  HexColor     `json:"path_color"`
	PathBorder HexColor     `json:"path_border"`
}

// Path строит путь врагов. Пустой список точек даёт pathmap.ErrEmptyPath.
func (m MapDefinition) Path() (*pathmap.Path, error) {
	points := make([]pathmap.Vec2, len(m.Waypoints))
	for i, wp := range m.Waypoints {
		points[i] = pathmap.Vec2{X: wp[0], Y: wp[1]}
	}
	return pathmap.NewPath(points)
}
