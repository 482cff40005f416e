// component/movement.go
package component

import "go-wave-defense/pkg/pathmap"

// Velocity — базовая и текущая скорость, px за тик.
type Velocity struct {
	Base    float64
	Current float64
}

// PathFollower — путь и индекс последней достигнутой точки.
// Враг идёт к Index+1.
type PathFollower struct {
	Path  *pathmap.Path
	Index int
}

// Next возвращает следующую точку пути.
func (f PathFollower) Next() (pathmap.Vec2, bool) {
	if f.Path == nil || f.Index+1 >= f.Path.Len() {
		return pathmap.Vec2{}, false
	}
	return f.Path.Point(f.Index + 1), true
}

// IsLast — точка i последняя на пути.
func (f PathFollower) IsLast(i int) bool {
	return f.Path == nil || i >= f.Path.Len()-1
}
