// pkg/pathmap/vec.go
package pathmap

import "math"

// Vec2 — точка или вектор на игровом поле (пиксели).
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Len returns the length of the vector.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Dist returns the euclidean distance between two points.
func (v Vec2) Dist(o Vec2) float64 {
	return o.Sub(v).Len()
}

// Angle returns the direction of the vector in radians.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// StepToward moves from v toward target by at most step.
// arrived is true when the remaining distance is shorter than step; in that
// case the returned point is target itself. A zero distance counts as arrived.
func (v Vec2) StepToward(target Vec2, step float64) (next Vec2, arrived bool) {
	d := target.Sub(v)
	dist := d.Len()
	if dist < step || dist == 0 {
		return target, true
	}
	return v.Add(d.Scale(step / dist)), false
}

// DistToSegment returns the shortest distance from p to the segment a-b.
// A degenerate segment (a == b) is treated as a point.
func DistToSegment(p, a, b Vec2) float64 {
	ab := b.Sub(a)
	l2 := ab.X*ab.X + ab.Y*ab.Y
	if l2 == 0 {
		return p.Dist(a)
	}
	t := ((p.X-a.X)*ab.X + (p.Y-a.Y)*ab.Y) / l2
	t = math.Max(0, math.Min(1, t))
	return p.Dist(a.Add(ab.Scale(t)))
}
