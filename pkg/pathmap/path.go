// pkg/pathmap/path.go
package pathmap

import (
	"errors"
	"fmt"

	geom "github.com/peterstace/simplefeatures/geom"
)

// ErrEmptyPath is returned when a path is built without waypoints.
var ErrEmptyPath = errors.New("path has no waypoints")

// Path — неизменяемая ломаная, по которой идут враги.
// Один экземпляр разделяется всеми врагами карты.
type Path struct {
	points []Vec2
	// line есть только у пути хотя бы из двух различных точек
	line    geom.LineString
	hasLine bool
	// cumulative[i] - длина пути от начала до points[i]
	cumulative []float64
}

// NewPath builds a path from an ordered list of waypoints. Repeated
// consecutive waypoints are kept; a path whose waypoints all coincide
// behaves like a single point.
func NewPath(points []Vec2) (*Path, error) {
	if len(points) == 0 {
		return nil, ErrEmptyPath
	}
	p := &Path{
		points:     append([]Vec2(nil), points...),
		cumulative: make([]float64, len(points)),
	}
	for i := 1; i < len(points); i++ {
		p.cumulative[i] = p.cumulative[i-1] + points[i-1].Dist(points[i])
	}
	if p.cumulative[len(points)-1] == 0 {
		return p, nil
	}

	flat := make([]float64, 0, len(points)*2)
	for _, pt := range points {
		flat = append(flat, pt.X, pt.Y)
	}
	line, err := geom.NewLineString(geom.NewSequence(flat, geom.DimXY))
	if err != nil {
		return nil, fmt.Errorf("build path line: %w", err)
	}
	p.line = line
	p.hasLine = true
	return p, nil
}

// Len returns the number of waypoints.
func (p *Path) Len() int {
	return len(p.points)
}

// Point returns the i-th waypoint.
func (p *Path) Point(i int) Vec2 {
	return p.points[i]
}

// Start returns the first waypoint.
func (p *Path) Start() Vec2 {
	return p.points[0]
}

// Points returns a copy of the waypoints.
func (p *Path) Points() []Vec2 {
	return append([]Vec2(nil), p.points...)
}

// Length returns the total length of the corridor.
func (p *Path) Length() float64 {
	if !p.hasLine {
		return 0
	}
	return p.line.Length()
}

// DistanceTo returns the shortest distance from pt to the corridor polyline.
func (p *Path) DistanceTo(pt Vec2) float64 {
	if !p.hasLine {
		return pt.Dist(p.points[0])
	}
	seq := p.line.Coordinates()
	best := -1.0
	prev := seq.GetXY(0)
	for i := 1; i < seq.Length(); i++ {
		cur := seq.GetXY(i)
		d := DistToSegment(pt, Vec2{X: prev.X, Y: prev.Y}, Vec2{X: cur.X, Y: cur.Y})
		if best < 0 || d < best {
			best = d
		}
		prev = cur
	}
	return best
}

// IsNear reports whether pt lies closer than threshold to the path.
func (p *Path) IsNear(pt Vec2, threshold float64) bool {
	return p.DistanceTo(pt) < threshold
}

// Progress returns the fraction of the path covered by a walker that last
// reached waypoint index and currently stands at pos.
func (p *Path) Progress(index int, pos Vec2) float64 {
	total := p.Length()
	if total == 0 {
		return 1
	}
	if index >= len(p.points)-1 {
		return 1
	}
	if index < 0 {
		index = 0
	}
	done := p.cumulative[index] + p.points[index].Dist(pos)
	if done > total {
		return 1
	}
	return done / total
}
