// internal/system/projectile.go
package system

import (
	"go-wave-defense/internal/entity"
	"go-wave-defense/pkg/pathmap"
)

// Impact — точка попадания снаряда, для эффектов на экране.
type Impact struct {
	Pos    pathmap.Vec2
	Radius float64
	Hits   int
}

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

// Update двигает снаряды и убирает отработавшие.
func (s *ProjectileSystem) Update() []Impact {
	var impacts []Impact
	for _, p := range s.ecs.Projectiles() {
		hits, resolved := p.Advance(s.ecs)
		if resolved {
			impacts = append(impacts, Impact{Pos: p.Pos, Radius: p.Payload.SplashRadius, Hits: len(hits)})
		}
	}
	s.ecs.RemoveSpentProjectiles()
	return impacts
}
