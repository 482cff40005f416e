// internal/system/movement.go
package system

import (
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/entity"
)

// MovementSystem двигает врагов и собирает тех, кто погиб или дошёл до конца.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update() {
	for _, e := range s.ecs.Enemies() {
		e.Advance()
	}
}

// Collect удаляет из мира мёртвых и сбежавших врагов.
func (s *MovementSystem) Collect() (escaped, killed []*entity.Enemy) {
	removed := s.ecs.RemoveEnemies(func(e *entity.Enemy) bool {
		return e.State != component.Alive
	})
	for _, e := range removed {
		if e.State == component.Escaped {
			escaped = append(escaped, e)
		} else {
			killed = append(killed, e)
		}
	}
	return escaped, killed
}
