// internal/system/combat.go
package system

import (
	"go-wave-defense/internal/entity"
)

// CombatSystem ведёт башни: наводка и выстрелы.
type CombatSystem struct {
	ecs             *entity.ECS
	projectileSpeed float64
	slowTicks       int
}

func NewCombatSystem(ecs *entity.ECS, projectileSpeed float64, slowTicks int) *CombatSystem {
	return &CombatSystem{ecs: ecs, projectileSpeed: projectileSpeed, slowTicks: slowTicks}
}

// Update возвращает число выстрелов за тик. Новые снаряды попадают
// в мир сразу и летят в этом же тике.
func (s *CombatSystem) Update() int {
	shots := 0
	for _, t := range s.ecs.Towers() {
		shot, fired := t.Tick(s.ecs)
		if !fired {
			continue
		}
		s.ecs.AddProjectile(entity.NewProjectile(s.ecs.NewEntity(), shot, s.projectileSpeed, s.slowTicks))
		shots++
	}
	return shots
}
