// internal/entity/ecs.go
package entity

import (
	"go-wave-defense/internal/types"
)

// ECS владеет всеми сущностями мира. Коллекции упорядочены по порядку
// добавления, индексы по ID дают слабые ссылки для башен и снарядов.
type ECS struct {
	NextID types.EntityID

	enemies     []*Enemy
	enemyIndex  map[types.EntityID]*Enemy
	towers      []*Tower
	towerIndex  map[types.EntityID]*Tower
	projectiles []*Projectile
}

func NewECS() *ECS {
	return &ECS{
		NextID:     1,
		enemyIndex: make(map[types.EntityID]*Enemy),
		towerIndex: make(map[types.EntityID]*Tower),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Clear удаляет все сущности. Счётчик ID не сбрасывается,
// чтобы старые слабые ссылки не совпали с новыми сущностями.
func (ecs *ECS) Clear() {
	ecs.enemies = nil
	ecs.towers = nil
	ecs.projectiles = nil
	clear(ecs.enemyIndex)
	clear(ecs.towerIndex)
}

func (ecs *ECS) AddEnemy(e *Enemy) {
	ecs.enemies = append(ecs.enemies, e)
	ecs.enemyIndex[e.ID] = e
}

func (ecs *ECS) Enemy(id types.EntityID) (*Enemy, bool) {
	e, ok := ecs.enemyIndex[id]
	return e, ok
}

// Enemies возвращает внутренний срез: только для чтения.
func (ecs *ECS) Enemies() []*Enemy {
	return ecs.enemies
}

// RemoveEnemies удаляет врагов, для которых drop вернул true, сохраняя порядок.
func (ecs *ECS) RemoveEnemies(drop func(*Enemy) bool) []*Enemy {
	var removed []*Enemy
	kept := ecs.enemies[:0]
	for _, e := range ecs.enemies {
		if drop(e) {
			removed = append(removed, e)
			delete(ecs.enemyIndex, e.ID)
			continue
		}
		kept = append(kept, e)
	}
	clear(ecs.enemies[len(kept):])
	ecs.enemies = kept
	return removed
}

func (ecs *ECS) AddTower(t *Tower) {
	ecs.towers = append(ecs.towers, t)
	ecs.towerIndex[t.ID] = t
}

func (ecs *ECS) Tower(id types.EntityID) (*Tower, bool) {
	t, ok := ecs.towerIndex[id]
	return t, ok
}

func (ecs *ECS) Towers() []*Tower {
	return ecs.towers
}

func (ecs *ECS) RemoveTower(id types.EntityID) bool {
	if _, ok := ecs.towerIndex[id]; !ok {
		return false
	}
	delete(ecs.towerIndex, id)
	for i, t := range ecs.towers {
		if t.ID == id {
			ecs.towers = append(ecs.towers[:i], ecs.towers[i+1:]...)
			break
		}
	}
	return true
}

func (ecs *ECS) AddProjectile(p *Projectile) {
	ecs.projectiles = append(ecs.projectiles, p)
}

func (ecs *ECS) Projectiles() []*Projectile {
	return ecs.projectiles
}

// RemoveSpentProjectiles удаляет отработавшие снаряды и возвращает их число.
func (ecs *ECS) RemoveSpentProjectiles() int {
	kept := ecs.projectiles[:0]
	for _, p := range ecs.projectiles {
		if !p.Spent {
			kept = append(kept, p)
		}
	}
	n := len(ecs.projectiles) - len(kept)
	clear(ecs.projectiles[len(kept):])
	ecs.projectiles = kept
	return n
}
