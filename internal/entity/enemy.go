// internal/entity/enemy.go
package entity

import (
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/pathmap"
)

// Enemy — враг, идущий по пути карты.
type Enemy struct {
	ID       types.EntityID
	Type     string
	Name     string
	Pos      pathmap.Vec2
	Angle    float64
	Reward   int
	State    component.Lifecycle
	Health   component.Health
	Velocity component.Velocity
	Slow     component.SlowEffect
	Follower component.PathFollower
	Render   component.Renderable
}

// NewEnemy ставит врага в начало пути. healthMultiplier масштабирует
// максимальное здоровье (бесконечные волны).
func NewEnemy(id types.EntityID, def defs.EnemyDefinition, path *pathmap.Path, healthMultiplier float64) *Enemy {
	if healthMultiplier <= 0 {
		healthMultiplier = 1
	}
	maxHealth := def.Health * healthMultiplier
	e := &Enemy{
		ID:       id,
		Type:     def.ID,
		Name:     def.Name,
		Reward:   def.Reward,
		State:    component.Alive,
		Health:   component.Health{Current: maxHealth, Max: maxHealth},
		Velocity: component.Velocity{Base: def.Speed, Current: def.Speed},
		Follower: component.PathFollower{Path: path},
		Render:   component.Renderable{Color: def.Color.MustRGBA(), Radius: def.Radius},
	}
	if path != nil && path.Len() > 0 {
		e.Pos = path.Start()
	}
	return e
}

// Targetable — по врагу можно стрелять.
func (e *Enemy) Targetable() bool {
	return e.State == component.Alive
}

// Slowed — действует замедление.
func (e *Enemy) Slowed() bool {
	return e.Slow.Active()
}

// HealthFraction для полоски здоровья.
func (e *Enemy) HealthFraction() float64 {
	return e.Health.Fraction()
}

// Advance двигает врага на один тик.
func (e *Enemy) Advance() {
	if e.State != component.Alive {
		return
	}

	if e.Slow.Remaining > 0 {
		e.Slow.Remaining--
		if e.Slow.Remaining == 0 {
			e.Slow.Factor = 0
			e.Velocity.Current = e.Velocity.Base
		}
	}

	next, ok := e.Follower.Next()
	if !ok {
		// путь из одной точки или уже в конце
		e.State = component.Escaped
		return
	}

	if d := next.Sub(e.Pos); d.Len() > 0 {
		e.Angle = d.Angle()
	}

	pos, arrived := e.Pos.StepToward(next, e.Velocity.Current)
	e.Pos = pos
	if arrived {
		e.Follower.Index++
		if e.Follower.IsLast(e.Follower.Index) {
			e.State = component.Escaped
		}
	}
}

// ReceiveDamage вычитает урон. Возвращает true, если этот вызов убил врага.
func (e *Enemy) ReceiveDamage(amount float64) bool {
	if e.State != component.Alive || amount <= 0 {
		return false
	}
	e.Health.Current -= amount
	if e.Health.Current <= 0 {
		e.State = component.Dead
		return true
	}
	return false
}

// ApplySlow всегда перезаписывает текущее замедление.
func (e *Enemy) ApplySlow(factor float64, ticks int) {
	if e.State != component.Alive || ticks <= 0 {
		return
	}
	e.Velocity.Current = e.Velocity.Base * factor
	e.Slow = component.SlowEffect{Remaining: ticks, Factor: factor}
}
