// internal/entity/projectile.go
package entity

import (
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/pathmap"
)

// Projectile — самонаводящийся снаряд.
type Projectile struct {
	ID        types.EntityID
	Origin    pathmap.Vec2
	Pos       pathmap.Vec2
	Target    types.EntityID
	LastKnown pathmap.Vec2
	Payload   component.Payload
	Speed     float64
	SlowTicks int
	Angle     float64
	Spent     bool
	Color     defs.HexColor
}

// NewProjectile создаёт снаряд из выстрела башни.
func NewProjectile(id types.EntityID, shot Shot, speed float64, slowTicks int) *Projectile {
	return &Projectile{
		ID:        id,
		Origin:    shot.Origin,
		Pos:       shot.Origin,
		Target:    shot.Target,
		LastKnown: shot.TargetPos,
		Payload:   shot.Payload,
		Speed:     speed,
		SlowTicks: slowTicks,
		Angle:     shot.TargetPos.Sub(shot.Origin).Angle(),
		Color:     shot.Color,
	}
}

// Advance двигает снаряд. При попадании возвращает задетых врагов и
// resolved = true; после этого снаряд инертен.
func (p *Projectile) Advance(enemies EnemyIndex) (hits []types.EntityID, resolved bool) {
	if p.Spent {
		return nil, false
	}

	if e, ok := enemies.Enemy(p.Target); ok && e.Targetable() {
		p.LastKnown = e.Pos
	}

	if d := p.LastKnown.Sub(p.Pos); d.Len() > 0 {
		p.Angle = d.Angle()
	}
	pos, arrived := p.Pos.StepToward(p.LastKnown, p.Speed)
	p.Pos = pos
	if !arrived {
		return nil, false
	}

	hits = p.impact(enemies)
	p.Spent = true
	return hits, true
}

func (p *Projectile) impact(enemies EnemyIndex) []types.EntityID {
	if p.Payload.Splash() {
		var hits []types.EntityID
		for _, e := range enemies.Enemies() {
			if !e.Targetable() || e.Pos.Dist(p.Pos) > p.Payload.SplashRadius {
				continue
			}
			p.hit(e)
			hits = append(hits, e.ID)
		}
		return hits
	}

	e, ok := enemies.Enemy(p.Target)
	if !ok || !e.Targetable() {
		return nil
	}
	p.hit(e)
	return []types.EntityID{e.ID}
}

func (p *Projectile) hit(e *Enemy) {
	// замедление до урона: мёртвого уже не замедлить
	if p.Payload.Slows() {
		e.ApplySlow(p.Payload.SlowFactor, p.SlowTicks)
	}
	e.ReceiveDamage(p.Payload.Damage)
}
