// internal/entity/tower.go
package entity

import (
	"errors"
	"math"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/types"
	"go-wave-defense/internal/utils"
	"go-wave-defense/pkg/pathmap"
)

var ErrMaxLevel = errors.New("tower is at max level")

// EnemyIndex — доступ к живой коллекции врагов.
type EnemyIndex interface {
	Enemy(id types.EntityID) (*Enemy, bool)
	Enemies() []*Enemy
}

// Shot — выстрел башни: всё, что нужно для создания снаряда.
type Shot struct {
	Tower     types.EntityID
	Origin    pathmap.Vec2
	Target    types.EntityID
	TargetPos pathmap.Vec2
	Payload   component.Payload
	Color     defs.HexColor
}

// Tower — установленная игроком башня.
type Tower struct {
	ID       types.EntityID
	Type     string
	Pos      pathmap.Vec2
	Level    int
	Stats    defs.TowerStats
	Invested int
	Combat   component.Combat
	Turret   component.Turret
	Render   component.Renderable

	upgrades []defs.UpgradeTier
}

// NewTower строит башню базового уровня. Стоимость уже учтена в Invested.
func NewTower(id types.EntityID, def defs.TowerDefinition, pos pathmap.Vec2) *Tower {
	t := &Tower{
		ID:       id,
		Type:     def.ID,
		Pos:      pos,
		Stats:    def.TowerStats,
		Invested: def.Cost,
		Turret:   component.Turret{Spin: def.Spin},
		upgrades: def.Upgrades,
	}
	t.Render = component.Renderable{Color: t.Stats.Color.MustRGBA(), Radius: config.TowerRadius}
	return t
}

// MaxLevel — уровень после всех улучшений.
func (t *Tower) MaxLevel() int {
	return len(t.upgrades)
}

func (t *Tower) inRange(e *Enemy) bool {
	return t.Pos.Dist(e.Pos) <= t.Stats.Range
}

// Retarget держит текущую цель, пока она жива и не дальше радиуса,
// иначе берёт ближайшую живую строго внутри радиуса. При равенстве
// побеждает первая в хранилище.
func (t *Tower) Retarget(enemies EnemyIndex) {
	if t.Turret.Target != 0 {
		if e, ok := enemies.Enemy(t.Turret.Target); ok && e.Targetable() && t.inRange(e) {
			return
		}
	}
	t.Turret.Target = 0
	best := t.Stats.Range
	for _, e := range enemies.Enemies() {
		if !e.Targetable() {
			continue
		}
		if d := t.Pos.Dist(e.Pos); d < best {
			best = d
			t.Turret.Target = e.ID
		}
	}
}

// Aim поворачивает голову к цели; spin-башни просто вращаются.
func (t *Tower) Aim(enemies EnemyIndex) {
	if t.Turret.Spin {
		t.Turret.Angle = utils.NormalizeAngle(t.Turret.Angle + config.TeslaSpinPerTick)
		return
	}
	if t.Turret.Target == 0 {
		return
	}
	if e, ok := enemies.Enemy(t.Turret.Target); ok {
		if d := e.Pos.Sub(t.Pos); d.Len() > 0 {
			t.Turret.Angle = d.Angle()
		}
	}
}

// Tick — один тик башни: перезарядка, цель, наводка, выстрел.
func (t *Tower) Tick(enemies EnemyIndex) (Shot, bool) {
	t.Combat.Tick()
	t.Retarget(enemies)
	t.Aim(enemies)

	if t.Turret.Target == 0 || !t.Combat.Ready() {
		return Shot{}, false
	}
	target, ok := enemies.Enemy(t.Turret.Target)
	if !ok {
		return Shot{}, false
	}
	t.Combat.Cooldown = t.Stats.FireInterval
	return Shot{
		Tower:     t.ID,
		Origin:    t.Pos,
		Target:    target.ID,
		TargetPos: target.Pos,
		Payload: component.Payload{
			Damage:       t.Stats.Damage,
			SlowFactor:   t.Stats.SlowFactor,
			SplashRadius: t.Stats.SplashRadius,
		},
		Color: t.Stats.Color,
	}, true
}

// UpgradeCost — цена следующего уровня; false на максимуме.
func (t *Tower) UpgradeCost() (int, bool) {
	if t.Level >= len(t.upgrades) {
		return 0, false
	}
	return t.upgrades[t.Level].Cost, true
}

// Upgrade применяет следующий уровень целиком. Деньги не проверяет.
func (t *Tower) Upgrade() error {
	if t.Level >= len(t.upgrades) {
		return ErrMaxLevel
	}
	tier := t.upgrades[t.Level]
	t.Stats = tier.TowerStats
	t.Invested += tier.Cost
	t.Level++
	t.Render.Color = t.Stats.Color.MustRGBA()
	return nil
}

// RefundValue — floor(вложено × rate).
func (t *Tower) RefundValue(rate float64) int {
	return int(math.Floor(float64(t.Invested) * rate))
}
