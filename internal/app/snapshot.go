// internal/app/snapshot.go
package app

import (
	"image/color"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/pathmap"
)

type EnemyView struct {
	ID             types.EntityID
	Type           string
	Pos            pathmap.Vec2
	Angle          float64
	Radius         float64
	HealthFraction float64
	Slowed         bool
	Color          color.RGBA
}

type TowerView struct {
	ID       types.EntityID
	Type     string
	Name     string
	Pos      pathmap.Vec2
	Angle    float64
	Radius   float64
	Range    float64
	Level    int
	Selected bool
	Color    color.RGBA
}

type ProjectileView struct {
	ID     types.EntityID
	Pos    pathmap.Vec2
	Angle  float64
	Splash bool
	Slows  bool
	Color  color.RGBA
}

// Snapshot — состояние мира для отрисовки. Копия: UI не держит
// ссылок на сущности.
type Snapshot struct {
	Tick        uint64
	Phase       component.GamePhase
	Money       int
	Lives       int
	Wave        int
	AutoWave    bool
	Enemies     []EnemyView
	Towers      []TowerView
	Projectiles []ProjectileView
}

func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:     g.tick,
		Phase:    g.Phase(),
		Money:    g.money,
		Lives:    g.lives,
		Wave:     g.WaveSystem.Wave(),
		AutoWave: g.autoWave,
	}
	for _, e := range g.ECS.Enemies() {
		if !e.Targetable() {
			continue
		}
		s.Enemies = append(s.Enemies, EnemyView{
			ID:             e.ID,
			Type:           e.Type,
			Pos:            e.Pos,
			Angle:          e.Angle,
			Radius:         e.Render.Radius,
			HealthFraction: e.HealthFraction(),
			Slowed:         e.Slowed(),
			Color:          e.Render.Color,
		})
	}
	selected := g.Selected()
	for _, t := range g.ECS.Towers() {
		s.Towers = append(s.Towers, TowerView{
			ID:       t.ID,
			Type:     t.Type,
			Name:     t.Stats.Name,
			Pos:      t.Pos,
			Angle:    t.Turret.Angle,
			Radius:   t.Render.Radius,
			Range:    t.Stats.Range,
			Level:    t.Level,
			Selected: t.ID == selected,
			Color:    t.Render.Color,
		})
	}
	for _, p := range g.ECS.Projectiles() {
		s.Projectiles = append(s.Projectiles, ProjectileView{
			ID:     p.ID,
			Pos:    p.Pos,
			Angle:  p.Angle,
			Splash: p.Payload.Splash(),
			Slows:  p.Payload.Slows(),
			Color:  p.Color.MustRGBA(),
		})
	}
	return s
}

// TowerInfo — данные панели выбранной башни.
type TowerInfo struct {
	ID             types.EntityID
	Type           string
	Name           string
	Level          int
	MaxLevel       int
	Damage         float64
	ShotsPerSecond float64
	Range          float64
	SlowFactor     float64
	SplashRadius   float64
	UpgradeCost    int
	UpgradeName    string
	CanUpgrade     bool // false на максимальном уровне
	SellPrice      int
}

// SelectedInfo — false, если ничего не выбрано.
func (g *Game) SelectedInfo() (TowerInfo, bool) {
	t, err := g.selectedTower()
	if err != nil {
		return TowerInfo{}, false
	}
	info := TowerInfo{
		ID:             t.ID,
		Type:           t.Type,
		Name:           t.Stats.Name,
		Level:          t.Level,
		MaxLevel:       t.MaxLevel(),
		Damage:         t.Stats.Damage,
		ShotsPerSecond: t.Stats.ShotsPerSecond(g.Settings.TicksPerSecond),
		Range:          t.Stats.Range,
		SlowFactor:     t.Stats.SlowFactor,
		SplashRadius:   t.Stats.SplashRadius,
		SellPrice:      t.RefundValue(g.Settings.RefundRate),
	}
	info.UpgradeCost, info.CanUpgrade = t.UpgradeCost()
	if info.CanUpgrade {
		if def, ok := g.Catalog.Tower(t.Type); ok {
			info.UpgradeName = def.Upgrades[t.Level].Name
		}
	}
	return info, true
}

// PreviewNextWave — строка превью следующей волны, "" после конца игры.
func (g *Game) PreviewNextWave() string {
	if g.gameOver {
		return ""
	}
	w, err := g.WaveSystem.Preview(g.WaveSystem.Wave() + 1)
	if err != nil {
		g.logger.Error().Err(err).Msg("Wave preview failed")
		return ""
	}
	return g.Catalog.Describe(w)
}
