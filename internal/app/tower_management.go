// internal/app/tower_management.go
package app

import (
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/pathmap"
)

// CanPlaceTower проверяет место без изменения состояния.
func (g *Game) CanPlaceTower(typeKey string, x, y float64) error {
	def, ok := g.Catalog.Tower(typeKey)
	if !ok {
		return ErrUnknownTowerType
	}
	if g.path == nil {
		return ErrNoMap
	}
	if g.gameOver {
		return ErrGameOver
	}
	if x < 0 || y < 0 || x > g.Settings.FieldWidth || y > g.Settings.FieldHeight {
		return ErrOutOfBounds
	}
	if g.money < def.Cost {
		return ErrInsufficientFunds
	}
	pos := pathmap.Vec2{X: x, Y: y}
	if g.path.IsNear(pos, g.Settings.PathClearance()) {
		return ErrTooCloseToPath
	}
	for _, t := range g.ECS.Towers() {
		if t.Pos.Dist(pos) < 2*g.Settings.TowerRadius {
			return ErrOccupied
		}
	}
	return nil
}

// PlaceTower ставит башню и списывает её стоимость.
// При отказе состояние не меняется и рассылается PlacementRejected.
func (g *Game) PlaceTower(typeKey string, x, y float64) (types.EntityID, error) {
	if err := g.CanPlaceTower(typeKey, x, y); err != nil {
		g.logger.Debug().Str("tower", typeKey).Float64("x", x).Float64("y", y).Err(err).Msg("Placement rejected")
		g.dispatch(event.PlacementRejected, event.PlacementRejectedData{TowerType: typeKey, X: x, Y: y, Reason: err})
		return 0, err
	}

	def, _ := g.Catalog.Tower(typeKey)
	tower := entity.NewTower(g.ECS.NewEntity(), def, pathmap.Vec2{X: x, Y: y})
	g.ECS.AddTower(tower)
	g.money -= def.Cost

	g.dispatch(event.TowerPlaced, event.TowerPlacedData{ID: tower.ID, Type: typeKey, Cost: def.Cost})
	return tower.ID, nil
}

// TowerAt — башня под точкой (хитбокс шире самой башни).
func (g *Game) TowerAt(x, y float64) (types.EntityID, bool) {
	pos := pathmap.Vec2{X: x, Y: y}
	hitbox := g.Settings.TowerRadius * config.TowerHitboxFactor
	for _, t := range g.ECS.Towers() {
		if t.Pos.Dist(pos) < hitbox {
			return t.ID, true
		}
	}
	return 0, false
}

// SelectTower выбирает башню; 0 или неизвестный ID снимает выбор.
func (g *Game) SelectTower(id types.EntityID) {
	if _, ok := g.ECS.Tower(id); !ok {
		g.selected = 0
		return
	}
	g.selected = id
}

// Selected — выбранная башня, 0 если нет.
func (g *Game) Selected() types.EntityID {
	if _, ok := g.ECS.Tower(g.selected); !ok {
		return 0
	}
	return g.selected
}

func (g *Game) selectedTower() (*entity.Tower, error) {
	t, ok := g.ECS.Tower(g.selected)
	if !ok {
		return nil, ErrNoSelection
	}
	return t, nil
}

// UpgradeSelected списывает цену и улучшает выбранную башню.
func (g *Game) UpgradeSelected() error {
	if g.gameOver {
		return ErrGameOver
	}
	t, err := g.selectedTower()
	if err != nil {
		return err
	}
	cost, ok := t.UpgradeCost()
	if !ok {
		return ErrMaxLevel
	}
	if g.money < cost {
		return ErrInsufficientFunds
	}
	g.money -= cost
	if err := t.Upgrade(); err != nil {
		// уровень проверен выше
		g.money += cost
		return err
	}
	g.dispatch(event.TowerUpgraded, event.TowerUpgradedData{ID: t.ID, Level: t.Level, Cost: cost})
	return nil
}

// SellSelected продаёт выбранную башню и возвращает сумму возврата.
func (g *Game) SellSelected() (int, error) {
	if g.gameOver {
		return 0, ErrGameOver
	}
	t, err := g.selectedTower()
	if err != nil {
		return 0, err
	}
	refund := t.RefundValue(g.Settings.RefundRate)
	g.money += refund
	g.ECS.RemoveTower(t.ID)
	g.selected = 0
	g.dispatch(event.TowerSold, event.TowerSoldData{ID: t.ID, Refund: refund})
	return refund, nil
}
