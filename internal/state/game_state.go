// internal/state/game_state.go
package state

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"

	"go-wave-defense/internal/app"
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/ui"
	"go-wave-defense/pkg/render"
)

const (
	feedSize     = 6
	feedTTLTicks = 240
)

var towerKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9}

// GameState — состояние игры на загруженной карте.
type GameState struct {
	sm     *StateMachine
	game   *app.Game
	logger zerolog.Logger

	mapRenderer *render.MapRenderer
	world       *render.WorldRenderer
	side        *ui.SidePanel
	infoPanel   *ui.InfoPanel
	feed        *ui.MessageFeed

	selectedType string // тип башни для постройки, "" — режим выбора
	snap         app.Snapshot
}

// NewGameState ожидает игру с уже загруженной картой.
func NewGameState(sm *StateMachine, game *app.Game, logger zerolog.Logger) *GameState {
	gs := &GameState{
		sm:        sm,
		game:      game,
		logger:    logger,
		world:     render.NewWorldRenderer(),
		side:      ui.NewSidePanel(game.Catalog),
		infoPanel: ui.NewInfoPanel(),
		feed:      ui.NewMessageFeed(feedSize, feedTTLTicks),
	}
	if def, ok := game.Map(); ok {
		gs.mapRenderer = render.NewMapRenderer(game.Path(), render.MapColorsFor(def), config.TileSize, config.FieldWidth, config.FieldHeight)
		gs.side.SetMap(def.Name)
	}
	gs.snap = game.Snapshot()
	return gs
}

func (g *GameState) Enter() {
	g.game.EventDispatcher.SubscribeAll(g.feed)
	g.side.Pause.SetPaused(false)
}

func (g *GameState) Exit() {
	g.game.EventDispatcher.UnsubscribeAll(g.feed)
}

func (g *GameState) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.pause()
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if g.selectedType != "" || g.game.Selected() != 0 {
			g.clearSelection()
		} else {
			g.backToMenu()
			return nil
		}
	}
	g.handleKeys()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		switch {
		case g.side.Contains(x, y):
			if g.handleSideClick(g.side.HandleClick(x, y)) {
				return nil
			}
		case g.infoPanel.Contains(x, y):
			g.handlePanelClick(g.infoPanel.HandleClick(x, y))
		default:
			g.handleFieldClick(x, y)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.clearSelection()
	}

	// Симуляция: несколько тиков за кадр при ускорении
	for i := 0; i < g.side.Speed.Multiplier(); i++ {
		g.game.Update()
		g.world.Update(g.game.Impacts())
	}

	g.feed.Update()
	if info, ok := g.game.SelectedInfo(); ok {
		g.infoPanel.SetInfo(info)
	} else {
		g.infoPanel.Hide()
	}
	g.infoPanel.Update()

	g.snap = g.game.Snapshot()
	g.side.Sync(g.snap, g.selectedType, g.game.PreviewNextWave())
	return nil
}

func (g *GameState) handleKeys() {
	ids := g.side.TowerIDs()
	for i, key := range towerKeys {
		if i < len(ids) && inpututil.IsKeyJustPressed(key) {
			g.selectTowerType(ids[i])
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.startWave()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.game.SetAutoWave(!g.game.AutoWave())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		g.upgrade()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.sell()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.side.Speed.ToggleState()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && g.game.GameOver() {
		g.restart()
	}
}

// handleSideClick возвращает true, если состояние сменилось.
func (g *GameState) handleSideClick(action ui.SideAction) bool {
	switch action.Kind {
	case ui.SideSelectTower:
		g.selectTowerType(action.Tower)
	case ui.SideStartWave:
		if g.game.GameOver() {
			g.restart()
		} else {
			g.startWave()
		}
	case ui.SideToggleAutoWave:
		g.game.SetAutoWave(!g.game.AutoWave())
	case ui.SideSpeed:
		g.side.Speed.ToggleState()
	case ui.SidePause:
		g.pause()
		return true
	case ui.SideMenu:
		g.backToMenu()
		return true
	}
	return false
}

func (g *GameState) handlePanelClick(action ui.PanelAction) {
	switch action {
	case ui.PanelUpgrade:
		g.upgrade()
	case ui.PanelSell:
		g.sell()
	case ui.PanelClose:
		g.game.SelectTower(0)
	}
}

// handleFieldClick: клик по башне выбирает её, по пустому месту ставит
// выбранный тип башни либо снимает выбор.
func (g *GameState) handleFieldClick(x, y int) {
	fx, fy := float64(x), float64(y)
	if id, ok := g.game.TowerAt(fx, fy); ok {
		g.selectedType = ""
		g.game.SelectTower(id)
		return
	}
	if g.selectedType == "" {
		g.game.SelectTower(0)
		return
	}
	// Отказ приходит в ленту через PlacementRejected
	if id, err := g.game.PlaceTower(g.selectedType, fx, fy); err == nil {
		g.logger.Debug().Uint64("id", uint64(id)).Str("tower", g.selectedType).Msg("Tower placed")
	}
}

func (g *GameState) selectTowerType(id string) {
	g.selectedType = id
	g.game.SelectTower(0)
}

func (g *GameState) clearSelection() {
	g.selectedType = ""
	g.game.SelectTower(0)
}

func (g *GameState) startWave() {
	err := g.game.StartWave()
	switch {
	case err == nil:
	case errors.Is(err, app.ErrWaveActive):
		// повторное нажатие во время волны
	default:
		g.feed.PushError(err)
	}
}

func (g *GameState) upgrade() {
	if err := g.game.UpgradeSelected(); err != nil {
		g.feed.PushError(err)
	}
}

func (g *GameState) sell() {
	if _, err := g.game.SellSelected(); err != nil {
		g.feed.PushError(err)
	}
}

func (g *GameState) restart() {
	g.game.Reset()
	g.world.Reset()
	g.feed.Clear()
	g.clearSelection()
	g.logger.Info().Msg("Game restarted")
}

func (g *GameState) pause() {
	g.side.Pause.SetPaused(true)
	g.sm.SetState(NewPauseState(g.sm, g))
}

func (g *GameState) backToMenu() {
	g.game.UnloadMap()
	if g.mapRenderer != nil {
		g.mapRenderer.Dispose()
	}
	g.sm.SetState(NewMenuState(g.sm, g.game, g.logger))
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	if g.mapRenderer != nil {
		g.mapRenderer.Draw(screen)
	}
	g.world.Draw(screen, g.snap)
	g.drawGhost(screen)

	g.feed.Draw(screen, 10, config.FieldHeight-20)
	g.infoPanel.Draw(screen)
	g.side.Draw(screen, g.snap, g.game.Settings.StartingLives)

	if g.snap.Phase == component.PhaseGameOver {
		drawGameOver(screen, g.snap.Wave)
	}
}

// drawGhost — силуэт выбранной башни под курсором.
func (g *GameState) drawGhost(screen *ebiten.Image) {
	if g.selectedType == "" {
		return
	}
	x, y := ebiten.CursorPosition()
	if x >= config.FieldWidth || g.infoPanel.Contains(x, y) {
		return
	}
	def, ok := g.game.Catalog.Tower(g.selectedType)
	if !ok {
		return
	}
	fx, fy := float64(x), float64(y)
	valid := g.game.CanPlaceTower(g.selectedType, fx, fy) == nil
	render.DrawPlacementGhost(screen, fx, fy, def.Range, g.game.Settings.TowerRadius, valid)
}

func drawGameOver(screen *ebiten.Image, waves int) {
	vector.DrawFilledRect(screen, 0, 0, config.FieldWidth, config.FieldHeight, color.NRGBA{0, 0, 0, 160}, false)
	cx, cy := float64(config.FieldWidth)/2, float64(config.FieldHeight)/2
	ui.DrawTextCentered(screen, "GAME OVER", cx, cy-20, config.HealthLowColor)
	ui.DrawTextCentered(screen, fmt.Sprintf("Waves survived: %d", waves), cx, cy, config.TextLightColor)
	ui.DrawTextCentered(screen, "R to restart, Esc for menu", cx, cy+20, config.TextDimColor)
}
