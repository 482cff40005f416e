package app

import (
	"testing"
	"testing/fstest"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/event"
	"go-wave-defense/pkg/pathmap"
)

const testTowers = `[{"id":"basic","name":"Sentry","cost":100,"range":150,"fire_interval":40,"damage":15,"color":"#3498db",
	"upgrades":[{"name":"Twin Sentry","cost":100,"range":170,"fire_interval":30,"damage":25,"color":"#2980b9"}]},
	{"id":"sniper","name":"Sniper","cost":350,"range":400,"fire_interval":150,"damage":120,"color":"#95a5a6","upgrades":[]}]`

const testEnemies = `[{"id":"normal","name":"Walker","health":50,"speed":1,"reward":10,"radius":15,"color":"#7d8471"}]`

const testMaps = `[
	{"name":"Short","waypoints":[[0,300],[10,300]],"background":"#000000","path_color":"#111111","path_border":"#222222"},
	{"name":"Void","waypoints":[],"background":"#000000","path_color":"#111111","path_border":"#222222"},
	{"name":"Dot","waypoints":[[5,5]],"background":"#000000","path_color":"#111111","path_border":"#222222"}
]`

func testCatalog(t *testing.T, waves string) *defs.Catalog {
	t.Helper()
	c, err := defs.Load(fstest.MapFS{
		"towers.json":  {Data: []byte(testTowers)},
		"enemies.json": {Data: []byte(testEnemies)},
		"waves.json":   {Data: []byte(waves)},
		"maps.json":    {Data: []byte(testMaps)},
	})
	require.NoError(t, err)
	return c
}

func newTestGame(t *testing.T, settings config.Settings, catalog *defs.Catalog, mapIndex int) (*Game, *event.Recorder) {
	t.Helper()
	settings.Seed = 1
	g, err := NewGame(settings, catalog, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = g.Close() })
	require.NoError(t, g.LoadMap(mapIndex))
	rec := &event.Recorder{}
	g.EventDispatcher.SubscribeAll(rec)
	return g, rec
}

func defaultGame(t *testing.T) (*Game, *event.Recorder) {
	t.Helper()
	catalog, err := defs.LoadDefault()
	require.NoError(t, err)
	return newTestGame(t, config.Default(), catalog, 0)
}

func (g *Game) run(n int) {
	for i := 0; i < n; i++ {
		g.Update()
	}
}

func killAll(g *Game) {
	for _, e := range g.ECS.Enemies() {
		e.ReceiveDamage(e.Health.Current + 1)
	}
}

func TestNewGameStartsWithoutMap(t *testing.T) {
	catalog, err := defs.LoadDefault()
	require.NoError(t, err)
	g, err := NewGame(config.Default(), catalog, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, component.PhaseNoMap, g.Phase())
	assert.Equal(t, 500, g.Money())
	assert.Equal(t, 20, g.Lives())
	assert.ErrorIs(t, g.StartWave(), ErrNoMap)

	g.Update()
	assert.Zero(t, g.Tick())

	_, err = NewGame(config.Settings{}, catalog, zerolog.Nop())
	assert.Error(t, err)
}

func TestCloseReleasesMetrics(t *testing.T) {
	catalog, err := defs.LoadDefault()
	require.NoError(t, err)
	g, err := NewGame(config.Default(), catalog, zerolog.Nop())
	require.NoError(t, err)
	require.NotNil(t, g.metrics.livesReg)
	require.Same(t, g.EventDispatcher, g.metrics.events)

	require.NoError(t, g.Close())
	assert.Nil(t, g.metrics.livesReg)
	assert.Nil(t, g.metrics.events)
	assert.NoError(t, g.Close())

	// события после Close доходят только до оставшихся подписчиков
	rec := &event.Recorder{}
	g.EventDispatcher.SubscribeAll(rec)
	g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{Type: "normal", Reward: 10}})
	assert.Len(t, rec.OfType(event.EnemyKilled), 1)
}

func TestPlaceAndSell(t *testing.T) {
	g, rec := defaultGame(t)

	id, err := g.PlaceTower("basic", 400, 300)
	require.NoError(t, err)
	assert.Equal(t, 400, g.Money())
	require.Len(t, rec.OfType(event.TowerPlaced), 1)

	g.SelectTower(id)
	assert.Equal(t, id, g.Selected())

	refund, err := g.SellSelected()
	require.NoError(t, err)
	assert.Equal(t, 70, refund)
	assert.Equal(t, 470, g.Money())
	assert.Zero(t, g.Selected())
	assert.Empty(t, g.ECS.Towers())

	_, err = g.SellSelected()
	assert.ErrorIs(t, err, ErrNoSelection)
}

func TestPlacementRejections(t *testing.T) {
	g, rec := defaultGame(t)
	_, err := g.PlaceTower("basic", 400, 300)
	require.NoError(t, err)

	tests := []struct {
		name     string
		typeKey  string
		x, y     float64
		expected error
	}{
		{"unknown type", "laser", 400, 400, ErrUnknownTowerType},
		{"out of bounds", "basic", -1, 400, ErrOutOfBounds},
		{"outside field", "basic", 400, 601, ErrOutOfBounds},
		{"on path", "basic", 100, 310, ErrTooCloseToPath},
		{"near path", "basic", 100, 326, ErrTooCloseToPath},
		{"overlapping", "basic", 420, 300, ErrOccupied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			money := g.Money()
			towers := len(g.ECS.Towers())
			_, err := g.PlaceTower(tt.typeKey, tt.x, tt.y)
			assert.ErrorIs(t, err, tt.expected)
			assert.Equal(t, money, g.Money())
			assert.Len(t, g.ECS.Towers(), towers)
		})
	}

	rejected := rec.OfType(event.PlacementRejected)
	require.Len(t, rejected, len(tests))
	data := rejected[0].Data.(event.PlacementRejectedData)
	assert.ErrorIs(t, data.Reason, ErrUnknownTowerType)

	// 100 - 26.67 < 72 от пути: уже можно
	_, err = g.PlaceTower("basic", 100, 328)
	assert.NoError(t, err)
	// соседняя башня ровно через 2 радиуса
	_, err = g.PlaceTower("basic", 440, 300)
	assert.NoError(t, err)
}

func TestPlacementInsufficientFunds(t *testing.T) {
	settings := config.Default()
	settings.StartingMoney = 340
	catalog, err := defs.LoadDefault()
	require.NoError(t, err)
	g, _ := newTestGame(t, settings, catalog, 0)

	_, err = g.PlaceTower("sniper", 400, 300)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, 340, g.Money())
}

func TestUpgradeSelected(t *testing.T) {
	g, rec := newTestGame(t, config.Default(), testCatalog(t, `{"authored":[{"groups":[{"enemy":"normal","count":1}]}]}`), 0)

	assert.ErrorIs(t, g.UpgradeSelected(), ErrNoSelection)

	id, err := g.PlaceTower("basic", 400, 400)
	require.NoError(t, err)
	g.SelectTower(id)

	require.NoError(t, g.UpgradeSelected())
	assert.Equal(t, 300, g.Money())
	tower, _ := g.ECS.Tower(id)
	assert.Equal(t, 1, tower.Level)
	assert.Equal(t, 200, tower.Invested)
	require.Len(t, rec.OfType(event.TowerUpgraded), 1)

	assert.ErrorIs(t, g.UpgradeSelected(), ErrMaxLevel)
	assert.Equal(t, 300, g.Money())

	info, ok := g.SelectedInfo()
	require.True(t, ok)
	assert.Equal(t, "Twin Sentry", info.Name)
	assert.False(t, info.CanUpgrade)
	assert.Equal(t, 140, info.SellPrice)
	assert.InDelta(t, 2.0, info.ShotsPerSecond, 1e-9)
}

func TestUpgradeInsufficientFunds(t *testing.T) {
	settings := config.Default()
	settings.StartingMoney = 150
	g, _ := newTestGame(t, settings, testCatalog(t, `{"authored":[{"groups":[{"enemy":"normal","count":1}]}]}`), 0)

	id, err := g.PlaceTower("basic", 400, 400)
	require.NoError(t, err)
	g.SelectTower(id)

	assert.ErrorIs(t, g.UpgradeSelected(), ErrInsufficientFunds)
	assert.Equal(t, 50, g.Money())
	tower, _ := g.ECS.Tower(id)
	assert.Zero(t, tower.Level)

	info, ok := g.SelectedInfo()
	require.True(t, ok)
	assert.True(t, info.CanUpgrade)
	assert.Equal(t, 100, info.UpgradeCost)
	assert.Equal(t, "Twin Sentry", info.UpgradeName)
}

func TestWaveClearAwardsBonus(t *testing.T) {
	g, rec := defaultGame(t)
	assert.Equal(t, "Wave 1: 5x Walker", g.PreviewNextWave())

	require.NoError(t, g.StartWave())
	assert.Equal(t, 5, g.WaveSystem.QueueLen())
	assert.Equal(t, component.PhaseSpawning, g.Phase())
	assert.ErrorIs(t, g.StartWave(), ErrWaveActive)

	delay := g.WaveSystem.Delay()
	g.run(delay * 5)
	assert.Len(t, g.ECS.Enemies(), 5)
	assert.Equal(t, 5, g.WaveSystem.Spawned())
	assert.Equal(t, component.PhaseDraining, g.Phase())

	killAll(g)
	g.Update()

	assert.Equal(t, 500+5*10+1*10, g.Money())
	assert.Equal(t, component.PhaseIdle, g.Phase())
	assert.Empty(t, g.ECS.Enemies())

	cleared := rec.OfType(event.WaveCleared)
	require.Len(t, cleared, 1)
	assert.Equal(t, event.WaveClearedData{Wave: 1, Bonus: 10}, cleared[0].Data)
	assert.Len(t, rec.OfType(event.EnemyKilled), 5)
	assert.Len(t, rec.OfType(event.WaveStarted), 1)
	assert.Equal(t, "Wave 2: 8x Walker", g.PreviewNextWave())
}

func TestDeadEnemiesAreRemovedNextTick(t *testing.T) {
	g, _ := defaultGame(t)
	require.NoError(t, g.StartWave())
	g.run(g.WaveSystem.Delay())
	require.Len(t, g.ECS.Enemies(), 1)

	killAll(g)
	snap := g.Snapshot()
	assert.Empty(t, snap.Enemies, "dead enemies are not drawn")
	assert.Len(t, g.ECS.Enemies(), 1)

	g.Update()
	assert.Empty(t, g.ECS.Enemies())
	assert.Equal(t, 510, g.Money())
}

func TestTowersKillEnemies(t *testing.T) {
	g, rec := defaultGame(t)
	// у первого отрезка пути (0,300)-(200,300)
	_, err := g.PlaceTower("basic", 100, 360)
	require.NoError(t, err)
	require.NoError(t, g.StartWave())

	for i := 0; i < 2000 && g.Phase() != component.PhaseIdle; i++ {
		g.Update()
	}
	assert.Equal(t, component.PhaseIdle, g.Phase())
	killed := len(rec.OfType(event.EnemyKilled))
	escaped := len(rec.OfType(event.EnemyEscaped))
	assert.Equal(t, 5, killed+escaped)
	assert.Positive(t, killed)
	assert.Equal(t, 20-escaped, g.Lives())
	assert.Equal(t, 400+killed*10+10, g.Money())
}

func TestGameOver(t *testing.T) {
	settings := config.Default()
	settings.StartingLives = 1
	g, rec := newTestGame(t, settings, testCatalog(t, `{"authored":[{"groups":[{"enemy":"normal","count":3}]}]}`), 0)
	g.SetAutoWave(true)
	require.NoError(t, g.StartWave())

	for i := 0; i < 500 && !g.GameOver(); i++ {
		g.Update()
	}
	require.True(t, g.GameOver())
	assert.Equal(t, component.PhaseGameOver, g.Phase())
	assert.Zero(t, g.Lives())
	assert.Zero(t, g.Scheduler.Pending())

	over := rec.OfType(event.GameOver)
	require.Len(t, over, 1)
	assert.Equal(t, event.GameOverData{WavesSurvived: 1}, over[0].Data)

	tick := g.Tick()
	g.run(100)
	assert.Equal(t, tick, g.Tick())
	assert.ErrorIs(t, g.StartWave(), ErrGameOver)
	_, err := g.PlaceTower("basic", 400, 400)
	assert.ErrorIs(t, err, ErrGameOver)
	assert.Empty(t, g.PreviewNextWave())

	g.Reset()
	assert.Equal(t, component.PhaseIdle, g.Phase())
	assert.Equal(t, 1, g.Lives())
	assert.Zero(t, g.Wave())
	assert.Empty(t, g.ECS.Enemies())
	assert.NoError(t, g.StartWave())
}

func TestResetCancelsSpawning(t *testing.T) {
	g, _ := defaultGame(t)
	require.NoError(t, g.StartWave())
	g.run(g.WaveSystem.Delay())
	require.Len(t, g.ECS.Enemies(), 1)
	_, err := g.PlaceTower("basic", 400, 400)
	require.NoError(t, err)

	g.Reset()
	assert.Zero(t, g.Scheduler.Pending())
	assert.Empty(t, g.ECS.Towers())
	assert.Equal(t, 500, g.Money())

	g.run(500)
	assert.Empty(t, g.ECS.Enemies())
	assert.Equal(t, component.PhaseIdle, g.Phase())
}

func TestAutoWave(t *testing.T) {
	g, rec := newTestGame(t, config.Default(), testCatalog(t, `{"authored":[
		{"groups":[{"enemy":"normal","count":1}]},
		{"groups":[{"enemy":"normal","count":2}]}]}`), 0)
	g.SetAutoWave(true)
	assert.True(t, g.AutoWave())

	require.NoError(t, g.StartWave())
	g.run(g.WaveSystem.Delay())
	killAll(g)
	g.Update()
	require.Len(t, rec.OfType(event.WaveCleared), 1)
	assert.Equal(t, 1, g.Scheduler.Pending())

	autoDelay := g.Settings.AutoWaveDelayTicks()
	g.run(autoDelay - 1)
	assert.Equal(t, 1, g.Wave())
	g.Update()
	assert.Equal(t, 2, g.Wave())
	assert.Equal(t, component.PhaseSpawning, g.Phase())
}

func TestDisablingAutoWaveCancelsPendingStart(t *testing.T) {
	g, _ := newTestGame(t, config.Default(), testCatalog(t, `{"authored":[{"groups":[{"enemy":"normal","count":1}]}]}`), 0)
	g.SetAutoWave(true)
	require.NoError(t, g.StartWave())
	g.run(g.WaveSystem.Delay())
	killAll(g)
	g.Update()

	g.SetAutoWave(false)
	g.run(200)
	assert.Equal(t, 1, g.Wave())
	assert.Equal(t, component.PhaseIdle, g.Phase())
}

func TestLoadMap(t *testing.T) {
	catalog := testCatalog(t, `{"authored":[{"groups":[{"enemy":"normal","count":1}]}]}`)
	g, err := NewGame(config.Default(), catalog, zerolog.Nop())
	require.NoError(t, err)

	assert.Error(t, g.LoadMap(1), "map without waypoints")
	assert.ErrorIs(t, g.LoadMap(1), pathmap.ErrEmptyPath)
	assert.ErrorIs(t, g.LoadMap(9), defs.ErrUnknownMap)
	assert.Equal(t, component.PhaseNoMap, g.Phase())

	require.NoError(t, g.LoadMap(2))
	m, ok := g.Map()
	require.True(t, ok)
	assert.Equal(t, "Dot", m.Name)

	rec := &event.Recorder{}
	g.EventDispatcher.SubscribeAll(rec)
	require.NoError(t, g.StartWave())
	g.run(g.WaveSystem.Delay() + 1)
	assert.Len(t, rec.OfType(event.EnemyEscaped), 1)
	assert.Equal(t, 19, g.Lives())

	g.UnloadMap()
	assert.Equal(t, component.PhaseNoMap, g.Phase())
}

func TestSnapshot(t *testing.T) {
	g, _ := defaultGame(t)
	id, err := g.PlaceTower("area", 400, 300)
	require.NoError(t, err)
	g.SelectTower(id)
	require.NoError(t, g.StartWave())
	g.run(g.WaveSystem.Delay())

	s := g.Snapshot()
	assert.Equal(t, 250, s.Money)
	assert.Equal(t, 1, s.Wave)
	assert.Equal(t, component.PhaseSpawning, s.Phase)
	require.Len(t, s.Towers, 1)
	assert.True(t, s.Towers[0].Selected)
	assert.InDelta(t, 160, s.Towers[0].Range, 1e-9)
	require.Len(t, s.Enemies, 1)
	assert.InDelta(t, 1, s.Enemies[0].HealthFraction, 1e-9)
	assert.InDelta(t, 15, s.Enemies[0].Radius, 1e-9)

	id2, ok := g.TowerAt(425, 300)
	assert.True(t, ok)
	assert.Equal(t, id, id2)
	_, ok = g.TowerAt(431, 300)
	assert.False(t, ok)

	g.SelectTower(0)
	_, ok = g.SelectedInfo()
	assert.False(t, ok)
}
