// internal/app/game.go
package app

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/system"
	"go-wave-defense/internal/types"
	"go-wave-defense/internal/utils"
	"go-wave-defense/pkg/pathmap"
)

// Game — мир симуляции: сущности, экономика, волны и поверхность управления.
// Все методы вызываются с одного потока (цикл Update).
type Game struct {
	Settings         config.Settings
	Catalog          *defs.Catalog
	ECS              *entity.ECS
	Scheduler        *system.Scheduler
	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	WaveSystem       *system.WaveSystem
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService

	logger  zerolog.Logger
	metrics *gameMetrics

	// Game state
	mapIndex    int
	mapDef      defs.MapDefinition
	path        *pathmap.Path
	money       int
	lives       int
	tick        uint64
	gameOver    bool
	autoWave    bool
	autoWaveJob system.JobID
	selected    types.EntityID
	impacts     []system.Impact
}

// NewGame initializes a new game instance without a map.
func NewGame(settings config.Settings, catalog *defs.Catalog, logger zerolog.Logger) (*Game, error) {
	if catalog == nil {
		return nil, errors.New("catalog cannot be nil")
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	ecs := entity.NewECS()
	scheduler := system.NewScheduler()
	rng := utils.NewPRNGService(settings.Seed)
	g := &Game{
		Settings:         settings,
		Catalog:          catalog,
		ECS:              ecs,
		Scheduler:        scheduler,
		MovementSystem:   system.NewMovementSystem(ecs),
		CombatSystem:     system.NewCombatSystem(ecs, settings.ProjectileSpeed, settings.SlowDurationTicks),
		ProjectileSystem: system.NewProjectileSystem(ecs),
		EventDispatcher:  event.NewDispatcher(),
		Rng:              rng,
		logger:           logger,
		mapIndex:         -1,
		autoWave:         settings.AutoWave,
	}
	g.WaveSystem = system.NewWaveSystem(ecs, catalog, scheduler, rng, settings.SpawnDelayTicks, logger)

	metrics, err := newGameMetrics(g)
	if err != nil {
		return nil, err
	}
	g.metrics = metrics
	g.metrics.subscribe(g.EventDispatcher)

	g.logger.Debug().Int64("seed", rng.Seed()).Msg("Game created")
	g.Reset()
	return g, nil
}

// Close освобождает колбэк метрик и подписки игры. После Close игру
// больше не используют.
func (g *Game) Close() error {
	g.Scheduler.CancelAll()
	return g.metrics.close()
}

// LoadMap загружает карту каталога и сбрасывает мир.
// Карта без точек пути — фатальная ошибка данных.
func (g *Game) LoadMap(index int) error {
	def, err := g.Catalog.Map(index)
	if err != nil {
		return err
	}
	path, err := def.Path()
	if err != nil {
		return fmt.Errorf("map %q: %w", def.Name, err)
	}
	if path.Len() == 1 {
		g.logger.Warn().Str("map", def.Name).Msg("Map path has a single waypoint, enemies will escape immediately")
	}

	g.mapIndex = index
	g.mapDef = def
	g.path = path
	g.WaveSystem.SetPath(path)
	g.Reset()

	g.logger.Info().
		Str("map", def.Name).
		Int("waypoints", path.Len()).
		Float64("length", path.Length()).
		Msg("Map loaded")
	return nil
}

// UnloadMap возвращает мир в состояние "карта не выбрана" (выход в меню).
func (g *Game) UnloadMap() {
	g.mapIndex = -1
	g.mapDef = defs.MapDefinition{}
	g.path = nil
	g.WaveSystem.SetPath(nil)
	g.Reset()
}

// Reset — стартовые деньги и жизни, волна 0, пустой мир.
// Все отложенные задачи снимаются.
func (g *Game) Reset() {
	g.Scheduler.CancelAll()
	g.ECS.Clear()
	g.WaveSystem.Reset()
	g.money = g.Settings.StartingMoney
	g.lives = g.Settings.StartingLives
	g.tick = 0
	g.gameOver = false
	g.autoWaveJob = 0
	g.selected = 0
	g.impacts = nil
}

// Update продвигает симуляцию на один тик.
func (g *Game) Update() {
	if g.path == nil || g.gameOver {
		return
	}
	g.tick++
	g.Scheduler.Step()

	// 1. враги
	g.MovementSystem.Update()
	escaped, killed := g.MovementSystem.Collect()
	for _, e := range killed {
		g.money += e.Reward
		g.dispatch(event.EnemyKilled, event.EnemyKilledData{ID: e.ID, Type: e.Type, Reward: e.Reward})
	}
	for _, e := range escaped {
		g.lives--
		g.dispatch(event.EnemyEscaped, event.EnemyEscapedData{ID: e.ID, Type: e.Type, LivesLeft: g.lives})
		if g.lives <= 0 {
			g.endGame()
			return
		}
	}

	// 2. башни, 3. снаряды
	g.CombatSystem.Update()
	g.impacts = g.ProjectileSystem.Update()

	// 4. конец волны
	if bonus, cleared := g.WaveSystem.CheckCompletion(g.Settings.WaveBonusPerWave); cleared {
		g.money += bonus
		g.dispatch(event.WaveCleared, event.WaveClearedData{Wave: g.WaveSystem.Wave(), Bonus: bonus})
		if g.autoWave {
			g.scheduleAutoWave()
		}
	}

	// 5. планировщик: спавн, авто-волна
	g.Scheduler.RunDue()
}

func (g *Game) endGame() {
	g.gameOver = true
	g.WaveSystem.Stop()
	g.Scheduler.CancelAll()
	g.autoWaveJob = 0
	g.logger.Info().Int("wave", g.WaveSystem.Wave()).Msg("Game over")
	g.dispatch(event.GameOver, event.GameOverData{WavesSurvived: g.WaveSystem.Wave()})
}

func (g *Game) scheduleAutoWave() {
	if g.autoWaveJob != 0 {
		return
	}
	g.autoWaveJob = g.Scheduler.After(g.Settings.AutoWaveDelayTicks(), func() {
		g.autoWaveJob = 0
		if err := g.StartWave(); err != nil {
			g.logger.Debug().Err(err).Msg("Auto wave skipped")
		}
	})
}

func (g *Game) dispatch(t event.EventType, data any) {
	g.EventDispatcher.Dispatch(event.Event{Type: t, Tick: g.tick, Data: data})
}

// StartWave запускает следующую волну.
func (g *Game) StartWave() error {
	if g.gameOver {
		return ErrGameOver
	}
	if err := g.WaveSystem.StartWave(); err != nil {
		return err
	}
	if g.autoWaveJob != 0 {
		g.Scheduler.Cancel(g.autoWaveJob)
		g.autoWaveJob = 0
	}
	g.dispatch(event.WaveStarted, event.WaveStartedData{Wave: g.WaveSystem.Wave(), Count: g.WaveSystem.QueueLen()})
	return nil
}

// SetAutoWave включает автозапуск следующей волны после зачистки.
// Выключение снимает уже запланированный запуск.
func (g *Game) SetAutoWave(on bool) {
	g.autoWave = on
	if !on && g.autoWaveJob != 0 {
		g.Scheduler.Cancel(g.autoWaveJob)
		g.autoWaveJob = 0
	}
}

func (g *Game) AutoWave() bool { return g.autoWave }
func (g *Game) Money() int     { return g.money }
func (g *Game) Lives() int     { return g.lives }
func (g *Game) Wave() int      { return g.WaveSystem.Wave() }
func (g *Game) Tick() uint64   { return g.tick }
func (g *Game) GameOver() bool { return g.gameOver }

// Map — текущая карта; false, если карта не загружена.
func (g *Game) Map() (defs.MapDefinition, bool) {
	return g.mapDef, g.path != nil
}

// Path — путь текущей карты или nil.
func (g *Game) Path() *pathmap.Path {
	return g.path
}

// Phase — фаза для UI.
func (g *Game) Phase() component.GamePhase {
	switch {
	case g.path == nil:
		return component.PhaseNoMap
	case g.gameOver:
		return component.PhaseGameOver
	case g.WaveSystem.Spawning():
		return component.PhaseSpawning
	case g.WaveSystem.Active():
		return component.PhaseDraining
	}
	return component.PhaseIdle
}

// Impacts — попадания снарядов за последний тик.
func (g *Game) Impacts() []system.Impact {
	return g.impacts
}
