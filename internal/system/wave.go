// internal/system/wave.go
package system

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/utils"
	"go-wave-defense/pkg/pathmap"
)

var (
	ErrWaveActive = errors.New("wave already in progress")
	ErrNoMap      = errors.New("no map loaded")
	ErrGameOver   = errors.New("game is over")
)

// SpawnDelayFunc — задержка между спавнами для номера волны, в тиках.
type SpawnDelayFunc func(wave int) int

// WaveSystem — директор волн: Idle → Spawning → Draining → Idle.
type WaveSystem struct {
	ecs        *entity.ECS
	catalog    *defs.Catalog
	scheduler  *Scheduler
	rng        *utils.PRNGService
	spawnDelay SpawnDelayFunc
	logger     zerolog.Logger

	path     *pathmap.Path
	wave     int
	def      defs.WaveDefinition
	queue    []string
	cursor   int
	delay    int
	active   bool
	spawning bool
	stopped  bool // game over
	spawnJob JobID
}

func NewWaveSystem(ecs *entity.ECS, catalog *defs.Catalog, scheduler *Scheduler, rng *utils.PRNGService, spawnDelay SpawnDelayFunc, logger zerolog.Logger) *WaveSystem {
	return &WaveSystem{
		ecs:        ecs,
		catalog:    catalog,
		scheduler:  scheduler,
		rng:        rng,
		spawnDelay: spawnDelay,
		logger:     logger.With().Str("system", "wave").Logger(),
	}
}

// SetPath задаёт путь карты; nil — карты нет.
func (s *WaveSystem) SetPath(path *pathmap.Path) {
	s.path = path
}

// Reset возвращает директор к волне 0. Задачи планировщика снимает мир.
func (s *WaveSystem) Reset() {
	s.wave = 0
	s.def = defs.WaveDefinition{}
	s.queue = nil
	s.cursor = 0
	s.delay = 0
	s.active = false
	s.spawning = false
	s.stopped = false
	s.spawnJob = 0
}

// Stop — конец игры: новые волны не стартуют, спавн прекращается.
func (s *WaveSystem) Stop() {
	s.stopped = true
	s.spawning = false
	if s.spawnJob != 0 {
		s.scheduler.Cancel(s.spawnJob)
		s.spawnJob = 0
	}
}

func (s *WaveSystem) Wave() int                    { return s.wave }
func (s *WaveSystem) Active() bool                 { return s.active }
func (s *WaveSystem) Spawning() bool               { return s.spawning }
func (s *WaveSystem) SpawningDone() bool           { return s.active && !s.spawning }
func (s *WaveSystem) QueueLen() int                { return len(s.queue) }
func (s *WaveSystem) Spawned() int                 { return s.cursor }
func (s *WaveSystem) Delay() int                   { return s.delay }
func (s *WaveSystem) Current() defs.WaveDefinition { return s.def }

// Queue — копия очереди спавна текущей волны.
func (s *WaveSystem) Queue() []string {
	return append([]string(nil), s.queue...)
}

// StartWave запускает следующую волну.
func (s *WaveSystem) StartWave() error {
	switch {
	case s.stopped:
		return ErrGameOver
	case s.path == nil:
		return ErrNoMap
	case s.active:
		return ErrWaveActive
	}

	def, err := s.catalog.Wave(s.wave + 1)
	if err != nil {
		return fmt.Errorf("wave %d: %w", s.wave+1, err)
	}
	s.wave++
	s.def = def
	s.queue = def.Queue()
	s.rng.ShuffleStrings(s.queue)
	s.cursor = 0
	s.delay = s.spawnDelay(s.wave)
	s.active = true
	s.spawning = true

	if len(s.queue) == 0 {
		s.spawning = false
	} else {
		s.spawnJob = s.scheduler.Every(s.delay, s.spawnNext)
	}

	s.logger.Info().
		Int("wave", s.wave).
		Int("enemies", len(s.queue)).
		Int("delay_ticks", s.delay).
		Float64("health_multiplier", def.HealthMultiplier).
		Msg("Wave started")
	return nil
}

func (s *WaveSystem) spawnNext() {
	if !s.spawning || s.cursor >= len(s.queue) {
		s.finishSpawning()
		return
	}
	key := s.queue[s.cursor]
	s.cursor++

	def, ok := s.catalog.Enemy(key)
	if ok {
		s.ecs.AddEnemy(entity.NewEnemy(s.ecs.NewEntity(), def, s.path, s.def.HealthMultiplier))
	} else {
		s.logger.Error().Str("enemy", key).Msg("Enemy definition not found")
	}

	if s.cursor >= len(s.queue) {
		s.finishSpawning()
	}
}

func (s *WaveSystem) finishSpawning() {
	s.spawning = false
	if s.spawnJob != 0 {
		s.scheduler.Cancel(s.spawnJob)
		s.spawnJob = 0
	}
	s.logger.Debug().Int("wave", s.wave).Int("spawned", s.cursor).Msg("Spawning finished")
}

// CheckCompletion завершает волну, если спавн окончен и врагов не осталось.
// Возвращает бонус за волну.
func (s *WaveSystem) CheckCompletion(bonusPerWave int) (bonus int, cleared bool) {
	if !s.active || s.spawning || len(s.ecs.Enemies()) > 0 {
		return 0, false
	}
	s.active = false
	bonus = s.wave * bonusPerWave
	s.logger.Info().Int("wave", s.wave).Int("bonus", bonus).Msg("Wave cleared")
	return bonus, true
}

// Preview — состав волны n для превью.
func (s *WaveSystem) Preview(n int) (defs.WaveDefinition, error) {
	return s.catalog.Wave(n)
}
