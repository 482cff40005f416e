// cmd/game/main.go
package main

import (
	"errors"
	"io"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"go-wave-defense/internal/app"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/logging"
	"go-wave-defense/internal/state"
)

type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	return a.stateMachine.Update()
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

type options struct {
	configPath string
	catalogDir string
	logLevel   string
	mapIndex   int
	seed       int64
	autoWave   bool
	pprofAddr  string
}

func parseFlags() options {
	var o options
	pflag.StringVarP(&o.configPath, "config", "c", "", "Path to a config file (json, toml or yaml)")
	pflag.StringVar(&o.catalogDir, "catalog", "", "Directory with towers/enemies/waves/maps json, embedded data if empty")
	pflag.StringVar(&o.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	pflag.IntVarP(&o.mapIndex, "map", "m", -1, "Start directly on the map with this index, -1 opens the menu")
	pflag.Int64Var(&o.seed, "seed", 0, "Spawn order seed, 0 picks one from the clock")
	pflag.BoolVar(&o.autoWave, "auto-wave", false, "Start the next wave automatically after a clear")
	pflag.StringVar(&o.pprofAddr, "pprof", "", "Serve pprof on this address, e.g. localhost:6060")
	pflag.Parse()
	return o
}

// applyFlags переносит явно заданные флаги поверх конфигурации.
func applyFlags(s *config.Settings, o options) {
	if pflag.CommandLine.Changed("catalog") {
		s.CatalogDir = o.catalogDir
	}
	if pflag.CommandLine.Changed("log-level") {
		s.LogLevel = o.logLevel
	}
	if pflag.CommandLine.Changed("seed") {
		s.Seed = o.seed
	}
	if pflag.CommandLine.Changed("auto-wave") {
		s.AutoWave = o.autoWave
	}
	if pflag.CommandLine.Changed("map") {
		s.MapIndex = o.mapIndex
	}
}

func loadCatalog(dir string) (*defs.Catalog, error) {
	if dir == "" {
		return defs.LoadDefault()
	}
	return defs.LoadDir(dir)
}

// setup загружает конфигурацию, применяет флаги и строит логгер.
// При ошибке логгер всё равно пригоден для фатального сообщения.
func setup(o options, w io.Writer) (config.Settings, zerolog.Logger, error) {
	settings, err := config.Load(o.configPath)
	if err != nil {
		return settings, logging.Setup(w, "info"), err
	}
	applyFlags(&settings, o)
	return settings, logging.Setup(w, settings.LogLevel), nil
}

func main() {
	opts := parseFlags()

	settings, logger, err := setup(opts, os.Stderr)
	if err != nil {
		logger.Fatal().Err(err).Str("config", opts.configPath).Msg("Failed to load config")
	}

	if opts.pprofAddr != "" {
		go func() {
			logger.Info().Str("addr", opts.pprofAddr).Msg("pprof listening")
			if err := http.ListenAndServe(opts.pprofAddr, nil); err != nil {
				logger.Error().Err(err).Msg("pprof server stopped")
			}
		}()
	}

	catalog, err := loadCatalog(settings.CatalogDir)
	if err != nil {
		logger.Fatal().Err(err).Str("dir", settings.CatalogDir).Msg("Failed to load catalog")
	}

	game, err := app.NewGame(settings, catalog, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create game")
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	startState(sm, game, settings, logger)

	ebiten.SetTPS(settings.TicksPerSecond)
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Wave Defense")
	err = ebiten.RunGame(&AppGame{stateMachine: sm})
	if cerr := game.Close(); cerr != nil {
		logger.Warn().Err(cerr).Msg("Failed to close game")
	}
	if err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal().Err(err).Msg("Game loop failed")
	}
}

// startState открывает меню или сразу игру, если карта задана.
func startState(sm *state.StateMachine, game *app.Game, settings config.Settings, logger zerolog.Logger) {
	if settings.MapIndex >= 0 {
		err := game.LoadMap(settings.MapIndex)
		if err == nil {
			sm.SetState(state.NewGameState(sm, game, logger))
			return
		}
		logger.Error().Err(err).Int("map", settings.MapIndex).Msg("Failed to load map, opening menu")
	}
	sm.SetState(state.NewMenuState(sm, game, logger))
}
