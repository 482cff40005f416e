// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides, e.g. WAVEDEF_STARTINGMONEY.
const EnvPrefix = "WAVEDEF"

// Settings holds the tunable economy and timing parameters of a session.
type Settings struct {
	StartingMoney     int     `mapstructure:"startingMoney"`
	StartingLives     int     `mapstructure:"startingLives"`
	TicksPerSecond    int     `mapstructure:"ticksPerSecond"`
	RefundRate        float64 `mapstructure:"refundRate"`
	WaveBonusPerWave  int     `mapstructure:"waveBonusPerWave"`
	AutoWaveDelayMs   int     `mapstructure:"autoWaveDelayMs"`
	SpawnDelayBaseMs  int     `mapstructure:"spawnDelayBaseMs"`
	SpawnDelayStepMs  int     `mapstructure:"spawnDelayStepMs"`
	SpawnDelayMinMs   int     `mapstructure:"spawnDelayMinMs"`
	SlowDurationTicks int     `mapstructure:"slowDurationTicks"`
	ProjectileSpeed   float64 `mapstructure:"projectileSpeed"`
	TowerRadius       float64 `mapstructure:"towerRadius"`
	TileSize          float64 `mapstructure:"tileSize"`
	FieldWidth        float64 `mapstructure:"fieldWidth"`
	FieldHeight       float64 `mapstructure:"fieldHeight"`
	AutoWave          bool    `mapstructure:"autoWave"`
	MapIndex          int     `mapstructure:"mapIndex"` // -1: начать с меню
	Seed              int64   `mapstructure:"seed"`
	LogLevel          string  `mapstructure:"logLevel"`
	CatalogDir        string  `mapstructure:"catalogDir"`
}

// Default returns the settings used when no config file is given.
func Default() Settings {
	return Settings{
		StartingMoney:     StartingMoney,
		StartingLives:     StartingLives,
		TicksPerSecond:    TicksPerSecond,
		RefundRate:        RefundRate,
		WaveBonusPerWave:  WaveBonusPerWave,
		AutoWaveDelayMs:   AutoWaveDelayMs,
		SpawnDelayBaseMs:  SpawnDelayBaseMs,
		SpawnDelayStepMs:  SpawnDelayStepMs,
		SpawnDelayMinMs:   SpawnDelayMinMs,
		SlowDurationTicks: SlowDurationTicks,
		ProjectileSpeed:   ProjectileSpeed,
		TowerRadius:       TowerRadius,
		TileSize:          TileSize,
		FieldWidth:        FieldWidth,
		FieldHeight:       FieldHeight,
		MapIndex:          -1,
		LogLevel:          "info",
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("startingMoney", d.StartingMoney)
	v.SetDefault("startingLives", d.StartingLives)
	v.SetDefault("ticksPerSecond", d.TicksPerSecond)
	v.SetDefault("refundRate", d.RefundRate)
	v.SetDefault("waveBonusPerWave", d.WaveBonusPerWave)
	v.SetDefault("autoWaveDelayMs", d.AutoWaveDelayMs)
	v.SetDefault("spawnDelayBaseMs", d.SpawnDelayBaseMs)
	v.SetDefault("spawnDelayStepMs", d.SpawnDelayStepMs)
	v.SetDefault("spawnDelayMinMs", d.SpawnDelayMinMs)
	v.SetDefault("slowDurationTicks", d.SlowDurationTicks)
	v.SetDefault("projectileSpeed", d.ProjectileSpeed)
	v.SetDefault("towerRadius", d.TowerRadius)
	v.SetDefault("tileSize", d.TileSize)
	v.SetDefault("fieldWidth", d.FieldWidth)
	v.SetDefault("fieldHeight", d.FieldHeight)
	v.SetDefault("autoWave", d.AutoWave)
	v.SetDefault("mapIndex", d.MapIndex)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("logLevel", d.LogLevel)
	v.SetDefault("catalogDir", d.CatalogDir)
}

// Load reads settings from an optional config file (json, toml or yaml) and
// WAVEDEF_* environment variables on top of the defaults.
func Load(path string) (Settings, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate rejects settings the simulation cannot run with.
func (s Settings) Validate() error {
	var errs []error
	if s.TicksPerSecond <= 0 {
		errs = append(errs, errors.New("ticksPerSecond must be positive"))
	}
	if s.RefundRate < 0 || s.RefundRate > 1 {
		errs = append(errs, fmt.Errorf("refundRate %v out of [0,1]", s.RefundRate))
	}
	if s.ProjectileSpeed <= 0 {
		errs = append(errs, errors.New("projectileSpeed must be positive"))
	}
	if s.StartingLives <= 0 {
		errs = append(errs, errors.New("startingLives must be positive"))
	}
	if s.StartingMoney < 0 {
		errs = append(errs, errors.New("startingMoney must not be negative"))
	}
	if s.SpawnDelayMinMs <= 0 {
		errs = append(errs, errors.New("spawnDelayMinMs must be positive"))
	}
	if s.FieldWidth <= 0 || s.FieldHeight <= 0 {
		errs = append(errs, errors.New("field size must be positive"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid settings: %w", errors.Join(errs...))
	}
	return nil
}

// MsToTicks converts a wall-clock duration to simulation ticks, at least one.
func (s Settings) MsToTicks(ms int) int {
	ticks := int(math.Round(float64(ms) * float64(s.TicksPerSecond) / 1000))
	if ticks < 1 {
		return 1
	}
	return ticks
}

// SpawnDelayTicks returns the spacing between spawns of the given wave.
// Задержка сокращается с ростом номера волны, но не ниже минимума.
func (s Settings) SpawnDelayTicks(wave int) int {
	ms := s.SpawnDelayBaseMs - wave*s.SpawnDelayStepMs
	if ms < s.SpawnDelayMinMs {
		ms = s.SpawnDelayMinMs
	}
	return s.MsToTicks(ms)
}

// AutoWaveDelayTicks returns the pause before an automatically started wave.
func (s Settings) AutoWaveDelayTicks() int {
	return s.MsToTicks(s.AutoWaveDelayMs)
}

// PathClearance is the minimum distance between a tower and the corridor.
func (s Settings) PathClearance() float64 {
	return s.TileSize / 1.5
}
