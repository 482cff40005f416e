// internal/config/config.go
package config

import "image/color"

const (
	// Игровое поле
	FieldWidth  = 800
	FieldHeight = 600
	TileSize    = 40.0

	// Окно: поле + боковая панель
	PanelWidth   = 240
	ScreenWidth  = FieldWidth + PanelWidth
	ScreenHeight = FieldHeight

	TicksPerSecond = 60

	StartingMoney    = 500
	StartingLives    = 20
	WaveBonusPerWave = 10
	RefundRate       = 0.7

	SpawnDelayBaseMs = 800
	SpawnDelayStepMs = 30
	SpawnDelayMinMs  = 200
	AutoWaveDelayMs  = 1000

	SlowDurationTicks = 120 // 2 секунды при 60 тиках
	ProjectileSpeed   = 7.0
	ProjectileRadius  = 4.0
	TowerRadius       = 20.0
	TeslaSpinPerTick  = 0.05

	// Кликабельная зона башни больше её радиуса
	TowerHitboxFactor = 1.5

	PathWidth = 40.0
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	PanelColor       = color.RGBA{30, 34, 46, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDimColor     = color.RGBA{150, 150, 160, 255}
	TowerBaseColor   = color.RGBA{52, 73, 94, 255}
	TowerStrokeColor = color.RGBA{44, 62, 80, 255}
	SelectionColor   = color.RGBA{241, 196, 15, 255}
	RangeFillColor   = color.NRGBA{255, 255, 255, 38}
	InvalidColor     = color.NRGBA{231, 76, 60, 128}
	SlowRingColor    = color.RGBA{0, 210, 255, 255}
	HealthBackColor  = color.RGBA{51, 51, 51, 255}
	HealthHighColor  = color.RGBA{46, 204, 113, 255}
	HealthMidColor   = color.RGBA{243, 156, 18, 255}
	HealthLowColor   = color.RGBA{231, 76, 60, 255}
	SplashShellColor = color.RGBA{192, 57, 43, 255}
	StrokeWidth      = 2.0
)
