// internal/app/errors.go
package app

import (
	"errors"

	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/system"
)

// Причины отказа в действиях игрока.
var (
	ErrUnknownTowerType  = errors.New("unknown tower type")
	ErrOutOfBounds       = errors.New("position is outside the field")
	ErrInsufficientFunds = errors.New("not enough money")
	ErrTooCloseToPath    = errors.New("too close to the path")
	ErrOccupied          = errors.New("position is occupied by another tower")
	ErrNoSelection       = errors.New("no tower selected")

	ErrMaxLevel   = entity.ErrMaxLevel
	ErrWaveActive = system.ErrWaveActive
	ErrNoMap      = system.ErrNoMap
	ErrGameOver   = system.ErrGameOver
)
