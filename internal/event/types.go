// internal/event/types.go
package event

import "go-wave-defense/internal/types"

const (
	WaveStarted       EventType = "WaveStarted"
	WaveCleared       EventType = "WaveCleared"       // волна добита, начислен бонус
	PlacementRejected EventType = "PlacementRejected" // башню поставить нельзя
	GameOver          EventType = "GameOver"
	EnemyKilled       EventType = "EnemyKilled"
	EnemyEscaped      EventType = "EnemyEscaped"
	TowerPlaced       EventType = "TowerPlaced" // Башня построена
	TowerUpgraded     EventType = "TowerUpgraded"
	TowerSold         EventType = "TowerSold"
)

type WaveStartedData struct {
	Wave  int
	Count int
}

type WaveClearedData struct {
	Wave  int
	Bonus int
}

type PlacementRejectedData struct {
	TowerType string
	X, Y      float64
	Reason    error
}

type GameOverData struct {
	WavesSurvived int
}

type EnemyKilledData struct {
	ID     types.EntityID
	Type   string
	Reward int
}

type EnemyEscapedData struct {
	ID        types.EntityID
	Type      string
	LivesLeft int
}

type TowerPlacedData struct {
	ID   types.EntityID
	Type string
	Cost int
}

type TowerUpgradedData struct {
	ID    types.EntityID
	Level int
	Cost  int
}

type TowerSoldData struct {
	ID     types.EntityID
	Refund int
}
