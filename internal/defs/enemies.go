// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Health float64  `json:"health"`
	Speed  float64  `json:"speed"` // px за тик
	Reward int      `json:"reward"`
	Radius float64  `json:"radius"`
	Color  HexColor `json:"color"`
}
