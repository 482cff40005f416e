// internal/defs/towers.go
package defs

// TowerStats — полный снимок характеристик одного уровня башни.
// Улучшение заменяет его целиком: отсутствующие поля становятся нулями.
type TowerStats struct {
	Name         string   `json:"name"`
	Range        float64  `json:"range"`
	FireInterval int      `json:"fire_interval"` // тики между выстрелами
	Damage       float64  `json:"damage"`
	SlowFactor   float64  `json:"slow_factor,omitempty"`
	SplashRadius float64  `json:"splash_radius,omitempty"`
	Color        HexColor `json:"color"`
}

// ShotsPerSecond для панели информации.
func (s TowerStats) ShotsPerSecond(ticksPerSecond int) float64 {
	if s.FireInterval <= 0 {
		return 0
	}
	return float64(ticksPerSecond) / float64(s.FireInterval)
}

// UpgradeTier is one step of a tower's linear upgrade line.
type UpgradeTier struct {
	Cost int `json:"cost"`
	TowerStats
}

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID   string `json:"id"`
	Cost int    `json:"cost"`
	Spin bool   `json:"spin,omitempty"` // косметическое вращение (tesla)
	TowerStats
	Upgrades []UpgradeTier `json:"upgrades"`
}

// MaxLevel — число доступных улучшений.
func (d TowerDefinition) MaxLevel() int {
	return len(d.Upgrades)
}
