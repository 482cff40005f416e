// internal/component/turret.go
package component

import "go-wave-defense/internal/types"

// Turret отвечает за наведение "головы" башни.
type Turret struct {
	// Angle - текущий угол поворота в радианах.
	Angle float64
	// Target - ID цели, 0 если цели нет. Слабая ссылка: проверять по хранилищу.
	Target types.EntityID
	// Spin - косметическое вращение независимо от цели.
	Spin bool
}
