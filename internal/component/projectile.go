// internal/component/projectile.go
package component

// Payload — то, что снаряд несёт от башни в момент выстрела.
type Payload struct {
	Damage       float64
	SlowFactor   float64
	SplashRadius float64
}

// Splash — снаряд бьёт по площади.
func (p Payload) Splash() bool {
	return p.SplashRadius > 0
}

// Slows — снаряд замедляет.
func (p Payload) Slows() bool {
	return p.SlowFactor > 0
}
