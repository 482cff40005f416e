// internal/component/status_effect.go
package component

// SlowEffect indicates that an entity is slowed.
type SlowEffect struct {
	Remaining int     // тики до конца эффекта
	Factor    float64 // множитель скорости (0.5 = вдвое медленнее)
}

// Active — эффект ещё действует.
func (s SlowEffect) Active() bool {
	return s.Remaining > 0
}
