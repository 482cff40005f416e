package component

// Health — компонент здоровья
type Health struct {
	Current float64
	Max     float64
}

// Fraction — доля здоровья для полоски, в [0,1].
func (h Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	f := h.Current / h.Max
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Combat — перезарядка башни в тиках.
type Combat struct {
	Cooldown int
}

// Tick уменьшает перезарядку, не уходя ниже нуля.
func (c *Combat) Tick() {
	if c.Cooldown > 0 {
		c.Cooldown--
	}
}

// Ready — можно стрелять.
func (c Combat) Ready() bool {
	return c.Cooldown <= 0
}
