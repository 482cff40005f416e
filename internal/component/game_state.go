package component

// GamePhase — фаза игры (состояние директора волн + экономика).
type GamePhase int

const (
	PhaseNoMap GamePhase = iota
	PhaseIdle
	PhaseSpawning
	PhaseDraining
	PhaseGameOver
)

func (p GamePhase) String() string {
	switch p {
	case PhaseNoMap:
		return "no map"
	case PhaseIdle:
		return "idle"
	case PhaseSpawning:
		return "spawning"
	case PhaseDraining:
		return "draining"
	case PhaseGameOver:
		return "game over"
	}
	return "unknown"
}

// WaveActive — волна идёт (спавн или добивание).
func (p GamePhase) WaveActive() bool {
	return p == PhaseSpawning || p == PhaseDraining
}
