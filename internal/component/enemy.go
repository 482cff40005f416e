package component

// Lifecycle врага. Dead и Escaped конечны.
type Lifecycle int

const (
	Alive Lifecycle = iota
	Dead
	Escaped
)

func (l Lifecycle) String() string {
	switch l {
	case Alive:
		return "alive"
	case Dead:
		return "dead"
	case Escaped:
		return "escaped"
	}
	return "unknown"
}
