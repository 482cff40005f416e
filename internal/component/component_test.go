package component

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-wave-defense/pkg/pathmap"
)

func TestHealthFraction(t *testing.T) {
	assert.InDelta(t, 0.5, Health{Current: 25, Max: 50}.Fraction(), 1e-9)
	assert.Zero(t, Health{Current: -10, Max: 50}.Fraction())
	assert.Zero(t, Health{}.Fraction())
	assert.InDelta(t, 1, Health{Current: 60, Max: 50}.Fraction(), 1e-9)
}

func TestCombatCooldown(t *testing.T) {
	c := Combat{Cooldown: 2}
	c.Tick()
	assert.False(t, c.Ready())
	c.Tick()
	assert.True(t, c.Ready())
	c.Tick()
	assert.Equal(t, 0, c.Cooldown)
}

func TestPathFollowerNext(t *testing.T) {
	p, err := pathmap.NewPath([]pathmap.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}})
	assert.NoError(t, err)

	f := PathFollower{Path: p}
	next, ok := f.Next()
	assert.True(t, ok)
	assert.Equal(t, pathmap.Vec2{X: 10, Y: 0}, next)
	assert.True(t, f.IsLast(1))

	f.Index = 1
	_, ok = f.Next()
	assert.False(t, ok)
}

func TestPhase(t *testing.T) {
	assert.True(t, PhaseSpawning.WaveActive())
	assert.True(t, PhaseDraining.WaveActive())
	assert.False(t, PhaseIdle.WaveActive())
	assert.Equal(t, "game over", PhaseGameOver.String())
	assert.Equal(t, "escaped", Escaped.String())
}
