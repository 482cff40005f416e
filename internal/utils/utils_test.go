package utils

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, 0, NormalizeAngle(2*math.Pi), 1e-9)
	assert.InDelta(t, -math.Pi/2, NormalizeAngle(3*math.Pi/2), 1e-9)
	assert.InDelta(t, math.Pi/2, NormalizeAngle(-3*math.Pi/2), 1e-9)
	assert.InDelta(t, 1, NormalizeAngle(1), 1e-9)
}

func TestShuffleIsPermutation(t *testing.T) {
	items := []string{"a", "b", "b", "c", "d", "d", "d"}
	shuffled := append([]string(nil), items...)
	NewPRNGService(42).ShuffleStrings(shuffled)

	sort.Strings(shuffled)
	assert.Equal(t, items, shuffled)
}

func TestShuffleIsSeeded(t *testing.T) {
	a := []string{"1", "2", "3", "4", "5", "6", "7", "8"}
	b := append([]string(nil), a...)
	NewPRNGService(7).ShuffleStrings(a)
	NewPRNGService(7).ShuffleStrings(b)
	assert.Equal(t, a, b)
}

func TestZeroSeedUsesClock(t *testing.T) {
	s := NewPRNGService(0)
	assert.NotZero(t, s.Seed())
	assert.Equal(t, int64(9), NewPRNGService(9).Seed())
}
