package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := `{
		"startingMoney": 1000,
		"startingLives": 5,
		"autoWave": true,
		"seed": 42,
		"logLevel": "debug"
	}`
	path := filepath.Join(dir, "wavedef.json")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1000, s.StartingMoney)
	assert.Equal(t, 5, s.StartingLives)
	assert.True(t, s.AutoWave)
	assert.Equal(t, int64(42), s.Seed)
	assert.Equal(t, "debug", s.LogLevel)
	// untouched keys keep their defaults
	assert.Equal(t, TicksPerSecond, s.TicksPerSecond)
	assert.Equal(t, RefundRate, s.RefundRate)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("WAVEDEF_STARTINGLIVES", "3")

	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, s.StartingLives)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/wavedef.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wavedef.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"refundRate": 1.5, "ticksPerSecond": 0}`), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refundRate")
	assert.Contains(t, err.Error(), "ticksPerSecond")
}

func TestSpawnDelayTicks(t *testing.T) {
	s := Default()

	assert.Equal(t, 46, s.SpawnDelayTicks(1))  // 770ms
	assert.Equal(t, 30, s.SpawnDelayTicks(10)) // 500ms
	assert.Equal(t, 12, s.SpawnDelayTicks(20)) // пол 200ms
	assert.Equal(t, 12, s.SpawnDelayTicks(100))
}

func TestMsToTicks(t *testing.T) {
	s := Default()
	assert.Equal(t, 60, s.AutoWaveDelayTicks())
	assert.Equal(t, 1, s.MsToTicks(0))
}

func TestPathClearance(t *testing.T) {
	s := Default()
	assert.InDelta(t, 26.667, s.PathClearance(), 0.001)
}
