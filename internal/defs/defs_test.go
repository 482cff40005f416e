package defs

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadDefault(t *testing.T) *Catalog {
	t.Helper()
	c, err := LoadDefault()
	require.NoError(t, err)
	return c
}

func TestLoadDefault(t *testing.T) {
	c := loadDefault(t)

	assert.Equal(t, []string{"basic", "slow", "area", "sniper", "tesla"}, c.TowerIDs())
	assert.Equal(t, 10, c.AuthoredWaves())
	assert.Len(t, c.Maps(), 3)

	basic, ok := c.Tower("basic")
	require.True(t, ok)
	assert.Equal(t, 100, basic.Cost)
	assert.Equal(t, 3, basic.MaxLevel())
	assert.Equal(t, "Twin Sentry", basic.Upgrades[0].Name)
	assert.Equal(t, 100, basic.Upgrades[0].Cost)

	tesla, _ := c.Tower("tesla")
	assert.True(t, tesla.Spin)
	assert.False(t, basic.Spin)

	slow, _ := c.Tower("slow")
	assert.InDelta(t, 0.6, slow.SlowFactor, 1e-9)
	area, _ := c.Tower("area")
	assert.InDelta(t, 70, area.SplashRadius, 1e-9)

	boss, ok := c.Enemy("boss")
	require.True(t, ok)
	assert.Equal(t, "Zombie King", boss.Name)
	assert.InDelta(t, 30, boss.Radius, 1e-9)

	_, ok = c.Tower("laser")
	assert.False(t, ok)
}

func TestAuthoredWaves(t *testing.T) {
	c := loadDefault(t)

	w1, err := c.Wave(1)
	require.NoError(t, err)
	assert.Equal(t, 1, w1.Number)
	assert.Equal(t, []WaveGroup{{EnemyID: "normal", Count: 5}}, w1.Groups)
	assert.Equal(t, 5, w1.Total())
	assert.InDelta(t, 1.0, w1.HealthMultiplier, 1e-9)

	w10, err := c.Wave(10)
	require.NoError(t, err)
	assert.Equal(t, 6, w10.Total())
	assert.Equal(t, "boss", w10.Groups[1].EnemyID)

	_, err = c.Wave(0)
	assert.Error(t, err)
}

func TestWaveQueue(t *testing.T) {
	w := WaveDefinition{Groups: []WaveGroup{{EnemyID: "normal", Count: 2}, {EnemyID: "fast", Count: 3}}}
	q := w.Queue()
	assert.Len(t, q, w.Total())
	assert.Equal(t, []string{"normal", "normal", "fast", "fast", "fast"}, q)
}

func TestEndlessWaves(t *testing.T) {
	c := loadDefault(t)

	tests := []struct {
		wave   int
		groups []WaveGroup
		health float64
	}{
		{11, []WaveGroup{{"normal", 11}, {"fast", 6}, {"tank", 2}, {"crawler", 5}}, 1.15},
		{12, []WaveGroup{{"normal", 13}, {"fast", 7}, {"tank", 3}, {"crawler", 6}}, 1.3},
		{15, []WaveGroup{{"normal", 14}, {"fast", 8}, {"tank", 4}, {"crawler", 7}, {"boss", 1}}, 1.75},
		{20, []WaveGroup{{"normal", 19}, {"fast", 12}, {"tank", 6}, {"crawler", 10}, {"boss", 2}}, 2.5},
	}
	for _, tt := range tests {
		w, err := c.Wave(tt.wave)
		require.NoError(t, err, "wave %d", tt.wave)
		assert.Equal(t, tt.wave, w.Number)
		assert.Equal(t, tt.groups, w.Groups, "wave %d", tt.wave)
		assert.InDelta(t, tt.health, w.HealthMultiplier, 1e-9, "wave %d", tt.wave)
	}
}

func TestDescribe(t *testing.T) {
	c := loadDefault(t)
	w, err := c.Wave(3)
	require.NoError(t, err)
	assert.Equal(t, "Wave 3: 6x Walker, 3x Runner", c.Describe(w))
}

func TestMapPath(t *testing.T) {
	c := loadDefault(t)
	m, err := c.Map(0)
	require.NoError(t, err)
	assert.Equal(t, "Garden Path", m.Name)

	p, err := m.Path()
	require.NoError(t, err)
	assert.Equal(t, 6, p.Len())
	assert.InDelta(t, 1400, p.Length(), 1e-9)

	_, err = c.Map(3)
	assert.ErrorIs(t, err, ErrUnknownMap)

	_, err = MapDefinition{Name: "void"}.Path()
	assert.Error(t, err)
}

func TestHexColor(t *testing.T) {
	rgba, err := HexColor("#3498db").RGBA()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x34), rgba.R)
	assert.Equal(t, uint8(0x98), rgba.G)
	assert.Equal(t, uint8(0xdb), rgba.B)
	assert.Equal(t, uint8(255), rgba.A)

	_, err = HexColor("blue").RGBA()
	assert.ErrorIs(t, err, ErrBadColor)
}

func catalogFS(waves string) fstest.MapFS {
	return fstest.MapFS{
		"towers.json": {Data: []byte(`[{"id":"basic","name":"Sentry","cost":100,"range":150,"fire_interval":40,"damage":15,"color":"#3498db",
			"upgrades":[{"name":"Twin","cost":100,"range":170,"fire_interval":30,"damage":25,"color":"#2980b9"}]}]`)},
		"enemies.json": {Data: []byte(`[{"id":"normal","name":"Walker","health":50,"speed":1,"reward":10,"radius":15,"color":"#7d8471"}]`)},
		"waves.json":   {Data: []byte(waves)},
		"maps.json":    {Data: []byte(`[{"name":"Line","waypoints":[[0,300],[800,300]],"background":"#000000","path_color":"#111111","path_border":"#222222"}]`)},
	}
}

func TestLoadRejectsBadData(t *testing.T) {
	_, err := Load(catalogFS(`{"authored":[{"groups":[{"enemy":"ghost","count":1}]}]}`))
	assert.ErrorIs(t, err, ErrUnknownEnemy)

	_, err = Load(catalogFS(`{"authored":[{"groups":[{"enemy":"normal","count":1}]}],
		"endless":{"scale":"Wave +","health_multiplier":"1","groups":[]}}`))
	assert.ErrorContains(t, err, "scale")

	_, err = Load(catalogFS(`not json`))
	assert.ErrorContains(t, err, "waves.json")

	fsys := catalogFS(`{"authored":[{"groups":[{"enemy":"normal","count":1}]}]}`)
	delete(fsys, "maps.json")
	_, err = Load(fsys)
	assert.ErrorContains(t, err, "maps.json")
}

func TestLoadWithoutEndlessRepeatsLastWave(t *testing.T) {
	c, err := Load(catalogFS(`{"authored":[{"groups":[{"enemy":"normal","count":3}]}]}`))
	require.NoError(t, err)

	w, err := c.Wave(4)
	require.NoError(t, err)
	assert.Equal(t, 4, w.Number)
	assert.Equal(t, 3, w.Total())
}

func TestShotsPerSecond(t *testing.T) {
	s := TowerStats{FireInterval: 30}
	assert.InDelta(t, 2.0, s.ShotsPerSecond(60), 1e-9)
	assert.Zero(t, TowerStats{}.ShotsPerSecond(60))
}
