package ui

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-wave-defense/internal/app"
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/event"
)

func TestToRoman(t *testing.T) {
	cases := map[int]string{
		0:    "",
		-3:   "",
		1:    "I",
		4:    "IV",
		9:    "IX",
		14:   "XIV",
		40:   "XL",
		1994: "MCMXCIV",
	}
	for n, want := range cases {
		assert.Equal(t, want, toRoman(n), "toRoman(%d)", n)
	}
}

func TestIsBossWave(t *testing.T) {
	assert.False(t, isBossWave(5))
	assert.True(t, isBossWave(10))
	assert.False(t, isBossWave(11))
	assert.True(t, isBossWave(15))
	assert.True(t, isBossWave(20))
}

func TestButton_Clicked(t *testing.T) {
	b := NewButton(10, 20, 100, 30, "ok")
	assert.Equal(t, image.Rect(10, 20, 110, 50), b.Rect)

	assert.True(t, b.Contains(10, 20))
	assert.True(t, b.Contains(109, 49))
	assert.False(t, b.Contains(110, 49)) // правая граница не входит
	assert.False(t, b.Contains(5, 25))

	assert.True(t, b.Clicked(50, 30))
	b.Disabled = true
	assert.True(t, b.Contains(50, 30))
	assert.False(t, b.Clicked(50, 30))
}

func TestWrapText(t *testing.T) {
	assert.Nil(t, wrapText("", 10))
	assert.Equal(t, []string{"Wave 3:"}, wrapText("Wave 3:", 10))
	assert.Equal(t,
		[]string{"Wave 3: 10x", "Walker, 5x", "Runner"},
		wrapText("Wave 3: 10x Walker, 5x Runner", 11))
	// длинное слово не режется
	assert.Equal(t, []string{"abcdefghijkl"}, wrapText("abcdefghijkl", 5))
}

func TestMessageFeed_FormatsEvents(t *testing.T) {
	f := NewMessageFeed(10, 100)
	d := event.NewDispatcher()
	d.SubscribeAll(f)

	d.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveStartedData{Wave: 2, Count: 13}})
	d.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{ID: 4, Type: "normal", Reward: 10}})
	d.Dispatch(event.Event{Type: event.PlacementRejected, Data: event.PlacementRejectedData{
		TowerType: "basic", Reason: errors.New("not enough money"),
	}})
	d.Dispatch(event.Event{Type: event.WaveCleared, Data: event.WaveClearedData{Wave: 2, Bonus: 20}})

	msgs := f.Messages()
	require.Len(t, msgs, 3) // убийства не пишутся
	assert.Equal(t, "Wave 2: 13 enemies incoming", msgs[0].Text)
	assert.Equal(t, "Can't place: not enough money", msgs[1].Text)
	assert.Equal(t, errorMessageColor, msgs[1].Color)
	assert.Equal(t, "Wave 2 cleared! +$20", msgs[2].Text)

	d.UnsubscribeAll(f)
	d.Dispatch(event.Event{Type: event.GameOver, Data: event.GameOverData{WavesSurvived: 2}})
	assert.Len(t, f.Messages(), 3)
}

func TestMessageFeed_ExpiresAndCaps(t *testing.T) {
	f := NewMessageFeed(2, 3)
	f.Push("a", infoMessageColor)
	f.Push("b", infoMessageColor)
	f.Push("c", infoMessageColor)

	msgs := f.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "b", msgs[0].Text)
	assert.Equal(t, "c", msgs[1].Text)

	f.Update()
	f.Update()
	assert.Len(t, f.Messages(), 2)
	f.Update()
	assert.Empty(t, f.Messages())

	f.Push("d", infoMessageColor)
	f.Clear()
	assert.Empty(t, f.Messages())
}

func settle(p *InfoPanel) {
	for i := 0; i < 100; i++ {
		p.Update()
	}
}

func TestInfoPanel_SlideAndClick(t *testing.T) {
	p := NewInfoPanel()
	assert.False(t, p.IsVisible)
	assert.Equal(t, PanelNone, p.HandleClick(10, 10))

	p.SetInfo(app.TowerInfo{Name: "Basic", Level: 0, MaxLevel: 3, CanUpgrade: true, UpgradeCost: 40, SellPrice: 35})
	settle(p)
	assert.True(t, p.IsVisible)
	assert.Equal(t, "Upgrade $40", p.UpgradeButton.Text)
	assert.Equal(t, "Sell $35", p.SellButton.Text)

	up := p.UpgradeButton.Rect.Min.Add(image.Pt(5, 5))
	sell := p.SellButton.Rect.Min.Add(image.Pt(5, 5))
	closeBtn := p.CloseButton.Rect.Min.Add(image.Pt(2, 2))
	assert.True(t, p.Contains(up.X, up.Y))
	assert.Equal(t, PanelUpgrade, p.HandleClick(up.X, up.Y))
	assert.Equal(t, PanelSell, p.HandleClick(sell.X, sell.Y))
	assert.Equal(t, PanelClose, p.HandleClick(closeBtn.X, closeBtn.Y))

	// на максимальном уровне кнопка улучшения неактивна
	p.SetInfo(app.TowerInfo{Name: "Basic", Level: 3, MaxLevel: 3})
	p.Update()
	assert.Equal(t, "Max level", p.UpgradeButton.Text)
	assert.Equal(t, PanelNone, p.HandleClick(up.X, up.Y))

	p.Hide()
	settle(p)
	assert.False(t, p.IsVisible)
	assert.False(t, p.Contains(up.X, up.Y))
}

func TestLifeColor(t *testing.T) {
	assert.Equal(t, lifeFullColor, lifeColor(0, 15, 20))
	assert.Equal(t, lifeEmptyColor, lifeColor(15, 15, 20))
	assert.Equal(t, lifeLowColor, lifeColor(0, 10, 20))
	assert.Equal(t, lifeEmptyColor, lifeColor(19, 10, 20))
}

func TestSpeedButton_Cycles(t *testing.T) {
	b := NewSpeedButton(0, 0, 8, []color.Color{color.White, color.White, color.White})
	assert.Equal(t, 1, b.Multiplier())
	b.ToggleState()
	assert.Equal(t, 2, b.Multiplier())
	b.ToggleState()
	b.ToggleState()
	assert.Equal(t, 1, b.Multiplier())

	assert.True(t, b.IsClicked(0, 0))
	assert.False(t, b.IsClicked(50, 50))
}

func TestSidePanel_Contains(t *testing.T) {
	p := &SidePanel{x: config.FieldWidth, width: config.PanelWidth}
	assert.True(t, p.Contains(config.FieldWidth, 0))
	assert.False(t, p.Contains(config.FieldWidth-1, 10))
	assert.False(t, p.Contains(config.ScreenWidth, 10))
}

func TestSidePanel_TowerButtons(t *testing.T) {
	catalog, err := defs.LoadDefault()
	require.NoError(t, err)

	p := NewSidePanel(catalog)
	assert.Equal(t, catalog.TowerIDs(), p.TowerIDs())

	first := p.towers[0].Rect.Min.Add(image.Pt(5, 5))

	p.Sync(app.Snapshot{Money: 0, Phase: component.PhaseIdle}, "", "")
	assert.Equal(t, SideNone, p.HandleClick(first.X, first.Y).Kind)

	p.Sync(app.Snapshot{Money: 10000, Phase: component.PhaseIdle}, p.TowerIDs()[0], "Wave 1: 5x Walker")
	assert.True(t, p.towers[0].Active)
	action := p.HandleClick(first.X, first.Y)
	assert.Equal(t, SideSelectTower, action.Kind)
	assert.Equal(t, p.TowerIDs()[0], action.Tower)
	assert.Equal(t, []string{"Wave 1: 5x Walker"}, p.preview)

	start := p.startBtn.Rect.Min.Add(image.Pt(5, 5))
	assert.Equal(t, SideStartWave, p.HandleClick(start.X, start.Y).Kind)
	p.Sync(app.Snapshot{Money: 10000, Lives: 20, Phase: component.PhaseSpawning}, "", "")
	assert.Equal(t, SideNone, p.HandleClick(start.X, start.Y).Kind)

	auto := p.autoBtn.Rect.Min.Add(image.Pt(5, 5))
	assert.Equal(t, SideToggleAutoWave, p.HandleClick(auto.X, auto.Y).Kind)
}
