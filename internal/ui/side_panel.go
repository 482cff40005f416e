// internal/ui/side_panel.go
package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-wave-defense/internal/app"
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
)

const (
	sideMargin       = 12
	sideButtonHeight = 26
	sideButtonGap    = 6
	previewChars     = 30
)

// SideActionKind — тип действия, запрошенного с боковой панели.
type SideActionKind int

const (
	SideNone SideActionKind = iota
	SideSelectTower
	SideStartWave
	SideToggleAutoWave
	SidePause
	SideSpeed
	SideMenu
)

type SideAction struct {
	Kind  SideActionKind
	Tower string // для SideSelectTower
}

type towerButton struct {
	id   string
	cost int
	*Button
}

// SidePanel — правая панель: деньги, жизни, волна, магазин башен и
// управление волнами.
type SidePanel struct {
	x, width int

	towers   []towerButton
	startBtn *Button
	autoBtn  *Button
	menuBtn  *Button

	Phase     *PhaseIndicator
	Pause     *PauseButton
	Speed     *SpeedButton
	Lives     *LivesIndicator
	WaveLabel *WaveIndicator

	mapName string
	preview []string
}

func NewSidePanel(catalog *defs.Catalog) *SidePanel {
	x := config.FieldWidth
	w := config.PanelWidth
	p := &SidePanel{x: x, width: w}

	bx := x + sideMargin
	bw := w - 2*sideMargin
	y := 150
	for i, id := range catalog.TowerIDs() {
		def, _ := catalog.Tower(id)
		label := fmt.Sprintf("%d %s $%d", i+1, def.Name, def.Cost)
		btn := NewButton(bx, y, bw, sideButtonHeight, label)
		btn.Accent = def.Color.MustRGBA()
		p.towers = append(p.towers, towerButton{id: id, cost: def.Cost, Button: btn})
		y += sideButtonHeight + sideButtonGap
	}

	y += sideButtonGap
	p.startBtn = NewButton(bx, y, bw, sideButtonHeight, "Start wave [Space]")
	y += sideButtonHeight + sideButtonGap
	p.autoBtn = NewButton(bx, y, bw, sideButtonHeight, "Auto wave [A]")
	p.menuBtn = NewButton(bx, config.ScreenHeight-sideMargin-sideButtonHeight, bw, sideButtonHeight, "Menu [Esc]")

	cx := float32(x + w/2)
	p.Phase = NewPhaseIndicator(float32(x+w-30), 30, 12)
	p.Pause = NewPauseButton(float32(x+w-70), 30, 8, color.RGBA{236, 240, 241, 255}, color.RGBA{46, 204, 113, 255})
	p.Speed = NewSpeedButton(float32(x+w-120), 30, 8, []color.Color{
		color.RGBA{236, 240, 241, 255},
		color.RGBA{241, 196, 15, 255},
		color.RGBA{230, 126, 34, 255},
	})
	p.Lives = NewLivesIndicator(float32(bx), 84)
	p.WaveLabel = NewWaveIndicator(float64(cx)-60, 30)
	return p
}

// TowerIDs — типы башен в порядке кнопок (горячие клавиши 1..N).
func (p *SidePanel) TowerIDs() []string {
	ids := make([]string, len(p.towers))
	for i, t := range p.towers {
		ids[i] = t.id
	}
	return ids
}

// SetMap запоминает название карты для заголовка.
func (p *SidePanel) SetMap(name string) {
	p.mapName = name
}

// Sync обновляет состояние кнопок по снимку мира.
func (p *SidePanel) Sync(snap app.Snapshot, selectedType, preview string) {
	for _, t := range p.towers {
		t.Active = t.id == selectedType
		t.Disabled = snap.Money < t.cost || snap.Phase == component.PhaseNoMap || snap.Phase == component.PhaseGameOver
	}
	p.startBtn.Disabled = snap.Phase.WaveActive() || snap.Phase == component.PhaseGameOver || snap.Phase == component.PhaseNoMap
	p.autoBtn.Active = snap.AutoWave
	p.preview = wrapText(preview, previewChars)
}

// Contains — точка внутри панели.
func (p *SidePanel) Contains(x, y int) bool {
	return x >= p.x && x < p.x+p.width && y >= 0 && y < config.ScreenHeight
}

// HandleClick переводит клик в действие.
func (p *SidePanel) HandleClick(x, y int) SideAction {
	for _, t := range p.towers {
		if t.Clicked(x, y) {
			return SideAction{Kind: SideSelectTower, Tower: t.id}
		}
	}
	switch {
	case p.startBtn.Clicked(x, y):
		return SideAction{Kind: SideStartWave}
	case p.autoBtn.Clicked(x, y):
		return SideAction{Kind: SideToggleAutoWave}
	case p.menuBtn.Clicked(x, y):
		return SideAction{Kind: SideMenu}
	case p.Pause.IsClicked(x, y):
		return SideAction{Kind: SidePause}
	case p.Speed.IsClicked(x, y):
		return SideAction{Kind: SideSpeed}
	case p.Phase.IsClicked(x, y):
		p.Phase.HandleClick()
		return SideAction{Kind: SideStartWave}
	}
	return SideAction{}
}

func (p *SidePanel) Draw(screen *ebiten.Image, snap app.Snapshot, maxLives int) {
	vector.DrawFilledRect(screen, float32(p.x), 0, float32(p.width), config.ScreenHeight, config.PanelColor, false)
	vector.StrokeLine(screen, float32(p.x), 0, float32(p.x), config.ScreenHeight, 2, config.TowerStrokeColor, false)

	left := float64(p.x + sideMargin)
	p.WaveLabel.Draw(screen, snap.Wave, snap.Phase)
	p.Speed.Draw(screen)
	p.Pause.Draw(screen)
	p.Phase.Draw(screen, snap.Phase)

	DrawText(screen, p.mapName, left, 56, config.TextDimColor)
	DrawText(screen, fmt.Sprintf("$%d", snap.Money), left+float64(p.width)/2, 56, config.SelectionColor)
	p.Lives.Draw(screen, snap.Lives, maxLives)

	for _, t := range p.towers {
		t.Draw(screen)
	}
	p.startBtn.Draw(screen)
	p.autoBtn.Draw(screen)
	p.menuBtn.Draw(screen)

	y := float64(p.autoBtn.Rect.Max.Y + 2*sideButtonGap)
	if len(p.preview) > 0 {
		DrawText(screen, "Next:", left, y, config.TextDimColor)
		for i, line := range p.preview {
			DrawText(screen, line, left, y+float64((i+1)*lineHeight), config.TextLightColor)
		}
	}
}

// wrapText разбивает строку по словам на строки не длиннее width символов.
// Слово длиннее width остаётся целым.
func wrapText(s string, width int) []string {
	var lines []string
	var cur strings.Builder
	for _, word := range strings.Fields(s) {
		if cur.Len() > 0 && cur.Len()+1+len(word) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
