// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-wave-defense/internal/app"
	"go-wave-defense/internal/config"
)

const (
	panelHeight    = 110
	panelWidth     = 420
	panelMargin    = 5
	animationSpeed = 10.0
	columnSpacing  = 200
)

// PanelAction — что пользователь нажал на панели.
type PanelAction int

const (
	PanelNone PanelAction = iota
	PanelUpgrade
	PanelSell
	PanelClose
)

// InfoPanel displays information about the selected tower.
type InfoPanel struct {
	IsVisible bool
	info      app.TowerInfo
	currentY  float64
	targetY   float64

	UpgradeButton *Button
	SellButton    *Button
	CloseButton   *Button
}

// NewInfoPanel creates a new information panel.
func NewInfoPanel() *InfoPanel {
	return &InfoPanel{
		currentY:      config.FieldHeight,
		targetY:       config.FieldHeight,
		UpgradeButton: NewButton(0, 0, 120, 24, "Upgrade"),
		SellButton:    NewButton(0, 0, 120, 24, "Sell"),
		CloseButton:   NewButton(0, 0, 20, 20, "x"),
	}
}

// SetInfo показывает панель с данными башни.
func (p *InfoPanel) SetInfo(info app.TowerInfo) {
	p.info = info
	p.IsVisible = true
	p.targetY = config.FieldHeight - panelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = config.FieldHeight
}

// Info — последняя показанная башня.
func (p *InfoPanel) Info() app.TowerInfo {
	return p.info
}

func (p *InfoPanel) Update() {
	// Анимация панели
	if p.currentY != p.targetY {
		diff := p.targetY - p.currentY
		if math.Abs(diff) < animationSpeed {
			p.currentY = p.targetY
		} else if diff > 0 {
			p.currentY += animationSpeed
		} else {
			p.currentY -= animationSpeed
		}

		if p.currentY >= config.FieldHeight {
			p.IsVisible = false
		}
	}
	p.layout()
}

func (p *InfoPanel) layout() {
	x := panelMargin
	y := int(p.currentY)
	bx := x + columnSpacing + 70
	p.UpgradeButton.Rect = image.Rect(bx, y+panelHeight-62, bx+120, y+panelHeight-38)
	p.SellButton.Rect = image.Rect(bx, y+panelHeight-32, bx+120, y+panelHeight-8)
	p.CloseButton.Rect = image.Rect(x+panelWidth-26, y+6, x+panelWidth-6, y+26)

	p.UpgradeButton.Disabled = !p.info.CanUpgrade
	if p.info.CanUpgrade {
		p.UpgradeButton.Text = fmt.Sprintf("Upgrade $%d", p.info.UpgradeCost)
	} else {
		p.UpgradeButton.Text = "Max level"
	}
	p.SellButton.Text = fmt.Sprintf("Sell $%d", p.info.SellPrice)
}

// Contains — попадает ли точка в видимую часть панели.
func (p *InfoPanel) Contains(x, y int) bool {
	if !p.IsVisible {
		return false
	}
	return x >= panelMargin && x < panelMargin+panelWidth && float64(y) >= p.currentY && float64(y) < p.currentY+panelHeight
}

// HandleClick переводит клик в действие панели.
func (p *InfoPanel) HandleClick(x, y int) PanelAction {
	if !p.IsVisible {
		return PanelNone
	}
	switch {
	case p.UpgradeButton.Clicked(x, y):
		return PanelUpgrade
	case p.SellButton.Clicked(x, y):
		return PanelSell
	case p.CloseButton.Clicked(x, y):
		return PanelClose
	}
	return PanelNone
}

func (p *InfoPanel) Draw(screen *ebiten.Image) {
	if !p.IsVisible && p.currentY >= config.FieldHeight {
		return
	}

	x := float64(panelMargin)
	y := p.currentY
	vector.DrawFilledRect(screen, float32(x), float32(y), panelWidth, panelHeight, color.NRGBA{30, 34, 46, 230}, false)
	vector.StrokeRect(screen, float32(x), float32(y), panelWidth, panelHeight, 2, config.SelectionColor, false)

	info := p.info
	title := fmt.Sprintf("%s  (level %d/%d)", info.Name, info.Level, info.MaxLevel)
	DrawText(screen, title, x+10, y+8, config.SelectionColor)

	lines := []string{
		fmt.Sprintf("Damage: %.0f", info.Damage),
		fmt.Sprintf("Rate:   %.1f/s", info.ShotsPerSecond),
		fmt.Sprintf("Range:  %.0f", info.Range),
	}
	if info.SlowFactor > 0 && info.SlowFactor < 1 {
		lines = append(lines, fmt.Sprintf("Slow:   %.0f%%", (1-info.SlowFactor)*100))
	}
	if info.SplashRadius > 0 {
		lines = append(lines, fmt.Sprintf("Splash: %.0f", info.SplashRadius))
	}
	for i, line := range lines {
		DrawText(screen, line, x+10, y+28+float64(i*lineHeight), config.TextLightColor)
	}
	if info.CanUpgrade {
		DrawText(screen, "Next: "+info.UpgradeName, x+columnSpacing, y+28, config.TextDimColor)
	}

	p.UpgradeButton.Draw(screen)
	p.SellButton.Draw(screen)
	p.CloseButton.Draw(screen)
}
