package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
)

var (
	waveColor     = color.RGBA{52, 152, 219, 255}
	bossWaveColor = color.RGBA{231, 76, 60, 255}
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             float64
	Color            color.Color
	OutlineColor     color.Color
	OutlineThickness int
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y float64) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            waveColor,
		OutlineColor:     color.White,
		OutlineThickness: 1,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// isBossWave: босс приходит на десятой волне и далее каждые пять.
func isBossWave(wave int) bool {
	return wave >= 10 && wave%5 == 0
}

// phaseLabel — подпись под номером волны.
func phaseLabel(phase component.GamePhase) string {
	switch phase {
	case component.PhaseSpawning:
		return "incoming"
	case component.PhaseDraining:
		return "clearing"
	case component.PhaseGameOver:
		return "game over"
	case component.PhaseIdle:
		return "ready"
	}
	return ""
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, wave int, phase component.GamePhase) {
	if wave <= 0 {
		DrawTextCentered(screen, "PRESS SPACE", i.X, i.Y, config.TextDimColor)
		return
	}

	label := toRoman(wave)
	textColor := i.Color
	if isBossWave(wave) {
		textColor = bossWaveColor
	}
	x := i.X - TextWidth(label)/2
	DrawTextOutlined(screen, label, x, i.Y-lineHeight/2, textColor, i.OutlineColor, i.OutlineThickness)
	DrawTextCentered(screen, phaseLabel(phase), i.X, i.Y+lineHeight, config.TextDimColor)
}
