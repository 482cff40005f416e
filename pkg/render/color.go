// pkg/render/color.go
package render

import (
	"image/color"

	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
)

// MapColors holds all the color definitions needed to render the static map background.
type MapColors struct {
	BackgroundColor color.RGBA
	PathColor       color.RGBA
	PathBorderColor color.RGBA
	GridColor       color.RGBA
	PathWidth       float32
	StrokeWidth     float32
}

// MapColorsFor собирает палитру карты каталога. Битый цвет заменяется
// цветом по умолчанию, чтобы отрисовка не падала.
func MapColorsFor(m defs.MapDefinition) MapColors {
	colors := MapColors{
		BackgroundColor: config.BackgroundColor,
		PathColor:       color.RGBA{139, 115, 85, 255},
		PathBorderColor: DarkenColor(color.RGBA{139, 115, 85, 255}),
		PathWidth:       config.PathWidth,
		StrokeWidth:     float32(config.StrokeWidth),
	}
	if c, err := m.Background.RGBA(); err == nil {
		colors.BackgroundColor = c
	}
	if c, err := m.PathColor.RGBA(); err == nil {
		colors.PathColor = c
	}
	if c, err := m.PathBorder.RGBA(); err == nil {
		colors.PathBorderColor = c
	}
	colors.GridColor = LightenColor(colors.BackgroundColor, 0.08)
	return colors
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor сдвигает цвет к белому на долю k.
func LightenColor(c color.RGBA, k float64) color.RGBA {
	lift := func(v uint8) uint8 {
		return uint8(float64(v) + (255-float64(v))*k)
	}
	return color.RGBA{R: lift(c.R), G: lift(c.G), B: lift(c.B), A: c.A}
}

// HealthColor — цвет полоски здоровья по доле оставшегося HP.
func HealthColor(fraction float64) color.RGBA {
	switch {
	case fraction > 0.5:
		return config.HealthHighColor
	case fraction > 0.25:
		return config.HealthMidColor
	}
	return config.HealthLowColor
}
