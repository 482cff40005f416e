// internal/defs/types.go
package defs

import (
	"errors"
	"image/color"
	"strconv"
	"strings"
)

var (
	ErrUnknownEnemy = errors.New("unknown enemy type")
	ErrUnknownTower = errors.New("unknown tower type")
	ErrUnknownMap   = errors.New("unknown map")
	ErrBadColor     = errors.New("bad color")
)

// HexColor — цвет в формате "#rrggbb", как в JSON каталога.
type HexColor string

// RGBA разбирает цвет. Невалидная строка даёт ErrBadColor.
func (h HexColor) RGBA() (color.RGBA, error) {
	s := strings.TrimPrefix(string(h), "#")
	if len(s) != 6 {
		return color.RGBA{}, ErrBadColor
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, ErrBadColor
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// MustRGBA используется рендером: каталог уже прошёл Validate.
func (h HexColor) MustRGBA() color.RGBA {
	c, err := h.RGBA()
	if err != nil {
		return color.RGBA{R: 255, A: 255}
	}
	return c
}
