// internal/state/menu_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"

	"go-wave-defense/internal/app"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/ui"
	"go-wave-defense/pkg/render"
)

const (
	menuButtonWidth  = 220
	menuButtonHeight = 150
	menuButtonGap    = 30
	thumbScale       = 0.22
)

var mapKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9}

// MenuState — выбор карты.
type MenuState struct {
	sm     *StateMachine
	game   *app.Game
	logger zerolog.Logger

	maps    []defs.MapDefinition
	buttons []*ui.Button
	message string
}

func NewMenuState(sm *StateMachine, game *app.Game, logger zerolog.Logger) *MenuState {
	m := &MenuState{
		sm:     sm,
		game:   game,
		logger: logger,
		maps:   game.Catalog.Maps(),
	}
	total := len(m.maps)*menuButtonWidth + (len(m.maps)-1)*menuButtonGap
	x := (config.ScreenWidth - total) / 2
	for range m.maps {
		m.buttons = append(m.buttons, ui.NewButton(x, 220, menuButtonWidth, menuButtonHeight, ""))
		x += menuButtonWidth + menuButtonGap
	}
	return m
}

func (m *MenuState) Enter() {
	m.message = ""
}

func (m *MenuState) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for i, key := range mapKeys {
		if i < len(m.maps) && inpututil.IsKeyJustPressed(key) {
			m.startMap(i)
			return nil
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		for i, b := range m.buttons {
			if b.Clicked(x, y) {
				m.startMap(i)
				return nil
			}
		}
	}
	return nil
}

// startMap загружает карту и переходит в игру; ошибка данных карты
// остаётся в меню сообщением.
func (m *MenuState) startMap(index int) {
	if err := m.game.LoadMap(index); err != nil {
		m.logger.Error().Err(err).Int("map", index).Msg("Failed to load map")
		m.message = err.Error()
		return
	}
	m.sm.SetState(NewGameState(m.sm, m.game, m.logger))
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	cx := float64(config.ScreenWidth) / 2
	ui.DrawTextOutlined(screen, "WAVE DEFENSE", cx-ui.TextWidth("WAVE DEFENSE")/2, 120, config.SelectionColor, color.Black, 2)
	ui.DrawTextCentered(screen, "Choose a map", cx, 170, config.TextDimColor)

	for i, b := range m.buttons {
		b.Draw(screen)
		drawThumbnail(screen, m.maps[i], b)
		label := string(rune('1'+i)) + "  " + m.maps[i].Name
		ui.DrawTextCentered(screen, label, float64(b.Rect.Min.X+b.Rect.Dx()/2), float64(b.Rect.Max.Y+16), config.TextLightColor)
	}

	ui.DrawTextCentered(screen, "1-3 or click to start, Esc to quit", cx, 460, config.TextDimColor)
	if m.message != "" {
		ui.DrawTextCentered(screen, m.message, cx, 500, config.HealthLowColor)
	}
}

// drawThumbnail рисует уменьшенную карту внутри кнопки.
func drawThumbnail(screen *ebiten.Image, def defs.MapDefinition, b *ui.Button) {
	colors := render.MapColorsFor(def)
	w := float32(config.FieldWidth * thumbScale)
	h := float32(config.FieldHeight * thumbScale)
	ox := float32(b.Rect.Min.X) + (float32(b.Rect.Dx())-w)/2
	oy := float32(b.Rect.Min.Y) + (float32(b.Rect.Dy())-h)/2
	vector.DrawFilledRect(screen, ox, oy, w, h, colors.BackgroundColor, false)

	for i := 1; i < len(def.Waypoints); i++ {
		a, c := def.Waypoints[i-1], def.Waypoints[i]
		vector.StrokeLine(screen,
			ox+float32(a[0]*thumbScale), oy+float32(a[1]*thumbScale),
			ox+float32(c[0]*thumbScale), oy+float32(c[1]*thumbScale),
			colors.PathWidth*thumbScale, colors.PathColor, true)
	}
}

func (m *MenuState) Exit() {}
