// internal/state/pause_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-wave-defense/internal/config"
	"go-wave-defense/internal/ui"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает игру: симуляция не тикает, кадр рисуется
// поверх последнего состояния игры.
type PauseState struct {
	stateMachine *StateMachine
	game         *GameState
}

func NewPauseState(sm *StateMachine, game *GameState) *PauseState {
	return &PauseState{
		stateMachine: sm,
		game:         game,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update() error {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if s.game.side.Pause.IsClicked(x, y) {
			unpause = true
		}
	}

	if unpause {
		s.stateMachine.SetState(s.game)
	}
	return nil
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.FieldWidth, config.FieldHeight, color.NRGBA{0, 0, 0, 120}, false)
	ui.DrawTextCentered(screen, "PAUSED", config.FieldWidth/2, config.FieldHeight/2, config.TextLightColor)
	ui.DrawTextCentered(screen, "P to resume", config.FieldWidth/2, config.FieldHeight/2+20, config.TextDimColor)
}

func (s *PauseState) Exit() {}
