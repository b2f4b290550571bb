// internal/state/pause_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-grid-defense/internal/config"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState лежит поверх GameState. Игра под ним не обновляется, но рисуется.
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

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if s.game.pauseButton.Contains(x, y) {
			unpause = true
		}
	}

	if unpause {
		s.stateMachine.Pop()
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)
	label := "PAUSED"
	bounds := text.BoundString(s.game.face, label)
	text.Draw(screen, label, s.game.face, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2, color.White)
}

// Exit снимает игру с паузы
func (s *PauseState) Exit() {
	s.game.resume()
}
