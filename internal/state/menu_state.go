// internal/state/menu_state.go
package state

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"go-grid-defense/internal/config"
	"go-grid-defense/internal/ui"
)

// MenuState — стартовый экран с параметрами партии
type MenuState struct {
	sm          *StateMachine
	setup       Setup
	startButton *ui.Button
	lastError   string
}

func NewMenuState(sm *StateMachine, setup Setup) *MenuState {
	rect := image.Rect(config.ScreenWidth/2-80, config.ScreenHeight/2, config.ScreenWidth/2+80, config.ScreenHeight/2+40)
	return &MenuState{sm: sm, setup: setup, startButton: ui.NewButton(rect, "Start")}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	start := inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		start = start || m.startButton.Contains(x, y)
	}
	if !start {
		return
	}
	gs, err := NewGameState(m.sm, m.setup)
	if err != nil {
		log.Printf("Failed to start game: %v", err)
		m.lastError = err.Error()
		return
	}
	m.sm.SetState(gs)
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13
	lines := []string{
		"GRID DEFENSE",
		"",
		fmt.Sprintf("Field %dx%d, %d spawns, %d exits", m.setup.Grid.Rows, m.setup.Grid.Cols, len(m.setup.Grid.Spawns), len(m.setup.Grid.Exits)),
		fmt.Sprintf("Path policy: %s", m.setup.Options.Policy),
		"Press Space to start",
	}
	y := config.ScreenHeight/2 - 120
	for _, line := range lines {
		bounds := text.BoundString(face, line)
		text.Draw(screen, line, face, (config.ScreenWidth-bounds.Dx())/2, y, config.TextLightColor)
		y += 20
	}
	cx, cy := ebiten.CursorPosition()
	m.startButton.Draw(screen, face, cx, cy)
	if m.lastError != "" {
		text.Draw(screen, m.lastError, face, 20, config.ScreenHeight-20, color.RGBA{220, 60, 60, 255})
	}
}

func (m *MenuState) Exit() {}
