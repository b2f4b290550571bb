// internal/state/game_state.go
package state

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-grid-defense/internal/app"
	"go-grid-defense/internal/component"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/system"
	"go-grid-defense/internal/ui"
	"go-grid-defense/internal/utils"
	"go-grid-defense/pkg/gridmap"
	"go-grid-defense/pkg/render"
)

const messageDuration = 2.5 // секунд

// Setup — всё, что нужно для новой партии
type Setup struct {
	Grid    config.GridConfig
	Presets *defs.PresetLibrary
	Options app.Options
}

// GameState — состояние игры
type GameState struct {
	sm             *StateMachine
	game           *app.Game
	renderer       *render.GridRenderer
	renderSystem   *system.RenderSystem
	layout         render.Layout
	face           font.Face
	indicator      *ui.StateIndicator
	speedButton    *ui.SpeedButton
	pauseButton    *ui.PauseButton
	waveIndicator  *ui.WaveIndicator
	livesIndicator *ui.LivesIndicator
	infoPanel      *ui.InfoPanel
	selectedKind   defs.TowerKind
	hover          gridmap.Point
	hasHover       bool
	message        string
	messageTimer   float64
	lastClickTime  time.Time
}

func NewGameState(sm *StateMachine, setup Setup) (*GameState, error) {
	gameLogic, err := app.NewGame(setup.Grid, setup.Presets, setup.Options)
	if err != nil {
		return nil, err
	}

	mapColors := &render.MapColors{
		BackgroundColor: config.BackgroundColor,
		CellColor:       config.CellColor,
		WallColor:       config.WallColor,
		SpawnColor:      config.SpawnColor,
		ExitColor:       config.ExitColor,
		LabelColor:      config.CoordTextColor,
		TextDarkColor:   config.BackgroundColor,
		TextLightColor:  config.TextLightColor,
		StrokeWidth:     1,
	}
	layout := render.Layout{CellSize: config.CellSize, OffsetX: config.GridOffsetX, OffsetY: config.GridOffsetY}
	face := basicfont.Face7x13
	renderer := render.NewGridRenderer(gameLogic.Grid, layout, config.ScreenWidth, config.ScreenHeight, face, mapColors)
	renderer.RenderMapImage()

	gs := &GameState{
		sm:           sm,
		game:         gameLogic,
		renderer:     renderer,
		renderSystem: system.NewRenderSystem(gameLogic.ECS),
		layout:       layout,
		face:         face,
		indicator: ui.NewStateIndicator(
			float32(config.ScreenWidth-config.IndicatorOffsetX),
			float32(config.IndicatorOffsetX),
			float32(config.IndicatorRadius),
		),
		speedButton: ui.NewSpeedButton(
			float32(config.ScreenWidth-config.SpeedButtonOffsetX),
			float32(config.SpeedButtonY),
			float32(config.SpeedButtonSize),
			config.SpeedButtonColors,
		),
		pauseButton: ui.NewPauseButton(
			float32(config.ScreenWidth-config.SpeedButtonOffsetX-50),
			float32(config.SpeedButtonY),
			float32(config.SpeedButtonSize)*0.8,
			config.BuildStateColor, config.WaveStateColor,
		),
		waveIndicator:  ui.NewWaveIndicator(config.ScreenWidth/2, 36, face),
		livesIndicator: ui.NewLivesIndicator(20, 12, face),
		infoPanel:      ui.NewInfoPanel(face, face),
		selectedKind:   defs.TowerBasic,
		lastClickTime:  time.Now(),
	}
	return gs, nil
}

// Game даёт доступ к логике, например для паузы
func (g *GameState) Game() *app.Game {
	return g.game
}

func (g *GameState) Enter() {
	g.pauseButton.SetPaused(g.game.IsPaused())
}

func (g *GameState) Update(deltaTime float64) {
	g.infoPanel.Update()
	if g.messageTimer > 0 {
		g.messageTimer -= deltaTime
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.pause()
		return
	}

	if g.game.Phase() == component.GameOverState {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.game.Reset()
			g.infoPanel.Hide()
			g.notify("New game")
		}
		return
	}

	g.updateHover()
	g.handleKeys()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.isClickOnUI(x, y) {
			g.handleUIClick(x, y)
		} else {
			g.handleGameClick(x, y, ebiten.MouseButtonLeft)
		}
		g.lastClickTime = time.Now()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		g.handleGameClick(x, y, ebiten.MouseButtonRight)
		g.lastClickTime = time.Now()
	}

	g.game.Update(deltaTime)
}

func (g *GameState) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.Key1) {
		g.selectKind(defs.TowerBasic)
	}
	if inpututil.IsKeyJustPressed(ebiten.Key2) {
		g.selectKind(defs.TowerFast)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.startWave()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.toggleSpeed()
	}
	// выбранная башня, иначе клетка под курсором
	cell, ok := g.infoPanel.Target()
	if !ok {
		cell, ok = g.hover, g.hasHover
	}
	if !ok {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		g.upgrade(cell)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDelete) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.sell(cell)
	}
}

func (g *GameState) selectKind(kind defs.TowerKind) {
	g.selectedKind = kind
	if def, ok := defs.Tower(kind); ok {
		g.notify(fmt.Sprintf("%s selected (%d)", def.Name, def.Price))
	}
}

func (g *GameState) updateHover() {
	x, y := ebiten.CursorPosition()
	g.hover, g.hasHover = g.layout.CellAt(x, y, g.game.Grid.Rows(), g.game.Grid.Cols())
}

func (g *GameState) isClickOnUI(x, y int) bool {
	return g.speedButton.Contains(x, y) ||
		g.pauseButton.Contains(x, y) ||
		g.indicator.Contains(x, y) ||
		g.infoPanel.Contains(x, y)
}

// handleUIClick обрабатывает клики, которые точно попали в UI
func (g *GameState) handleUIClick(x, y int) {
	cooldown := time.Duration(config.ClickCooldown) * time.Millisecond
	switch {
	case g.speedButton.Contains(x, y):
		if g.speedButton.CanToggle(cooldown) {
			g.toggleSpeed()
		}
	case g.pauseButton.Contains(x, y):
		if g.pauseButton.CanToggle(cooldown) {
			g.pause()
		}
	case g.indicator.Contains(x, y):
		if time.Since(g.indicator.LastClickTime) >= cooldown {
			g.indicator.HandleClick()
			g.startWave()
		}
	case g.infoPanel.Contains(x, y):
		cell, ok := g.infoPanel.Target()
		if !ok {
			return
		}
		switch g.infoPanel.HandleClick(x, y) {
		case ui.PanelUpgrade:
			g.upgrade(cell)
		case ui.PanelSell:
			g.sell(cell)
		}
	}
}

func (g *GameState) handleGameClick(x, y int, button ebiten.MouseButton) {
	cell, ok := g.layout.CellAt(x, y, g.game.Grid.Rows(), g.game.Grid.Cols())
	if !ok {
		g.infoPanel.Hide()
		return
	}

	if button == ebiten.MouseButtonRight {
		g.sell(cell)
		return
	}

	if _, isTower := g.game.GetTowerAt(cell); isTower {
		g.infoPanel.SetTarget(cell)
		return
	}
	g.infoPanel.Hide()
	if _, err := g.game.PlaceTower(cell.Row, cell.Col, g.selectedKind); err != nil {
		g.notify(app.Describe(err))
	}
}

func (g *GameState) startWave() {
	if err := g.game.StartNextWave(); err != nil {
		g.notify(app.Describe(err))
	}
}

func (g *GameState) upgrade(cell gridmap.Point) {
	if err := g.game.UpgradeTower(cell.Row, cell.Col); err != nil {
		g.notify(app.Describe(err))
	}
}

func (g *GameState) sell(cell gridmap.Point) {
	if g.game.RemoveTower(cell.Row, cell.Col) {
		g.infoPanel.Hide()
		return
	}
	g.notify(app.Describe(app.ErrNoTower))
}

func (g *GameState) toggleSpeed() {
	g.game.HandleSpeedClick()
	g.speedButton.ToggleState()
	g.speedButton.SetState(speedIndex(g.game.SpeedMultiplier))
}

// speedIndex — номер множителя в config.SpeedMultipliers
func speedIndex(multiplier float64) int {
	for i, m := range config.SpeedMultipliers {
		if m == multiplier {
			return i
		}
	}
	return 0
}

func (g *GameState) pause() {
	if !g.game.IsPaused() {
		g.game.HandlePauseClick()
	}
	g.pauseButton.TogglePause()
	g.pauseButton.SetPaused(true)
	g.sm.Push(NewPauseState(g.sm, g))
}

// resume вызывается из PauseState
func (g *GameState) resume() {
	if g.game.IsPaused() {
		g.game.HandlePauseClick()
	}
	g.pauseButton.SetPaused(false)
}

func (g *GameState) notify(msg string) {
	g.message = msg
	g.messageTimer = messageDuration
}

func (g *GameState) phaseColor() color.Color {
	switch g.game.Phase() {
	case component.WaveState:
		return config.WaveStateColor
	case component.GameOverState:
		return config.GameOverColor
	default:
		return config.BuildStateColor
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	var hover *gridmap.Point
	hoverOK := false
	if g.hasHover {
		hover = &g.hover
		hoverOK = g.game.CanPlaceTower(g.hover.Row, g.hover.Col, g.selectedKind) == nil
	}
	g.renderer.Draw(screen, hover, hoverOK)
	g.renderSystem.Draw(screen)

	snap := g.game.Snapshot()
	var selected *app.TowerView
	if cell, ok := g.infoPanel.Target(); ok {
		for i := range snap.Towers {
			if snap.Towers[i].Cell == cell {
				selected = &snap.Towers[i]
				break
			}
		}
	}
	if selected != nil {
		x, y := utils.WorldToScreen(utils.CellCenter(selected.Cell))
		g.renderSystem.DrawRange(screen, x, y, selected.Range)
	}

	g.drawHUD(screen, snap)
	g.infoPanel.Draw(screen, selected, snap.Money)

	if snap.Phase == component.GameOverState {
		g.drawGameOver(screen, snap)
	}
}

func (g *GameState) drawHUD(screen *ebiten.Image, snap app.Snapshot) {
	g.indicator.Draw(screen, g.phaseColor())
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)
	g.waveIndicator.Draw(screen, snap.Wave)
	g.livesIndicator.Draw(screen, snap.Lives, config.StartLives)

	status := fmt.Sprintf("$%d   %s", snap.Money, snap.Phase)
	if snap.Phase == component.BuildState && snap.NextWaveIn > 0 {
		status += fmt.Sprintf(" (next in %.1fs)", snap.NextWaveIn)
	}
	if snap.Phase == component.WaveState {
		status += fmt.Sprintf(" (%d queued, %d alive)", snap.QueuedEnemies, len(snap.Enemies))
	}
	text.Draw(screen, status, g.face, 20, 50, config.TextLightColor)

	if def, ok := defs.Tower(g.selectedKind); ok {
		hint := fmt.Sprintf("[1/2] %s  [Space] wave  [U] upgrade  [RMB] sell  [P] pause", def.Name)
		text.Draw(screen, hint, g.face, 20, config.ScreenHeight-8, config.TextLightColor)
	}
	if g.messageTimer > 0 && g.message != "" {
		text.Draw(screen, g.message, g.face, config.ScreenWidth/2+60, 50, config.UpgradeColor)
	}
}

func (g *GameState) drawGameOver(screen *ebiten.Image, snap app.Snapshot) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 160}, false)
	msg := fmt.Sprintf("GAME OVER\n\nWave %d\nKilled %d, escaped %d\n\nPress R to restart", snap.Wave, snap.Stats.Killed, snap.Stats.Escaped)
	ebitenutil.DebugPrintAt(screen, msg, config.ScreenWidth/2-70, config.ScreenHeight/2-50)
}

func (g *GameState) Exit() {}
