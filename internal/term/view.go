// Package term — текстовый клиент на tcell: то же поле и те же правила, что в окне ebiten.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"go-grid-defense/internal/app"
	"go-grid-defense/internal/component"
	"go-grid-defense/internal/defs"
	"go-grid-defense/pkg/gridmap"
)

const (
	cellWidth = 2 // символа на клетку, чтобы поле не было сплюснутым
	originX   = 4
	originY   = 2
)

var (
	styleDefault = tcell.StyleDefault
	styleWall    = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleSpawn   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleExit    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleEmpty   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBasic   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleFast    = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleEnemy   = tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
	styleLabel   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleError   = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// View рисует снимок игры в терминал и переводит нажатия клавиш в команды
type View struct {
	screen   tcell.Screen
	game     *app.Game
	cursor   gridmap.Point
	kind     defs.TowerKind
	message  string
	isError  bool
	quitting bool
}

func NewView(screen tcell.Screen, game *app.Game) *View {
	outline := game.Grid.Outline()
	return &View{
		screen: screen,
		game:   game,
		cursor: gridmap.Point{Row: outline, Col: outline},
		kind:   defs.TowerBasic,
	}
}

// Cursor — выбранная клетка
func (v *View) Cursor() gridmap.Point { return v.cursor }

// Message — последняя строка статуса
func (v *View) Message() string { return v.message }

// Quitting сообщает, что игрок нажал выход
func (v *View) Quitting() bool { return v.quitting }

// HandleEvent обрабатывает событие tcell. false — пора выходить.
func (v *View) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		v.handleKey(ev)
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return !v.quitting
}

func (v *View) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.quitting = true
		return
	case tcell.KeyUp:
		v.moveCursor(-1, 0)
		return
	case tcell.KeyDown:
		v.moveCursor(1, 0)
		return
	case tcell.KeyLeft:
		v.moveCursor(0, -1)
		return
	case tcell.KeyRight:
		v.moveCursor(0, 1)
		return
	case tcell.KeyEnter:
		v.place(v.kind)
		return
	case tcell.KeyRune:
	default:
		return
	}

	switch ev.Rune() {
	case 'q':
		v.quitting = true
	case 'b':
		v.place(defs.TowerBasic)
	case 'f':
		v.place(defs.TowerFast)
	case '1':
		v.kind = defs.TowerBasic
	case '2':
		v.kind = defs.TowerFast
	case 'x':
		if v.game.RemoveTower(v.cursor.Row, v.cursor.Col) {
			v.info(fmt.Sprintf("Sold tower at %s", v.label(v.cursor)))
		} else {
			v.fail(app.ErrNoTower)
		}
	case 'u':
		if err := v.game.UpgradeTower(v.cursor.Row, v.cursor.Col); err != nil {
			v.fail(err)
		} else {
			v.info(fmt.Sprintf("Upgrading tower at %s", v.label(v.cursor)))
		}
	case 'n', ' ':
		if err := v.game.StartNextWave(); err != nil {
			v.fail(err)
		}
	case 'p':
		v.game.HandlePauseClick()
	case 's':
		v.game.HandleSpeedClick()
	case 'r':
		if v.game.Phase() == component.GameOverState {
			v.game.Reset()
			v.info("New game")
		}
	}
}

func (v *View) moveCursor(dRow, dCol int) {
	next := gridmap.Point{Row: v.cursor.Row + dRow, Col: v.cursor.Col + dCol}
	if v.game.Grid.InBounds(next.Row, next.Col) {
		v.cursor = next
	}
}

func (v *View) place(kind defs.TowerKind) {
	if _, err := v.game.PlaceTower(v.cursor.Row, v.cursor.Col, kind); err != nil {
		v.fail(err)
		return
	}
	v.info(fmt.Sprintf("Built %s at %s", kind, v.label(v.cursor)))
}

func (v *View) label(p gridmap.Point) string {
	if l := v.game.Grid.CellLabel(p); l != "" {
		return l
	}
	return p.String()
}

func (v *View) info(msg string) {
	v.message, v.isError = msg, false
}

func (v *View) fail(err error) {
	v.message, v.isError = app.Describe(err), true
}

// Draw рисует поле, врагов и строку статуса
func (v *View) Draw() {
	v.screen.Clear()
	snap := v.game.Snapshot()

	glyphs := make(map[gridmap.Point]glyph)
	for row, line := range snap.Grid {
		for col, status := range line {
			p := gridmap.Point{Row: row, Col: col}
			glyphs[p] = cellGlyph(status, v.game.Grid.IsSpawn(p), v.game.Grid.IsExit(p))
		}
	}
	for _, t := range snap.Towers {
		glyphs[t.Cell] = towerGlyph(t)
	}
	for _, e := range snap.Enemies {
		glyphs[e.Cell] = glyph{text: enemyText(e), style: styleEnemy}
	}

	v.drawLabels(len(snap.Grid))
	for p, g := range glyphs {
		style := g.style
		if p == v.cursor {
			style = style.Reverse(true)
		}
		v.drawText(originX+p.Col*cellWidth, originY+p.Row, g.text, style)
	}

	y := originY + len(snap.Grid) + 1
	v.drawText(0, y, statusLine(snap, v.game.IsPaused(), v.game.SpeedMultiplier), styleStatus)
	v.drawText(0, y+1, fmt.Sprintf("cursor %s  build: %s", v.label(v.cursor), v.kind), styleStatus)
	if v.message != "" {
		style := styleStatus
		if v.isError {
			style = styleError
		}
		v.drawText(0, y+2, v.message, style)
	}
	v.drawText(0, y+4, "arrows move  b/f build  1/2 select  x sell  u upgrade  n wave  p pause  s speed  q quit", styleDefault)
	if snap.Phase == component.GameOverState {
		v.drawText(0, y+5, fmt.Sprintf("GAME OVER on wave %d. Press r to restart.", snap.Wave), styleError)
	}
	v.screen.Show()
}

func (v *View) drawLabels(rows int) {
	outline := v.game.Grid.Outline()
	if outline == 0 || rows == 0 {
		return
	}
	cols := v.game.Grid.Cols()
	size := rows - 2*outline
	for col := outline; col < cols-outline; col++ {
		v.drawText(originX+col*cellWidth, originY-1, gridmap.ColumnLabel(col-outline), styleLabel)
	}
	for row := outline; row < rows-outline; row++ {
		v.drawText(0, originY+row, gridmap.RowLabel(row-outline, size), styleLabel)
	}
}

func (v *View) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

type glyph struct {
	text  string
	style tcell.Style
}

func cellGlyph(status gridmap.Status, spawn, exit bool) glyph {
	switch {
	case spawn:
		return glyph{"S ", styleSpawn}
	case exit:
		return glyph{"E ", styleExit}
	}
	switch status {
	case gridmap.StatusWall:
		return glyph{"##", styleWall}
	case gridmap.StatusTower:
		return glyph{"T ", styleBasic}
	default:
		return glyph{". ", styleEmpty}
	}
}

func towerGlyph(t app.TowerView) glyph {
	letter, style := "B", styleBasic
	if t.Kind == defs.TowerFast {
		letter, style = "F", styleFast
	}
	if t.Upgrading {
		return glyph{letter + "+", style}
	}
	return glyph{fmt.Sprintf("%s%d", letter, t.Level), style}
}

// enemyText — «@» и остаток здоровья по шкале от 0 до 9
func enemyText(e app.EnemyView) string {
	if e.MaxHP <= 0 {
		return "@ "
	}
	pct := e.HP * 9 / e.MaxHP
	return fmt.Sprintf("@%d", pct)
}

func statusLine(snap app.Snapshot, paused bool, speed float64) string {
	line := fmt.Sprintf("wave %d  lives %d  $%d  %s", snap.Wave, snap.Lives, snap.Money, snap.Phase)
	switch snap.Phase {
	case component.WaveState:
		line += fmt.Sprintf("  queued %d  alive %d", snap.QueuedEnemies, len(snap.Enemies))
	case component.BuildState:
		if snap.NextWaveIn > 0 {
			line += fmt.Sprintf("  next in %.1fs", snap.NextWaveIn)
		}
	}
	line += fmt.Sprintf("  x%g", speed)
	if paused {
		line += "  PAUSED"
	}
	return line
}
