package term

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-grid-defense/internal/app"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/pkg/gridmap"
)

func newTestView(t *testing.T) (*View, *app.Game, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(100, 30)
	t.Cleanup(screen.Fini)

	opts := app.DefaultOptions()
	opts.Seed = 7
	opts.AutoStartWaves = false
	opts.StartMoney = 1000
	game, err := app.NewGame(config.DefaultGridConfig(), defs.DefaultPresets(), opts)
	require.NoError(t, err)
	return NewView(screen, game), game, screen
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func readRow(screen tcell.SimulationScreen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestCursorStaysInBounds(t *testing.T) {
	v, game, _ := newTestView(t)
	assert.Equal(t, gridmap.Point{Row: 1, Col: 1}, v.Cursor())

	for i := 0; i < 20; i++ {
		v.HandleEvent(key(tcell.KeyUp))
		v.HandleEvent(key(tcell.KeyLeft))
	}
	assert.Equal(t, gridmap.Point{Row: 0, Col: 0}, v.Cursor())

	for i := 0; i < 40; i++ {
		v.HandleEvent(key(tcell.KeyDown))
		v.HandleEvent(key(tcell.KeyRight))
	}
	assert.Equal(t, gridmap.Point{Row: game.Grid.Rows() - 1, Col: game.Grid.Cols() - 1}, v.Cursor())
}

func TestBuildSellAndUpgradeKeys(t *testing.T) {
	v, game, _ := newTestView(t)
	v.HandleEvent(key(tcell.KeyDown))
	v.HandleEvent(key(tcell.KeyRight))
	cell := v.Cursor()

	v.HandleEvent(runeKey('f'))
	id, ok := game.GetTowerAt(cell)
	require.True(t, ok)
	assert.Equal(t, defs.TowerFast, game.ECS.Towers[id].Kind)
	assert.Contains(t, v.Message(), "Built fast")

	v.HandleEvent(runeKey('b'))
	assert.Equal(t, "Cell already has a tower", v.Message())

	v.HandleEvent(runeKey('u'))
	assert.Contains(t, game.ECS.Upgrades, id)

	v.HandleEvent(runeKey('x'))
	_, ok = game.GetTowerAt(cell)
	assert.False(t, ok)
	v.HandleEvent(runeKey('x'))
	assert.Equal(t, "No tower here", v.Message())
}

func TestWallCellRejected(t *testing.T) {
	v, game, _ := newTestView(t)
	v.HandleEvent(key(tcell.KeyUp))
	v.HandleEvent(key(tcell.KeyEnter))
	assert.Equal(t, "Can't build here", v.Message())
	assert.Empty(t, game.TowerCells())
}

func TestWaveAndQuitKeys(t *testing.T) {
	v, game, _ := newTestView(t)
	v.HandleEvent(runeKey('n'))
	assert.Equal(t, 1, game.Wave)
	v.HandleEvent(runeKey('n'))
	assert.Equal(t, "Wave in progress", v.Message())

	v.HandleEvent(runeKey('p'))
	assert.True(t, game.IsPaused())

	assert.True(t, v.HandleEvent(runeKey('z')))
	assert.False(t, v.HandleEvent(runeKey('q')))
	assert.True(t, v.Quitting())
}

func TestDrawRendersFieldAndStatus(t *testing.T) {
	v, game, screen := newTestView(t)
	_, err := game.PlaceTower(2, 3, defs.TowerBasic)
	require.NoError(t, err)
	v.Draw()

	// рамка, спавн в строке 4 и башня в строке 2
	top := readRow(screen, originY, 40)
	assert.True(t, strings.HasPrefix(top[originX:], "####"), top)
	spawnRow := readRow(screen, originY+4, 40)
	assert.Equal(t, "S ", spawnRow[originX:originX+2])
	towerRow := readRow(screen, originY+2, 40)
	assert.Equal(t, "B1", towerRow[originX+3*cellWidth:originX+3*cellWidth+2])

	labels := readRow(screen, originY-1, 40)
	assert.Equal(t, "A", strings.TrimSpace(labels[originX+cellWidth:originX+2*cellWidth]))

	status := readRow(screen, originY+game.Grid.Rows()+1, 80)
	assert.Contains(t, status, "wave 0")
	assert.Contains(t, status, "lives 20")
	assert.Contains(t, status, "$960")
}

func TestGlyphs(t *testing.T) {
	assert.Equal(t, "##", cellGlyph(gridmap.StatusWall, false, false).text)
	assert.Equal(t, "S ", cellGlyph(gridmap.StatusWall, true, false).text)
	assert.Equal(t, "E ", cellGlyph(gridmap.StatusExit, false, true).text)
	assert.Equal(t, ". ", cellGlyph(gridmap.StatusEmpty, false, false).text)

	assert.Equal(t, "F2", towerGlyph(app.TowerView{Kind: defs.TowerFast, Level: 2}).text)
	assert.Equal(t, "B+", towerGlyph(app.TowerView{Kind: defs.TowerBasic, Level: 1, Upgrading: true}).text)

	assert.Equal(t, "@9", enemyText(app.EnemyView{HP: 30, MaxHP: 30}))
	assert.Equal(t, "@4", enemyText(app.EnemyView{HP: 15, MaxHP: 30}))
	assert.Equal(t, "@ ", enemyText(app.EnemyView{}))
}
