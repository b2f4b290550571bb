package gridmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestGrid — поле 10x10 с рамкой толщиной 1, спавн (4,0), выход (4,11)
func newTestGrid() *Grid {
	return New(12, 12, 1, []Point{{Row: 4, Col: 0}}, []Point{{Row: 4, Col: 11}})
}

func TestNewStampsSpawnExitAndWalls(t *testing.T) {
	g := newTestGrid()

	tests := []struct {
		name string
		p    Point
		want Status
	}{
		{"Top left corner", Point{0, 0}, StatusWall},
		{"Bottom right corner", Point{11, 11}, StatusWall},
		{"Top border", Point{0, 5}, StatusWall},
		{"Left border", Point{7, 0}, StatusWall},
		{"Spawn on border", Point{4, 0}, StatusSpawn},
		{"Exit on border", Point{4, 11}, StatusExit},
		{"Interior", Point{1, 1}, StatusEmpty},
		{"Interior far corner", Point{10, 10}, StatusEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := g.Status(tt.p.Row, tt.p.Col)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewWithoutSpawnsStaysEmpty(t *testing.T) {
	g := New(12, 12, 1, nil, []Point{{Row: 4, Col: 11}})

	for _, row := range g.Snapshot() {
		for _, s := range row {
			require.Equal(t, StatusEmpty, s)
		}
	}
	assert.False(t, g.PathExists(nil))

	g = New(12, 12, 1, []Point{{Row: 4, Col: 0}}, nil)
	s, _ := g.Status(0, 0)
	assert.Equal(t, StatusEmpty, s)
	assert.False(t, g.PathExists(nil))
}

func TestNewSkipsOutOfBoundsConfiguration(t *testing.T) {
	g := New(12, 12, 1, []Point{{Row: 4, Col: 0}, {Row: 40, Col: 0}}, []Point{{Row: 4, Col: 11}, {Row: -1, Col: 3}})

	assert.Equal(t, []Point{{Row: 4, Col: 0}}, g.Spawns())
	assert.Equal(t, []Point{{Row: 4, Col: 11}}, g.Exits())
}

func TestIsWalkable(t *testing.T) {
	g := newTestGrid()
	require.True(t, g.SetCellStatus(3, 3, StatusTower))

	tests := []struct {
		name     string
		row, col int
		want     bool
	}{
		{"Empty interior", 2, 2, true},
		{"Spawn", 4, 0, true},
		{"Exit", 4, 11, true},
		{"Wall", 0, 0, false},
		{"Tower", 3, 3, false},
		{"Out of bounds negative", -1, 2, false},
		{"Out of bounds large", 2, 12, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.IsWalkable(tt.row, tt.col))
		})
	}
}

func TestSetCellStatus(t *testing.T) {
	g := newTestGrid()

	assert.False(t, g.SetCellStatus(4, 0, StatusTower), "spawn must be immutable")
	assert.False(t, g.SetCellStatus(4, 11, StatusEmpty), "exit must be immutable")
	assert.False(t, g.SetCellStatus(12, 0, StatusTower), "out of bounds")
	assert.False(t, g.SetCellStatus(2, 2, StatusSpawn), "new spawn cells are not allowed")
	assert.False(t, g.SetCellStatus(2, 2, StatusExit), "new exit cells are not allowed")

	assert.True(t, g.SetCellStatus(2, 2, StatusTower))
	s, _ := g.Status(2, 2)
	assert.Equal(t, StatusTower, s)

	assert.True(t, g.SetCellStatus(2, 2, StatusEmpty))
	s, _ = g.Status(2, 2)
	assert.Equal(t, StatusEmpty, s)

	spawn, _ := g.Status(4, 0)
	assert.Equal(t, StatusSpawn, spawn)
}

func TestNeighbors(t *testing.T) {
	g := newTestGrid()

	assert.Equal(t, []Point{{5, 5}, {7, 5}, {6, 6}, {6, 4}}, g.Neighbors(6, 5))
	assert.Equal(t, []Point{{1, 0}, {0, 1}}, g.Neighbors(0, 0))
	assert.Equal(t, []Point{{10, 11}, {11, 10}}, g.Neighbors(11, 11))
	// Стены не отфильтровываются
	assert.Contains(t, g.Neighbors(1, 1), Point{0, 1})
}

func TestSnapshotIsCopy(t *testing.T) {
	g := newTestGrid()
	snap := g.Snapshot()
	require.Len(t, snap, 12)
	require.Len(t, snap[0], 12)

	snap[5][5] = StatusTower
	s, _ := g.Status(5, 5)
	assert.Equal(t, StatusEmpty, s)
}

func TestCloneEqualAndReset(t *testing.T) {
	g := newTestGrid()
	c := g.Clone()
	require.True(t, g.Equal(c))

	require.True(t, g.SetCellStatus(5, 5, StatusTower))
	assert.False(t, g.Equal(c))

	g.Reset()
	assert.True(t, g.Equal(c))
	assert.False(t, g.Equal(nil))
	assert.False(t, g.Equal(New(10, 10, 1, []Point{{4, 0}}, []Point{{4, 9}})))
}

func TestInterior(t *testing.T) {
	g := newTestGrid()
	assert.True(t, g.Interior(Point{1, 1}))
	assert.True(t, g.Interior(Point{10, 10}))
	assert.False(t, g.Interior(Point{0, 3}))
	assert.False(t, g.Interior(Point{4, 0}))
	assert.False(t, g.Interior(Point{20, 3}))
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "tower", StatusTower.String())
	assert.Equal(t, "wall", StatusWall.String())
	assert.Equal(t, "status(42)", Status(42).String())
}
