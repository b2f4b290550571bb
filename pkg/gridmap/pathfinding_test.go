package gridmap

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zyedidia/generic/mapset"
)

func pointSet(points ...Point) *mapset.Set[Point] {
	s := mapset.New[Point]()
	for _, p := range points {
		s.Put(p)
	}
	return &s
}

func columnWall(col, fromRow, toRow int) []Point {
	var points []Point
	for row := fromRow; row <= toRow; row++ {
		points = append(points, Point{Row: row, Col: col})
	}
	return points
}

func TestFindPathStraightLineIsOptimal(t *testing.T) {
	g := newTestGrid()
	spawn, exit := Point{4, 0}, Point{4, 11}

	path := g.FindPath(spawn, exit, nil)
	require.NotNil(t, path)

	assert.Equal(t, g.Cols()-1, len(path)-1, "path must take exactly W-1 steps")
	assert.Equal(t, spawn, path[0])
	assert.Equal(t, exit, path[len(path)-1])
	assert.True(t, ValidPath(path))
}

func TestFindPathAvoidsObstacles(t *testing.T) {
	g := newTestGrid()
	spawn, exit := Point{4, 0}, Point{4, 11}
	obstacles := pointSet(Point{4, 5})

	path := g.FindPath(spawn, exit, obstacles)
	require.NotNil(t, path)
	assert.NotContains(t, path, Point{4, 5})
	assert.True(t, ValidPath(path))

	dist, ok := g.Distance(spawn, exit, obstacles)
	require.True(t, ok)
	assert.Equal(t, dist, len(path)-1)
	assert.Equal(t, 13, len(path)-1)
}

func TestFindPathTreatsTowersOnGridAsObstacles(t *testing.T) {
	g := newTestGrid()
	for _, p := range columnWall(5, 1, 9) {
		require.True(t, g.SetCellStatus(p.Row, p.Col, StatusTower))
	}

	path := g.FindPath(Point{4, 0}, Point{4, 11}, nil)
	require.NotNil(t, path)
	assert.Contains(t, path, Point{10, 5}, "the only gap is at the bottom row")
	for _, p := range path[1 : len(path)-1] {
		assert.True(t, g.IsWalkable(p.Row, p.Col))
	}
}

func TestFindPathNoPath(t *testing.T) {
	g := newTestGrid()
	obstacles := pointSet(columnWall(5, 1, 10)...)

	assert.Nil(t, g.FindPath(Point{4, 0}, Point{4, 11}, obstacles))
	assert.Nil(t, g.FindPath(Point{-1, 0}, Point{4, 11}, nil))
	assert.Nil(t, g.FindPath(Point{4, 0}, Point{4, 12}, nil))
}

func TestFindPathEndAlwaysTraversable(t *testing.T) {
	g := newTestGrid()
	require.True(t, g.SetCellStatus(4, 5, StatusTower))

	path := g.FindPath(Point{4, 0}, Point{4, 5}, nil)
	require.NotNil(t, path)
	assert.Equal(t, 5, len(path)-1)
	assert.Equal(t, Point{4, 5}, path[len(path)-1])

	path = g.FindPath(Point{4, 0}, Point{4, 5}, pointSet(Point{4, 5}))
	require.NotNil(t, path)
}

func TestFindPathStartEqualsEnd(t *testing.T) {
	g := newTestGrid()
	assert.Equal(t, []Point{{3, 3}}, g.FindPath(Point{3, 3}, Point{3, 3}, nil))
}

func TestFindPathMatchesBFSDistance(t *testing.T) {
	g := newTestGrid()
	rng := rand.New(rand.NewSource(42))
	spawn, exit := Point{4, 0}, Point{4, 11}

	for round := 0; round < 200; round++ {
		obstacles := mapset.New[Point]()
		for i := 0; i < 30; i++ {
			obstacles.Put(Point{Row: 1 + rng.Intn(10), Col: 1 + rng.Intn(10)})
		}

		path := g.FindPath(spawn, exit, &obstacles)
		dist, ok := g.Distance(spawn, exit, &obstacles)
		if !ok {
			assert.Nil(t, path, "round %d", round)
			assert.False(t, g.PathExists(&obstacles), "round %d", round)
			continue
		}
		require.NotNil(t, path, "round %d", round)
		assert.Equal(t, dist, len(path)-1, "round %d", round)
		assert.True(t, ValidPath(path), "round %d", round)
		for _, p := range path {
			assert.False(t, obstacles.Has(p), "round %d: path crosses obstacle %v", round, p)
		}
	}
}

func TestPathExists(t *testing.T) {
	g := newTestGrid()

	assert.True(t, g.PathExists(nil))
	assert.True(t, g.PathExists(pointSet(columnWall(5, 1, 9)...)))
	assert.False(t, g.PathExists(pointSet(columnWall(5, 1, 10)...)))

	// Кандидаты не меняют поле
	s, _ := g.Status(5, 5)
	assert.Equal(t, StatusEmpty, s)
}

func TestPathExistsAnyPair(t *testing.T) {
	g := New(12, 12, 1,
		[]Point{{Row: 2, Col: 0}, {Row: 9, Col: 0}},
		[]Point{{Row: 2, Col: 11}, {Row: 9, Col: 11}},
	)
	// Горизонтальная перегородка разделяет поле на верх и низ, но каждая половина связна
	wall := []Point{}
	for col := 1; col <= 10; col++ {
		wall = append(wall, Point{Row: 5, Col: col})
	}
	assert.True(t, g.PathExists(pointSet(wall...)))

	// Закрываем проход только в нижней половине
	assert.True(t, g.PathExists(pointSet(append(wall, columnWall(5, 6, 10)...)...)))

	// Закрываем обе половины
	blocked := append(append(wall, columnWall(5, 6, 10)...), columnWall(5, 1, 4)...)
	assert.False(t, g.PathExists(pointSet(blocked...)))
}

func TestReachable(t *testing.T) {
	g := newTestGrid()
	assert.True(t, g.Reachable(Point{2, 2}, Point{4, 11}, nil))
	box := pointSet(Point{1, 2}, Point{2, 1}, Point{2, 3}, Point{3, 2})
	assert.False(t, g.Reachable(Point{2, 2}, Point{4, 11}, box))
	assert.False(t, g.Reachable(Point{2, 2}, Point{40, 11}, nil))
}

func TestManhattanAndValidPath(t *testing.T) {
	assert.Equal(t, 7, Manhattan(Point{1, 1}, Point{4, 5}))
	assert.True(t, ValidPath([]Point{{1, 1}}))
	assert.True(t, ValidPath([]Point{{1, 1}, {1, 2}, {2, 2}}))
	assert.False(t, ValidPath(nil))
	assert.False(t, ValidPath([]Point{{1, 1}, {2, 2}}))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "A", ColumnLabel(0))
	assert.Equal(t, "Z", ColumnLabel(25))
	assert.Equal(t, "AA", ColumnLabel(26))
	assert.Equal(t, "AB", ColumnLabel(27))
	assert.Equal(t, "ZZ", ColumnLabel(701))
	assert.Equal(t, "AAA", ColumnLabel(702))
	assert.Equal(t, "", ColumnLabel(-1))

	assert.Equal(t, "10", RowLabel(0, 10))
	assert.Equal(t, "1", RowLabel(9, 10))
	assert.Equal(t, "", RowLabel(10, 10))

	g := newTestGrid()
	assert.Equal(t, "A10", g.CellLabel(Point{1, 1}))
	assert.Equal(t, "J1", g.CellLabel(Point{10, 10}))
	assert.Equal(t, "", g.CellLabel(Point{0, 0}))
}
