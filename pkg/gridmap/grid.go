// pkg/gridmap/grid.go
package gridmap

import (
	"fmt"
	"log"
)

// Status — состояние клетки поля
type Status uint8

const (
	StatusEmpty Status = iota
	StatusWall
	StatusSpawn
	StatusExit
	StatusTower
)

func (s Status) String() string {
	switch s {
	case StatusEmpty:
		return "empty"
	case StatusWall:
		return "wall"
	case StatusSpawn:
		return "spawn"
	case StatusExit:
		return "exit"
	case StatusTower:
		return "tower"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

// Point — координаты клетки (строка, столбец), отсчёт с нуля
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Grid — прямоугольное поле клеток вместе с рамкой из стен.
// Спавны и выходы задаются один раз при создании и больше не меняются.
type Grid struct {
	rows, cols int
	outline    int
	cells      []Status
	spawns     []Point
	exits      []Point
}

// New создаёт поле rows x cols: всё пустое, затем спавны и выходы, затем рамка стен толщиной outline.
// Если список спавнов или выходов пуст, поле остаётся полностью пустым.
func New(rows, cols, outline int, spawns, exits []Point) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	g := &Grid{
		rows:    rows,
		cols:    cols,
		outline: outline,
		cells:   make([]Status, rows*cols),
	}
	g.spawns = g.filterInBounds(spawns, "spawn")
	g.exits = g.filterInBounds(exits, "exit")
	g.stamp()
	return g
}

func (g *Grid) filterInBounds(points []Point, kind string) []Point {
	result := make([]Point, 0, len(points))
	for _, p := range points {
		if !g.InBounds(p.Row, p.Col) {
			log.Printf("gridmap: %s cell %v is outside %dx%d grid, skipped", kind, p, g.rows, g.cols)
			continue
		}
		result = append(result, p)
	}
	return result
}

// stamp заполняет клетки согласно конфигурации
func (g *Grid) stamp() {
	for i := range g.cells {
		g.cells[i] = StatusEmpty
	}
	if len(g.spawns) == 0 || len(g.exits) == 0 {
		log.Printf("gridmap: no spawn or exit cells configured (spawns=%d, exits=%d), grid left empty", len(g.spawns), len(g.exits))
		return
	}
	for _, p := range g.spawns {
		g.cells[g.index(p.Row, p.Col)] = StatusSpawn
	}
	for _, p := range g.exits {
		g.cells[g.index(p.Row, p.Col)] = StatusExit
	}
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if !g.isOutline(row, col) {
				continue
			}
			i := g.index(row, col)
			if g.cells[i] == StatusSpawn || g.cells[i] == StatusExit {
				continue
			}
			g.cells[i] = StatusWall
		}
	}
}

// Reset возвращает поле к исходному состоянию (сброс игры)
func (g *Grid) Reset() {
	g.stamp()
}

func (g *Grid) isOutline(row, col int) bool {
	return row < g.outline || col < g.outline || row >= g.rows-g.outline || col >= g.cols-g.outline
}

func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

func (g *Grid) Rows() int    { return g.rows }
func (g *Grid) Cols() int    { return g.cols }
func (g *Grid) Outline() int { return g.outline }

// Spawns возвращает копию списка клеток появления врагов
func (g *Grid) Spawns() []Point {
	return append([]Point(nil), g.spawns...)
}

// Exits возвращает копию списка клеток выхода
func (g *Grid) Exits() []Point {
	return append([]Point(nil), g.exits...)
}

func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Status возвращает состояние клетки; false, если клетка вне поля
func (g *Grid) Status(row, col int) (Status, bool) {
	if !g.InBounds(row, col) {
		return StatusEmpty, false
	}
	return g.cells[g.index(row, col)], true
}

// Interior сообщает, лежит ли клетка внутри рамки
func (g *Grid) Interior(p Point) bool {
	return g.InBounds(p.Row, p.Col) && !g.isOutline(p.Row, p.Col)
}

func (g *Grid) IsSpawn(p Point) bool {
	s, ok := g.Status(p.Row, p.Col)
	return ok && s == StatusSpawn
}

func (g *Grid) IsExit(p Point) bool {
	s, ok := g.Status(p.Row, p.Col)
	return ok && s == StatusExit
}

// IsWalkable — клетка в пределах поля и пустая, спавн или выход
func (g *Grid) IsWalkable(row, col int) bool {
	s, ok := g.Status(row, col)
	if !ok {
		return false
	}
	return s == StatusEmpty || s == StatusSpawn || s == StatusExit
}

// SetCellStatus меняет состояние клетки. Спавны и выходы неизменяемы,
// и новые спавны/выходы так создать нельзя.
func (g *Grid) SetCellStatus(row, col int, status Status) bool {
	current, ok := g.Status(row, col)
	if !ok {
		return false
	}
	if current == StatusSpawn || current == StatusExit {
		return false
	}
	if status == StatusSpawn || status == StatusExit {
		return false
	}
	g.cells[g.index(row, col)] = status
	return true
}

// Neighbors возвращает до четырёх соседей (С, Ю, В, З) в пределах поля.
// Проходимость не проверяется.
func (g *Grid) Neighbors(row, col int) []Point {
	candidates := [4]Point{
		{Row: row - 1, Col: col},
		{Row: row + 1, Col: col},
		{Row: row, Col: col + 1},
		{Row: row, Col: col - 1},
	}
	result := make([]Point, 0, 4)
	for _, p := range candidates {
		if g.InBounds(p.Row, p.Col) {
			result = append(result, p)
		}
	}
	return result
}

// Snapshot — копия матрицы состояний для рендера и UI
func (g *Grid) Snapshot() [][]Status {
	out := make([][]Status, g.rows)
	for row := 0; row < g.rows; row++ {
		line := make([]Status, g.cols)
		copy(line, g.cells[row*g.cols:(row+1)*g.cols])
		out[row] = line
	}
	return out
}

func (g *Grid) Clone() *Grid {
	return &Grid{
		rows:    g.rows,
		cols:    g.cols,
		outline: g.outline,
		cells:   append([]Status(nil), g.cells...),
		spawns:  g.Spawns(),
		exits:   g.Exits(),
	}
}

// Equal сравнивает размеры и все клетки побайтно
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
