// pkg/gridmap/pathfinding.go
package gridmap

import (
	"container/heap"

	"go-grid-defense/pkg/utils"

	"github.com/zyedidia/generic/mapset"
)

// Manhattan — эвристика A* для движения по четырём направлениям с единичной ценой
func Manhattan(a, b Point) int {
	return utils.Abs(a.Row-b.Row) + utils.Abs(a.Col-b.Col)
}

// FindPath находит кратчайший путь от start до end.
// Клетки из obstacles (nil — без дополнительных препятствий) и непроходимые клетки обходятся, end проходим всегда.
// Возвращает nil, если пути нет.
func (g *Grid) FindPath(start, end Point, obstacles *mapset.Set[Point]) []Point {
	if !g.InBounds(start.Row, start.Col) || !g.InBounds(end.Row, end.Col) {
		return nil
	}
	if start == end {
		return []Point{start}
	}

	pq := &PriorityQueue{}
	heap.Init(pq)
	seq := 0
	heap.Push(pq, &Node{Point: start, G: 0, H: Manhattan(start, end), Seq: seq})
	costSoFar := map[Point]int{start: 0}
	closed := mapset.New[Point]()

	for pq.Len() > 0 {
		current := heap.Pop(pq).(*Node)
		if current.Point == end {
			return reconstructPath(current)
		}
		if closed.Has(current.Point) {
			continue // устаревшая запись очереди
		}
		closed.Put(current.Point)

		for _, n := range g.Neighbors(current.Point.Row, current.Point.Col) {
			if n != end && (!g.IsWalkable(n.Row, n.Col) || contains(obstacles, n)) {
				continue
			}
			if closed.Has(n) {
				continue
			}
			newCost := current.G + 1
			if old, exists := costSoFar[n]; exists && newCost >= old {
				continue
			}
			costSoFar[n] = newCost
			seq++
			heap.Push(pq, &Node{Point: n, G: newCost, H: Manhattan(n, end), Seq: seq, Parent: current})
		}
	}
	return nil // Нет пути
}

// ValidPath проверяет, что путь не пуст и каждый шаг — сосед предыдущей клетки
func ValidPath(path []Point) bool {
	if len(path) == 0 {
		return false
	}
	for i := 1; i < len(path); i++ {
		if Manhattan(path[i-1], path[i]) != 1 {
			return false
		}
	}
	return true
}

// Node — вершина в открытом списке A*
type Node struct {
	Point  Point
	G      int // пройденная стоимость
	H      int // эвристика до цели
	Seq    int // порядок вставки, для стабильного выбора среди равных
	Parent *Node
}

func (n *Node) F() int { return n.G + n.H }

// PriorityQueue для A*
type PriorityQueue []*Node

func (pq PriorityQueue) Len() int { return len(pq) }
func (pq PriorityQueue) Less(i, j int) bool {
	if pq[i].F() != pq[j].F() {
		return pq[i].F() < pq[j].F()
	}
	if pq[i].H != pq[j].H {
		return pq[i].H < pq[j].H
	}
	return pq[i].Seq < pq[j].Seq
}
func (pq PriorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *PriorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*Node))
}
func (pq *PriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}

func reconstructPath(node *Node) []Point {
	path := []Point{}
	for node != nil {
		path = append(path, node.Point)
		node = node.Parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
