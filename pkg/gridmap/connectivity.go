// pkg/gridmap/connectivity.go
package gridmap

import "github.com/zyedidia/generic/mapset"

// PathExists проверяет обходом в ширину, что хотя бы из одного спавна достижим хотя бы один выход.
// Клетки candidate и непроходимые клетки считаются заблокированными; выход всегда
// засчитывается как цель. Поле не изменяется.
func (g *Grid) PathExists(candidate *mapset.Set[Point]) bool {
	if len(g.spawns) == 0 || len(g.exits) == 0 {
		return false
	}
	_, found := g.bfs(g.spawns, func(p Point) bool { return g.IsExit(p) }, candidate)
	return found
}

// Reachable — то же самое для одной пары клеток
func (g *Grid) Reachable(from, to Point, candidate *mapset.Set[Point]) bool {
	if !g.InBounds(from.Row, from.Col) || !g.InBounds(to.Row, to.Col) {
		return false
	}
	_, found := g.bfs([]Point{from}, func(p Point) bool { return p == to }, candidate)
	return found
}

// Distance возвращает длину кратчайшего пути в шагах (BFS) и признак достижимости
func (g *Grid) Distance(from, to Point, obstacles *mapset.Set[Point]) (int, bool) {
	if !g.InBounds(from.Row, from.Col) || !g.InBounds(to.Row, to.Col) {
		return 0, false
	}
	return g.bfs([]Point{from}, func(p Point) bool { return p == to }, obstacles)
}

// bfs — обход в ширину из нескольких источников до первой клетки, удовлетворяющей isTarget.
// Цель проходима всегда, остальные клетки — только если проходимы и не входят в blocked.
func (g *Grid) bfs(sources []Point, isTarget func(Point) bool, blocked *mapset.Set[Point]) (int, bool) {
	type item struct {
		p    Point
		dist int
	}
	visited := mapset.New[Point]()
	queue := make([]item, 0, len(g.cells))
	for _, s := range sources {
		if visited.Has(s) {
			continue
		}
		visited.Put(s)
		queue = append(queue, item{p: s})
	}

	head := 0
	for head < len(queue) {
		current := queue[head]
		head++
		if isTarget(current.p) {
			return current.dist, true
		}
		for _, n := range g.Neighbors(current.p.Row, current.p.Col) {
			if visited.Has(n) {
				continue
			}
			if !isTarget(n) && (!g.IsWalkable(n.Row, n.Col) || contains(blocked, n)) {
				continue
			}
			visited.Put(n)
			queue = append(queue, item{p: n, dist: current.dist + 1})
		}
	}
	return 0, false
}

// contains — проверка принадлежности с учётом nil-множества
func contains(set *mapset.Set[Point], p Point) bool {
	return set != nil && set.Has(p)
}
