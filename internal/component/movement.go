// component/movement.go
package component

import "go-grid-defense/pkg/gridmap"

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости
type Velocity struct {
	Speed float64 // клеток в секунду
}

// Path — компонент пути
type Path struct {
	Cells        []gridmap.Point
	CurrentIndex int
	Progress     float64 // Доля пройденного отрезка к следующей клетке, [0, 1)
}

// Current возвращает клетку, на которой стоит враг
func (p *Path) Current() (gridmap.Point, bool) {
	if p.CurrentIndex < 0 || p.CurrentIndex >= len(p.Cells) {
		return gridmap.Point{}, false
	}
	return p.Cells[p.CurrentIndex], true
}

// Next возвращает клетку, в которую враг сейчас движется
func (p *Path) Next() (gridmap.Point, bool) {
	i := p.CurrentIndex + 1
	if i < 0 || i >= len(p.Cells) {
		return gridmap.Point{}, false
	}
	return p.Cells[i], true
}
