// component/tower.go
package component

import (
	"go-grid-defense/internal/defs"
	"go-grid-defense/pkg/gridmap"
	"go-grid-defense/pkg/utils"
)

type Tower struct {
	Kind     defs.TowerKind
	Cell     gridmap.Point // Клетка, на которой стоит башня
	Level    int
	Invested int // Сколько денег вложено, от этого считается возврат при продаже
}

// Upgrade — идущее улучшение башни
type Upgrade struct {
	Remaining float64
	Duration  float64
}

// Fraction — доля выполненного улучшения
func (u *Upgrade) Fraction() float64 {
	if u.Duration <= 0 {
		return 1
	}
	return utils.Clamp(1-u.Remaining/u.Duration, 0, 1)
}
