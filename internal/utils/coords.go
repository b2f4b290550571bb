// internal/utils/coords.go
package utils

import (
	"math"

	"go-grid-defense/internal/config"
	"go-grid-defense/pkg/gridmap"
)

// CellCenter переводит клетку в мировые координаты её центра.
// Мировые координаты не включают смещение поля на экране.
func CellCenter(p gridmap.Point) (float64, float64) {
	return (float64(p.Col) + 0.5) * config.CellSize, (float64(p.Row) + 0.5) * config.CellSize
}

// WorldToCell возвращает клетку, в которую попадает точка
func WorldToCell(x, y float64) gridmap.Point {
	return gridmap.Point{
		Row: int(math.Floor(y / config.CellSize)),
		Col: int(math.Floor(x / config.CellSize)),
	}
}

// ScreenToCell учитывает смещение поля на экране
func ScreenToCell(x, y int) gridmap.Point {
	return WorldToCell(float64(x-config.GridOffsetX), float64(y-config.GridOffsetY))
}

// WorldToScreen добавляет смещение поля
func WorldToScreen(x, y float64) (float32, float32) {
	return float32(x + config.GridOffsetX), float32(y + config.GridOffsetY)
}
