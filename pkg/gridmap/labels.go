// pkg/gridmap/labels.go
package gridmap

import "strconv"

// ColumnLabel возвращает буквенную метку столбца внутренней зоны в стиле электронных таблиц:
// 0 -> "A", 25 -> "Z", 26 -> "AA".
func ColumnLabel(index int) string {
	if index < 0 {
		return ""
	}
	label := ""
	n := index
	for {
		label = string(rune('A'+n%26)) + label
		n = n/26 - 1
		if n < 0 {
			break
		}
	}
	return label
}

// RowLabel — номер строки внутренней зоны, считая снизу: для поля из count строк
// верхняя строка получает метку count, нижняя — "1".
func RowLabel(index, count int) string {
	if index < 0 || index >= count {
		return ""
	}
	return strconv.Itoa(count - index)
}

// CellLabel — подпись клетки вида "C7" для сообщений и UI. Для рамки возвращает пустую строку.
func (g *Grid) CellLabel(p Point) string {
	if !g.Interior(p) {
		return ""
	}
	size := g.rows - 2*g.outline
	return ColumnLabel(p.Col-g.outline) + RowLabel(p.Row-g.outline, size)
}
