// internal/config/grid.go
package config

import (
	"errors"
	"fmt"

	"go-grid-defense/pkg/gridmap"
)

const (
	GridSize = 10 // Размер внутреннего игрового поля
	Outline  = 1  // Толщина рамки вокруг поля
)

// GridConfig — параметры поля, задаются один раз при старте
type GridConfig struct {
	Rows    int             `json:"rows"`
	Cols    int             `json:"cols"`
	Outline int             `json:"outline"`
	Spawns  []gridmap.Point `json:"spawns"`
	Exits   []gridmap.Point `json:"exits"`
}

// DefaultGridConfig — поле 10x10 в рамке толщиной 1, две клетки спавна по центру левого края
// и две клетки выхода по центру правого.
func DefaultGridConfig() GridConfig {
	total := GridSize + 2*Outline
	mid := GridSize / 2
	return GridConfig{
		Rows:    total,
		Cols:    total,
		Outline: Outline,
		Spawns: []gridmap.Point{
			{Row: mid - 1, Col: 0},
			{Row: mid, Col: 0},
		},
		Exits: []gridmap.Point{
			{Row: mid - 1, Col: total - 1},
			{Row: mid, Col: total - 1},
		},
	}
}

// Validate проверяет, что конфигурация описывает поле с непустой внутренней зоной
func (c GridConfig) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("grid size %dx%d must be positive", c.Rows, c.Cols)
	}
	if c.Outline < 0 {
		return fmt.Errorf("outline %d must not be negative", c.Outline)
	}
	if c.Rows-2*c.Outline <= 0 || c.Cols-2*c.Outline <= 0 {
		return fmt.Errorf("outline %d leaves no interior in %dx%d grid", c.Outline, c.Rows, c.Cols)
	}
	if len(c.Spawns) == 0 || len(c.Exits) == 0 {
		return errors.New("at least one spawn and one exit cell are required")
	}
	for _, p := range append(append([]gridmap.Point(nil), c.Spawns...), c.Exits...) {
		if p.Row < 0 || p.Row >= c.Rows || p.Col < 0 || p.Col >= c.Cols {
			return fmt.Errorf("cell %v is outside %dx%d grid", p, c.Rows, c.Cols)
		}
	}
	return nil
}

// NewGrid строит поле по конфигурации
func (c GridConfig) NewGrid() *gridmap.Grid {
	return gridmap.New(c.Rows, c.Cols, c.Outline, c.Spawns, c.Exits)
}
