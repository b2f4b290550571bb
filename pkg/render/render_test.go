package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-grid-defense/pkg/gridmap"
)

func TestLayoutRoundTrip(t *testing.T) {
	l := Layout{CellSize: 48, OffsetX: 20, OffsetY: 60}

	x, y, size := l.CellRect(gridmap.Point{Row: 2, Col: 3})
	assert.Equal(t, float32(20+3*48), x)
	assert.Equal(t, float32(60+2*48), y)
	assert.Equal(t, float32(48), size)

	p, ok := l.CellAt(int(x)+10, int(y)+47, 12, 12)
	assert.True(t, ok)
	assert.Equal(t, gridmap.Point{Row: 2, Col: 3}, p)

	_, ok = l.CellAt(5, 100, 12, 12)
	assert.False(t, ok, "left of the grid")
	_, ok = l.CellAt(20+12*48, 100, 12, 12)
	assert.False(t, ok, "right of the grid")
}

func TestCellFill(t *testing.T) {
	colors := &MapColors{
		CellColor:  color.RGBA{1, 1, 1, 255},
		WallColor:  color.RGBA{2, 2, 2, 255},
		SpawnColor: color.RGBA{3, 3, 3, 255},
		ExitColor:  color.RGBA{4, 4, 4, 255},
	}
	grid := gridmap.New(6, 6, 1, []gridmap.Point{{Row: 2, Col: 0}}, []gridmap.Point{{Row: 2, Col: 5}})
	grid.SetCellStatus(3, 3, gridmap.StatusTower)

	assert.Equal(t, colors.SpawnColor, cellFill(grid, gridmap.Point{Row: 2, Col: 0}, colors))
	assert.Equal(t, colors.ExitColor, cellFill(grid, gridmap.Point{Row: 2, Col: 5}, colors))
	assert.Equal(t, colors.WallColor, cellFill(grid, gridmap.Point{Row: 0, Col: 0}, colors))
	assert.Equal(t, colors.CellColor, cellFill(grid, gridmap.Point{Row: 2, Col: 2}, colors))
	assert.Equal(t, colors.CellColor, cellFill(grid, gridmap.Point{Row: 3, Col: 3}, colors))
}

func TestColorHelpers(t *testing.T) {
	c := color.RGBA{100, 240, 20, 128}
	assert.Equal(t, color.RGBA{140, 255, 60, 255}, LightenColor(c, 40))
	assert.Equal(t, color.RGBA{50, 120, 10, 128}, DarkenColor(c))
	assert.True(t, IsLight(color.RGBA{255, 224, 102, 255}))
	assert.False(t, IsLight(color.RGBA{52, 58, 64, 255}))
}
