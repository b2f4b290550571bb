package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-grid-defense/pkg/gridmap"
)

// Layout — размещение поля на экране
type Layout struct {
	CellSize float64
	OffsetX  float64
	OffsetY  float64
}

// CellRect возвращает прямоугольник клетки в экранных координатах
func (l Layout) CellRect(p gridmap.Point) (x, y, size float32) {
	return float32(l.OffsetX + float64(p.Col)*l.CellSize),
		float32(l.OffsetY + float64(p.Row)*l.CellSize),
		float32(l.CellSize)
}

// CellAt переводит экранную точку в клетку. ok == false, если точка вне поля rows×cols.
func (l Layout) CellAt(x, y, rows, cols int) (gridmap.Point, bool) {
	fx := float64(x) - l.OffsetX
	fy := float64(y) - l.OffsetY
	if fx < 0 || fy < 0 {
		return gridmap.Point{}, false
	}
	p := gridmap.Point{Row: int(fy / l.CellSize), Col: int(fx / l.CellSize)}
	if p.Row >= rows || p.Col >= cols {
		return gridmap.Point{}, false
	}
	return p, true
}

// GridRenderer рисует клетки поля. Статичный фон с подписями рендерится один раз.
type GridRenderer struct {
	grid     *gridmap.Grid
	layout   Layout
	colors   *MapColors
	fontFace font.Face
	mapImage *ebiten.Image
}

func NewGridRenderer(grid *gridmap.Grid, layout Layout, screenWidth, screenHeight int, face font.Face, colors *MapColors) *GridRenderer {
	return &GridRenderer{
		grid:     grid,
		layout:   layout,
		colors:   colors,
		fontFace: face,
		mapImage: ebiten.NewImage(screenWidth, screenHeight),
	}
}

// CellColor — цвет фона клетки. Башни рисуются поверх, поэтому их клетка выглядит как пустая.
func (r *GridRenderer) CellColor(p gridmap.Point) color.RGBA {
	return cellFill(r.grid, p, r.colors)
}

func cellFill(grid *gridmap.Grid, p gridmap.Point, colors *MapColors) color.RGBA {
	switch {
	case grid.IsSpawn(p):
		return colors.SpawnColor
	case grid.IsExit(p):
		return colors.ExitColor
	}
	if status, ok := grid.Status(p.Row, p.Col); ok && status == gridmap.StatusWall {
		return colors.WallColor
	}
	return colors.CellColor
}

// RenderMapImage создаёт предрендеренное изображение фона
func (r *GridRenderer) RenderMapImage() {
	r.mapImage.Clear()
	r.mapImage.Fill(r.colors.BackgroundColor)

	for row := 0; row < r.grid.Rows(); row++ {
		for col := 0; col < r.grid.Cols(); col++ {
			p := gridmap.Point{Row: row, Col: col}
			x, y, size := r.layout.CellRect(p)
			fill := r.CellColor(p)
			vector.DrawFilledRect(r.mapImage, x, y, size, size, fill, false)
			vector.StrokeRect(r.mapImage, x, y, size, size, r.colors.StrokeWidth, LightenColor(fill, 40), false)
		}
	}
	r.drawLabels(r.mapImage)
}

// drawLabels подписывает рамку: буквы столбцов сверху, номера строк слева
func (r *GridRenderer) drawLabels(target *ebiten.Image) {
	if r.fontFace == nil || r.grid.Outline() == 0 {
		return
	}
	outline := r.grid.Outline()
	interiorRows := r.grid.Rows() - 2*outline
	for col := outline; col < r.grid.Cols()-outline; col++ {
		r.drawCentered(target, gridmap.ColumnLabel(col-outline), gridmap.Point{Row: 0, Col: col})
	}
	for row := outline; row < r.grid.Rows()-outline; row++ {
		r.drawCentered(target, gridmap.RowLabel(row-outline, interiorRows), gridmap.Point{Row: row, Col: 0})
	}
}

func (r *GridRenderer) drawCentered(target *ebiten.Image, label string, p gridmap.Point) {
	if label == "" {
		return
	}
	x, y, size := r.layout.CellRect(p)
	bounds := text.BoundString(r.fontFace, label)
	textColor := r.colors.LabelColor
	if IsLight(r.CellColor(p)) {
		textColor = r.colors.TextDarkColor
	}
	tx := int(x+size/2) - bounds.Dx()/2
	ty := int(y+size/2) + bounds.Dy()/2
	text.Draw(target, label, r.fontFace, tx, ty, textColor)
}

// Draw рисует фон и подсветку клетки под курсором
func (r *GridRenderer) Draw(screen *ebiten.Image, hover *gridmap.Point, hoverOK bool) {
	screen.DrawImage(r.mapImage, nil)
	if hover == nil {
		return
	}
	x, y, size := r.layout.CellRect(*hover)
	stroke := color.RGBA{220, 60, 60, 255}
	if hoverOK {
		stroke = color.RGBA{80, 200, 120, 255}
	}
	vector.DrawFilledRect(screen, x, y, size, size, DarkenColor(r.CellColor(*hover)), false)
	vector.StrokeRect(screen, x+1, y+1, size-2, size-2, 2, stroke, false)
}

// Bounds — прямоугольник всего поля на экране
func (r *GridRenderer) Bounds() image.Rectangle {
	x0, y0, _ := r.layout.CellRect(gridmap.Point{})
	x1, y1, size := r.layout.CellRect(gridmap.Point{Row: r.grid.Rows() - 1, Col: r.grid.Cols() - 1})
	return image.Rect(int(x0), int(y0), int(x1+size), int(y1+size))
}
