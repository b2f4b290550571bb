// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpeedButton — двойной треугольник, цвет показывает множитель скорости
type SpeedButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	StateColors    []color.Color
	CurrentState   int
}

func NewSpeedButton(x, y, size float32, stateColors []color.Color) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	fill := color.Color(color.White)
	if len(b.StateColors) > 0 {
		fill = b.StateColors[b.CurrentState%len(b.StateColors)]
	}

	height := size * 1.2
	width := size
	offset := width * 0.8

	drawTriangle(screen, b.X-width, b.Y-height/2, b.X, b.Y, b.X-width, b.Y+height/2, fill)
	drawTriangle(screen, b.X-width+offset, b.Y-height/2, b.X+offset, b.Y, b.X-width+offset, b.Y+height/2, fill)
}

// Contains — форма сложная, поэтому попадание считаем по кругу
func (b *SpeedButton) Contains(x, y int) bool {
	return insideCircle(float32(x), float32(y), b.X, b.Y, b.Size*1.5)
}

// CanToggle не даёт переключить кнопку дважды за одно нажатие
func (b *SpeedButton) CanToggle(cooldown time.Duration) bool {
	return time.Since(b.LastToggleTime) >= cooldown
}

func (b *SpeedButton) ToggleState() {
	if len(b.StateColors) > 0 {
		b.CurrentState = (b.CurrentState + 1) % len(b.StateColors)
	}
	b.LastClickTime = time.Now()
	b.LastToggleTime = time.Now()
}

// SetState синхронизирует кнопку с множителем игры
func (b *SpeedButton) SetState(state int) {
	b.CurrentState = state
}

func drawTriangle(screen *ebiten.Image, x1, y1, x2, y2, x3, y3 float32, fill color.Color) {
	var path vector.Path
	path.MoveTo(x1, y1)
	path.LineTo(x2, y2)
	path.LineTo(x3, y3)
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := fill.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	screen.DrawTriangles(vs, is, solidImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})

	vector.StrokeLine(screen, x1, y1, x2, y2, 1, color.White, true)
	vector.StrokeLine(screen, x2, y2, x3, y3, 1, color.White, true)
	vector.StrokeLine(screen, x3, y3, x1, y1, 1, color.White, true)
}

var whiteImage *ebiten.Image

// solidImage — белая текстура 3x3 для DrawTriangles, создаётся при первой отрисовке
func solidImage() *ebiten.Image {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
	}
	return whiteImage
}
