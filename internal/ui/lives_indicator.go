// internal/ui/lives_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	LivesCols          = 10
	LivesCircleRadius  = 5.0
	LivesCircleSpacing = 3.0
)

var (
	livesFullColor  = color.RGBA{70, 130, 220, 255}
	livesLowColor   = color.RGBA{220, 50, 50, 255}
	livesEmptyColor = color.RGBA{0, 0, 0, 255}
)

// LivesIndicator отображает оставшиеся жизни сеткой кружков.
type LivesIndicator struct {
	X, Y float32
	Face font.Face
}

func NewLivesIndicator(x, y float32, face font.Face) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y, Face: face}
}

// circleColor: пустые ячейки чёрные. Пока жизней больше половины, «избыток» синий,
// остальное красное.
func circleColor(index, lives, maxLives int) color.RGBA {
	if index >= lives {
		return livesEmptyColor
	}
	half := maxLives / 2
	if lives > half && index < lives-half {
		return livesFullColor
	}
	return livesLowColor
}

func (i *LivesIndicator) Draw(screen *ebiten.Image, lives, maxLives int) {
	step := float32(LivesCircleRadius*2 + LivesCircleSpacing)
	for j := 0; j < maxLives; j++ {
		row, col := j/LivesCols, j%LivesCols
		cx := i.X + float32(col)*step + LivesCircleRadius
		cy := i.Y + float32(row)*step + LivesCircleRadius
		vector.DrawFilledCircle(screen, cx, cy, LivesCircleRadius, circleColor(j, lives, maxLives), true)
		vector.StrokeCircle(screen, cx, cy, LivesCircleRadius, 1, color.White, true)
	}

	label := strconv.Itoa(lives) + "/" + strconv.Itoa(maxLives)
	width := float32(LivesCols) * step
	if maxLives < LivesCols {
		width = float32(maxLives) * step
	}
	text.Draw(screen, label, i.Face, int(i.X+width+6), int(i.Y+LivesCircleRadius*2), color.White)
}
