// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type PauseButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	IsPaused       bool
	PauseColor     color.Color
	PlayColor      color.Color
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.Color) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

// Draw рисует «play» на паузе и две полоски во время игры
func (b *PauseButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	if b.IsPaused {
		drawTriangle(screen, b.X-size, b.Y-size*1.2, b.X-size, b.Y+size*1.2, b.X+size, b.Y, b.PlayColor)
		return
	}

	width := size * 0.6
	height := size * 2.0
	spacing := size * 0.4
	for _, left := range []float32{b.X - width - spacing/2, b.X + spacing/2} {
		vector.DrawFilledRect(screen, left, b.Y-height/2, width, height, b.PauseColor, true)
		vector.StrokeRect(screen, left, b.Y-height/2, width, height, 1, color.White, true)
	}
}

func (b *PauseButton) Contains(x, y int) bool {
	return insideCircle(float32(x), float32(y), b.X, b.Y, b.Size*1.5)
}

func (b *PauseButton) CanToggle(cooldown time.Duration) bool {
	return time.Since(b.LastToggleTime) >= cooldown
}

func (b *PauseButton) TogglePause() {
	b.IsPaused = !b.IsPaused
	b.LastClickTime = time.Now()
	b.LastToggleTime = time.Now()
}

func (b *PauseButton) SetPaused(paused bool) {
	b.IsPaused = paused
}
