// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect       image.Rectangle
	Text       string
	TextColor  color.Color
	BgColor    color.Color
	HoverColor color.Color
	Disabled   bool
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string) *Button {
	return &Button{
		Rect:       rect,
		Text:       label,
		TextColor:  color.White,
		BgColor:    color.RGBA{60, 70, 90, 255},
		HoverColor: color.RGBA{80, 100, 130, 255},
	}
}

// Contains проверяет попадание курсора. Выключенная кнопка кликов не принимает.
func (b *Button) Contains(x, y int) bool {
	return !b.Disabled && image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, face font.Face, cursorX, cursorY int) {
	bg := b.BgColor
	if b.Contains(cursorX, cursorY) {
		bg = b.HoverColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 1.5, color.RGBA{120, 120, 120, 255}, true)

	textColor := b.TextColor
	if b.Disabled {
		textColor = color.RGBA{130, 130, 130, 255}
	}
	bounds := text.BoundString(face, b.Text)
	tx := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	ty := b.Rect.Min.Y + (b.Rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, b.Text, face, tx, ty, textColor)
}
