// pkg/render/color.go
package render

import "image/color"

// MapColors — цвета статичного фона поля
type MapColors struct {
	BackgroundColor color.RGBA
	CellColor       color.RGBA
	WallColor       color.RGBA
	SpawnColor      color.RGBA
	ExitColor       color.RGBA
	LabelColor      color.RGBA
	TextDarkColor   color.RGBA
	TextLightColor  color.RGBA
	StrokeWidth     float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor прибавляет к каналам фиксированную величину, не выходя за 255
func LightenColor(c color.RGBA, amount int) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, int(c.R)+amount)),
		G: uint8(min(255, int(c.G)+amount)),
		B: uint8(min(255, int(c.B)+amount)),
		A: 255,
	}
}

// IsLight — светлый ли фон, чтобы выбрать тёмный текст
func IsLight(c color.RGBA) bool {
	return (int(c.R)+int(c.G)+int(c.B))/3 > 128
}
