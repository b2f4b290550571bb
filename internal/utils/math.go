// internal/utils/math.go
package utils

import "math"

// Distance — евклидово расстояние между точками мира, в пикселях
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// TurnAngle доворачивает ствол from к to на долю t по кратчайшей дуге.
// Результат лежит в (-π, π].
func TurnAngle(from, to, t float32) float32 {
	return wrapAngle(from + wrapAngle(to-from)*t)
}

func wrapAngle(a float32) float32 {
	r := math.Remainder(float64(a), 2*math.Pi)
	if r <= -math.Pi {
		r += 2 * math.Pi
	}
	return float32(r)
}
