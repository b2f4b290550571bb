// internal/component/projectile.go
package component

import (
	"image/color"

	"go-grid-defense/internal/types"
)

// Projectile представляет летящий снаряд.
type Projectile struct {
	TargetID types.EntityID
	SourceID types.EntityID
	Speed    float64
	Damage   int
	Color    color.RGBA
}
