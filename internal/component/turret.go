// internal/component/turret.go
package component

import "go-grid-defense/internal/types"

// Turret отвечает за вращение ствола башни.
type Turret struct {
	// CurrentAngle - текущий угол поворота в радианах.
	CurrentAngle float32
	// TargetAngle - угол, к которому стремится ствол.
	TargetAngle float32
	// TurnSpeed - доля оставшегося угла, проходимая за секунду.
	TurnSpeed float32
	// TargetID - ID последней цели.
	TargetID types.EntityID
}
