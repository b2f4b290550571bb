// internal/system/visual_effect.go
package system

import (
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/utils"
)

// VisualEffectSystem управляет визуальными эффектами: вспышками урона и поворотом стволов.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for id, flash := range s.ecs.DamageFlashes {
		flash.Timer += deltaTime
		if flash.Timer >= flash.Duration {
			delete(s.ecs.DamageFlashes, id)
		}
	}

	t := float32(deltaTime * config.TurretTurnSpeed)
	if t > 1 {
		t = 1
	}
	for _, turret := range s.ecs.Turrets {
		turret.CurrentAngle = utils.TurnAngle(turret.CurrentAngle, turret.TargetAngle, t)
	}
}
