// internal/system/projectile.go
package system

import (
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/types"
	"go-grid-defense/internal/utils"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

// Update ведёт снаряды к текущей позиции цели. Снаряд, чья цель пропала или уже мертва,
// удаляется без урона.
func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Projectiles) {
		proj := s.ecs.Projectiles[id]
		pos := s.ecs.Positions[id]
		if pos == nil {
			s.removeProjectile(id)
			continue
		}

		enemy, isEnemy := s.ecs.Enemies[proj.TargetID]
		targetPos, targetExists := s.ecs.Positions[proj.TargetID]
		if !isEnemy || !targetExists || enemy.Dead {
			s.removeProjectile(id)
			continue
		}

		dist := utils.Distance(pos.X, pos.Y, targetPos.X, targetPos.Y)
		step := proj.Speed * deltaTime
		if dist <= step || dist < config.ProjectileHitEpsilon {
			ApplyDamage(s.ecs, proj.TargetID, proj.Damage)
			s.removeProjectile(id)
			continue
		}

		pos.X += (targetPos.X - pos.X) / dist * step
		pos.Y += (targetPos.Y - pos.Y) / dist * step
	}
}

// Вспомогательная функция для удаления снаряда
func (s *ProjectileSystem) removeProjectile(id types.EntityID) {
	s.ecs.RemoveEntity(id)
}

// Clear удаляет все снаряды
func (s *ProjectileSystem) Clear() {
	for id := range s.ecs.Projectiles {
		s.removeProjectile(id)
	}
}
