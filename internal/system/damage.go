// internal/system/damage.go
package system

import (
	"go-grid-defense/internal/component"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/types"
)

// ApplyDamage наносит урон врагу. Здоровье не опускается ниже нуля,
// враг помечается мёртвым один раз, когда здоровье впервые доходит до нуля.
// Возвращает true только на этом переходе. Повторный урон по мёртвому врагу ничего не меняет.
func ApplyDamage(ecs *entity.ECS, entityID types.EntityID, damage int) bool {
	if damage <= 0 {
		return false
	}
	health, hasHealth := ecs.Healths[entityID]
	enemy, isEnemy := ecs.Enemies[entityID]
	if !hasHealth || !isEnemy || enemy.Dead {
		return false
	}

	health.Value -= damage
	if health.Value < 0 {
		health.Value = 0
	}

	ecs.DamageFlashes[entityID] = &component.DamageFlash{
		Timer:    0,
		Duration: config.DamageFlashDuration,
	}

	if health.Value == 0 {
		enemy.Dead = true
		return true
	}
	return false
}
