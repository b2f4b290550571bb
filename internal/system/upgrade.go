// internal/system/upgrade.go
package system

import (
	"log"

	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
)

// UpgradeSystem доводит начатые улучшения башен
type UpgradeSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewUpgradeSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *UpgradeSystem {
	return &UpgradeSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *UpgradeSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Upgrades) {
		upgrade := s.ecs.Upgrades[id]
		upgrade.Remaining -= deltaTime
		if upgrade.Remaining > 0 {
			continue
		}
		delete(s.ecs.Upgrades, id)

		tower, ok := s.ecs.Towers[id]
		if !ok {
			continue
		}
		def, _ := defs.Tower(tower.Kind)
		tower.Level++
		if combat, ok := s.ecs.Combats[id]; ok {
			combat.Attack += def.UpgradeAttack
		}
		log.Printf("Tower %d (%s) upgraded to level %d", id, tower.Kind, tower.Level)
		s.eventDispatcher.Dispatch(event.Event{Type: event.TowerUpgraded, Data: id})
	}
}
