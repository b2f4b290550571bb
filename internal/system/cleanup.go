// internal/system/cleanup.go
package system

import (
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
)

// CleanupSystem убирает мёртвых врагов из реестра.
// Награда за убитого (не сбежавшего) врага выдаётся здесь, по одному событию на врага.
type CleanupSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewCleanupSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CleanupSystem {
	return &CleanupSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *CleanupSystem) Update() {
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		enemy := s.ecs.Enemies[id]
		if !enemy.Dead {
			continue
		}
		reward := enemy.Reward
		killed := !enemy.Escaped
		s.ecs.RemoveEntity(id)
		if killed {
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.EnemyKilled,
				Data: event.EnemyKilledData{ID: id, Reward: reward},
			})
		}
	}
}
