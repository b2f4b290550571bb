// internal/entity/ecs.go
package entity

import (
	"sort"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/types"
)

type ECS struct {
	GameTime      float64
	NextID        types.EntityID
	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Paths         map[types.EntityID]*component.Path
	Healths       map[types.EntityID]*component.Health
	Renderables   map[types.EntityID]*component.Renderable
	Towers        map[types.EntityID]*component.Tower
	Upgrades      map[types.EntityID]*component.Upgrade
	Turrets       map[types.EntityID]*component.Turret
	Projectiles   map[types.EntityID]*component.Projectile
	Combats       map[types.EntityID]*component.Combat
	Enemies       map[types.EntityID]*component.Enemy
	DamageFlashes map[types.EntityID]*component.DamageFlash
	Wave          *component.Wave
	GameState     *component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Paths:         make(map[types.EntityID]*component.Path),
		Healths:       make(map[types.EntityID]*component.Health),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Towers:        make(map[types.EntityID]*component.Tower),
		Upgrades:      make(map[types.EntityID]*component.Upgrade),
		Turrets:       make(map[types.EntityID]*component.Turret),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		Combats:       make(map[types.EntityID]*component.Combat),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		Wave:          nil,
		GameState: &component.GameState{
			Phase: component.BuildState,
		},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет все компоненты сущности
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Paths, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Towers, id)
	delete(ecs.Upgrades, id)
	delete(ecs.Turrets, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Combats, id)
	delete(ecs.Enemies, id)
	delete(ecs.DamageFlashes, id)
}

// SortedIDs возвращает ключи карты по возрастанию, чтобы системы обходили сущности в одном порядке
func SortedIDs[T any](m map[types.EntityID]*T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// AliveEnemies — число врагов, ещё не помеченных мёртвыми
func (ecs *ECS) AliveEnemies() int {
	n := 0
	for _, e := range ecs.Enemies {
		if !e.Dead {
			n++
		}
	}
	return n
}
