package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/types"
)

func TestNewEntityIDsIncrement(t *testing.T) {
	ecs := NewECS()
	assert.Equal(t, types.EntityID(1), ecs.NewEntity())
	assert.Equal(t, types.EntityID(2), ecs.NewEntity())
	assert.Equal(t, types.EntityID(3), ecs.NewEntity())
}

func TestRemoveEntityClearsComponents(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{}
	ecs.Healths[id] = &component.Health{Value: 5, Max: 5}
	ecs.Enemies[id] = &component.Enemy{}

	ecs.RemoveEntity(id)
	assert.Empty(t, ecs.Positions)
	assert.Empty(t, ecs.Healths)
	assert.Empty(t, ecs.Enemies)
}

func TestSortedIDsAndAliveEnemies(t *testing.T) {
	ecs := NewECS()
	for _, id := range []types.EntityID{7, 2, 9, 4} {
		ecs.Enemies[id] = &component.Enemy{Dead: id == 9}
	}
	assert.Equal(t, []types.EntityID{2, 4, 7, 9}, SortedIDs(ecs.Enemies))
	assert.Equal(t, 3, ecs.AliveEnemies())
}
