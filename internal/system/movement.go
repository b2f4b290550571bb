// internal/system/movement.go
package system

import (
	"log"

	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/types"
	"go-grid-defense/internal/utils"
	"go-grid-defense/pkg/gridmap"
)

// MovementSystem двигает врагов по закэшированному пути
type MovementSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Update продвигает каждого живого врага на speed*deltaTime клеток.
// Пересечение границы клетки увеличивает индекс пути и ставит врага в центр следующей клетки,
// достижение последней клетки помечает врага сбежавшим.
func (s *MovementSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		enemy := s.ecs.Enemies[id]
		if enemy.Dead {
			continue
		}

		path, hasPath := s.ecs.Paths[id]
		pos, hasPos := s.ecs.Positions[id]
		if !hasPath || !hasPos || !pathUsable(path.Cells, path.CurrentIndex) {
			s.markCorrupt(id)
			continue
		}

		last := len(path.Cells) - 1
		if path.CurrentIndex < last {
			speed := 0.0
			if vel, ok := s.ecs.Velocities[id]; ok {
				speed = vel.Speed
			}
			path.Progress += speed * deltaTime
			for path.Progress >= 1 && path.CurrentIndex < last {
				path.Progress -= 1
				path.CurrentIndex++
			}
		}

		if path.CurrentIndex >= last {
			path.CurrentIndex = last
			path.Progress = 0
			pos.X, pos.Y = utils.CellCenter(path.Cells[last])
			s.escape(id)
			continue
		}

		fx, fy := utils.CellCenter(path.Cells[path.CurrentIndex])
		tx, ty := utils.CellCenter(path.Cells[path.CurrentIndex+1])
		t := path.Progress
		pos.X = fx + (tx-fx)*t
		pos.Y = fy + (ty-fy)*t
	}
}

func (s *MovementSystem) escape(id types.EntityID) {
	enemy := s.ecs.Enemies[id]
	enemy.Dead = true
	enemy.Escaped = true
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyEscaped, Data: id})
}

// markCorrupt снимает врага без потери жизни; цикл продолжается
func (s *MovementSystem) markCorrupt(id types.EntityID) {
	enemy := s.ecs.Enemies[id]
	enemy.Dead = true
	enemy.Escaped = true
	enemy.Corrupt = true
	log.Printf("Enemy %d has no usable path, removing", id)
}

func pathUsable(cells []gridmap.Point, index int) bool {
	return len(cells) > 0 && index >= 0 && index < len(cells) && gridmap.ValidPath(cells)
}
