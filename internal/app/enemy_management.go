// internal/app/enemy_management.go
package app

import (
	"fmt"
	"log"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/types"
	"go-grid-defense/internal/utils"
	"go-grid-defense/pkg/gridmap"
)

// SpawnEnemy выпускает врага из клетки спавна origin к выходу exit.
// Если origin не спавн или пути нет, враг не создаётся.
func (g *Game) SpawnEnemy(origin, exit gridmap.Point, hp int, speed float64) (types.EntityID, error) {
	if g.ECS.GameState.Phase == component.GameOverState {
		return 0, ErrGameOver
	}
	if hp <= 0 || speed < 0 {
		return 0, fmt.Errorf("spawn at %s: hp %d, speed %.2f: %w", origin, hp, speed, ErrInvalidEnemy)
	}
	if !g.Grid.InBounds(origin.Row, origin.Col) || !g.Grid.InBounds(exit.Row, exit.Col) {
		return 0, fmt.Errorf("spawn %s -> %s: %w", origin, exit, ErrOutOfBounds)
	}
	if !g.Grid.IsSpawn(origin) {
		return 0, fmt.Errorf("spawn %s -> %s: %w", origin, exit, ErrNotSpawnCell)
	}
	if !g.Grid.IsExit(exit) {
		return 0, fmt.Errorf("spawn %s -> %s: target is not an exit: %w", origin, exit, ErrNoPathAvailable)
	}
	path := g.Grid.FindPath(origin, exit, nil)
	if path == nil {
		return 0, fmt.Errorf("spawn %s -> %s: %w", origin, exit, ErrNoPathAvailable)
	}

	params := defs.EnemyNormal.Params()
	return g.createEnemyEntity("", path, hp, speed, config.KillReward, params.Visuals), nil
}

// SpawnFromPreset выпускает врага по пресету. Клетка спавна выбирается по кругу,
// выход — ближайший по пути. Здоровье растёт с номером волны.
func (g *Game) SpawnFromPreset(presetID string) (types.EntityID, error) {
	if g.ECS.GameState.Phase == component.GameOverState {
		return 0, ErrGameOver
	}
	preset, ok := g.Presets.Get(presetID)
	if !ok {
		return 0, fmt.Errorf("spawn %q: %w", presetID, ErrUnknownPreset)
	}

	spawns := g.Grid.Spawns()
	for attempt := 0; attempt < len(spawns); attempt++ {
		origin := spawns[g.spawnCursor%len(spawns)]
		g.spawnCursor++
		_, path := g.nearestExit(origin)
		if path == nil {
			continue
		}

		params := preset.Kind.Params()
		hp := preset.HP + g.Wave*config.HealthPerWave + g.Rng.Below(params.HPJitter)
		speed := preset.Speed + g.Rng.Jitter(params.SpeedJit)
		return g.createEnemyEntity(preset.ID, path, hp, speed, preset.Reward, params.Visuals), nil
	}
	return 0, fmt.Errorf("spawn %q: %w", presetID, ErrNoPathAvailable)
}

func (g *Game) createEnemyEntity(defID string, path []gridmap.Point, hp int, speed float64, reward int, visuals defs.Visuals) types.EntityID {
	id := g.ECS.NewEntity()
	origin := path[0]
	x, y := utils.CellCenter(origin)
	g.ECS.Positions[id] = &component.Position{X: x, Y: y}
	g.ECS.Velocities[id] = &component.Velocity{Speed: speed}
	g.ECS.Paths[id] = &component.Path{Cells: path, CurrentIndex: 0}
	g.ECS.Healths[id] = &component.Health{Value: hp, Max: hp}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:  visuals.Color,
		Radius: float32(config.CellSize * visuals.RadiusFactor),
	}
	g.ECS.Enemies[id] = &component.Enemy{
		DefID:  defID,
		Spawn:  origin,
		Exit:   path[len(path)-1],
		Reward: reward,
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: id})
	return id
}

// nearestExit ищет выход с самым коротким путём от клетки. При равенстве побеждает первый в конфигурации.
func (g *Game) nearestExit(from gridmap.Point) (gridmap.Point, []gridmap.Point) {
	var best []gridmap.Point
	var bestExit gridmap.Point
	for _, exit := range g.Grid.Exits() {
		path := g.Grid.FindPath(from, exit, nil)
		if path == nil {
			continue
		}
		if best == nil || len(path) < len(best) {
			best = path
			bestExit = exit
		}
	}
	return bestExit, best
}

// rerouteOrigin — клетка, от которой перестраивается путь: следующая, если враг уже между клетками
func rerouteOrigin(path *component.Path) int {
	if path.Progress > 0 && path.CurrentIndex+1 < len(path.Cells) {
		return path.CurrentIndex + 1
	}
	return path.CurrentIndex
}

// rerouteEnemies перестраивает оставшуюся часть пути живых врагов.
// Пройденная часть сохраняется, поэтому индекс и первая клетка не меняются.
func (g *Game) rerouteEnemies() {
	if g.options.Policy != config.PathRecomputeOnChange {
		return
	}
	for _, id := range entity.SortedIDs(g.ECS.Enemies) {
		enemy := g.ECS.Enemies[id]
		path, ok := g.ECS.Paths[id]
		if enemy.Dead || !ok || path.CurrentIndex < 0 || path.CurrentIndex >= len(path.Cells) {
			continue
		}
		originIdx := rerouteOrigin(path)
		exit, tail := g.nearestExit(path.Cells[originIdx])
		if tail == nil {
			log.Printf("Enemy %d: no route from %s, keeping old path", id, path.Cells[originIdx])
			continue
		}
		cells := make([]gridmap.Point, 0, originIdx+len(tail))
		cells = append(cells, path.Cells[:originIdx]...)
		cells = append(cells, tail...)
		path.Cells = cells
		enemy.Exit = exit
	}
}

// enemyBlocks сообщает, что живой враг стоит на клетке или уже идёт в неё
func (g *Game) enemyBlocks(p gridmap.Point) bool {
	for _, id := range entity.SortedIDs(g.ECS.Enemies) {
		if g.ECS.Enemies[id].Dead {
			continue
		}
		path, ok := g.ECS.Paths[id]
		if !ok {
			continue
		}
		if cur, ok := path.Current(); ok && cur == p {
			return true
		}
		if next, ok := path.Next(); ok && path.Progress > 0 && next == p {
			return true
		}
	}
	return false
}
