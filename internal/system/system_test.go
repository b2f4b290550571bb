package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/types"
	"go-grid-defense/internal/utils"
	"go-grid-defense/pkg/gridmap"
)

type counter struct {
	counts map[event.EventType]int
	last   map[event.EventType]interface{}
}

func newCounter(d *event.Dispatcher, types ...event.EventType) *counter {
	c := &counter{counts: map[event.EventType]int{}, last: map[event.EventType]interface{}{}}
	d.SubscribeAll(c, types...)
	return c
}

func (c *counter) OnEvent(e event.Event) {
	c.counts[e.Type]++
	c.last[e.Type] = e.Data
}

func addEnemy(ecs *entity.ECS, cell gridmap.Point, hp int) types.EntityID {
	id := ecs.NewEntity()
	x, y := utils.CellCenter(cell)
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Healths[id] = &component.Health{Value: hp, Max: hp}
	ecs.Enemies[id] = &component.Enemy{Reward: 15}
	return id
}

func straightPath(row, from, to int) []gridmap.Point {
	var cells []gridmap.Point
	for col := from; col <= to; col++ {
		cells = append(cells, gridmap.Point{Row: row, Col: col})
	}
	return cells
}

func TestApplyDamageIsIdempotentAfterDeath(t *testing.T) {
	ecs := entity.NewECS()
	id := addEnemy(ecs, gridmap.Point{Row: 1, Col: 1}, 20)

	assert.False(t, ApplyDamage(ecs, id, 12))
	assert.Equal(t, 8, ecs.Healths[id].Value)
	assert.False(t, ApplyDamage(ecs, id, 0))
	assert.False(t, ApplyDamage(ecs, id, -5))
	assert.Equal(t, 8, ecs.Healths[id].Value)

	assert.True(t, ApplyDamage(ecs, id, 12), "death transition is reported")
	assert.Equal(t, 0, ecs.Healths[id].Value)
	assert.True(t, ecs.Enemies[id].Dead)

	assert.False(t, ApplyDamage(ecs, id, 12))
	assert.Equal(t, 0, ecs.Healths[id].Value)
	assert.False(t, ApplyDamage(ecs, types.EntityID(999), 5))
}

func TestCleanupGrantsRewardOnce(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	c := newCounter(d, event.EnemyKilled)
	cleanup := NewCleanupSystem(ecs, d)

	killed := addEnemy(ecs, gridmap.Point{Row: 1, Col: 1}, 10)
	escaped := addEnemy(ecs, gridmap.Point{Row: 1, Col: 2}, 10)
	alive := addEnemy(ecs, gridmap.Point{Row: 1, Col: 3}, 10)
	require.True(t, ApplyDamage(ecs, killed, 10))
	ecs.Enemies[escaped].Dead = true
	ecs.Enemies[escaped].Escaped = true

	cleanup.Update()
	cleanup.Update()

	assert.Equal(t, 1, c.counts[event.EnemyKilled])
	assert.Equal(t, event.EnemyKilledData{ID: killed, Reward: 15}, c.last[event.EnemyKilled])
	assert.NotContains(t, ecs.Enemies, escaped)
	assert.Contains(t, ecs.Enemies, alive)
}

func TestMovementEscapesOnce(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	c := newCounter(d, event.EnemyEscaped)
	movement := NewMovementSystem(ecs, d)

	id := addEnemy(ecs, gridmap.Point{Row: 1, Col: 1}, 10)
	ecs.Paths[id] = &component.Path{Cells: straightPath(1, 1, 4)}
	ecs.Velocities[id] = &component.Velocity{Speed: 1}

	movement.Update(1.5)
	assert.Equal(t, 1, ecs.Paths[id].CurrentIndex)
	assert.Zero(t, c.counts[event.EnemyEscaped])

	for i := 0; i < 10; i++ {
		movement.Update(1)
	}
	assert.Equal(t, 1, c.counts[event.EnemyEscaped])
	assert.True(t, ecs.Enemies[id].Escaped)
	assert.Equal(t, 3, ecs.Paths[id].CurrentIndex)

	x, y := utils.CellCenter(gridmap.Point{Row: 1, Col: 4})
	assert.Equal(t, x, ecs.Positions[id].X)
	assert.Equal(t, y, ecs.Positions[id].Y)
}

func TestMovementSingleCellPathEscapesImmediately(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	c := newCounter(d, event.EnemyEscaped)
	id := addEnemy(ecs, gridmap.Point{Row: 1, Col: 1}, 10)
	ecs.Paths[id] = &component.Path{Cells: []gridmap.Point{{Row: 1, Col: 1}}}

	NewMovementSystem(ecs, d).Update(0.1)
	assert.Equal(t, 1, c.counts[event.EnemyEscaped])
}

func TestMovementCorruptIndex(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	c := newCounter(d, event.EnemyEscaped)
	id := addEnemy(ecs, gridmap.Point{Row: 1, Col: 1}, 10)
	ecs.Paths[id] = &component.Path{Cells: straightPath(1, 1, 3), CurrentIndex: 7}

	NewMovementSystem(ecs, d).Update(0.1)
	assert.True(t, ecs.Enemies[id].Corrupt)
	assert.True(t, ecs.Enemies[id].Dead)
	assert.Zero(t, c.counts[event.EnemyEscaped], "corrupt enemies do not cost a life")
}

func TestCombatTargetsNearestInRange(t *testing.T) {
	ecs := entity.NewECS()
	combat := NewCombatSystem(ecs)

	towerID := ecs.NewEntity()
	tx, ty := utils.CellCenter(gridmap.Point{Row: 5, Col: 5})
	ecs.Positions[towerID] = &component.Position{X: tx, Y: ty}
	ecs.Towers[towerID] = &component.Tower{Kind: defs.TowerBasic, Cell: gridmap.Point{Row: 5, Col: 5}, Level: 1}
	ecs.Combats[towerID] = &component.Combat{Attack: 18, Range: 2, Cooldown: 1.2}

	out := addEnemy(ecs, gridmap.Point{Row: 5, Col: 8}, 10) // 3 клетки
	tieA := addEnemy(ecs, gridmap.Point{Row: 3, Col: 5}, 10)
	tieB := addEnemy(ecs, gridmap.Point{Row: 5, Col: 3}, 10)

	got := combat.FindNearestEnemyInRange(ecs.Positions[towerID], 2)
	assert.Equal(t, tieA, got, "equal distance goes to the lower id")

	ecs.Enemies[tieA].Dead = true
	assert.Equal(t, tieB, combat.FindNearestEnemyInRange(ecs.Positions[towerID], 2))

	ecs.Enemies[tieB].Dead = true
	assert.Equal(t, types.EntityID(0), combat.FindNearestEnemyInRange(ecs.Positions[towerID], 2))
	assert.Equal(t, out, combat.FindNearestEnemyInRange(ecs.Positions[towerID], 3))
}

func TestCombatCooldown(t *testing.T) {
	ecs := entity.NewECS()
	combat := NewCombatSystem(ecs)

	towerID := ecs.NewEntity()
	tx, ty := utils.CellCenter(gridmap.Point{Row: 5, Col: 5})
	ecs.Positions[towerID] = &component.Position{X: tx, Y: ty}
	ecs.Towers[towerID] = &component.Tower{Kind: defs.TowerFast, Level: 1}
	ecs.Combats[towerID] = &component.Combat{Attack: 12, Range: 2, Cooldown: 0.7}
	addEnemy(ecs, gridmap.Point{Row: 5, Col: 6}, 100)

	combat.Update(0.1)
	assert.Len(t, ecs.Projectiles, 1)
	assert.InDelta(t, 0.7, ecs.Combats[towerID].FireCooldown, 1e-9)

	combat.Update(0.5)
	assert.Len(t, ecs.Projectiles, 1)
	combat.Update(0.25)
	assert.Len(t, ecs.Projectiles, 2)
}

func TestProjectileHomesAndDiscards(t *testing.T) {
	ecs := entity.NewECS()
	projectiles := NewProjectileSystem(ecs)
	target := addEnemy(ecs, gridmap.Point{Row: 1, Col: 5}, 30)

	pid := ecs.NewEntity()
	sx, sy := utils.CellCenter(gridmap.Point{Row: 1, Col: 1})
	ecs.Positions[pid] = &component.Position{X: sx, Y: sy}
	ecs.Projectiles[pid] = &component.Projectile{TargetID: target, Speed: config.CellSize, Damage: 10}

	projectiles.Update(1)
	assert.Contains(t, ecs.Projectiles, pid)
	assert.InDelta(t, sx+config.CellSize, ecs.Positions[pid].X, 1e-9)
	assert.Equal(t, 30, ecs.Healths[target].Value)

	projectiles.Update(3)
	assert.NotContains(t, ecs.Projectiles, pid)
	assert.Equal(t, 20, ecs.Healths[target].Value)

	orphan := ecs.NewEntity()
	ecs.Positions[orphan] = &component.Position{X: sx, Y: sy}
	ecs.Projectiles[orphan] = &component.Projectile{TargetID: 12345, Speed: 1, Damage: 10}
	projectiles.Update(0.1)
	assert.NotContains(t, ecs.Projectiles, orphan)
}

type fakeSpawner struct {
	spawned []string
	ecs     *entity.ECS
}

func (f *fakeSpawner) SpawnFromPreset(id string) (types.EntityID, error) {
	f.spawned = append(f.spawned, id)
	return addEnemy(f.ecs, gridmap.Point{Row: 1, Col: 1}, 10), nil
}

func TestWaveSystemSpawnsOnTickClock(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	c := newCounter(d, event.WaveEnded)
	spawner := &fakeSpawner{ecs: ecs}
	waves := NewWaveSystem(ecs, spawner, d, utils.NewPRNGService(3))

	ecs.Wave = NewWave(1, defs.WaveDefinition{
		Orders:        []defs.WaveOrder{{EnemyID: "A", Count: 2}, {EnemyID: "B", Count: 1}},
		SpawnInterval: 0.5,
	})
	waves.Update(0.01)
	assert.Equal(t, []string{"A"}, spawner.spawned)
	waves.Update(0.3)
	assert.Len(t, spawner.spawned, 1)
	waves.Update(0.7) // два интервала за один такт
	assert.Equal(t, []string{"A", "A", "B"}, spawner.spawned)

	waves.CheckFinished()
	assert.Zero(t, c.counts[event.WaveEnded], "enemies are still alive")

	for id := range ecs.Enemies {
		ecs.RemoveEntity(id)
	}
	waves.CheckFinished()
	waves.CheckFinished()
	assert.Equal(t, 1, c.counts[event.WaveEnded])
	assert.Equal(t, 1, c.last[event.WaveEnded])
}

func TestBuildWaveGeneratedSize(t *testing.T) {
	ecs := entity.NewECS()
	waves := NewWaveSystem(ecs, &fakeSpawner{ecs: ecs}, event.NewDispatcher(), utils.NewPRNGService(3))

	w := waves.BuildWave(3)
	assert.Equal(t, config.BaseWaveSize+3*config.WaveSizeStep, w.Total)
	assert.Equal(t, config.DefaultSpawnInterval, w.SpawnInterval)

	fixed := waves.BuildWave(5)
	assert.Equal(t, defs.WavePatterns[5].Size(), fixed.Total)
}

func TestUpgradeSystemRaisesLevel(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	c := newCounter(d, event.TowerUpgraded)
	id := ecs.NewEntity()
	ecs.Towers[id] = &component.Tower{Kind: defs.TowerFast, Level: 1}
	ecs.Combats[id] = &component.Combat{Attack: 12}
	ecs.Upgrades[id] = &component.Upgrade{Remaining: 2, Duration: 2}

	up := NewUpgradeSystem(ecs, d)
	up.Update(1)
	assert.InDelta(t, 0.5, ecs.Upgrades[id].Fraction(), 1e-9)
	up.Update(1)
	assert.Empty(t, ecs.Upgrades)
	assert.Equal(t, 2, ecs.Towers[id].Level)
	assert.Equal(t, 17, ecs.Combats[id].Attack)
	assert.Equal(t, 1, c.counts[event.TowerUpgraded])
}
