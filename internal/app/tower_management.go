// internal/app/tower_management.go
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

	"github.com/zyedidia/generic/mapset"
)

// PlaceTower attempts to place a tower at the given cell.
// On rejection the grid and the registry stay untouched.
func (g *Game) PlaceTower(row, col int, kind defs.TowerKind) (types.EntityID, error) {
	p := gridmap.Point{Row: row, Col: col}
	if err := g.canPlaceTower(p, kind); err != nil {
		log.Printf("Placement of %s at %s rejected: %v", kind, p, err)
		return 0, err
	}

	def, _ := defs.Tower(kind)
	g.Grid.SetCellStatus(row, col, gridmap.StatusTower)
	id := g.createTowerEntity(p, def)
	g.ECS.GameState.Money -= def.Price

	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: id})
	g.rerouteEnemies()
	return id, nil
}

// CanPlaceTower проверяет установку без изменения состояния
func (g *Game) CanPlaceTower(row, col int, kind defs.TowerKind) error {
	return g.canPlaceTower(gridmap.Point{Row: row, Col: col}, kind)
}

func (g *Game) canPlaceTower(p gridmap.Point, kind defs.TowerKind) error {
	if g.ECS.GameState.Phase == component.GameOverState {
		return ErrGameOver
	}
	def, ok := defs.Tower(kind)
	if !ok {
		return fmt.Errorf("place %s: %w", kind, ErrUnknownTowerKind)
	}
	status, ok := g.Grid.Status(p.Row, p.Col)
	if !ok {
		return fmt.Errorf("place at %s: %w", p, ErrOutOfBounds)
	}
	if status == gridmap.StatusTower {
		return fmt.Errorf("place at %s: %w", p, ErrCellOccupied)
	}
	if status != gridmap.StatusEmpty {
		return fmt.Errorf("place at %s (%s): %w", p, status, ErrCellNotPlaceable)
	}
	if g.enemyBlocks(p) {
		return fmt.Errorf("place at %s: enemy on cell: %w", p, ErrCellNotPlaceable)
	}
	if g.ECS.GameState.Money < def.Price {
		return fmt.Errorf("place %s costs %d, have %d: %w", kind, def.Price, g.ECS.GameState.Money, ErrInsufficientFunds)
	}

	candidate := mapset.New[gridmap.Point]()
	candidate.Put(p)
	if !g.Grid.PathExists(&candidate) {
		return fmt.Errorf("place at %s: %w", p, ErrPathWouldBeBlocked)
	}
	if g.options.Policy == config.PathRecomputeOnChange && !g.enemiesCanReroute(&candidate) {
		return fmt.Errorf("place at %s: enemy would be trapped: %w", p, ErrPathWouldBeBlocked)
	}
	return nil
}

// enemiesCanReroute проверяет, что каждый живой враг после установки ещё дойдёт до какого-нибудь выхода
func (g *Game) enemiesCanReroute(candidate *mapset.Set[gridmap.Point]) bool {
	exits := g.Grid.Exits()
	for _, id := range entity.SortedIDs(g.ECS.Enemies) {
		path, ok := g.ECS.Paths[id]
		if g.ECS.Enemies[id].Dead || !ok || path.CurrentIndex < 0 || path.CurrentIndex >= len(path.Cells) {
			continue
		}
		origin := path.Cells[rerouteOrigin(path)]
		reachable := false
		for _, exit := range exits {
			if g.Grid.Reachable(origin, exit, candidate) {
				reachable = true
				break
			}
		}
		if !reachable {
			return false
		}
	}
	return true
}

func (g *Game) createTowerEntity(p gridmap.Point, def defs.TowerDefinition) types.EntityID {
	id := g.ECS.NewEntity()
	x, y := utils.CellCenter(p)
	g.ECS.Positions[id] = &component.Position{X: x, Y: y}
	g.ECS.Towers[id] = &component.Tower{
		Kind:     def.Kind,
		Cell:     p,
		Level:    1,
		Invested: def.Price,
	}
	g.ECS.Combats[id] = &component.Combat{
		Attack:   def.Attack,
		Range:    def.Range,
		Cooldown: def.Cooldown,
	}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:     def.Visuals.Color,
		Radius:    float32(config.CellSize * def.Visuals.RadiusFactor),
		HasStroke: true,
	}
	g.ECS.Turrets[id] = &component.Turret{TurnSpeed: config.TurretTurnSpeed}
	log.Printf("Tower %d (%s) placed at %s", id, def.Kind, p)
	return id
}

// RemoveTower removes a tower from the given cell and refunds part of its cost.
func (g *Game) RemoveTower(row, col int) bool {
	if g.ECS.GameState.Phase == component.GameOverState {
		return false
	}
	p := gridmap.Point{Row: row, Col: col}
	id, ok := g.GetTowerAt(p)
	if !ok {
		return false
	}
	tower := g.ECS.Towers[id]
	refund := tower.Invested * config.SellRefundPercent / 100

	g.ECS.RemoveEntity(id)
	g.Grid.SetCellStatus(row, col, gridmap.StatusEmpty)
	g.ECS.GameState.Money += refund
	log.Printf("Tower %d at %s sold for %d", id, p, refund)

	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerRemoved, Data: id})
	g.rerouteEnemies()
	return true
}

// UpgradeTower начинает улучшение башни. Пока оно идёт, башня не стреляет.
func (g *Game) UpgradeTower(row, col int) error {
	if g.ECS.GameState.Phase == component.GameOverState {
		return ErrGameOver
	}
	p := gridmap.Point{Row: row, Col: col}
	id, ok := g.GetTowerAt(p)
	if !ok {
		return fmt.Errorf("upgrade at %s: %w", p, ErrNoTower)
	}
	if _, busy := g.ECS.Upgrades[id]; busy {
		return fmt.Errorf("upgrade tower %d: %w", id, ErrUpgradeInProgress)
	}
	tower := g.ECS.Towers[id]
	def, _ := defs.Tower(tower.Kind)
	if tower.Level >= def.MaxLevel {
		return fmt.Errorf("upgrade tower %d: %w", id, ErrMaxLevel)
	}
	if g.ECS.GameState.Money < def.UpgradeCost {
		return fmt.Errorf("upgrade costs %d, have %d: %w", def.UpgradeCost, g.ECS.GameState.Money, ErrInsufficientFunds)
	}

	g.ECS.GameState.Money -= def.UpgradeCost
	tower.Invested += def.UpgradeCost
	g.ECS.Upgrades[id] = &component.Upgrade{
		Remaining: config.UpgradeDuration,
		Duration:  config.UpgradeDuration,
	}
	return nil
}

// GetTowerAt возвращает башню на клетке
func (g *Game) GetTowerAt(p gridmap.Point) (types.EntityID, bool) {
	for _, id := range entity.SortedIDs(g.ECS.Towers) {
		if g.ECS.Towers[id].Cell == p {
			return id, true
		}
	}
	return 0, false
}

// TowerCells возвращает клетки всех башен
func (g *Game) TowerCells() []gridmap.Point {
	cells := make([]gridmap.Point, 0, len(g.ECS.Towers))
	for _, id := range entity.SortedIDs(g.ECS.Towers) {
		cells = append(cells, g.ECS.Towers[id].Cell)
	}
	return cells
}
