// internal/app/snapshot.go
package app

import (
	"go-grid-defense/internal/component"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/types"
	"go-grid-defense/internal/utils"
	"go-grid-defense/pkg/gridmap"
)

type EnemyView struct {
	ID    types.EntityID
	DefID string
	X, Y  float64
	Cell  gridmap.Point
	HP    int
	MaxHP int
}

type TowerView struct {
	ID               types.EntityID
	Cell             gridmap.Point
	Kind             defs.TowerKind
	Level            int
	Attack           int
	Range            float64
	CooldownFraction float64
	Upgrading        bool
	UpgradeFraction  float64
}

type ProjectileView struct {
	ID       types.EntityID
	X, Y     float64
	TargetID types.EntityID
}

// Snapshot — копия состояния для отрисовки и интерфейса. Изменения копии на игру не влияют.
type Snapshot struct {
	Grid          [][]gridmap.Status
	Enemies       []EnemyView
	Towers        []TowerView
	Projectiles   []ProjectileView
	Lives         int
	Money         int
	Wave          int
	Phase         component.Phase
	QueuedEnemies int
	NextWaveIn    float64
	Stats         Stats
}

func (g *Game) Snapshot() Snapshot {
	state := g.ECS.GameState
	s := Snapshot{
		Grid:       g.Grid.Snapshot(),
		Lives:      state.Lives,
		Money:      state.Money,
		Wave:       g.Wave,
		Phase:      state.Phase,
		NextWaveIn: state.NextWaveTimer,
		Stats:      g.Stats,
	}
	if g.ECS.Wave != nil {
		s.QueuedEnemies = len(g.ECS.Wave.Queue)
	}

	for _, id := range entity.SortedIDs(g.ECS.Enemies) {
		enemy := g.ECS.Enemies[id]
		pos, ok := g.ECS.Positions[id]
		if enemy.Dead || !ok {
			continue
		}
		v := EnemyView{ID: id, DefID: enemy.DefID, X: pos.X, Y: pos.Y, Cell: utils.WorldToCell(pos.X, pos.Y)}
		if h, ok := g.ECS.Healths[id]; ok {
			v.HP, v.MaxHP = h.Value, h.Max
		}
		s.Enemies = append(s.Enemies, v)
	}

	for _, id := range entity.SortedIDs(g.ECS.Towers) {
		tower := g.ECS.Towers[id]
		v := TowerView{ID: id, Cell: tower.Cell, Kind: tower.Kind, Level: tower.Level}
		if c, ok := g.ECS.Combats[id]; ok {
			v.Attack = c.Attack
			v.Range = c.Range
			v.CooldownFraction = c.CooldownFraction()
		}
		if u, ok := g.ECS.Upgrades[id]; ok {
			v.Upgrading = true
			v.UpgradeFraction = u.Fraction()
		}
		s.Towers = append(s.Towers, v)
	}

	for _, id := range entity.SortedIDs(g.ECS.Projectiles) {
		proj := g.ECS.Projectiles[id]
		if pos, ok := g.ECS.Positions[id]; ok {
			s.Projectiles = append(s.Projectiles, ProjectileView{ID: id, X: pos.X, Y: pos.Y, TargetID: proj.TargetID})
		}
	}
	return s
}
