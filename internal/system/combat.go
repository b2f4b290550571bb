package system

import (
	"math"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/types"
	"go-grid-defense/internal/utils"
)

// CombatSystem управляет атакой башен
type CombatSystem struct {
	ecs *entity.ECS
}

func NewCombatSystem(ecs *entity.ECS) *CombatSystem {
	return &CombatSystem{ecs: ecs}
}

// Update уменьшает перезарядку и стреляет по ближайшему врагу в радиусе.
// Башня, у которой идёт улучшение, не стреляет, но перезаряжается.
func (s *CombatSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Combats) {
		combat := s.ecs.Combats[id]
		tower, hasTower := s.ecs.Towers[id]
		towerPos, hasPos := s.ecs.Positions[id]
		if !hasTower || !hasPos {
			continue
		}

		if combat.FireCooldown > 0 {
			combat.FireCooldown -= deltaTime
			if combat.FireCooldown > 0 {
				continue
			}
			combat.FireCooldown = 0
		}

		if _, upgrading := s.ecs.Upgrades[id]; upgrading {
			continue
		}

		enemyID := s.FindNearestEnemyInRange(towerPos, combat.Range)
		if enemyID == 0 {
			continue
		}

		s.createProjectile(id, enemyID, tower, combat)
		combat.FireCooldown = combat.Cooldown

		if turret, ok := s.ecs.Turrets[id]; ok {
			enemyPos := s.ecs.Positions[enemyID]
			turret.TargetAngle = float32(calculateDirection(towerPos, enemyPos))
			turret.TargetID = enemyID
		}
	}
}

// FindNearestEnemyInRange ищет ближайшего живого врага на расстоянии не больше rangeCells клеток.
// При равных расстояниях побеждает меньший ID. 0 — цели нет.
func (s *CombatSystem) FindNearestEnemyInRange(from *component.Position, rangeCells float64) types.EntityID {
	var nearestEnemy types.EntityID
	minDistance := math.MaxFloat64
	for _, enemyID := range entity.SortedIDs(s.ecs.Enemies) {
		if s.ecs.Enemies[enemyID].Dead {
			continue
		}
		enemyPos, ok := s.ecs.Positions[enemyID]
		if !ok {
			continue
		}
		distance := utils.Distance(from.X, from.Y, enemyPos.X, enemyPos.Y) / config.CellSize
		if distance <= rangeCells && distance < minDistance {
			minDistance = distance
			nearestEnemy = enemyID
		}
	}
	return nearestEnemy
}

func (s *CombatSystem) createProjectile(towerID, enemyID types.EntityID, tower *component.Tower, combat *component.Combat) {
	projID := s.ecs.NewEntity()
	towerPos := s.ecs.Positions[towerID]

	projectileColor := config.ProjectileColor
	if def, ok := defs.Tower(tower.Kind); ok {
		projectileColor = def.Visuals.Color
	}

	s.ecs.Positions[projID] = &component.Position{X: towerPos.X, Y: towerPos.Y}
	s.ecs.Projectiles[projID] = &component.Projectile{
		TargetID: enemyID,
		SourceID: towerID,
		Speed:    config.ProjectileSpeed,
		Damage:   combat.Attack,
		Color:    projectileColor,
	}
	s.ecs.Renderables[projID] = &component.Renderable{
		Color:     projectileColor,
		Radius:    config.ProjectileRadius,
		HasStroke: false,
	}
}

func calculateDirection(from, to *component.Position) float64 {
	dx := to.X - from.X
	dy := to.Y - from.Y
	return math.Atan2(dy, dx)
}
