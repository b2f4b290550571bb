// internal/system/render.go
package system

import (
	"image/color"
	"math"

	"go-grid-defense/internal/config"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует сущности поверх поля
type RenderSystem struct {
	ecs *entity.ECS
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.drawTowers(screen)
	s.drawEnemies(screen)

	for _, id := range entity.SortedIDs(s.ecs.Projectiles) {
		pos, ok := s.ecs.Positions[id]
		render, hasRender := s.ecs.Renderables[id]
		if !ok || !hasRender {
			continue
		}
		x, y := utils.WorldToScreen(pos.X, pos.Y)
		vector.DrawFilledCircle(screen, x, y, render.Radius, render.Color, true)
	}
}

// DrawRange рисует радиус выбранной башни
func (s *RenderSystem) DrawRange(screen *ebiten.Image, x, y float32, rangeCells float64) {
	vector.StrokeCircle(screen, x, y, float32(rangeCells*config.CellSize), 2, config.RangeColor, true)
}

func (s *RenderSystem) drawTowers(screen *ebiten.Image) {
	half := float32(config.CellSize / 2)
	for _, id := range entity.SortedIDs(s.ecs.Towers) {
		tower := s.ecs.Towers[id]
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		x, y := utils.WorldToScreen(pos.X, pos.Y)
		fill := color.RGBA{200, 200, 200, 255}
		if render, ok := s.ecs.Renderables[id]; ok {
			fill = render.Color
		}
		vector.DrawFilledRect(screen, x-half+4, y-half+4, 2*half-8, 2*half-8, fill, true)
		vector.StrokeRect(screen, x-half+4, y-half+4, 2*half-8, 2*half-8, config.TowerStrokeWidth, config.TowerStrokeColor, true)

		if turret, ok := s.ecs.Turrets[id]; ok {
			a := float64(turret.CurrentAngle)
			ex := x + float32(math.Cos(a)*config.TurretLength)
			ey := y + float32(math.Sin(a)*config.TurretLength)
			vector.StrokeLine(screen, x, y, ex, ey, 4, config.BackgroundColor, true)
		}

		// Точки уровня вдоль нижней грани
		for i := 1; i < tower.Level; i++ {
			vector.DrawFilledCircle(screen, x-half+8+float32(i-1)*8, y+half-9, 2.5, config.UpgradeColor, true)
		}

		if upgrade, ok := s.ecs.Upgrades[id]; ok {
			w := (2*half - 8) * float32(upgrade.Fraction())
			vector.DrawFilledRect(screen, x-half+4, y-half, w, 3, config.UpgradeColor, false)
		}
	}
}

func (s *RenderSystem) drawEnemies(screen *ebiten.Image) {
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		enemy := s.ecs.Enemies[id]
		pos, ok := s.ecs.Positions[id]
		if !ok || enemy.Dead {
			continue
		}
		x, y := utils.WorldToScreen(pos.X, pos.Y)
		radius := float32(config.EnemyRadius)
		fill := config.EnemyColor
		if render, ok := s.ecs.Renderables[id]; ok {
			radius = render.Radius
			fill = render.Color
		}
		if _, flashing := s.ecs.DamageFlashes[id]; flashing {
			fill = color.RGBA{255, 255, 255, 255}
		}
		vector.DrawFilledCircle(screen, x, y, radius, fill, true)

		if health, ok := s.ecs.Healths[id]; ok && health.Max > 0 {
			w := radius * 2
			frac := float32(health.Fraction())
			vector.DrawFilledRect(screen, x-radius, y-radius-7, w, 4, config.HealthBackColor, false)
			vector.DrawFilledRect(screen, x-radius, y-radius-7, w*frac, 4, config.HealthBarColor, false)
		}
	}
}
