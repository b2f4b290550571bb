package component

import "go-grid-defense/pkg/utils"

// Health — компонент здоровья
type Health struct {
	Value int
	Max   int
}

// Combat — компонент для башен, управляющий атакой
type Combat struct {
	Attack       int     // Урон одного снаряда
	Range        float64 // Радиус действия (в клетках)
	Cooldown     float64 // Пауза между выстрелами, секунд
	FireCooldown float64 // Оставшееся время до следующего выстрела
}

// CooldownFraction — доля оставшейся перезарядки в [0, 1]
func (c *Combat) CooldownFraction() float64 {
	if c.Cooldown <= 0 || c.FireCooldown <= 0 {
		return 0
	}
	return utils.Clamp(c.FireCooldown/c.Cooldown, 0, 1)
}

// Fraction — доля оставшегося здоровья в [0, 1]
func (h *Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return utils.Clamp(float64(h.Value)/float64(h.Max), 0, 1)
}
