// internal/defs/towers.go
package defs

import (
	"fmt"
	"image/color"
	"strings"
)

// TowerKind — закрытый набор типов башен
type TowerKind int

const (
	TowerBasic TowerKind = iota
	TowerFast
)

// TowerKinds перечисляет все типы в порядке отображения в интерфейсе
var TowerKinds = []TowerKind{TowerBasic, TowerFast}

func (k TowerKind) String() string {
	switch k {
	case TowerBasic:
		return "basic"
	case TowerFast:
		return "fast"
	default:
		return fmt.Sprintf("TowerKind(%d)", int(k))
	}
}

// Valid сообщает, что тип входит в закрытый набор
func (k TowerKind) Valid() bool {
	_, ok := towerDefs[k]
	return ok
}

// ParseTowerKind разбирает имя типа из команды игрока ("basic", "fast")
func ParseTowerKind(s string) (TowerKind, bool) {
	for _, k := range TowerKinds {
		if strings.EqualFold(k.String(), strings.TrimSpace(s)) {
			return k, true
		}
	}
	return 0, false
}

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	Kind          TowerKind
	Name          string
	Price         int
	Attack        int
	Range         float64 // в клетках
	Cooldown      float64 // секунд между выстрелами
	UpgradeCost   int
	UpgradeAttack int // прибавка атаки за уровень
	MaxLevel      int
	Visuals       Visuals
}

// Visuals contains parameters for rendering.
type Visuals struct {
	Color        color.RGBA `json:"color"`
	RadiusFactor float64    `json:"radius_factor"`
}

var towerDefs = map[TowerKind]TowerDefinition{
	TowerBasic: {
		Kind:          TowerBasic,
		Name:          "Basic",
		Price:         40,
		Attack:        18,
		Range:         2,
		Cooldown:      1.2,
		UpgradeCost:   30,
		UpgradeAttack: 7,
		MaxLevel:      4,
		Visuals:       Visuals{Color: color.RGBA{230, 230, 230, 255}, RadiusFactor: 0.35},
	},
	TowerFast: {
		Kind:          TowerFast,
		Name:          "Fast",
		Price:         40,
		Attack:        12,
		Range:         2,
		Cooldown:      0.7,
		UpgradeCost:   40,
		UpgradeAttack: 5,
		MaxLevel:      4,
		Visuals:       Visuals{Color: color.RGBA{255, 215, 0, 255}, RadiusFactor: 0.3},
	},
}

// Tower возвращает параметры типа башни
func Tower(kind TowerKind) (TowerDefinition, bool) {
	def, ok := towerDefs[kind]
	return def, ok
}
