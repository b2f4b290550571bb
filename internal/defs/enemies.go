// internal/defs/enemies.go
package defs

import (
	"fmt"
	"image/color"
	"sort"
	"strings"
)

// EnemyKind — закрытый набор типов врагов
type EnemyKind int

const (
	EnemyNormal EnemyKind = iota
	EnemyFast
	EnemyTough
	EnemyBoss
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyNormal:
		return "normal"
	case EnemyFast:
		return "fast"
	case EnemyTough:
		return "tough"
	case EnemyBoss:
		return "boss"
	default:
		return fmt.Sprintf("EnemyKind(%d)", int(k))
	}
}

// ParseEnemyKind разбирает поле kind из файла пресетов. Пустая строка — normal.
func ParseEnemyKind(s string) (EnemyKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal":
		return EnemyNormal, true
	case "fast":
		return EnemyFast, true
	case "tough":
		return EnemyTough, true
	case "boss":
		return EnemyBoss, true
	default:
		return EnemyNormal, false
	}
}

// EnemyParams — параметры типа врага по умолчанию
type EnemyParams struct {
	HP       int
	Speed    float64 // клеток в секунду
	Reward   int
	HPJitter int     // к здоровью прибавляется случайное [0, HPJitter)
	SpeedJit float64 // к скорости прибавляется случайное [0, SpeedJit)
	Visuals  Visuals
}

var enemyParams = map[EnemyKind]EnemyParams{
	EnemyNormal: {HP: 30, Speed: 2, Reward: 15, HPJitter: 2, SpeedJit: 1,
		Visuals: Visuals{Color: color.RGBA{232, 52, 56, 255}, RadiusFactor: 0.25}},
	EnemyFast: {HP: 20, Speed: 3.5, Reward: 15, HPJitter: 2, SpeedJit: 1,
		Visuals: Visuals{Color: color.RGBA{255, 140, 0, 255}, RadiusFactor: 0.2}},
	EnemyTough: {HP: 70, Speed: 1.4, Reward: 25, HPJitter: 4, SpeedJit: 0.5,
		Visuals: Visuals{Color: color.RGBA{139, 69, 19, 255}, RadiusFactor: 0.3}},
	EnemyBoss: {HP: 400, Speed: 1, Reward: 100, HPJitter: 10, SpeedJit: 0.2,
		Visuals: Visuals{Color: color.RGBA{148, 0, 211, 255}, RadiusFactor: 0.4}},
}

// Params возвращает параметры типа врага
func (k EnemyKind) Params() EnemyParams {
	if p, ok := enemyParams[k]; ok {
		return p
	}
	return enemyParams[EnemyNormal]
}

// EnemyPreset — шаблон врага, на который ссылаются волны по ID
type EnemyPreset struct {
	ID     string
	Name   string
	Kind   EnemyKind
	HP     int
	Speed  float64
	Reward int
}

// Resolved подставляет параметры типа вместо нулевых полей
func (p EnemyPreset) Resolved() EnemyPreset {
	params := p.Kind.Params()
	if p.HP <= 0 {
		p.HP = params.HP
	}
	if p.Speed <= 0 {
		p.Speed = params.Speed
	}
	if p.Reward <= 0 {
		p.Reward = params.Reward
	}
	if p.Name == "" {
		p.Name = p.ID
	}
	return p
}

// PresetLibrary — справочник пресетов по ID
type PresetLibrary struct {
	presets map[string]EnemyPreset
}

// NewPresetLibrary собирает справочник; при повторе ID побеждает последний
func NewPresetLibrary(presets ...EnemyPreset) *PresetLibrary {
	lib := &PresetLibrary{presets: make(map[string]EnemyPreset, len(presets))}
	for _, p := range presets {
		lib.presets[p.ID] = p.Resolved()
	}
	return lib
}

// Get ищет пресет по ID
func (l *PresetLibrary) Get(id string) (EnemyPreset, bool) {
	if l == nil {
		return EnemyPreset{}, false
	}
	p, ok := l.presets[id]
	return p, ok
}

func (l *PresetLibrary) Len() int {
	if l == nil {
		return 0
	}
	return len(l.presets)
}

// IDs возвращает отсортированные идентификаторы
func (l *PresetLibrary) IDs() []string {
	if l == nil {
		return nil
	}
	ids := make([]string, 0, len(l.presets))
	for id := range l.presets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// DefaultPresets — встроенный набор на случай, если файл пресетов не задан
func DefaultPresets() *PresetLibrary {
	return NewPresetLibrary(
		EnemyPreset{ID: "ENEMY_NORMAL", Name: "Courier", Kind: EnemyNormal},
		EnemyPreset{ID: "ENEMY_FAST", Name: "Scooter", Kind: EnemyFast},
		EnemyPreset{ID: "ENEMY_TOUGH", Name: "Truck", Kind: EnemyTough},
		EnemyPreset{ID: "ENEMY_BOSS", Name: "Convoy", Kind: EnemyBoss},
	)
}
