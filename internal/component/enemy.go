package component

import "go-grid-defense/pkg/gridmap"

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID   string // ID пресета
	Spawn   gridmap.Point
	Exit    gridmap.Point
	Reward  int
	Dead    bool // Убит или дошёл до выхода; удаляется на очистке
	Escaped bool // Дошёл до выхода
	Corrupt bool // Снят из-за испорченного пути, жизнь не отнимается
}
