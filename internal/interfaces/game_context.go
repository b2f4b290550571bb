// internal/interfaces/game_context.go
package interfaces

import "go-grid-defense/internal/types"

// GameContext — то, что StateSystem требует от Game.
// Это помогает избежать циклических зависимостей.
type GameContext interface {
	StartNextWave() error
	ClearProjectiles()
}

// EnemySpawner выпускает врага по ID пресета
type EnemySpawner interface {
	SpawnFromPreset(presetID string) (types.EntityID, error)
}
