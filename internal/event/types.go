// internal/event/types.go
package event

import "go-grid-defense/internal/types"

const (
	WaveStarted   EventType = "WaveStarted"   // Волна началась
	WaveEnded     EventType = "WaveEnded"     // Волна закончилась
	TowerPlaced   EventType = "TowerPlaced"   // Башня построена
	TowerRemoved  EventType = "TowerRemoved"  // Башня продана
	TowerUpgraded EventType = "TowerUpgraded" // Улучшение башни завершено
	EnemySpawned  EventType = "EnemySpawned"
	EnemyKilled   EventType = "EnemyKilled"  // Враг уничтожен, Data — EnemyKilledData
	EnemyEscaped  EventType = "EnemyEscaped" // Враг дошёл до выхода
	GameOver      EventType = "GameOver"
)

// EnemyKilledData — данные события EnemyKilled
type EnemyKilledData struct {
	ID     types.EntityID
	Reward int
}
