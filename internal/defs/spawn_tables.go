// internal/defs/spawn_tables.go
package defs

// SpawnEntry представляет одну запись в таблице появления врагов.
// EnemyID - это ID пресета, а Weight - его относительный шанс появления.
type SpawnEntry struct {
	EnemyID string `json:"enemy_id"`
	Weight  int    `json:"weight"`
}

// SpawnTable определяет состав сгенерированных волн начиная с FromWave.
type SpawnTable struct {
	FromWave int          `json:"from_wave"`
	Entries  []SpawnEntry `json:"entries"`
}

// SpawnTables упорядочены по возрастанию FromWave
var SpawnTables = []SpawnTable{
	{FromWave: 1, Entries: []SpawnEntry{{EnemyID: "ENEMY_NORMAL", Weight: 1}}},
	{FromWave: 4, Entries: []SpawnEntry{
		{EnemyID: "ENEMY_NORMAL", Weight: 6},
		{EnemyID: "ENEMY_FAST", Weight: 3},
		{EnemyID: "ENEMY_TOUGH", Weight: 1},
	}},
	{FromWave: 8, Entries: []SpawnEntry{
		{EnemyID: "ENEMY_NORMAL", Weight: 4},
		{EnemyID: "ENEMY_FAST", Weight: 4},
		{EnemyID: "ENEMY_TOUGH", Weight: 2},
	}},
}

// TableForWave возвращает последнюю таблицу, действующую для номера волны
func TableForWave(wave int) []SpawnEntry {
	var entries []SpawnEntry
	for _, t := range SpawnTables {
		if t.FromWave <= wave {
			entries = t.Entries
		}
	}
	return entries
}
