// internal/defs/waves.go
package defs

// WaveOrder — группа одинаковых врагов в волне
type WaveOrder struct {
	EnemyID string `json:"id"`
	Count   int    `json:"count"`
}

// WaveDefinition описывает параметры для одной волны врагов.
type WaveDefinition struct {
	Orders        []WaveOrder `json:"orders"`
	SpawnInterval float64     `json:"spawn_interval"` // секунд; 0 — значение по умолчанию
}

// Expand разворачивает волну в очередь ID в порядке групп.
// Группы без ID или с неположительным количеством пропускаются.
func (w WaveDefinition) Expand() []string {
	var queue []string
	for _, o := range w.Orders {
		if o.EnemyID == "" || o.Count <= 0 {
			continue
		}
		for i := 0; i < o.Count; i++ {
			queue = append(queue, o.EnemyID)
		}
	}
	return queue
}

// Size — число врагов в волне
func (w WaveDefinition) Size() int {
	return len(w.Expand())
}

// WavePatterns задаёт фиксированные волны. Ключ карты - это номер волны.
// Остальные волны генерируются по SpawnTables.
var WavePatterns = map[int]WaveDefinition{
	5:  {Orders: []WaveOrder{{EnemyID: "ENEMY_FAST", Count: 8}, {EnemyID: "ENEMY_NORMAL", Count: 4}}, SpawnInterval: 0.45},
	10: {Orders: []WaveOrder{{EnemyID: "ENEMY_TOUGH", Count: 4}, {EnemyID: "ENEMY_BOSS", Count: 1}}, SpawnInterval: 1},
}

// GeneratedWaveSize — размер сгенерированной волны
func GeneratedWaveSize(wave, base, step int) int {
	return base + wave*step
}
