// internal/component/wave.go
package component

// Wave — компонент для волны врагов
type Wave struct {
	Number        int      // Номер волны
	Queue         []string // ID пресетов, которые ещё предстоит выпустить
	Spawned       int
	Total         int
	SpawnTimer    float64 // Таймер спавна
	SpawnInterval float64 // Интервал между спавнами (в секундах)
	Finished      bool
}
