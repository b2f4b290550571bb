// internal/system/wave.go
package system

import (
	"log"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/interfaces"
	"go-grid-defense/internal/utils"
)

// WaveSystem расходует очередь волны на том же такте, что и остальная симуляция
type WaveSystem struct {
	ecs             *entity.ECS
	spawner         interfaces.EnemySpawner
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
}

func NewWaveSystem(ecs *entity.ECS, spawner interfaces.EnemySpawner, eventDispatcher *event.Dispatcher, rng *utils.PRNGService) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		spawner:         spawner,
		eventDispatcher: eventDispatcher,
		rng:             rng,
	}
}

// BuildWave собирает очередь волны. Фиксированные волны берутся из WavePatterns,
// остальные генерируются: BaseWaveSize + WaveSizeStep*номер врагов по таблице появления.
func (s *WaveSystem) BuildWave(waveNumber int) *component.Wave {
	waveDef, ok := defs.WavePatterns[waveNumber]
	if !ok {
		size := defs.GeneratedWaveSize(waveNumber, config.BaseWaveSize, config.WaveSizeStep)
		table := defs.TableForWave(waveNumber)
		counts := map[string]int{}
		var order []string
		for i := 0; i < size; i++ {
			id := s.rng.ChooseWeighted(table)
			if counts[id] == 0 {
				order = append(order, id)
			}
			counts[id]++
		}
		for _, id := range order {
			waveDef.Orders = append(waveDef.Orders, defs.WaveOrder{EnemyID: id, Count: counts[id]})
		}
	}
	return NewWave(waveNumber, waveDef)
}

// NewWave разворачивает определение в компонент волны. Первый враг выходит на первом же такте.
func NewWave(waveNumber int, waveDef defs.WaveDefinition) *component.Wave {
	interval := waveDef.SpawnInterval
	if interval <= 0 {
		interval = config.DefaultSpawnInterval
	}
	queue := waveDef.Expand()
	return &component.Wave{
		Number:        waveNumber,
		Queue:         queue,
		Total:         len(queue),
		SpawnTimer:    interval,
		SpawnInterval: interval,
	}
}

// Update выпускает врагов из очереди по интервалу
func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave
	if wave == nil || wave.Finished || len(wave.Queue) == 0 {
		return
	}
	wave.SpawnTimer += deltaTime
	for wave.SpawnTimer >= wave.SpawnInterval && len(wave.Queue) > 0 {
		wave.SpawnTimer -= wave.SpawnInterval
		presetID := wave.Queue[0]
		wave.Queue = wave.Queue[1:]
		if _, err := s.spawner.SpawnFromPreset(presetID); err != nil {
			log.Printf("Wave %d: failed to spawn %s: %v", wave.Number, presetID, err)
			continue
		}
		wave.Spawned++
	}
}

// CheckFinished сообщает о конце волны один раз: очередь пуста и врагов не осталось.
// Вызывается после очистки.
func (s *WaveSystem) CheckFinished() {
	wave := s.ecs.Wave
	if wave == nil || wave.Finished || len(wave.Queue) > 0 || len(s.ecs.Enemies) > 0 {
		return
	}
	wave.Finished = true
	log.Printf("Wave %d finished (%d/%d spawned)", wave.Number, wave.Spawned, wave.Total)
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: wave.Number})
}
