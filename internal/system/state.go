// internal/system/state.go
package system

import (
	"log"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/interfaces"
	"go-grid-defense/internal/types"
)

// StateSystem ведёт фазы игры, жизни и деньги
type StateSystem struct {
	ecs             *entity.ECS
	gameContext     interfaces.GameContext
	eventDispatcher *event.Dispatcher
	autoStart       bool
	nextWaveDelay   float64
}

func NewStateSystem(ecs *entity.ECS, gameContext interfaces.GameContext, eventDispatcher *event.Dispatcher, autoStart bool, nextWaveDelay float64) *StateSystem {
	ss := &StateSystem{
		ecs:             ecs,
		gameContext:     gameContext,
		eventDispatcher: eventDispatcher,
		autoStart:       autoStart,
		nextWaveDelay:   nextWaveDelay,
	}
	eventDispatcher.SubscribeAll(ss, event.WaveEnded, event.EnemyEscaped, event.EnemyKilled)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	state := s.ecs.GameState
	switch e.Type {
	case event.WaveEnded:
		if state.Phase != component.GameOverState {
			s.SwitchToBuildState()
		}
	case event.EnemyEscaped:
		if state.Lives > 0 {
			state.Lives--
		}
		if id, ok := e.Data.(types.EntityID); ok {
			log.Printf("Enemy %d escaped, lives left: %d", id, state.Lives)
		}
		if state.Lives == 0 && state.Phase != component.GameOverState {
			s.SwitchToGameOver()
		}
	case event.EnemyKilled:
		if data, ok := e.Data.(event.EnemyKilledData); ok {
			state.Money += data.Reward
		}
	}
}

// Update отсчитывает паузу до автозапуска следующей волны
func (s *StateSystem) Update(deltaTime float64) {
	state := s.ecs.GameState
	if state.Phase != component.BuildState || state.NextWaveTimer <= 0 {
		return
	}
	state.NextWaveTimer -= deltaTime
	if state.NextWaveTimer <= 0 {
		state.NextWaveTimer = 0
		if err := s.gameContext.StartNextWave(); err != nil {
			log.Printf("Auto start of next wave failed: %v", err)
		}
	}
}

// ScheduleNextWave запускает обратный отсчёт, если включён автозапуск
func (s *StateSystem) ScheduleNextWave(delay float64) {
	if s.autoStart && s.ecs.GameState.Phase == component.BuildState {
		s.ecs.GameState.NextWaveTimer = delay
	}
}

func (s *StateSystem) SwitchToBuildState() {
	s.ecs.GameState.Phase = component.BuildState
	s.gameContext.ClearProjectiles()
	s.ScheduleNextWave(s.nextWaveDelay)
}

func (s *StateSystem) SwitchToWaveState() {
	s.ecs.GameState.Phase = component.WaveState
	s.ecs.GameState.NextWaveTimer = 0
}

func (s *StateSystem) SwitchToGameOver() {
	s.ecs.GameState.Phase = component.GameOverState
	s.ecs.GameState.NextWaveTimer = 0
	log.Println("Game over")
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver})
}

func (s *StateSystem) Current() component.Phase {
	return s.ecs.GameState.Phase
}
