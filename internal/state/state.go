// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine хранит стек состояний. Верхнее получает ввод и такты,
// пауза кладётся поверх игры и снимается без пересоздания игры.
type StateMachine struct {
	stack []State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState заменяет весь стек одним состоянием
func (sm *StateMachine) SetState(newState State) {
	for len(sm.stack) > 0 {
		sm.pop()
	}
	sm.Push(newState)
}

// Push кладёт состояние поверх текущего
func (sm *StateMachine) Push(s State) {
	if s == nil {
		return
	}
	sm.stack = append(sm.stack, s)
	s.Enter()
}

// Pop снимает верхнее состояние. Нижнее не получает Enter повторно.
func (sm *StateMachine) Pop() {
	if len(sm.stack) > 1 {
		sm.pop()
	}
}

func (sm *StateMachine) pop() {
	top := sm.stack[len(sm.stack)-1]
	sm.stack = sm.stack[:len(sm.stack)-1]
	top.Exit()
}

// Current возвращает верхнее состояние или nil
func (sm *StateMachine) Current() State {
	if len(sm.stack) == 0 {
		return nil
	}
	return sm.stack[len(sm.stack)-1]
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if cur := sm.Current(); cur != nil {
		cur.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if cur := sm.Current(); cur != nil {
		cur.Draw(screen)
	}
}
