package component

// Phase — фаза игры
type Phase int

const (
	BuildState Phase = iota
	WaveState
	GameOverState
)

func (p Phase) String() string {
	switch p {
	case BuildState:
		return "build"
	case WaveState:
		return "wave"
	case GameOverState:
		return "game over"
	default:
		return "unknown"
	}
}

// GameState — компонент для хранения состояния игры
type GameState struct {
	Phase         Phase
	Lives         int
	Money         int
	NextWaveTimer float64 // Обратный отсчёт до автозапуска волны, 0 — не запущен
}
