// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/entity"
	"go-grid-defense/internal/event"
	"go-grid-defense/internal/system"
	"go-grid-defense/internal/utils"
	"go-grid-defense/pkg/gridmap"
)

// Options — параметры партии, не относящиеся к полю
type Options struct {
	Policy         config.PathPolicy
	Seed           int64 // 0 — от текущего времени
	AutoStartWaves bool
	FirstWaveDelay float64
	NextWaveDelay  float64
	StartLives     int
	StartMoney     int
}

// DefaultOptions возвращает параметры из config
func DefaultOptions() Options {
	return Options{
		Policy:         config.PathRecomputeOnChange,
		AutoStartWaves: config.AutoStartWaves,
		FirstWaveDelay: config.FirstWaveDelay,
		NextWaveDelay:  config.NextWaveDelay,
		StartLives:     config.StartLives,
		StartMoney:     config.StartMoney,
	}
}

// Stats — счётчики партии для панели статистики
type Stats struct {
	Spawned int
	Killed  int
	Escaped int
}

// Game holds the main game state and logic.
type Game struct {
	Grid               *gridmap.Grid
	GridConfig         config.GridConfig
	Presets            *defs.PresetLibrary
	Wave               int
	ECS                *entity.ECS
	MovementSystem     *system.MovementSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	UpgradeSystem      *system.UpgradeSystem
	CleanupSystem      *system.CleanupSystem
	WaveSystem         *system.WaveSystem
	StateSystem        *system.StateSystem
	VisualEffectSystem *system.VisualEffectSystem
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService
	SpeedMultiplier    float64
	Stats              Stats

	options     Options
	gameTime    float64
	isPaused    bool
	spawnCursor int
}

// NewGame initializes a new game instance.
func NewGame(cfg config.GridConfig, presets *defs.PresetLibrary, opts Options) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid grid config: %w", err)
	}
	if presets == nil || presets.Len() == 0 {
		presets = defs.DefaultPresets()
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		Grid:            cfg.NewGrid(),
		GridConfig:      cfg,
		Presets:         presets,
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             utils.NewPRNGService(opts.Seed),
		SpeedMultiplier: 1,
		options:         opts,
	}
	g.MovementSystem = system.NewMovementSystem(ecs, eventDispatcher)
	g.CombatSystem = system.NewCombatSystem(ecs)
	g.ProjectileSystem = system.NewProjectileSystem(ecs)
	g.UpgradeSystem = system.NewUpgradeSystem(ecs, eventDispatcher)
	g.CleanupSystem = system.NewCleanupSystem(ecs, eventDispatcher)
	g.WaveSystem = system.NewWaveSystem(ecs, g, eventDispatcher, g.Rng)
	g.StateSystem = system.NewStateSystem(ecs, g, eventDispatcher, opts.AutoStartWaves, opts.NextWaveDelay)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)

	listener := &GameEventListener{game: g}
	eventDispatcher.SubscribeAll(listener, event.EnemySpawned, event.EnemyKilled, event.EnemyEscaped, event.WaveEnded)

	g.resetState()
	log.Printf("New game: %dx%d grid, %d presets, path policy %s", cfg.Rows, cfg.Cols, presets.Len(), opts.Policy)
	return g, nil
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemySpawned:
		l.game.Stats.Spawned++
	case event.EnemyKilled:
		l.game.Stats.Killed++
	case event.EnemyEscaped:
		l.game.Stats.Escaped++
	case event.WaveEnded:
		log.Printf("Wave %d ended: lives %d, money %d", l.game.Wave, l.game.ECS.GameState.Lives, l.game.ECS.GameState.Money)
	}
}

// Update — один такт симуляции
func (g *Game) Update(deltaTime float64) {
	if g.isPaused || g.ECS.GameState.Phase == component.GameOverState || deltaTime <= 0 {
		return
	}
	dt := deltaTime * g.SpeedMultiplier
	g.gameTime += dt
	g.ECS.GameTime = g.gameTime

	g.StateSystem.Update(dt)
	g.WaveSystem.Update(dt)
	g.MovementSystem.Update(dt)
	g.UpgradeSystem.Update(dt)
	g.CombatSystem.Update(dt)
	g.ProjectileSystem.Update(dt)
	g.CleanupSystem.Update()
	g.WaveSystem.CheckFinished()
	g.VisualEffectSystem.Update(dt)
}

// StartNextWave запускает следующую волну вручную или по таймеру
func (g *Game) StartNextWave() error {
	switch g.ECS.GameState.Phase {
	case component.GameOverState:
		return ErrGameOver
	case component.WaveState:
		return fmt.Errorf("start wave %d: %w", g.Wave+1, ErrWaveInProgress)
	}
	g.Wave++
	g.ECS.Wave = g.WaveSystem.BuildWave(g.Wave)
	g.StateSystem.SwitchToWaveState()
	log.Printf("Wave %d started: %d enemies", g.Wave, g.ECS.Wave.Total)
	g.EventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: g.Wave})
	return nil
}

// StartWaveWith запускает волну заданного состава, минуя генератор
func (g *Game) StartWaveWith(waveDef defs.WaveDefinition) error {
	switch g.ECS.GameState.Phase {
	case component.GameOverState:
		return ErrGameOver
	case component.WaveState:
		return fmt.Errorf("start wave %d: %w", g.Wave+1, ErrWaveInProgress)
	}
	g.Wave++
	g.ECS.Wave = system.NewWave(g.Wave, waveDef)
	g.StateSystem.SwitchToWaveState()
	g.EventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: g.Wave})
	return nil
}

// Reset возвращает партию к началу с тем же полем и параметрами
func (g *Game) Reset() {
	g.Grid.Reset()
	for _, id := range entity.SortedIDs(g.ECS.Positions) {
		g.ECS.RemoveEntity(id)
	}
	for _, id := range entity.SortedIDs(g.ECS.Enemies) {
		g.ECS.RemoveEntity(id)
	}
	for _, id := range entity.SortedIDs(g.ECS.Towers) {
		g.ECS.RemoveEntity(id)
	}
	g.resetState()
	log.Println("Game reset")
}

func (g *Game) resetState() {
	g.ECS.NextID = 1
	g.ECS.Wave = nil
	g.ECS.GameTime = 0
	g.ECS.GameState.Phase = component.BuildState
	g.ECS.GameState.Lives = g.options.StartLives
	g.ECS.GameState.Money = g.options.StartMoney
	g.ECS.GameState.NextWaveTimer = 0
	g.Wave = 0
	g.Stats = Stats{}
	g.gameTime = 0
	g.spawnCursor = 0
	g.StateSystem.ScheduleNextWave(g.options.FirstWaveDelay)
}

// ClearProjectiles удаляет все снаряды
func (g *Game) ClearProjectiles() {
	g.ProjectileSystem.Clear()
}

func (g *Game) HandleSpeedClick() {
	for i, m := range config.SpeedMultipliers {
		if m == g.SpeedMultiplier {
			g.SpeedMultiplier = config.SpeedMultipliers[(i+1)%len(config.SpeedMultipliers)]
			return
		}
	}
	g.SpeedMultiplier = config.SpeedMultipliers[0]
}

func (g *Game) HandlePauseClick() {
	g.isPaused = !g.isPaused
}

func (g *Game) IsPaused() bool {
	return g.isPaused
}

func (g *Game) GetGameTime() float64 {
	return g.gameTime
}

// Policy — выбранная политика пересчёта путей
func (g *Game) Policy() config.PathPolicy {
	return g.options.Policy
}

func (g *Game) Lives() int { return g.ECS.GameState.Lives }

func (g *Game) Money() int { return g.ECS.GameState.Money }

func (g *Game) Phase() component.Phase { return g.ECS.GameState.Phase }
