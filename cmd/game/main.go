// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-grid-defense/internal/app"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	gridPath := flag.String("grid", "", "path to a grid config JSON (default 12x12 field)")
	enemiesPath := flag.String("enemies", "", "path to an enemy presets JSON")
	seed := flag.Int64("seed", 0, "random seed, 0 for time-based")
	policyName := flag.String("policy", "recompute", "path policy: recompute or spawn-only")
	manualWaves := flag.Bool("manual", false, "start waves only by hand")
	skipMenu := flag.Bool("skip-menu", false, "start the game right away")
	pprofAddr := flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	setup, err := loadSetup(*gridPath, *enemiesPath, *policyName)
	if err != nil {
		log.Fatal(err)
	}
	setup.Options.Seed = *seed
	setup.Options.AutoStartWaves = !*manualWaves

	sm := state.NewStateMachine()
	if *skipMenu {
		gs, err := state.NewGameState(sm, setup)
		if err != nil {
			log.Fatal(err)
		}
		sm.SetState(gs)
	} else {
		sm.SetState(state.NewMenuState(sm, setup))
	}

	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Grid Defense")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

func loadSetup(gridPath, enemiesPath, policyName string) (state.Setup, error) {
	setup := state.Setup{
		Grid:    config.DefaultGridConfig(),
		Presets: defs.DefaultPresets(),
		Options: app.DefaultOptions(),
	}
	if gridPath != "" {
		cfg, err := defs.LoadGridConfig(gridPath)
		if err != nil {
			return setup, err
		}
		setup.Grid = cfg
	}
	if enemiesPath != "" {
		presets, err := defs.LoadEnemyPresets(enemiesPath)
		if err != nil {
			return setup, err
		}
		setup.Presets = presets
	}
	policy, ok := config.ParsePathPolicy(policyName)
	if !ok {
		log.Printf("Unknown path policy %q, using %s", policyName, policy)
	}
	setup.Options.Policy = policy
	return setup, nil
}
