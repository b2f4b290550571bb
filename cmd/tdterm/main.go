// cmd/tdterm/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-grid-defense/internal/app"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/term"
)

const tick = 33 * time.Millisecond

func main() {
	gridPath := flag.String("grid", "", "path to a grid config JSON (default 12x12 field)")
	enemiesPath := flag.String("enemies", "", "path to an enemy presets JSON")
	seed := flag.Int64("seed", 0, "random seed, 0 for time-based")
	policyName := flag.String("policy", "recompute", "path policy: recompute or spawn-only")
	manualWaves := flag.Bool("manual", false, "start waves only by hand")
	logPath := flag.String("log", "", "write the game log to this file")
	flag.Parse()

	// лог поверх полноэкранного интерфейса только мешает
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	game, err := newGame(*gridPath, *enemiesPath, *policyName, *seed, !*manualWaves)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	run(screen, term.NewView(screen, game), game)

	// Fini также разблокирует PollEvent в горутине чтения
	screen.Fini()
	stats := game.Stats
	fmt.Printf("Reached wave %d: %d killed, %d escaped\n", game.Wave, stats.Killed, stats.Escaped)
}

func run(screen tcell.Screen, view *term.View, game *app.Game) {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen, events, done)

	last := time.Now()
	for {
		select {
		case ev := <-events:
			if !view.HandleEvent(ev) {
				return
			}
			view.Draw()
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			if dt > config.MaxDeltaTime {
				dt = config.MaxDeltaTime
			}
			last = now
			game.Update(dt)
			view.Draw()
		}
	}
}

// pollEvents читает события экрана, пока их принимает цикл run
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func newGame(gridPath, enemiesPath, policyName string, seed int64, autoStart bool) (*app.Game, error) {
	cfg := config.DefaultGridConfig()
	if gridPath != "" {
		loaded, err := defs.LoadGridConfig(gridPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	presets := defs.DefaultPresets()
	if enemiesPath != "" {
		loaded, err := defs.LoadEnemyPresets(enemiesPath)
		if err != nil {
			return nil, err
		}
		presets = loaded
	}
	policy, ok := config.ParsePathPolicy(policyName)
	if !ok {
		return nil, fmt.Errorf("unknown path policy %q", policyName)
	}

	opts := app.DefaultOptions()
	opts.Policy = policy
	opts.Seed = seed
	opts.AutoStartWaves = autoStart
	return app.NewGame(cfg, presets, opts)
}
