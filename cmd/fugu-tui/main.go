package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/fugufall/puzzle"
	"go.uber.org/zap"
)

type Game struct {
	screen    tcell.Screen
	puzzle    *puzzle.Puzzle
	scheduler *puzzle.Scheduler
	input     *InputSystem
	sound     *SoundManager
	log       *zap.Logger

	newGenerator func() puzzle.Generator
}

func NewGame(p *puzzle.Puzzle, newGenerator func() puzzle.Generator, log *zap.Logger) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	g := &Game{
		screen:       screen,
		puzzle:       p,
		scheduler:    puzzle.NewScheduler(p),
		input:        &InputSystem{},
		sound:        NewSoundManager(),
		log:          log,
		newGenerator: newGenerator,
	}
	g.scheduler.Register(g.input)
	g.scheduler.Register(&puzzle.TickSystem{})

	if err := g.sound.Initialize(); err != nil {
		// Non-fatal, the game runs without sound
		log.Warn("audio initialization failed", zap.Error(err))
	}
	p.Subscribe(g.sound.Handle)

	return g, nil
}

func (g *Game) run(ctx context.Context) {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	lastTime := time.Now()
	g.draw()

	for {
		select {
		case <-ctx.Done():
			return

		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}

		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			for _, err := range g.scheduler.Once(dt) {
				if err != nil {
					g.log.Debug("command rejected", zap.Error(err))
				}
			}
			g.draw()
		}
	}
}

func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'r' {
			g.puzzle.Reset(g.newGenerator())
			return true
		}
		if cmd, ok := commandFor(ev); ok {
			g.input.Queue = append(g.input.Queue, cmd)
		}

	case *tcell.EventResize:
		g.screen.Sync()
	}

	return true
}

func (g *Game) cleanup() {
	g.sound.Cleanup()
	g.screen.Fini()
}

func main() {
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for pair colors.")
	pairs := flag.Int("pairs", 60, "Number of pairs in the puzzle.")
	logFile := flag.String("log", "", "Write debug logs to this file.")
	flag.Parse()

	logger := zap.NewNop()
	if *logFile != "" {
		cfg := zap.NewDevelopmentConfig()
		cfg.OutputPaths = []string{*logFile}
		l, err := cfg.Build()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
			os.Exit(1)
		}
		logger = l
	}
	defer logger.Sync()

	rng := rand.New(rand.NewPCG(*seed, *seed>>1))
	newGenerator := func() puzzle.Generator { return puzzle.RandomColors(rng, *pairs) }

	p, err := puzzle.New(puzzle.DefaultConfig(), newGenerator(), puzzle.WithLogger(logger.Named("puzzle")))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid puzzle config: %v\n", err)
		os.Exit(1)
	}

	game, err := NewGame(p, newGenerator, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer game.cleanup()

	game.run(context.Background())
}
