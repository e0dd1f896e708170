package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/fugufall/puzzle"
	"github.com/plus3/fugufall/puzzle/debugui"
	"go.uber.org/zap"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	CellSize     = 32
)

type Game struct {
	Puzzle       *puzzle.Puzzle
	Scheduler    *puzzle.Scheduler
	ImguiBackend *debugui.ImguiBackend
	ImguiSystem  *debugui.ImguiSystem
	Renderer     *BoardRenderer
	Log          *zap.Logger
}

func main() {
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for pair colors.")
	pairs := flag.Int("pairs", 60, "Number of pairs in the puzzle.")
	debug := flag.Bool("debug", false, "Enable development logging and show the debug windows.")
	flag.Parse()

	logger, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	rng := rand.New(rand.NewPCG(*seed, *seed>>1))
	newGenerator := func() puzzle.Generator { return puzzle.RandomColors(rng, *pairs) }

	p, err := puzzle.New(puzzle.DefaultConfig(), newGenerator(), puzzle.WithLogger(logger.Named("puzzle")))
	if err != nil {
		logger.Fatal("invalid puzzle config", zap.Error(err))
	}
	p.Subscribe(logEvents(logger.Named("events")))

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	backend := debugui.NewImguiBackend("fugufall", ScreenWidth, ScreenHeight)

	imguiSystem := &debugui.ImguiSystem{Hidden: !*debug}

	scheduler := puzzle.NewScheduler(p)
	scheduler.Register(&KeyboardSystem{
		Capture:      &imguiSystem.InputState,
		NewGenerator: newGenerator,
	})
	scheduler.Register(&puzzle.TickSystem{})
	debugui.Attach(imguiSystem, p, scheduler)
	scheduler.Register(imguiSystem)

	game := &Game{
		Puzzle:       p,
		Scheduler:    scheduler,
		ImguiBackend: backend,
		ImguiSystem:  imguiSystem,
		Renderer:     NewBoardRenderer(p.Width(), p.Height(), CellSize),
		Log:          logger,
	}

	logger.Info("starting", zap.Uint64("seed", *seed), zap.Int("pairs", *pairs))
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game exited", zap.Error(err))
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.Log.Debug("debug windows", zap.Bool("shown", g.ImguiSystem.Toggle()))
	}

	g.ImguiBackend.BeginFrame()
	for _, err := range g.Scheduler.Once(1.0 / float64(ebiten.TPS())) {
		if err != nil {
			g.Log.Debug("command rejected", zap.Error(err))
		}
	}
	g.ImguiBackend.EndFrame()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.Renderer.Draw(screen, g.Puzzle)
	g.ImguiBackend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.ImguiBackend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	return cfg.Build()
}

// logEvents writes every puzzle event at debug level.
func logEvents(log *zap.Logger) puzzle.Handler {
	return func(ev puzzle.Event) {
		fields := []zap.Field{zap.Stringer("kind", ev.Kind)}
		switch ev.Kind {
		case puzzle.EventPhaseChanged:
			fields = append(fields, zap.Stringer("phase", ev.Phase))
		case puzzle.EventGroupMatched:
			fields = append(fields, zap.Int("pieces", len(ev.IDs)), zap.Int("chain", ev.Chain))
		case puzzle.EventCommandRejected:
			fields = append(fields, zap.Stringer("command", ev.Command), zap.Error(ev.Err))
		case puzzle.EventPieceRemoved, puzzle.EventPiecePlaced:
			fields = append(fields, zap.Int32("piece", int32(ev.Piece.ID)))
		}
		log.Debug("event", fields...)
	}
}
