package debugui_test

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/fugufall/puzzle"
	"github.com/plus3/fugufall/puzzle/debugui"
)

// Game implements ebiten.Game and draws the debug windows over the game.
type Game struct {
	scheduler    *puzzle.Scheduler
	imguiBackend *debugui.ImguiBackend
}

func (g *Game) Update() error {
	// Begin ImGui frame before executing systems
	g.imguiBackend.BeginFrame()

	// Execute all systems (including ImguiSystem)
	g.scheduler.Once(1.0 / 60.0)

	// End ImGui frame after deferred renders ran
	g.imguiBackend.EndFrame()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw the board
	// ...

	// Draw ImGui overlay on top
	g.imguiBackend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	backend := debugui.NewImguiBackend("fugufall debug", 1280, 720)

	p, err := puzzle.New(puzzle.DefaultConfig(), puzzle.Sequence(
		puzzle.ColorPair{Primary: puzzle.Red, Secondary: puzzle.Green},
	))
	if err != nil {
		panic(err)
	}

	scheduler := puzzle.NewScheduler(p)
	scheduler.Register(&puzzle.TickSystem{})

	imguiSystem := &debugui.ImguiSystem{}
	debugui.Attach(imguiSystem, p, scheduler)
	scheduler.Register(imguiSystem)

	game := &Game{
		scheduler:    scheduler,
		imguiBackend: backend,
	}

	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
