package main

import (
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/hades/components"
	"github.com/plus3/hades/ecs"
	"github.com/plus3/hades/ecs/debugui"
	debugui_ebiten "github.com/plus3/hades/ecs/debugui/ebiten"
	"github.com/plus3/hades/hierarchy"
	"github.com/plus3/hades/internal/config"
	"github.com/plus3/hades/systems"
)

const baseRadius = 6

// Game implements ebiten.Game around the editor world.
type Game struct {
	cfg     *config.Config
	logger  *slog.Logger
	editor  *editor
	backend *ecs.Singleton[debugui_ebiten.ImguiBackend]

	dt            float64
	lastStatsTime time.Time
}

func newGame(cfg *config.Config, logger *slog.Logger, e *editor) *Game {
	g := &Game{
		cfg:           cfg,
		logger:        logger,
		editor:        e,
		dt:            cfg.Loop.TickInterval().Seconds(),
		lastStatsTime: time.Now(),
	}

	if cfg.Debug.ShowUI {
		g.backend = ecs.NewSingleton(e.world,
			debugui_ebiten.NewImguiBackend(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height))
		ecs.NewSingleton[debugui.ImguiInputState](e.world)
		ecs.RegisterSystem[debugui.ImguiSystem](e.world.Systems())

		if _, err := debugui.SpawnEditorMenu(e.world); err != nil {
			logger.Error("spawn editor menu", slog.Any("error", err))
		}
		if _, err := debugui.SpawnDebugUI(e.world); err != nil {
			logger.Error("spawn debug ui", slog.Any("error", err))
		}
	} else {
		ebiten.SetWindowTitle(cfg.Window.Title)
		ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	}
	return g
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) && !g.keyboardCaptured() {
		return ebiten.Termination
	}

	g.editor.draws.Reset()

	if g.backend != nil {
		g.backend.Get().BeginFrame()
	}
	err := g.editor.world.Update(g.dt)
	if g.backend != nil {
		g.backend.Get().EndFrame()
	}
	if err != nil {
		g.logger.Error("frame failed", slog.Any("error", err))
	}

	for _, event := range g.editor.state.Get().Drain() {
		g.logger.Debug("editor event", slog.String("event", event.String()))
		if event == debugui.EditorQuit {
			return ebiten.Termination
		}
	}

	g.logStats()
	return nil
}

func (g *Game) keyboardCaptured() bool {
	var input *debugui.ImguiInputState
	return ecs.ReadSingleton(g.editor.world, &input) && input.WantCaptureKeyboard
}

func (g *Game) logStats() {
	interval := g.cfg.Loop.StatsInterval
	if interval <= 0 || time.Since(g.lastStatsTime) < interval {
		return
	}
	g.lastStatsTime = time.Now()

	for _, s := range g.editor.world.Systems().Stats().Systems {
		g.logger.Info("system stats",
			slog.String("system", s.Name),
			slog.Int64("runs", s.ExecutionCount),
			slog.Int64("errors", s.ErrorCount),
			slog.Duration("avg", s.AvgDuration),
			slog.Duration("max", s.MaxDuration),
		)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 22, 28, 255})

	g.drawLinks(screen)
	for _, call := range g.editor.draws.Calls {
		drawCall(screen, call)
	}

	if g.backend != nil {
		g.backend.Get().Draw(screen)
	}
}

// drawLinks draws a line from every parent to each of its children.
func (g *Game) drawLinks(screen *ebiten.Image) {
	w := g.editor.world
	err := hierarchy.Walk(w, func(entity ecs.EntityId, depth int) bool {
		node, err := ecs.GetComponentOf[components.TransformHierarchy](w, entity)
		if err != nil || !node.HasParent() {
			return true
		}
		from, err := ecs.GetComponentOf[components.Position3D](w, node.Parent)
		if err != nil {
			return true
		}
		to, err := ecs.GetComponentOf[components.Position3D](w, entity)
		if err != nil {
			return true
		}
		vector.StrokeLine(screen, from.X, from.Y, to.X, to.Y, 1, color.RGBA{90, 90, 110, 255}, true)
		return true
	})
	if err != nil {
		g.logger.Warn("hierarchy walk", slog.Any("error", err))
	}
}

func drawCall(screen *ebiten.Image, call systems.DrawCall) {
	c := color.RGBA{call.Render.Color[0], call.Render.Color[1], call.Render.Color[2], 255}
	size := baseRadius * max(call.Render.Scale, 0.1)
	x, y := call.Position.X, call.Position.Y

	switch call.Render.Mesh {
	case "square":
		vector.DrawFilledRect(screen, x-size/2, y-size/2, size, size, c, false)
	default:
		vector.DrawFilledCircle(screen, x, y, size, c, true)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.backend != nil {
		g.backend.Get().Layout(outsideWidth, outsideHeight)
	}
	var bounds *Bounds
	if ecs.ReadSingleton(g.editor.world, &bounds) {
		bounds.Width, bounds.Height = float32(outsideWidth), float32(outsideHeight)
	}
	return outsideWidth, outsideHeight
}
