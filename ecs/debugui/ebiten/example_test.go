package ebiten_test

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/hades/ecs"
	"github.com/plus3/hades/ecs/debugui"
	debugui_ebiten "github.com/plus3/hades/ecs/debugui/ebiten"
)

// Game implements ebiten.Game and integrates the ECS with ImGui rendering.
type Game struct {
	world        *ecs.World
	imguiBackend *ecs.Singleton[debugui_ebiten.ImguiBackend]
}

func (g *Game) Update() error {
	// Begin ImGui frame before running systems
	g.imguiBackend.Get().BeginFrame()

	// Run all ECS systems (including ImguiSystem); deferred renders run at the end
	err := g.world.Update(1.0 / 60.0)

	// End ImGui frame after systems complete
	g.imguiBackend.Get().EndFrame()

	return err
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw game content to screen
	// ...

	// Draw ImGui overlay on top
	g.imguiBackend.Get().Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Get().Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	// Set up ECS component registry
	registry := ecs.NewComponentRegistry()
	if err := debugui.RegisterDebugUIComponents(registry); err != nil {
		panic(err)
	}

	// Create the world
	world := ecs.NewWorld(registry)

	// Create Ebiten window and ImGui backend, held as a world resource
	imguiBackend := ecs.NewSingleton(world, debugui_ebiten.NewImguiBackend("ECS ImGui Example", 1280, 720))
	ecs.NewSingleton[debugui.ImguiInputState](world)

	// Spawn an entity with an ImGui render function
	item, _ := world.CreateEntity()
	_ = ecs.AddComponent(world, item, debugui.ImguiItem{
		Render: func() {
			imgui.Begin("Debug Window")
			imgui.Text("Hello from ECS!")
			imgui.End()
		},
	})

	// Register ImguiSystem
	ecs.RegisterSystem[debugui.ImguiSystem](world.Systems())

	// Create game instance
	game := &Game{
		world:        world,
		imguiBackend: imguiBackend,
	}

	// Run the game
	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
