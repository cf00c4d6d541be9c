package scenes

import (
	"sync"

	cfg "github.com/automoto/the-caverns/config"
	"github.com/automoto/the-caverns/systems"
	"github.com/automoto/the-caverns/systems/factory"
	"github.com/automoto/the-caverns/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameScene runs the menus and the cave map in a single ECS world.
type GameScene struct {
	ecs     *ecs.ECS
	screens systems.ScreenBuilder
	changes systems.ChangeSource
	once    sync.Once

	width, height int
}

func NewGameScene() *GameScene {
	return &GameScene{
		screens: ui.Screens{},
		width:   cfg.C.Width,
		height:  cfg.C.Height,
	}
}

// WatchAssets reloads the current map whenever src reports a change.
func (gs *GameScene) WatchAssets(src systems.ChangeSource) {
	gs.changes = src
}

func (gs *GameScene) Update() error {
	gs.once.Do(gs.configure)
	gs.ecs.Update()

	if app := systems.App(gs.ecs.World); app != nil && app.ExitRequested {
		return ebiten.Termination
	}
	return nil
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.C.ClearColor)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

// Layout records the window size; menus pick it up on their next update.
func (gs *GameScene) Layout(width, height int) {
	if width == gs.width && height == gs.height {
		return
	}
	gs.width, gs.height = width, height
	if gs.ecs == nil {
		return
	}
	if app := systems.App(gs.ecs.World); app != nil {
		app.Width, app.Height = width, height
		app.Resized = true
	}
}

func (gs *GameScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	menu := cfg.MenuStartScreen
	if cfg.Debug.SkipMenu {
		menu = cfg.MenuInGame
	}
	factory.CreateResources(ecs, menu, gs.width, gs.height)
	factory.CreateSpace(ecs, gs.width, gs.height, int(cfg.PixelsPerMeter), int(cfg.PixelsPerMeter))
	factory.CreateCamera(ecs)
	factory.CreateFPSText(ecs)

	// Input and state transitions run first so hooks see this tick's input
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.HandleAppInput)
	ecs.AddSystem(systems.UpdateStates)
	if gs.changes != nil {
		ecs.AddSystem(systems.NewUpdateMapReload(gs.changes))
	}
	ecs.AddSystem(systems.PromoteLoadedMap)
	ecs.AddSystem(systems.PromoteLoadedLevel)
	ecs.AddSystem(systems.UpdateMenu)

	// Gameplay
	ecs.AddSystem(systems.WhenPlaying(systems.UpdatePlayerMovement))
	ecs.AddSystem(systems.WhenPlaying(systems.UpdatePhysics))
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateFPSText)

	// Add renderers
	ecs.AddRenderer(cfg.LayerBase, systems.DrawSprites(cfg.LayerBase))
	ecs.AddRenderer(cfg.LayerMap, systems.DrawSprites(cfg.LayerMap))
	ecs.AddRenderer(cfg.LayerEntities, systems.DrawSprites(cfg.LayerEntities))
	ecs.AddRenderer(cfg.LayerEffects, systems.DrawColliders)
	ecs.AddRenderer(cfg.LayerUI, systems.DrawMenu)
	ecs.AddRenderer(cfg.LayerUI, systems.DrawFPSText)

	gs.ecs = ecs

	systems.RegisterStateHooks(ecs, gs.screens)
	if cfg.Debug.SkipMenu {
		systems.MapReadiness(ecs.World).Set(cfg.MapLoading)
		systems.StartGame(ecs)
		return
	}
	systems.EnterInitialStates(ecs, gs.screens)
}
