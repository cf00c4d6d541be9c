package systems

import (
	"log"

	"github.com/automoto/the-caverns/components"
	cfg "github.com/automoto/the-caverns/config"
	"github.com/automoto/the-caverns/systems/factory"
	"github.com/automoto/the-caverns/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuButton identifies a clickable menu button.
type MenuButton int

const (
	ButtonStart MenuButton = iota
	ButtonContinue
	ButtonQuit
)

// MenuOutcome is what a button press should do.
type MenuOutcome struct {
	Next           cfg.GameMenuState
	StartGame      bool
	MarkStoryShown bool
	Exit           bool
}

// NextMenuState decides the effect of pressing button. Start shows the
// storyline intro the first time and starts the game afterwards.
func NextMenuState(button MenuButton, storylineShown bool) MenuOutcome {
	switch button {
	case ButtonStart:
		if !storylineShown {
			return MenuOutcome{Next: cfg.MenuStorylineIntro}
		}
		return MenuOutcome{Next: cfg.MenuInGame, StartGame: true}
	case ButtonContinue:
		return MenuOutcome{Next: cfg.MenuInGame, StartGame: true, MarkStoryShown: true}
	default:
		return MenuOutcome{Exit: true}
	}
}

// PressMenuButton applies the outcome of a button press.
func PressMenuButton(ecs *ecs.ECS, button MenuButton) {
	out := NextMenuState(button, StorylineIntroShown())
	if out.Exit {
		RequestExit(ecs)
		return
	}
	if out.MarkStoryShown {
		MarkStorylineIntroShown()
	}
	MenuState(ecs.World).Set(out.Next)
	if out.StartGame {
		MapReadiness(ecs.World).Set(cfg.MapLoading)
		StartGame(ecs)
	}
}

// StartGame points the map resource at the first map and spawns the player.
func StartGame(ecs *ecs.ECS) {
	ms := MapState(ecs.World)
	ms.Handle = cfg.Map.StartMap
	ms.Asset = nil

	if _, ok := tags.Player.First(ecs.World); ok {
		return
	}
	factory.CreatePlayer(ecs, cfg.Player.StartX, cfg.Player.StartY)
	debugf("[menu] Spawned player")
}

// SpawnMenuScreen attaches screen to a new menu root entity sized to the
// current window.
func SpawnMenuScreen(ecs *ecs.ECS, screen components.Screen) *donburi.Entry {
	if screen == nil {
		return nil
	}
	if app := App(ecs.World); app != nil {
		screen.Resize(app.Width, app.Height)
	}
	return factory.CreateMenuRoot(ecs, screen)
}

// DespawnMenus removes every menu root node.
func DespawnMenus(ecs *ecs.ECS) {
	n := removeTagged(ecs, tags.MenuRoot)
	debugf("[menu] Despawned %d menu roots", n)
}

// UpdateMenu forwards window resizes to the open screens and updates them.
func UpdateMenu(ecs *ecs.ECS) {
	app := App(ecs.World)
	var screens []components.Screen
	components.MenuRoot.Each(ecs.World, func(e *donburi.Entry) {
		screens = append(screens, components.MenuRoot.Get(e).Screen)
	})

	for _, s := range screens {
		if app != nil && app.Resized {
			s.Resize(app.Width, app.Height)
		}
		s.Update()
	}
	if app != nil {
		app.Resized = false
	}
}

func DrawMenu(ecs *ecs.ECS, screen *ebiten.Image) {
	components.MenuRoot.Each(ecs.World, func(e *donburi.Entry) {
		components.MenuRoot.Get(e).Screen.Draw(screen)
	})
}

// RequestExit asks the game loop to stop after this tick.
func RequestExit(ecs *ecs.ECS) {
	if app := App(ecs.World); app != nil {
		app.ExitRequested = true
	}
	log.Printf("[app] Exit requested")
}
