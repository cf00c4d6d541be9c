package systems

import (
	"log"

	"github.com/automoto/the-caverns/components"
	cfg "github.com/automoto/the-caverns/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStates applies the transitions queued during the previous tick.
// Hooks run here, so work queued by a hook shows up one tick later.
func UpdateStates(ecs *ecs.ECS) {
	if m := MenuState(ecs.World); m != nil {
		prev := m.Current()
		if m.Apply() {
			debugf("[state] GameMenuState %s -> %s", prev, m.Current())
		}
	}
	if m := MapReadiness(ecs.World); m != nil {
		prev := m.Current()
		if m.Apply() {
			debugf("[state] MapReadinessState %s -> %s", prev, m.Current())
		}
	}
	if m := LevelReadiness(ecs.World); m != nil {
		prev := m.Current()
		if m.Apply() {
			debugf("[state] LevelReadinessState %s -> %s", prev, m.Current())
		}
	}
}

// ScreenBuilder creates the menu UI trees. It is supplied by the scene so
// that systems do not depend on the widget toolkit.
type ScreenBuilder interface {
	StartScreen(ecs *ecs.ECS) components.Screen
	StorylineScreen(ecs *ecs.ECS) components.Screen
}

// RegisterStateHooks wires the map, level and menu machines to the systems
// that react to them.
func RegisterStateHooks(ecs *ecs.ECS, screens ScreenBuilder) {
	mapState := MapReadiness(ecs.World)
	mapState.OnEnter(cfg.MapLoading, func(cfg.MapReadinessState) { SetupMap(ecs) })
	mapState.OnEnter(cfg.MapUnloading, func(cfg.MapReadinessState) { UnloadMap(ecs) })
	mapState.OnEnter(cfg.MapUnloaded, func(cfg.MapReadinessState) { resumePendingReload(ecs) })

	levelState := LevelReadiness(ecs.World)
	levelState.OnEnter(cfg.LevelLoading, func(cfg.LevelReadinessState) { LoadLevel(ecs) })

	menu := MenuState(ecs.World)
	menu.OnEnter(cfg.MenuStartScreen, func(cfg.GameMenuState) {
		SpawnMenuScreen(ecs, screens.StartScreen(ecs))
	})
	menu.OnExit(cfg.MenuStartScreen, func(cfg.GameMenuState) { DespawnMenus(ecs) })
	menu.OnEnter(cfg.MenuStorylineIntro, func(cfg.GameMenuState) {
		SpawnMenuScreen(ecs, screens.StorylineScreen(ecs))
	})
	menu.OnExit(cfg.MenuStorylineIntro, func(cfg.GameMenuState) { DespawnMenus(ecs) })
}

// EnterInitialStates runs the enter hooks of the machines' starting states,
// which NewMachine skips.
func EnterInitialStates(ecs *ecs.ECS, screens ScreenBuilder) {
	switch MenuState(ecs.World).Current() {
	case cfg.MenuStartScreen:
		SpawnMenuScreen(ecs, screens.StartScreen(ecs))
	case cfg.MenuStorylineIntro:
		SpawnMenuScreen(ecs, screens.StorylineScreen(ecs))
	}
}

func debugf(format string, args ...any) {
	if cfg.Debug.Verbose {
		log.Printf(format, args...)
	}
}
