package systems

import (
	cfg "github.com/automoto/the-caverns/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdatePlayerMovement in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := Input(ecs.World)
	if input == nil {
		return
	}

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}
}

// HandleAppInput handles keys that work on every screen: exit and the
// collider debug overlay.
func HandleAppInput(ecs *ecs.ECS) {
	input := Input(ecs.World)
	app := App(ecs.World)
	if input == nil || app == nil {
		return
	}

	if input.Action(cfg.ActionExit).Pressed && !app.ExitRequested {
		RequestExit(ecs)
	}
	if input.Action(cfg.ActionToggleDebug).JustPressed {
		app.DrawColliders = !app.DrawColliders
		debugf("[app] Collider overlay: %v", app.DrawColliders)
	}
}
