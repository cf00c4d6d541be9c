package systems

import (
	"github.com/automoto/the-caverns/components"
	cfg "github.com/automoto/the-caverns/config"
	"github.com/automoto/the-caverns/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayerMovement turns the movement keys into player velocity.
// Must run AFTER UpdateInput and BEFORE UpdatePhysics.
func UpdatePlayerMovement(ecs *ecs.ECS) {
	input := Input(ecs.World)
	if input == nil {
		return
	}
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		speed := components.Speed.Get(e).Value
		ApplyMovementInput(components.Velocity.Get(e), speed, input)
	})
}

// ApplyMovementInput sets velocity from held keys and zeroes an axis when
// one of its keys is released. A release wins over a key held on the same
// axis for that frame.
func ApplyMovementInput(vel *components.VelocityData, speed float64, input *components.InputData) {
	forward := input.Action(cfg.ActionForward)
	backward := input.Action(cfg.ActionBackward)
	left := input.Action(cfg.ActionLeft)
	right := input.Action(cfg.ActionRight)

	// Start moving
	if forward.Pressed {
		vel.Y = speed
	}
	if backward.Pressed {
		vel.Y = -speed
	}
	if left.Pressed {
		vel.X = -speed
	}
	if right.Pressed {
		vel.X = speed
	}

	// Stop moving
	if forward.JustReleased || backward.JustReleased {
		vel.Y = 0
	}
	if left.JustReleased || right.JustReleased {
		vel.X = 0
	}
}

// WhenPlaying wraps a gameplay system so it only runs in game on a Ready map.
func WhenPlaying(system func(*ecs.ECS)) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		if !IsPlaying(ecs.World) {
			return
		}
		system(ecs)
	}
}

// IsPlaying reports whether the menu is InGame and the map is Ready.
func IsPlaying(w donburi.World) bool {
	menu, mapState := MenuState(w), MapReadiness(w)
	if menu == nil || mapState == nil {
		return false
	}
	return menu.Current() == cfg.MenuInGame && mapState.Current() == cfg.MapReady
}
