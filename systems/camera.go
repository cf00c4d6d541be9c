package systems

import (
	"github.com/automoto/the-caverns/components"
	"github.com/automoto/the-caverns/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera keeps the camera centred on the player.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := tags.GameCamera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	camera.Position = components.Transform.Get(playerEntry).Position
}
