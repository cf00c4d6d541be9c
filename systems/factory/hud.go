package factory

import (
	"github.com/automoto/the-caverns/archetypes"
	"github.com/automoto/the-caverns/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFPSText spawns the frame counter with its placeholder text.
func CreateFPSText(ecs *ecs.ECS) *donburi.Entry {
	fps := archetypes.FPSText.Spawn(ecs)
	components.FPSText.SetValue(fps, components.FPSTextData{Text: "FPS: -1"})
	return fps
}

// CreateMenuRoot spawns the root node of a menu screen.
func CreateMenuRoot(ecs *ecs.ECS, screen components.Screen) *donburi.Entry {
	root := archetypes.MenuRoot.Spawn(ecs)
	components.MenuRoot.SetValue(root, components.MenuRootData{Screen: screen})
	return root
}
