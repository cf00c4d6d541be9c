package factory

import (
	"github.com/automoto/the-caverns/archetypes"
	"github.com/automoto/the-caverns/components"
	cfg "github.com/automoto/the-caverns/config"
	"github.com/automoto/the-caverns/states"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateResources spawns the singleton resource entity. The menu machine
// starts in menu; both readiness machines start Unloaded.
func CreateResources(ecs *ecs.ECS, menu cfg.GameMenuState, width, height int) *donburi.Entry {
	res := archetypes.Resources.Spawn(ecs)
	components.MapState.Set(res, components.NewMapStateData())
	components.MapReadiness.Set(res, states.NewMachine(cfg.MapUnloaded))
	components.LevelReadiness.Set(res, states.NewMachine(cfg.LevelUnloaded))
	components.MenuState.Set(res, states.NewMachine(menu))
	components.App.SetValue(res, components.AppData{
		Width:         width,
		Height:        height,
		DrawColliders: cfg.Debug.DrawColliders,
	})
	return res
}
