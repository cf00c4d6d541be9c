package systems

import (
	"github.com/automoto/the-caverns/components"
	cfg "github.com/automoto/the-caverns/config"
	"github.com/automoto/the-caverns/states"
	"github.com/yohamta/donburi"
)

func resources(w donburi.World) (*donburi.Entry, bool) {
	return components.MapState.First(w)
}

// MapState returns the map resource, or nil before resources exist.
func MapState(w donburi.World) *components.MapStateData {
	res, ok := resources(w)
	if !ok {
		return nil
	}
	return components.MapState.Get(res)
}

func MapReadiness(w donburi.World) *states.Machine[cfg.MapReadinessState] {
	res, ok := resources(w)
	if !ok {
		return nil
	}
	return components.MapReadiness.Get(res)
}

func LevelReadiness(w donburi.World) *states.Machine[cfg.LevelReadinessState] {
	res, ok := resources(w)
	if !ok {
		return nil
	}
	return components.LevelReadiness.Get(res)
}

func MenuState(w donburi.World) *states.Machine[cfg.GameMenuState] {
	res, ok := resources(w)
	if !ok {
		return nil
	}
	return components.MenuState.Get(res)
}

func App(w donburi.World) *components.AppData {
	res, ok := resources(w)
	if !ok {
		return nil
	}
	return components.App.Get(res)
}

// Input returns the merged input state for this frame.
func Input(w donburi.World) *components.InputData {
	res, ok := resources(w)
	if !ok {
		return nil
	}
	return components.Input.Get(res)
}
