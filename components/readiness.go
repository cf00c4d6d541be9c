package components

import (
	cfg "github.com/automoto/the-caverns/config"
	"github.com/automoto/the-caverns/states"
	"github.com/yohamta/donburi"
)

var (
	MapReadiness   = donburi.NewComponentType[states.Machine[cfg.MapReadinessState]]()
	LevelReadiness = donburi.NewComponentType[states.Machine[cfg.LevelReadinessState]]()
	MenuState      = donburi.NewComponentType[states.Machine[cfg.GameMenuState]]()
)
