package ui

import (
	"github.com/automoto/the-caverns/components"
	"github.com/automoto/the-caverns/systems"
	"github.com/yohamta/donburi/ecs"
)

// Screens builds the menu screens with their buttons routed to the menu
// systems.
type Screens struct{}

var _ systems.ScreenBuilder = Screens{}

func (Screens) StartScreen(e *ecs.ECS) components.Screen {
	return NewStartScreen(
		func() { systems.PressMenuButton(e, systems.ButtonStart) },
		func() { systems.PressMenuButton(e, systems.ButtonQuit) },
	)
}

func (Screens) StorylineScreen(e *ecs.ECS) components.Screen {
	return NewStorylineScreen(
		func() { systems.PressMenuButton(e, systems.ButtonContinue) },
	)
}
