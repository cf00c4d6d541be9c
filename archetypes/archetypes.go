package archetypes

import (
	"github.com/automoto/the-caverns/components"
	cfg "github.com/automoto/the-caverns/config"
	"github.com/automoto/the-caverns/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	// Resources holds the world's singleton state: map resource and the
	// readiness machines.
	Resources = newArchetype(
		components.MapState,
		components.MapReadiness,
		components.LevelReadiness,
		components.MenuState,
		components.App,
		components.Input,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		tags.GameCamera,
		components.Camera,
	)
	Player = newArchetype(
		tags.Player,
		components.Transform,
		components.Sprite,
		components.Velocity,
		components.Speed,
		components.Body,
		components.Object,
	)
	Tile = newArchetype(
		tags.Tile,
		tags.MapEntity,
		components.Tile,
		components.Transform,
		components.Sprite,
	)
	LevelTile = newArchetype(
		tags.Tile,
		tags.LevelEntity,
		components.Tile,
		components.Transform,
		components.Sprite,
	)
	Wall = newArchetype(
		tags.Wall,
		tags.MapEntity,
		components.Object,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		tags.MapEntity,
		components.Transform,
		components.Sprite,
		components.Body,
		components.Object,
	)
	Backdrop = newArchetype(
		tags.Backdrop,
		tags.MapEntity,
		components.Transform,
		components.Sprite,
	)
	MenuRoot = newArchetype(
		tags.MenuRoot,
		components.MenuRoot,
	)
	FPSText = newArchetype(
		tags.FPSText,
		components.FPSText,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
