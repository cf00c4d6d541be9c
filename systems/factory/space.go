package factory

import (
	"github.com/automoto/the-caverns/archetypes"
	"github.com/automoto/the-caverns/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// ResizeSpace replaces the collision space with one of at least width x
// height pixels and moves every existing collider into it.
func ResizeSpace(ecs *ecs.ECS, width, height, cellSize int) *resolv.Space {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		spaceEntry = CreateSpace(ecs, width, height, cellSize, cellSize)
		return components.Space.Get(spaceEntry)
	}

	old := components.Space.Get(spaceEntry)
	objects := old.Objects()
	old.Remove(objects...)

	components.Space.Set(spaceEntry, resolv.NewSpace(width, height, cellSize, cellSize))
	space := components.Space.Get(spaceEntry)
	space.Add(objects...)
	return space
}
