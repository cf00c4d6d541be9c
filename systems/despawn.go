package systems

import (
	"github.com/automoto/the-caverns/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func space(w donburi.World) *resolv.Space {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	return components.Space.Get(spaceEntry)
}

// removeTagged despawns every entity carrying tag, taking colliders out of
// the collision space first. It returns the number of entities removed.
func removeTagged(ecs *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) int {
	var entries []*donburi.Entry
	tag.Each(ecs.World, func(e *donburi.Entry) {
		entries = append(entries, e)
	})

	sp := space(ecs.World)
	for _, e := range entries {
		if sp != nil && e.HasComponent(components.Object) {
			if obj := components.Object.Get(e); obj.Object != nil {
				sp.Remove(obj.Object)
			}
		}
		ecs.World.Remove(e.Entity())
	}
	return len(entries)
}
