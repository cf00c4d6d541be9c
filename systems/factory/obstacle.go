package factory

import (
	"image/color"

	"github.com/automoto/the-caverns/archetypes"
	"github.com/automoto/the-caverns/components"
	cfg "github.com/automoto/the-caverns/config"
	"github.com/automoto/the-caverns/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateObstacle spawns a fixed, coloured block centred on (x, y).
func CreateObstacle(ecs *ecs.ECS, clr color.RGBA, x, y, w, h float64) *donburi.Entry {
	obstacle := archetypes.Obstacle.Spawn(ecs)

	components.Transform.SetValue(obstacle, components.TransformData{
		Position: math.NewVec2(x, y),
	})
	components.Sprite.SetValue(obstacle, components.SpriteData{
		Color:  clr,
		Size:   math.NewVec2(w, h),
		Anchor: components.AnchorCenter,
		Layer:  cfg.LayerEntities,
	})
	components.Body.SetValue(obstacle, components.BodyData{Kind: components.BodyStatic})

	obj := resolv.NewObject(x-w/2, y-h/2, w, h, tags.ResolvSolid, tags.ResolvObstacle)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = obstacle
	components.Object.SetValue(obstacle, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return obstacle
}
