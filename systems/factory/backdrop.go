package factory

import (
	"github.com/automoto/the-caverns/archetypes"
	"github.com/automoto/the-caverns/components"
	cfg "github.com/automoto/the-caverns/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateBackdrop spawns the plain rectangle drawn behind the map tiles.
func CreateBackdrop(ecs *ecs.ECS, w, h float64) *donburi.Entry {
	backdrop := archetypes.Backdrop.Spawn(ecs)
	components.Transform.SetValue(backdrop, components.TransformData{})
	components.Sprite.SetValue(backdrop, components.SpriteData{
		Color:  cfg.Map.BackdropColor,
		Size:   math.NewVec2(w, h),
		Anchor: components.AnchorBottomLeft,
		Layer:  cfg.LayerBase,
	})
	return backdrop
}
