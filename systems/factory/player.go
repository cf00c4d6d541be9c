package factory

import (
	"github.com/automoto/the-caverns/archetypes"
	"github.com/automoto/the-caverns/components"
	cfg "github.com/automoto/the-caverns/config"
	"github.com/automoto/the-caverns/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the player centred on (x, y) in world space.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	size := cfg.Player.Size
	half := cfg.Player.ColliderHalf
	components.Transform.SetValue(player, components.TransformData{
		Position: math.NewVec2(x, y),
	})
	components.Sprite.SetValue(player, components.SpriteData{
		Color:  cfg.Player.Color,
		Size:   math.NewVec2(size, size),
		Anchor: components.AnchorCenter,
		Layer:  cfg.LayerEntities,
	})
	components.Velocity.SetValue(player, components.VelocityData{})
	components.Speed.SetValue(player, components.SpeedData{Value: cfg.Player.Speed})
	components.Body.SetValue(player, components.BodyData{
		Kind:          components.BodyDynamic,
		GravityScale:  0,
		LinearDamping: cfg.Player.LinearDamping,
		LockRotation:  true,
	})

	obj := resolv.NewObject(x-half, y-half, half*2, half*2, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, half*2, half*2))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return player
}

// MovePlayer teleports the player so its centre sits on (x, y).
func MovePlayer(player *donburi.Entry, x, y float64) {
	components.Transform.Get(player).Position = math.NewVec2(x, y)
	obj := components.Object.Get(player)
	obj.X = x - obj.W/2
	obj.Y = y - obj.H/2
	obj.Update()
}
