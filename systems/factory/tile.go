package factory

import (
	"github.com/automoto/the-caverns/archetypes"
	"github.com/automoto/the-caverns/components"
	cfg "github.com/automoto/the-caverns/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// TileSpec describes one tile sprite to spawn.
type TileSpec struct {
	Tile   components.TileData
	Image  *ebiten.Image
	X, Y   float64
	Size   float64
	Anchor components.Anchor
}

// CreateTile spawns a map tile on the MAP draw layer.
func CreateTile(ecs *ecs.ECS, spec TileSpec) *donburi.Entry {
	return spawnTile(archetypes.Tile.Spawn(ecs), spec)
}

// CreateLevelTile spawns a tile owned by the level loader.
func CreateLevelTile(ecs *ecs.ECS, spec TileSpec) *donburi.Entry {
	return spawnTile(archetypes.LevelTile.Spawn(ecs), spec)
}

func spawnTile(tile *donburi.Entry, spec TileSpec) *donburi.Entry {
	components.Tile.SetValue(tile, spec.Tile)
	components.Transform.SetValue(tile, components.TransformData{
		Position: math.NewVec2(spec.X, spec.Y),
	})
	components.Sprite.SetValue(tile, components.SpriteData{
		Image:  spec.Image,
		Color:  cfg.White,
		Size:   math.NewVec2(spec.Size, spec.Size),
		Anchor: spec.Anchor,
		Layer:  cfg.LayerMap,
	})
	return tile
}
