package systems

import (
	"log"

	"github.com/automoto/the-caverns/assets"
	"github.com/automoto/the-caverns/components"
	cfg "github.com/automoto/the-caverns/config"
	"github.com/automoto/the-caverns/systems/factory"
	"github.com/automoto/the-caverns/tags"
	"github.com/yohamta/donburi/ecs"
)

// LoadLevel spawns the tiles of MapState.CurrentLevel. Levels are the map's
// top-level groups. Tiles are centre anchored at (col, -row) meters.
func LoadLevel(ecs *ecs.ECS) {
	debugf("[level] Loading level")

	ms := MapState(ecs.World)
	if !ensureMapAsset(ms) {
		log.Printf("[level] Warning: map asset is missing")
		return
	}

	levels := ms.Asset.Map.Levels
	if ms.CurrentLevel < 0 || ms.CurrentLevel >= len(levels) {
		log.Printf("[level] Warning: no level %d in map %s", ms.CurrentLevel, ms.Asset.Name)
		return
	}
	level := levels[ms.CurrentLevel]
	if len(level.Layers) == 0 {
		log.Printf("[level] Warning: no layers for level %d", ms.CurrentLevel)
		return
	}

	loadTilesets(assets.FS(), ms)

	for _, layer := range level.Layers {
		for _, tile := range layer.Tiles {
			if tile.Tileset == nil {
				continue
			}
			atlas, ok := ms.Atlases[tile.Tileset.Name]
			if !ok {
				log.Printf("[level] Error: texture atlas for tileset %s is missing", tile.Tileset.Name)
				continue
			}

			x := float64(tile.Col) * cfg.PixelsPerMeter
			y := -float64(tile.Row) * cfg.PixelsPerMeter
			entry := factory.CreateLevelTile(ecs, factory.TileSpec{
				Tile: components.TileData{
					Tileset: tile.Tileset.Name,
					Index:   int(tile.ID),
					Col:     tile.Col,
					Row:     tile.Row,
					Name:    tile.Tileset.TileName(tile.ID),
				},
				Image:  atlas.Frame(int(tile.ID)),
				X:      x,
				Y:      y,
				Size:   cfg.PixelsPerMeter,
				Anchor: components.AnchorCenter,
			})

			if tile.ID == cfg.Map.SpawnTileID {
				entry.AddComponent(tags.PlayerSpawnTile)
				if player, ok := tags.Player.First(ecs.World); ok {
					factory.MovePlayer(player, x, y)
				}
			}
		}
	}

	LevelReadiness(ecs.World).Set(cfg.LevelLoaded)
}

// PromoteLoadedLevel moves a loaded level to Ready on the following tick.
func PromoteLoadedLevel(ecs *ecs.ECS) {
	m := LevelReadiness(ecs.World)
	if m == nil || m.Current() != cfg.LevelLoaded {
		return
	}
	if _, pending := m.Pending(); pending {
		return
	}
	m.Set(cfg.LevelReady)
}

// UnloadLevel despawns the level loader's tiles and resets the level machine.
func UnloadLevel(ecs *ecs.ECS) {
	removeTagged(ecs, tags.LevelEntity)
	if m := LevelReadiness(ecs.World); m != nil {
		m.Reset(cfg.LevelUnloaded)
	}
}
