package systems

import (
	"io/fs"
	"log"

	"github.com/automoto/the-caverns/assets"
	"github.com/automoto/the-caverns/components"
	cfg "github.com/automoto/the-caverns/config"
	"github.com/automoto/the-caverns/maps"
	"github.com/automoto/the-caverns/systems/factory"
	"github.com/automoto/the-caverns/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// loadTilesetImage is swapped out in tests, which run without a graphics
// context.
var loadTilesetImage = assets.TilesetImage

// SetupMap turns the requested map into entities. It runs when the map
// machine enters Loading and always queues Loaded, even when it bails out.
func SetupMap(ecs *ecs.ECS) {
	MapReadiness(ecs.World).Set(cfg.MapLoaded)

	ms := MapState(ecs.World)
	if !ensureMapAsset(ms) {
		log.Printf("[map] Warning: MapReadinessState is Loading yet the map asset %q is missing", ms.Handle)
		return
	}

	m := ms.Asset.Map
	log.Printf("[map] Loading map %s", ms.Asset.Name)

	loadTilesets(assets.FS(), ms)
	debugf("[map] Loaded %d texture atlases", len(ms.Atlases))

	factory.ResizeSpace(ecs, m.Width*int(cfg.PixelsPerMeter), m.Height*int(cfg.PixelsPerMeter), int(cfg.PixelsPerMeter))

	spawned := 0
	var spawn *donburi.Entry
	for _, layer := range m.Layers {
		for _, tile := range layer.Tiles {
			entry, ok := spawnMapTile(ecs, ms, m, tile)
			if !ok {
				continue
			}
			spawned++
			if entry.HasComponent(tags.PlayerSpawnTile) && spawn == nil {
				spawn = entry
			}
		}
	}
	debugf("[map] Spawned %d tiles", spawned)

	if spawn != nil {
		pos := components.Transform.Get(spawn).Position
		half := cfg.PixelsPerMeter / 2
		if player, ok := tags.Player.First(ecs.World); ok {
			factory.MovePlayer(player, pos.X+half, pos.Y+half)
		}
	}

	factory.CreateBackdrop(ecs,
		float64(m.Width*m.TileWidth),
		float64(m.Height*m.TileHeight),
	)
	spawnObstacles(ecs, m)
}

// ensureMapAsset parses the map named by the handle unless it is already
// loaded.
func ensureMapAsset(ms *components.MapStateData) bool {
	if ms == nil {
		return false
	}
	if ms.Asset != nil {
		return true
	}
	if ms.Handle == "" {
		return false
	}
	asset, err := assets.LoadMapAsset(assets.FS(), ms.Handle)
	if err != nil {
		log.Printf("[map] Warning: %v", err)
		return false
	}
	ms.Asset = asset
	return true
}

// loadTilesets records each tileset's texture and atlas, then the location
// of every named tile.
func loadTilesets(fsys fs.FS, ms *components.MapStateData) {
	for _, ts := range ms.Asset.Map.Tilesets {
		if ts.ImagePath == "" {
			continue
		}
		debugf("[map] Loading tileset %s", ts.Name)

		if _, ok := ms.Textures[ts.Name]; !ok {
			img, err := loadTilesetImage(fsys, ts)
			if err != nil {
				log.Printf("[map] Warning: %v", err)
				continue
			}
			ms.Textures[ts.Name] = img
		}
		if _, ok := ms.Atlases[ts.Name]; !ok {
			ms.Atlases[ts.Name] = assets.NewAtlas(ms.Textures[ts.Name], ts)
		}

		for id, name := range ts.TileNames {
			col, row := 0, 0
			if ts.Columns > 0 {
				col, row = int(id)%ts.Columns, int(id)/ts.Columns
			}
			ms.TextureMaps[name] = components.TextureRef{
				Tileset: ts.Name,
				OffsetX: col * ts.TileWidth,
				OffsetY: row * ts.TileHeight,
			}
		}
	}
}

func spawnMapTile(ecs *ecs.ECS, ms *components.MapStateData, m *maps.TileMap, tile maps.Tile) (*donburi.Entry, bool) {
	if tile.Tileset == nil {
		log.Printf("[map] Error: tile at %d,%d has no tileset", tile.Col, tile.Row)
		return nil, false
	}
	atlas, ok := ms.Atlases[tile.Tileset.Name]
	if !ok {
		log.Printf("[map] Error: texture atlas for tileset %s is missing", tile.Tileset.Name)
		return nil, false
	}

	x, y := maps.TileWorldPosition(tile.Col, tile.Row, m.Height)
	name := tile.Tileset.TileName(tile.ID)
	entry := factory.CreateTile(ecs, factory.TileSpec{
		Tile: components.TileData{
			Tileset: tile.Tileset.Name,
			Index:   int(tile.ID),
			Col:     tile.Col,
			Row:     tile.Row,
			Name:    name,
		},
		Image:  atlas.Frame(int(tile.ID)),
		X:      x,
		Y:      y,
		Size:   cfg.PixelsPerMeter,
		Anchor: components.AnchorBottomLeft,
	})

	if tile.Tileset.IsSolid(tile.ID) {
		factory.CreateWall(ecs, x, y, cfg.PixelsPerMeter, cfg.PixelsPerMeter)
	}
	if name == cfg.Map.SpawnTileName {
		entry.AddComponent(tags.PlayerSpawnTile)
	}
	return entry, true
}

// spawnObstacles turns the obstacle object group into fixed colliders. TMX
// objects are in y-down map pixels; they are flipped and scaled to world space.
func spawnObstacles(ecs *ecs.ECS, m *maps.TileMap) {
	if m.TileWidth == 0 || m.TileHeight == 0 {
		return
	}
	sx := cfg.PixelsPerMeter / float64(m.TileWidth)
	sy := cfg.PixelsPerMeter / float64(m.TileHeight)
	mapHeight := float64(m.Height * m.TileHeight)

	for _, o := range m.ObjectGroups[cfg.Map.ObstacleGroup] {
		if o.Width <= 0 || o.Height <= 0 {
			continue
		}
		w, h := o.Width*sx, o.Height*sy
		x := o.X*sx + w/2
		y := (mapHeight-o.Y-o.Height)*sy + h/2
		factory.CreateObstacle(ecs, cfg.Map.ObstacleColor, x, y, w, h)
	}
}

// PromoteLoadedMap moves a freshly loaded map to Ready one tick after its
// entities were spawned.
func PromoteLoadedMap(ecs *ecs.ECS) {
	m := MapReadiness(ecs.World)
	if m == nil || m.Current() != cfg.MapLoaded {
		return
	}
	if _, pending := m.Pending(); pending {
		return
	}
	m.Set(cfg.MapReady)
	log.Printf("[map] Map ready")
}

// UnloadMap despawns every map entity, zeroes the player's velocity and
// queues Unloaded.
func UnloadMap(ecs *ecs.ECS) {
	removeTagged(ecs, tags.MapEntity)
	UnloadLevel(ecs)
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		components.Velocity.SetValue(e, components.VelocityData{})
	})

	ms := MapState(ecs.World)
	ms.Asset = nil
	ms.Textures = make(map[string]*ebiten.Image)
	ms.Atlases = make(map[string]*assets.Atlas)
	ms.TextureMaps = make(map[string]components.TextureRef)

	MapReadiness(ecs.World).Set(cfg.MapUnloaded)
	log.Printf("[map] Map unloaded")
}

// RequestMapReload reloads the current map from its handle. Only a Ready map
// can be reloaded; the request is dropped otherwise.
func RequestMapReload(ecs *ecs.ECS) bool {
	m := MapReadiness(ecs.World)
	ms := MapState(ecs.World)
	if m == nil || ms == nil || m.Current() != cfg.MapReady {
		return false
	}
	ms.ReloadPending = true
	m.Set(cfg.MapUnloading)
	return true
}

func resumePendingReload(ecs *ecs.ECS) {
	ms := MapState(ecs.World)
	if ms == nil || !ms.ReloadPending {
		return
	}
	ms.ReloadPending = false
	MapReadiness(ecs.World).Set(cfg.MapLoading)
}
