package systems

import (
	"testing"

	"github.com/automoto/the-caverns/assets"
	"github.com/automoto/the-caverns/components"
	cfg "github.com/automoto/the-caverns/config"
	"github.com/automoto/the-caverns/maps"
	"github.com/automoto/the-caverns/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	testMapTiles     = 20*15 + 1 // full ground layer plus the spawn marker
	testMapWalls     = 20*2 + 13*2
	testMapObstacles = 2
)

func startTestMap(t *testing.T) *ecs.ECS {
	t.Helper()
	e := newTestECS(t, cfg.MenuInGame)
	StartGame(e)
	return e
}

func TestSetupMapSpawnsTiles(t *testing.T) {
	e := startTestMap(t)
	SetupMap(e)

	w := e.World
	if got := countTagged(w, tags.Tile); got != testMapTiles {
		t.Errorf("tiles = %d, want %d", got, testMapTiles)
	}
	if got := countTagged(w, tags.Wall); got != testMapWalls {
		t.Errorf("walls = %d, want %d", got, testMapWalls)
	}
	if got := countTagged(w, tags.Obstacle); got != testMapObstacles {
		t.Errorf("obstacles = %d, want %d", got, testMapObstacles)
	}
	if got := countTagged(w, tags.Backdrop); got != 1 {
		t.Errorf("backdrops = %d, want 1", got)
	}
	if got := countTagged(w, tags.PlayerSpawnTile); got != 1 {
		t.Errorf("spawn markers = %d, want 1", got)
	}

	next, pending := MapReadiness(w).Pending()
	if !pending || next != cfg.MapLoaded {
		t.Errorf("pending = (%v, %v), want (Loaded, true)", next, pending)
	}
	if ms := MapState(w); ms.Asset == nil || ms.Asset.Name != "Test Cave" {
		t.Errorf("asset = %+v, want Test Cave", ms.Asset)
	}
}

func TestSetupMapTilePositions(t *testing.T) {
	e := startTestMap(t)
	SetupMap(e)

	// Row 0 is the top of the TMX grid and the highest row in the world.
	tests := []struct {
		col, row int
		wantX    float64
		wantY    float64
		wantName string
	}{
		{0, 0, 0, 14 * 32, "dirt_ground"},
		{1, 0, 32, 14 * 32, "cave_dirt_wall_top"},
		{5, 5, 5 * 32, 9 * 32, "cave_dirt_floor"},
		{0, 14, 0, 0, "dirt_ground"},
		{19, 7, 19 * 32, 7 * 32, "cave_dirt_wall_right"},
	}

	for _, tt := range tests {
		found := false
		components.Tile.Each(e.World, func(e *donburi.Entry) {
			tile := components.Tile.Get(e)
			if tile.Col != tt.col || tile.Row != tt.row || tile.Name != tt.wantName {
				return
			}
			found = true
			pos := components.Transform.Get(e).Position
			if pos.X != tt.wantX || pos.Y != tt.wantY {
				t.Errorf("tile (%d,%d) at (%v,%v), want (%v,%v)",
					tt.col, tt.row, pos.X, pos.Y, tt.wantX, tt.wantY)
			}
			if s := components.Sprite.Get(e); s.Layer != cfg.LayerMap || s.Anchor != components.AnchorBottomLeft {
				t.Errorf("tile (%d,%d) sprite layer %v anchor %v", tt.col, tt.row, s.Layer, s.Anchor)
			}
		})
		if !found {
			t.Errorf("no %s tile at (%d,%d)", tt.wantName, tt.col, tt.row)
		}
	}
}

func TestSetupMapMovesPlayerToSpawn(t *testing.T) {
	e := startTestMap(t)
	SetupMap(e)

	player, ok := tags.Player.First(e.World)
	if !ok {
		t.Fatal("player not spawned")
	}
	// Spawn marker at column 2, row 12 of a 15 row map.
	pos := components.Transform.Get(player).Position
	if pos.X != 80 || pos.Y != 80 {
		t.Errorf("player at (%v,%v), want (80,80)", pos.X, pos.Y)
	}
	obj := components.Object.Get(player)
	if obj.X != 64 || obj.Y != 64 {
		t.Errorf("collider at (%v,%v), want (64,64)", obj.X, obj.Y)
	}
}

func TestSetupMapObstaclesAreFlipped(t *testing.T) {
	e := startTestMap(t)
	SetupMap(e)

	want := map[[2]float64]bool{
		{288, 256}: false, // boulder
		{464, 144}: false, // stalagmite
	}
	tags.Obstacle.Each(e.World, func(e *donburi.Entry) {
		pos := components.Transform.Get(e).Position
		key := [2]float64{pos.X, pos.Y}
		if _, ok := want[key]; !ok {
			t.Errorf("unexpected obstacle at (%v,%v)", pos.X, pos.Y)
			return
		}
		want[key] = true
	})
	for pos, seen := range want {
		if !seen {
			t.Errorf("no obstacle at %v", pos)
		}
	}
}

func TestSetupMapMissingAsset(t *testing.T) {
	e := newTestECS(t, cfg.MenuInGame)
	MapState(e.World).Handle = "levels/missing.tmx"

	SetupMap(e)

	if got := countTagged(e.World, tags.Tile); got != 0 {
		t.Errorf("tiles = %d, want 0", got)
	}
	next, pending := MapReadiness(e.World).Pending()
	if !pending || next != cfg.MapLoaded {
		t.Errorf("pending = (%v, %v), want (Loaded, true)", next, pending)
	}
}

func TestSetupMapMissingAtlasSkipsTiles(t *testing.T) {
	e := startTestMap(t)
	ms := MapState(e.World)
	if !ensureMapAsset(ms) {
		t.Fatal("embedded map failed to load")
	}
	// Drop the tileset image so no atlas is built.
	for _, ts := range ms.Asset.Map.Tilesets {
		ts.ImagePath = ""
	}

	SetupMap(e)

	if got := countTagged(e.World, tags.Tile); got != 0 {
		t.Errorf("tiles = %d, want 0", got)
	}
	if got := countTagged(e.World, tags.Backdrop); got != 1 {
		t.Errorf("backdrops = %d, want 1", got)
	}
}

func TestMapLifecycle(t *testing.T) {
	e := newTestECS(t, cfg.MenuInGame)
	RegisterStateHooks(e, &fakeScreens{})
	MapReadiness(e.World).Set(cfg.MapLoading)
	StartGame(e)

	steps := []cfg.MapReadinessState{cfg.MapLoading, cfg.MapLoaded, cfg.MapReady, cfg.MapReady}
	for i, want := range steps {
		tick(e)
		if got := MapReadiness(e.World).Current(); got != want {
			t.Fatalf("tick %d: state = %v, want %v", i, got, want)
		}
	}
	if got := countTagged(e.World, tags.Tile); got != testMapTiles {
		t.Errorf("tiles = %d, want %d", got, testMapTiles)
	}
	if !IsPlaying(e.World) {
		t.Error("IsPlaying = false on a Ready map in game")
	}
}

func TestUnloadMap(t *testing.T) {
	e := startTestMap(t)
	SetupMap(e)

	UnloadMap(e)

	if got := countTagged(e.World, tags.MapEntity); got != 0 {
		t.Errorf("map entities left = %d", got)
	}
	if got := len(space(e.World).Objects()); got != 1 {
		t.Errorf("colliders left = %d, want only the player", got)
	}
	if _, ok := tags.Player.First(e.World); !ok {
		t.Error("player should survive a map unload")
	}
	next, pending := MapReadiness(e.World).Pending()
	if !pending || next != cfg.MapUnloaded {
		t.Errorf("pending = (%v, %v), want (Unloaded, true)", next, pending)
	}
	if MapState(e.World).Asset != nil {
		t.Error("asset should be released")
	}
	if n := len(MapState(e.World).TextureMaps); n != 0 {
		t.Errorf("texture map entries left = %d", n)
	}
}

func TestUnloadMapStopsPlayer(t *testing.T) {
	e := startTestMap(t)
	SetupMap(e)
	player, _ := tags.Player.First(e.World)
	vel := components.Velocity.Get(player)
	vel.X, vel.Y = cfg.Player.Speed, -cfg.Player.Speed

	UnloadMap(e)

	if vel := components.Velocity.Get(player); vel.X != 0 || vel.Y != 0 {
		t.Errorf("velocity after unload = (%v,%v), want (0,0)", vel.X, vel.Y)
	}
}

func TestSetupMapRecordsTextureMaps(t *testing.T) {
	e := startTestMap(t)
	SetupMap(e)

	// Main Tileset is 5 columns of 32px tiles.
	tests := []struct {
		name string
		want components.TextureRef
	}{
		{"dirt_ground", components.TextureRef{Tileset: "Main Tileset", OffsetX: 0, OffsetY: 0}},
		{"player_spawn", components.TextureRef{Tileset: "Main Tileset", OffsetX: 64, OffsetY: 0}},
		{"cave_dirt_wall_top", components.TextureRef{Tileset: "Main Tileset", OffsetX: 32, OffsetY: 32}},
		{"cave_dirt_floor", components.TextureRef{Tileset: "Main Tileset", OffsetX: 32, OffsetY: 64}},
		{"cave_dirt_wall_bottom", components.TextureRef{Tileset: "Main Tileset", OffsetX: 32, OffsetY: 96}},
	}

	ms := MapState(e.World)
	if len(ms.TextureMaps) != 8 {
		t.Errorf("texture map entries = %d, want 8", len(ms.TextureMaps))
	}
	for _, tt := range tests {
		got, ok := ms.TextureMaps[tt.name]
		if !ok {
			t.Errorf("%s not recorded", tt.name)
			continue
		}
		if got != tt.want {
			t.Errorf("TextureMaps[%s] = %+v, want %+v", tt.name, got, tt.want)
		}
	}
	if _, ok := ms.Atlases["Main Tileset"]; !ok {
		t.Error("atlas not built")
	}
}

func TestLoadTilesetsWithoutColumns(t *testing.T) {
	e := newTestECS(t, cfg.MenuInGame)
	ms := MapState(e.World)
	ms.Asset = &assets.MapAsset{Map: &maps.TileMap{Tilesets: []*maps.Tileset{{
		Name:       "Strip",
		ImagePath:  "images/strip.png",
		TileWidth:  16,
		TileHeight: 16,
		TileNames:  map[uint32]string{7: "lonely"},
	}}}}

	loadTilesets(assets.FS(), ms)

	want := components.TextureRef{Tileset: "Strip"}
	if got := ms.TextureMaps["lonely"]; got != want {
		t.Errorf("TextureMaps[lonely] = %+v, want %+v", got, want)
	}
}

func TestRequestMapReload(t *testing.T) {
	e := newTestECS(t, cfg.MenuInGame)
	RegisterStateHooks(e, &fakeScreens{})

	if RequestMapReload(e) {
		t.Fatal("reload accepted while no map is loaded")
	}

	MapReadiness(e.World).Set(cfg.MapLoading)
	StartGame(e)
	for MapReadiness(e.World).Current() != cfg.MapReady {
		tick(e)
	}

	if !RequestMapReload(e) {
		t.Fatal("reload refused on a Ready map")
	}

	var seen []cfg.MapReadinessState
	for i := 0; i < 10 && (len(seen) == 0 || seen[len(seen)-1] != cfg.MapReady); i++ {
		tick(e)
		seen = append(seen, MapReadiness(e.World).Current())
	}
	want := []cfg.MapReadinessState{cfg.MapUnloading, cfg.MapUnloaded, cfg.MapLoading, cfg.MapLoaded, cfg.MapReady}
	if len(seen) != len(want) {
		t.Fatalf("states = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("states = %v, want %v", seen, want)
		}
	}
	if got := countTagged(e.World, tags.Tile); got != testMapTiles {
		t.Errorf("tiles after reload = %d, want %d", got, testMapTiles)
	}
	if got := countTagged(e.World, tags.Wall); got != testMapWalls {
		t.Errorf("walls after reload = %d, want %d", got, testMapWalls)
	}
}

type fakeChanges struct {
	changed [][]string
}

func (f *fakeChanges) Poll() ([]string, []error) {
	if len(f.changed) == 0 {
		return nil, nil
	}
	next := f.changed[0]
	f.changed = f.changed[1:]
	return next, nil
}

func TestMapReloadWaitsForReady(t *testing.T) {
	e := newTestECS(t, cfg.MenuInGame)
	RegisterStateHooks(e, &fakeScreens{})
	MapReadiness(e.World).Set(cfg.MapLoading)
	StartGame(e)

	src := &fakeChanges{changed: [][]string{{"levels/test.tmx"}}}
	reload := NewUpdateMapReload(src)

	// The change arrives before the map is Ready and is held.
	reload(e)
	if MapState(e.World).ReloadPending {
		t.Fatal("reload started before the map was Ready")
	}

	for MapReadiness(e.World).Current() != cfg.MapReady {
		tick(e)
	}
	reload(e)
	if next, pending := MapReadiness(e.World).Pending(); !pending || next != cfg.MapUnloading {
		t.Fatalf("pending = (%v, %v), want (Unloading, true)", next, pending)
	}
}
