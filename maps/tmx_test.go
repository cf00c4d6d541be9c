package maps

import (
	"os"
	"testing"
	"testing/fstest"
)

const testTSX = `<?xml version="1.0" encoding="UTF-8"?>
<tileset version="1.10" name="Rocks" tilewidth="32" tileheight="32" tilecount="4" columns="2">
 <image source="../images/rocks.png" width="64" height="64"/>
 <tile id="1">
  <properties>
   <property name="name" value="player_spawn"/>
  </properties>
 </tile>
 <tile id="3">
  <properties>
   <property name="name" value="wall"/>
   <property name="solid" type="bool" value="true"/>
  </properties>
 </tile>
</tileset>
`

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="3" height="2" tilewidth="32" tileheight="32" infinite="0">
 <properties>
  <property name="name" value="Tiny"/>
 </properties>
 <tileset firstgid="1" source="rocks.tsx"/>
 <layer id="1" name="Floor" width="3" height="2">
  <data encoding="csv">
1,0,4,
0,1,0
</data>
 </layer>
 <layer id="2" name="Markers" width="3" height="2">
  <data encoding="csv">
0,0,0,
2,0,0
</data>
 </layer>
 <objectgroup id="3" name="Obstacles">
  <object id="1" name="rock" x="32" y="0" width="32" height="16"/>
 </objectgroup>
</map>
`

const groupedTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="1" tilewidth="32" tileheight="32" infinite="0">
 <tileset firstgid="1" source="rocks.tsx"/>
 <group id="1" name="Level_0">
  <layer id="2" name="Tiles" width="2" height="1">
   <data encoding="csv">
1,2
</data>
  </layer>
 </group>
 <group id="3" name="Level_1">
  <layer id="4" name="Tiles" width="2" height="1">
   <data encoding="csv">
0,4
</data>
  </layer>
 </group>
</map>
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"levels/tiny.tmx":    {Data: []byte(testTMX)},
		"levels/grouped.tmx": {Data: []byte(groupedTMX)},
		"levels/rocks.tsx":   {Data: []byte(testTSX)},
	}
}

func TestLoadTMX(t *testing.T) {
	m, err := LoadTMX(testFS(), "levels/tiny.tmx")
	if err != nil {
		t.Fatalf("LoadTMX: %v", err)
	}
	if m.Name != "Tiny" || m.Width != 3 || m.Height != 2 || m.TileWidth != 32 {
		t.Fatalf("unexpected header: %+v", m)
	}
	if len(m.Tilesets) != 1 {
		t.Fatalf("got %d tilesets, want 1", len(m.Tilesets))
	}
	ts := m.Tilesets[0]
	if ts.Name != "Rocks" || ts.Columns != 2 || ts.TileCount != 4 || ts.Rows() != 2 {
		t.Fatalf("unexpected tileset: %+v", ts)
	}
	if ts.ImagePath != "images/rocks.png" {
		t.Fatalf("image path = %q, want images/rocks.png", ts.ImagePath)
	}
	if ts.TileName(1) != "player_spawn" || !ts.IsSolid(3) || ts.IsSolid(0) {
		t.Fatal("tile properties not parsed")
	}

	if len(m.Layers) != 2 {
		t.Fatalf("got %d layers, want 2", len(m.Layers))
	}
	if m.Layers[0].Name != "Markers" || m.Layers[1].Name != "Floor" {
		t.Fatalf("layers not reversed: %s, %s", m.Layers[0].Name, m.Layers[1].Name)
	}
	floor := m.Layers[1]
	if len(floor.Tiles) != 3 {
		t.Fatalf("floor has %d tiles, want 3", len(floor.Tiles))
	}
	want := []Tile{{Col: 0, Row: 0, ID: 0}, {Col: 2, Row: 0, ID: 3}, {Col: 1, Row: 1, ID: 0}}
	for i, w := range want {
		got := floor.Tiles[i]
		if got.Col != w.Col || got.Row != w.Row || got.ID != w.ID || got.Tileset != ts {
			t.Errorf("tile %d = %+v, want %+v", i, got, w)
		}
	}

	obstacles := m.ObjectGroups["Obstacles"]
	if len(obstacles) != 1 || obstacles[0].Width != 32 || obstacles[0].X != 32 {
		t.Fatalf("unexpected obstacles: %+v", obstacles)
	}
	if len(m.Levels) != 1 || len(m.Levels[0].Layers) != 2 {
		t.Fatal("map without groups should be a single level")
	}
}

func TestLoadTMXGroupsAreLevels(t *testing.T) {
	m, err := LoadTMX(testFS(), "levels/grouped.tmx")
	if err != nil {
		t.Fatalf("LoadTMX: %v", err)
	}
	if m.Name != "" {
		t.Fatalf("name = %q, want empty", m.Name)
	}
	if len(m.Levels) != 2 {
		t.Fatalf("got %d levels, want 2", len(m.Levels))
	}
	if m.Levels[0].Name != "Level_0" || len(m.Levels[0].Layers[0].Tiles) != 2 {
		t.Fatalf("unexpected level 0: %+v", m.Levels[0])
	}
	if len(m.Levels[1].Layers[0].Tiles) != 1 {
		t.Fatalf("unexpected level 1 tiles: %+v", m.Levels[1].Layers[0].Tiles)
	}
	if len(m.Layers) != 0 {
		t.Fatalf("group layers leaked into the top-level layers: %d", len(m.Layers))
	}
}

func TestLoadTMXErrors(t *testing.T) {
	fsys := testFS()
	fsys["levels/broken.tmx"] = &fstest.MapFile{Data: []byte("<map")}
	for _, p := range []string{"levels/missing.tmx", "levels/broken.tmx"} {
		if _, err := LoadTMX(fsys, p); err == nil {
			t.Errorf("LoadTMX(%s): expected error", p)
		}
	}
}

func TestLoadShippedMap(t *testing.T) {
	m, err := LoadTMX(os.DirFS("../assets"), "levels/test.tmx")
	if err != nil {
		t.Fatalf("LoadTMX: %v", err)
	}
	if m.Width != 20 || m.Height != 15 {
		t.Fatalf("size = %dx%d, want 20x15", m.Width, m.Height)
	}
	if m.Tilesets[0].ImagePath != "images/tileset.png" {
		t.Fatalf("image path = %q", m.Tilesets[0].ImagePath)
	}
	spawns := 0
	for _, l := range m.Layers {
		for _, tile := range l.Tiles {
			if tile.Tileset.TileName(tile.ID) == "player_spawn" {
				spawns++
			}
		}
	}
	if spawns != 1 {
		t.Fatalf("got %d spawn tiles, want 1", spawns)
	}
}
