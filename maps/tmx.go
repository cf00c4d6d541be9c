// Package maps parses Tiled maps into plain data the game systems can spawn
// from. It knows nothing about the ECS or the renderer.
package maps

import (
	"fmt"
	"io/fs"
	"path"

	"github.com/lafriks/go-tiled"
)

// Property names read from the TMX and TSX files.
const (
	PropName  = "name"
	PropSolid = "solid"
)

// TileMap is a parsed TMX map.
type TileMap struct {
	Name       string
	Path       string
	Width      int
	Height     int
	TileWidth  int
	TileHeight int
	Tilesets   []*Tileset
	// Layers holds the top-level tile layers, last layer first. Layers inside
	// groups belong to Levels only.
	Layers       []*Layer
	Levels       []*Level
	ObjectGroups map[string][]Object
}

// Tileset describes a tileset sheet and its per-tile properties.
type Tileset struct {
	Name       string
	ImagePath  string
	TileWidth  int
	TileHeight int
	Columns    int
	TileCount  int
	TileNames  map[uint32]string
	Solid      map[uint32]bool
}

// TileName returns the "name" property of tile id, or "".
func (ts *Tileset) TileName(id uint32) string {
	return ts.TileNames[id]
}

func (ts *Tileset) IsSolid(id uint32) bool {
	return ts.Solid[id]
}

// Rows is the number of atlas rows.
func (ts *Tileset) Rows() int {
	if ts.Columns == 0 {
		return 0
	}
	return (ts.TileCount + ts.Columns - 1) / ts.Columns
}

// Layer is a tile layer reduced to its non-empty cells.
type Layer struct {
	Name  string
	Tiles []Tile
}

// Tile is one non-empty cell. Col and Row are TMX coordinates (row 0 at top).
type Tile struct {
	Col     int
	Row     int
	ID      uint32
	Tileset *Tileset
}

// Level is a top-level Tiled group, or the whole map when it has no groups.
type Level struct {
	Name         string
	Layers       []*Layer
	ObjectGroups map[string][]Object
}

// Object is a Tiled object in TMX pixel coordinates (y down).
type Object struct {
	Name   string
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// LoadTMX parses the TMX file at tmxPath in fsys.
func LoadTMX(fsys fs.FS, tmxPath string) (*TileMap, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	return convert(levelMap, tmxPath)
}

func convert(levelMap *tiled.Map, tmxPath string) (*TileMap, error) {
	m := &TileMap{
		Path:         tmxPath,
		Width:        levelMap.Width,
		Height:       levelMap.Height,
		TileWidth:    levelMap.TileWidth,
		TileHeight:   levelMap.TileHeight,
		ObjectGroups: make(map[string][]Object),
	}
	if levelMap.Properties != nil {
		m.Name = levelMap.Properties.GetString(PropName)
	}

	byTiled := make(map[*tiled.Tileset]*Tileset, len(levelMap.Tilesets))
	for _, ts := range levelMap.Tilesets {
		t := convertTileset(ts, tmxPath)
		byTiled[ts] = t
		m.Tilesets = append(m.Tilesets, t)
	}

	var top []*Layer
	for _, l := range levelMap.Layers {
		layer, err := convertLayer(l, levelMap.Width, levelMap.Height, byTiled)
		if err != nil {
			return nil, err
		}
		top = append(top, layer)
	}
	collectObjects(m.ObjectGroups, levelMap.ObjectGroups)

	for _, g := range levelMap.Groups {
		level := &Level{Name: g.Name, ObjectGroups: make(map[string][]Object)}
		if err := flattenGroup(g, level, levelMap.Width, levelMap.Height, byTiled); err != nil {
			return nil, err
		}
		collectObjectMap(m.ObjectGroups, level.ObjectGroups)
		level.Layers = reversed(level.Layers)
		m.Levels = append(m.Levels, level)
	}

	m.Layers = reversed(top)
	if len(m.Levels) == 0 {
		m.Levels = []*Level{{
			Name:         m.Name,
			Layers:       m.Layers,
			ObjectGroups: m.ObjectGroups,
		}}
	}
	return m, nil
}

func convertTileset(ts *tiled.Tileset, tmxPath string) *Tileset {
	t := &Tileset{
		Name:       ts.Name,
		TileWidth:  ts.TileWidth,
		TileHeight: ts.TileHeight,
		Columns:    ts.Columns,
		TileCount:  ts.TileCount,
		TileNames:  make(map[uint32]string),
		Solid:      make(map[uint32]bool),
	}
	if ts.Image != nil && ts.Image.Source != "" {
		// External tilesets resolve their image relative to the .tsx file.
		t.ImagePath = path.Join(path.Dir(tmxPath), path.Dir(ts.Source), ts.Image.Source)
		if t.Columns == 0 && ts.TileWidth > 0 {
			t.Columns = ts.Image.Width / ts.TileWidth
		}
	}
	for _, tile := range ts.Tiles {
		if tile.Properties == nil {
			continue
		}
		if name := tile.Properties.GetString(PropName); name != "" {
			t.TileNames[tile.ID] = name
		}
		if tile.Properties.GetBool(PropSolid) {
			t.Solid[tile.ID] = true
		}
	}
	return t
}

func convertLayer(l *tiled.Layer, width, height int, byTiled map[*tiled.Tileset]*Tileset) (*Layer, error) {
	layer := &Layer{Name: l.Name}
	if len(l.Tiles) < width*height {
		return nil, fmt.Errorf("layer %s: %d cells, want %d", l.Name, len(l.Tiles), width*height)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			tile := l.Tiles[y*width+x]
			if tile == nil || tile.IsNil() {
				continue
			}
			layer.Tiles = append(layer.Tiles, Tile{
				Col:     x,
				Row:     y,
				ID:      tile.ID,
				Tileset: byTiled[tile.Tileset],
			})
		}
	}
	return layer, nil
}

func flattenGroup(g *tiled.Group, level *Level, width, height int, byTiled map[*tiled.Tileset]*Tileset) error {
	for _, l := range g.Layers {
		layer, err := convertLayer(l, width, height, byTiled)
		if err != nil {
			return fmt.Errorf("group %s: %w", g.Name, err)
		}
		level.Layers = append(level.Layers, layer)
	}
	collectObjects(level.ObjectGroups, g.ObjectGroups)
	for _, child := range g.Groups {
		if err := flattenGroup(child, level, width, height, byTiled); err != nil {
			return err
		}
	}
	return nil
}

func collectObjects(dst map[string][]Object, groups []*tiled.ObjectGroup) {
	for _, og := range groups {
		for _, o := range og.Objects {
			dst[og.Name] = append(dst[og.Name], Object{
				Name:   o.Name,
				X:      o.X,
				Y:      o.Y,
				Width:  o.Width,
				Height: o.Height,
			})
		}
	}
}

func collectObjectMap(dst, src map[string][]Object) {
	for name, objs := range src {
		dst[name] = append(dst[name], objs...)
	}
}

func reversed(layers []*Layer) []*Layer {
	out := make([]*Layer, len(layers))
	for i, l := range layers {
		out[len(layers)-1-i] = l
	}
	return out
}
