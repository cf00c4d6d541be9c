// Package assets owns the game's asset filesystem: embedded maps, tilesets
// and images, optionally replaced by a directory on disk.
package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"io/fs"
	"os"

	"github.com/automoto/the-caverns/config"
	"github.com/automoto/the-caverns/maps"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

//go:embed all:levels all:images
var assetFS embed.FS

var overrideDir string

// SetDir makes FS serve files from dir instead of the embedded copy.
// An empty dir restores the embedded files.
func SetDir(dir string) {
	overrideDir = dir
}

// Dir returns the on-disk asset directory, or "" when embedded assets are used.
func Dir() string {
	return overrideDir
}

// FS returns the active asset filesystem.
func FS() fs.FS {
	if overrideDir != "" {
		return os.DirFS(overrideDir)
	}
	return assetFS
}

// MapAsset is a loaded map plus the name shown in logs.
type MapAsset struct {
	Name string
	Map  *maps.TileMap
}

// LoadMapAsset parses the TMX at path. The map's "name" property names the
// asset; maps without one are called config.Map.DefaultName.
func LoadMapAsset(fsys fs.FS, path string) (*MapAsset, error) {
	m, err := maps.LoadTMX(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("load map asset: %w", err)
	}
	name := m.Name
	if name == "" {
		name = config.Map.DefaultName
	}
	return &MapAsset{Name: name, Map: m}, nil
}

// TilesetImage decodes the image sheet of ts.
func TilesetImage(fsys fs.FS, ts *maps.Tileset) (*ebiten.Image, error) {
	if ts.ImagePath == "" {
		return nil, fmt.Errorf("tileset %s has no image", ts.Name)
	}
	imgBytes, err := fs.ReadFile(fsys, ts.ImagePath)
	if err != nil {
		return nil, fmt.Errorf("read tileset image %s: %w", ts.ImagePath, err)
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("decode tileset image %s: %w", ts.ImagePath, err)
	}
	return img, nil
}

// Atlas slices a tileset sheet into one frame per tile id.
type Atlas struct {
	Image  *ebiten.Image
	Frames []image.Rectangle

	cache map[int]*ebiten.Image
}

// NewAtlas builds the frame grid for ts over img: columns x rows cells of
// tile size, no padding and no offset.
func NewAtlas(img *ebiten.Image, ts *maps.Tileset) *Atlas {
	return &Atlas{
		Image:  img,
		Frames: AtlasFrames(ts),
		cache:  make(map[int]*ebiten.Image),
	}
}

// AtlasFrames returns the source rectangle of every tile id in ts, row-major.
func AtlasFrames(ts *maps.Tileset) []image.Rectangle {
	rows := ts.Rows()
	frames := make([]image.Rectangle, 0, ts.Columns*rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < ts.Columns; x++ {
			if len(frames) == ts.TileCount {
				return frames
			}
			frames = append(frames, image.Rect(
				x*ts.TileWidth, y*ts.TileHeight,
				(x+1)*ts.TileWidth, (y+1)*ts.TileHeight,
			))
		}
	}
	return frames
}

// Frame returns the sub-image for tile index i, or nil when out of range.
func (a *Atlas) Frame(i int) *ebiten.Image {
	if i < 0 || i >= len(a.Frames) || a.Image == nil {
		return nil
	}
	if img, ok := a.cache[i]; ok {
		return img
	}
	frame := a.Image.SubImage(a.Frames[i]).(*ebiten.Image)
	a.cache[i] = frame
	return frame
}
