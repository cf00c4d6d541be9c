package components

import (
	"github.com/automoto/the-caverns/assets"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// TextureRef locates a named tile inside a tileset sheet.
type TextureRef struct {
	Tileset string
	OffsetX int
	OffsetY int
}

// MapStateData is the loaded map resource. Handle is set when a map is
// requested; Asset is filled once the map has been parsed.
type MapStateData struct {
	Handle       string
	Asset        *assets.MapAsset
	Textures     map[string]*ebiten.Image
	Atlases      map[string]*assets.Atlas
	TextureMaps  map[string]TextureRef
	CurrentLevel int
	// ReloadPending asks the Unloaded hook to load Handle again.
	ReloadPending bool
}

// NewMapStateData returns an empty map resource.
func NewMapStateData() *MapStateData {
	return &MapStateData{
		Textures:    make(map[string]*ebiten.Image),
		Atlases:     make(map[string]*assets.Atlas),
		TextureMaps: make(map[string]TextureRef),
	}
}

var MapState = donburi.NewComponentType[MapStateData]()
