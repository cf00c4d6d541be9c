package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// SpriteData draws Image scaled to Size, or a Color filled rectangle when
// Image is nil.
type SpriteData struct {
	Image  *ebiten.Image
	Color  color.RGBA
	Size   math.Vec2
	Anchor Anchor
	Layer  ecs.LayerID
	Hidden bool
}

var Sprite = donburi.NewComponentType[SpriteData]()
