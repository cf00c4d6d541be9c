package systems

import (
	"github.com/automoto/the-caverns/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// View maps y-up world coordinates onto the screen, centred on the camera.
type View struct {
	Camera        math.Vec2
	Width, Height float64
}

func viewOf(e *ecs.ECS, screen *ebiten.Image) (View, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return View{}, false // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	return View{
		Camera: camera.Position,
		Width:  float64(screen.Bounds().Dx()),
		Height: float64(screen.Bounds().Dy()),
	}, true
}

// WorldToScreen converts a world point to screen pixels.
func (v View) WorldToScreen(x, y float64) (float64, float64) {
	return x - v.Camera.X + v.Width/2, v.Height/2 - (y - v.Camera.Y)
}

// SpriteRect returns the screen-space top-left corner of a sprite at pos.
func (v View) SpriteRect(pos math.Vec2, sprite *components.SpriteData) (x, y float64) {
	left, top := pos.X, pos.Y+sprite.Size.Y
	if sprite.Anchor == components.AnchorCenter {
		left = pos.X - sprite.Size.X/2
		top = pos.Y + sprite.Size.Y/2
	}
	return v.WorldToScreen(left, top)
}

// Visible reports whether a screen rectangle intersects the view.
func (v View) Visible(x, y, w, h float64) bool {
	return x+w >= 0 && y+h >= 0 && x <= v.Width && y <= v.Height
}

// DrawSprites returns a renderer for the sprites on layer.
func DrawSprites(layer ecs.LayerID) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		view, ok := viewOf(e, screen)
		if !ok {
			return
		}
		components.Sprite.Each(e.World, func(entry *donburi.Entry) {
			sprite := components.Sprite.Get(entry)
			if sprite.Layer != layer || sprite.Hidden || !entry.HasComponent(components.Transform) {
				return
			}
			pos := components.Transform.Get(entry).Position
			x, y := view.SpriteRect(pos, sprite)
			if !view.Visible(x, y, sprite.Size.X, sprite.Size.Y) {
				return
			}
			drawSprite(screen, sprite, x, y)
		})
	}
}

func drawSprite(screen *ebiten.Image, sprite *components.SpriteData, x, y float64) {
	if sprite.Image == nil {
		vector.FillRect(screen, float32(x), float32(y), float32(sprite.Size.X), float32(sprite.Size.Y), sprite.Color, false)
		return
	}

	b := sprite.Image.Bounds()
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.Filter = ebiten.FilterNearest
	drawOp.GeoM.Scale(sprite.Size.X/float64(b.Dx()), sprite.Size.Y/float64(b.Dy()))
	drawOp.GeoM.Translate(x, y)
	screen.DrawImage(sprite.Image, drawOp)
}
