package systems

import (
	"image/color"

	cfg "github.com/automoto/the-caverns/config"
	"github.com/automoto/the-caverns/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawColliders outlines every collider in the collision space when the
// overlay is on.
func DrawColliders(ecs *ecs.ECS, screen *ebiten.Image) {
	app := App(ecs.World)
	if app == nil || !app.DrawColliders {
		return
	}
	view, ok := viewOf(ecs, screen)
	if !ok {
		return
	}
	sp := space(ecs.World)
	if sp == nil {
		return
	}

	for _, obj := range sp.Objects() {
		// Colliders are y-up with (X, Y) at the bottom-left corner.
		x, y := view.WorldToScreen(obj.X, obj.Y+obj.H)
		if !view.Visible(x, y, obj.W, obj.H) {
			continue
		}

		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvObstacle) {
			c = color.RGBA{255, 128, 0, 255}
		} else if obj.HasTags(tags.ResolvSolid) {
			c = color.RGBA{100, 100, 100, 255} // Grey
		} else if obj.HasTags(tags.ResolvPlayer) {
			c = cfg.ColliderRed
		}

		vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), 1, c, false)
	}
}
