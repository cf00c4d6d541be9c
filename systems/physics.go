package systems

import (
	"github.com/automoto/the-caverns/components"
	"github.com/automoto/the-caverns/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// tickSeconds is the fixed update step.
func tickSeconds() float64 {
	return 1 / float64(ebiten.TPS())
}

// UpdatePhysics integrates dynamic bodies over one tick: damping first, then
// movement resolved against solid colliders one axis at a time. Gravity is
// not applied; the world is seen from above.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := tickSeconds()
	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		if body.Kind != components.BodyDynamic || !e.HasComponent(components.Velocity) {
			return
		}
		vel := components.Velocity.Get(e)
		obj := components.Object.Get(e)

		ApplyDamping(vel, body.LinearDamping, dt)
		if blocked := moveX(obj.Object, vel.X*dt); blocked {
			vel.X = 0
		}
		if blocked := moveY(obj.Object, vel.Y*dt); blocked {
			vel.Y = 0
		}

		if e.HasComponent(components.Transform) {
			t := components.Transform.Get(e)
			t.Position.X = obj.X + obj.W/2
			t.Position.Y = obj.Y + obj.H/2
		}
	})
}

// ApplyDamping scales velocity by 1/(1 + dt*damping).
func ApplyDamping(vel *components.VelocityData, damping, dt float64) {
	if damping <= 0 {
		return
	}
	f := 1 / (1 + dt*damping)
	vel.X *= f
	vel.Y *= f
}

// moveX moves object by dx, stopping flush against the nearest solid in the
// way. It reports whether the move was cut short.
func moveX(object *resolv.Object, dx float64) bool {
	if dx == 0 {
		return false
	}
	blocked := false
	if check := object.Check(dx, 0, tags.ResolvSolid); check != nil {
		for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
			if solid == object || !overlapsY(object, solid) {
				continue
			}
			if dx > 0 && solid.X >= object.X+object.W-contactEpsilon {
				if gap := solid.X - (object.X + object.W); gap < dx {
					dx, blocked = gap, true
				}
			} else if dx < 0 && solid.X+solid.W <= object.X+contactEpsilon {
				if gap := solid.X + solid.W - object.X; gap > dx {
					dx, blocked = gap, true
				}
			}
		}
	}
	object.X += dx
	object.Update()
	return blocked
}

// moveY is moveX for the vertical axis.
func moveY(object *resolv.Object, dy float64) bool {
	if dy == 0 {
		return false
	}
	blocked := false
	if check := object.Check(0, dy, tags.ResolvSolid); check != nil {
		for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
			if solid == object || !overlapsX(object, solid) {
				continue
			}
			if dy > 0 && solid.Y >= object.Y+object.H-contactEpsilon {
				if gap := solid.Y - (object.Y + object.H); gap < dy {
					dy, blocked = gap, true
				}
			} else if dy < 0 && solid.Y+solid.H <= object.Y+contactEpsilon {
				if gap := solid.Y + solid.H - object.Y; gap > dy {
					dy, blocked = gap, true
				}
			}
		}
	}
	object.Y += dy
	object.Update()
	return blocked
}

const contactEpsilon = 1e-6

func overlapsX(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W
}

func overlapsY(a, b *resolv.Object) bool {
	return a.Y < b.Y+b.H && b.Y < a.Y+a.H
}
