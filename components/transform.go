package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Anchor says which point of a sprite Position refers to.
type Anchor int

const (
	AnchorCenter Anchor = iota
	AnchorBottomLeft
)

// TransformData is a world position. World space is y-up, in pixels.
type TransformData struct {
	Position math.Vec2
}

var Transform = donburi.NewComponentType[TransformData]()
