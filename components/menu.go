package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// Screen is a UI tree owned by a menu root entity.
type Screen interface {
	Update()
	Draw(screen *ebiten.Image)
	Resize(width, height int)
}

// MenuRootData marks the root node of a menu screen.
type MenuRootData struct {
	Screen Screen
}

var MenuRoot = donburi.NewComponentType[MenuRootData]()
