package components

import "github.com/yohamta/donburi"

// AppData is the window-level resource: size, exit request and debug toggles.
type AppData struct {
	Width         int
	Height        int
	Resized       bool
	ExitRequested bool
	DrawColliders bool
}

var App = donburi.NewComponentType[AppData]()
